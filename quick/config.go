package quick

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/xolog/xolog"
)

// config parses configuration strings into a Config.
// Each argument should be in "key=value" format where key matches the
// Config field tags. The function handles type conversion for each field.
func config(args ...string) (*xolog.Config, error) {
	cfg := &xolog.Config{}
	for _, arg := range args {
		key, value, err := parseKeyValue(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid config format: %s", arg)
		}

		if err := setValue(cfg, key, value); err != nil {
			return nil, fmt.Errorf("config error: %s", err)
		}
	}
	return cfg, nil
}

// parseKeyValue splits a configuration string into key and value parts.
// Input format must be "key=value". Leading and trailing spaces are
// removed from both parts. Returns error if format is invalid.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.Split(strings.TrimSpace(arg), "=")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid format")
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// setValue updates a Config field using reflection. Field matching is
// case-insensitive against the lower-case toml tags. Returns error if
// field is unknown or value cannot be converted to the required type.
func setValue(cfg *xolog.Config, key, value string) error {
	key = strings.ToLower(key)

	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("toml"); tag == key {
			f := v.Field(i)

			switch f.Kind() {
			case reflect.Int64:
				n, err := strconv.ParseInt(value, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid integer for %s: %s", key, value)
				}
				f.SetInt(n)
			case reflect.Int:
				n, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("invalid integer for %s: %s", key, value)
				}
				f.SetInt(int64(n))
			case reflect.String:
				f.SetString(value)
			default:
				return fmt.Errorf("unsupported config type for %s", key)
			}
			return nil
		}
	}
	return fmt.Errorf("unknown config key: %s", key)
}
