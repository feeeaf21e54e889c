package xolog

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var backupPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}_app\.log$`)

func TestRotation(t *testing.T) {
	require := require.New(t)

	t.Run("TriggeredOnCrossing", func(t *testing.T) {
		dir := t.TempDir()
		r := New()
		r.SetLogFolder(dir)
		l, err := r.Logger("app.log")
		require.NoError(err)
		require.True(r.SetMaxFileSize("app.log", 100))

		// Each line is ~69 bytes; the second one crosses the limit.
		msg := strings.Repeat("x", 30)
		_, err = l.Error("mod", msg)
		require.NoError(err)
		require.NoError(noBackups(dir))

		_, err = l.Error("mod", msg)
		require.NoError(err)

		backups, err := l.Backups()
		require.NoError(err)
		require.Len(backups, 1)
		require.True(backupPattern.MatchString(backups[0]), "backup %q", backups[0])

		// The rotated file holds both lines, the active file is empty
		// and tracked size restarts from zero.
		rotated, err := os.ReadFile(filepath.Join(dir, backups[0]))
		require.NoError(err)
		require.Equal(2, strings.Count(string(rotated), "\n"))

		active, err := os.ReadFile(filepath.Join(dir, "app.log"))
		require.NoError(err)
		require.Empty(active)
		require.Zero(l.size)
	})

	t.Run("AccumulatesFromZeroAfterRotation", func(t *testing.T) {
		dir := t.TempDir()
		r := New()
		r.SetLogFolder(dir)
		l, err := r.Logger("app.log")
		require.NoError(err)
		require.True(r.SetMaxFileSize("app.log", 100))

		msg := strings.Repeat("x", 30)
		for i := 0; i < 2; i++ {
			_, err = l.Error("mod", msg)
			require.NoError(err)
		}

		// One more emit lands in the fresh file without another rotation.
		_, err = l.Error("mod", "after")
		require.NoError(err)

		backups, err := l.Backups()
		require.NoError(err)
		require.Len(backups, 1)

		active, err := os.ReadFile(filepath.Join(dir, "app.log"))
		require.NoError(err)
		require.Contains(string(active), "after")
	})

	t.Run("InitialSizeCountsTowardRotation", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(os.WriteFile(filepath.Join(dir, "app.log"),
			[]byte(strings.Repeat("y", 90)+"\n"), 0644))

		r := New()
		r.SetLogFolder(dir)
		l, err := r.Logger("app.log")
		require.NoError(err)
		require.True(r.SetMaxFileSize("app.log", 100))

		// The probed 91 bytes plus one line cross the limit immediately.
		_, err = l.Error("mod", "tip over")
		require.NoError(err)

		backups, err := l.Backups()
		require.NoError(err)
		require.Len(backups, 1)
	})

	t.Run("NoRotationInConsoleMode", func(t *testing.T) {
		r := New()
		r.SetConsole(io.Discard)
		l, err := r.Logger("app.log")
		require.NoError(err)

		for i := 0; i < 50; i++ {
			_, err = l.Error("mod", strings.Repeat("x", 100))
			require.NoError(err)
		}
		require.Zero(l.size)

		backups, err := l.Backups()
		require.NoError(err)
		require.Nil(backups)
	})
}

func TestRotationFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions do not bind root")
	}
	require := require.New(t)

	dir := t.TempDir()
	r := New()
	r.SetLogFolder(dir)
	l, err := r.Logger("app.log")
	require.NoError(err)
	require.True(r.SetMaxFileSize("app.log", 100))

	msg := strings.Repeat("x", 30)
	_, err = l.Error("mod", msg)
	require.NoError(err)

	// A read-only folder still accepts appends to the existing file but
	// refuses the rotation rename.
	require.NoError(os.Chmod(dir, 0555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

	written, err := l.Error("mod", msg)
	require.True(written, "the line reached the file before rotation failed")
	require.Error(err)

	// No backup was produced and the tracked size was not reset, so the
	// next successful emit retries the rotation.
	backups, err := l.Backups()
	require.NoError(err)
	require.Empty(backups)

	info, err := os.Stat(filepath.Join(dir, "app.log"))
	require.NoError(err)
	require.Equal(info.Size(), l.size)
	require.Greater(l.size, int64(100))
}

func TestPruneBackups(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	names := []string{
		"2026-08-31T10:00_app.log",
		"2026-08-31T10:05_app.log",
		"2026-08-31T10:10_app.log",
	}
	for i, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(os.WriteFile(path, []byte("old\n"), 0644))
		mt := base.Add(time.Duration(i) * time.Minute)
		require.NoError(os.Chtimes(path, mt, mt))
	}
	require.NoError(os.WriteFile(filepath.Join(dir, "app.log"), []byte("active\n"), 0644))

	require.NoError(pruneBackups(dir, "app.log", 1))

	remaining, err := listBackups(dir, "app.log")
	require.NoError(err)
	require.Equal([]string{"2026-08-31T10:10_app.log"}, remaining)

	// The active file is never pruned.
	require.FileExists(filepath.Join(dir, "app.log"))
}

func noBackups(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Name() != "app.log" {
			return os.ErrExist
		}
	}
	return nil
}
