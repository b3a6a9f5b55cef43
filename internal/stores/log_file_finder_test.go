package stores

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"log-analyzer/internal/models"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPattern = `^nginx-access-ui\.log-(?P<date>\d{8})(\.gz|\.zst)?$`

func newFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/var/log/nginx", 0o755))
	for _, name := range files {
		require.NoError(t, afero.WriteFile(fs, "/var/log/nginx/"+name, []byte(name), 0o644))
	}
	return fs
}

func TestNewLogFileFinder_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := NewLogFileFinder(afero.NewMemMapFs(), "/logs", `^access-(\d{8}$`)
	assert.ErrorIs(t, err, ErrInvalidPattern)

	_, err = NewLogFileFinder(afero.NewMemMapFs(), "/logs", `^access-(\d{8})$`)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestLogFileFinder_FindLatest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		files           []string
		wantPath        string
		wantDate        time.Time
		wantCompression models.Compression
	}{
		{
			name:            "greatest date wins",
			files:           []string{"nginx-access-ui.log-20170630", "nginx-access-ui.log-20170701.gz", "nginx-access-ui.log-20170629"},
			wantPath:        "/var/log/nginx/nginx-access-ui.log-20170701.gz",
			wantDate:        time.Date(2017, 7, 1, 0, 0, 0, 0, time.UTC),
			wantCompression: models.CompressionGzip,
		},
		{
			name:            "chronological across years",
			files:           []string{"nginx-access-ui.log-20171231", "nginx-access-ui.log-20180101.zst"},
			wantPath:        "/var/log/nginx/nginx-access-ui.log-20180101.zst",
			wantDate:        time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
			wantCompression: models.CompressionZstd,
		},
		{
			name:            "impossible date is skipped",
			files:           []string{"nginx-access-ui.log-20171340", "nginx-access-ui.log-20170630"},
			wantPath:        "/var/log/nginx/nginx-access-ui.log-20170630",
			wantDate:        time.Date(2017, 6, 30, 0, 0, 0, 0, time.UTC),
			wantCompression: models.CompressionNone,
		},
		{
			name:            "non matching names are skipped",
			files:           []string{"nginx-access-ui.log-20190101.bz2", "nginx-error.log-20190101", "nginx-access-ui.log-20170630"},
			wantPath:        "/var/log/nginx/nginx-access-ui.log-20170630",
			wantDate:        time.Date(2017, 6, 30, 0, 0, 0, 0, time.UTC),
			wantCompression: models.CompressionNone,
		},
		{
			name:            "equal dates keep the first name",
			files:           []string{"nginx-access-ui.log-20170630.gz", "nginx-access-ui.log-20170630"},
			wantPath:        "/var/log/nginx/nginx-access-ui.log-20170630",
			wantDate:        time.Date(2017, 6, 30, 0, 0, 0, 0, time.UTC),
			wantCompression: models.CompressionNone,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			finder, err := NewLogFileFinder(newFs(t, tt.files...), "/var/log/nginx", testPattern)
			require.NoError(t, err)

			file, err := finder.FindLatest(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, file.Path)
			assert.True(t, tt.wantDate.Equal(file.Date))
			assert.Equal(t, tt.wantCompression, file.Compression)
		})
	}
}

func TestLogFileFinder_FindLatest_SkipsDirectories(t *testing.T) {
	t.Parallel()

	fs := newFs(t, "nginx-access-ui.log-20170630")
	require.NoError(t, fs.MkdirAll("/var/log/nginx/nginx-access-ui.log-20170701", 0o755))

	finder, err := NewLogFileFinder(fs, "/var/log/nginx", testPattern)
	require.NoError(t, err)

	file, err := finder.FindLatest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/var/log/nginx/nginx-access-ui.log-20170630", file.Path)
}

func TestLogFileFinder_FindLatest_NotFound(t *testing.T) {
	t.Parallel()

	finder, err := NewLogFileFinder(newFs(t, "nginx-error.log-20170630"), "/var/log/nginx", testPattern)
	require.NoError(t, err)
	_, err = finder.FindLatest(context.Background())
	assert.ErrorIs(t, err, ErrLogFileNotFound)
	assert.ErrorIs(t, err, ErrSourceNotFound)

	finder, err = NewLogFileFinder(afero.NewMemMapFs(), "/missing", testPattern)
	require.NoError(t, err)
	_, err = finder.FindLatest(context.Background())
	assert.ErrorIs(t, err, ErrLogDirNotFound)
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestLogFileFinder_FindLatest_DirIsAFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fs   func(t *testing.T) (afero.Fs, string)
	}{
		{
			name: "memory fs",
			fs: func(t *testing.T) (afero.Fs, string) {
				fs := afero.NewMemMapFs()
				require.NoError(t, afero.WriteFile(fs, "/var/log/nginx", []byte("not a dir"), 0o644))
				return fs, "/var/log/nginx"
			},
		},
		{
			name: "os fs",
			fs: func(t *testing.T) (afero.Fs, string) {
				path := filepath.Join(t.TempDir(), "log")
				require.NoError(t, os.WriteFile(path, []byte("not a dir"), 0o644))
				return afero.NewOsFs(), path
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs, dir := tt.fs(t)
			finder, err := NewLogFileFinder(fs, dir, testPattern)
			require.NoError(t, err)

			_, err = finder.FindLatest(context.Background())
			assert.ErrorIs(t, err, ErrLogDirNotFound)
			assert.ErrorIs(t, err, ErrSourceNotFound)
		})
	}
}

func TestLogFileFinder_FindLatest_FollowsSymlinks(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	archive := filepath.Join(root, "archive")
	logDir := filepath.Join(root, "log")
	require.NoError(t, os.MkdirAll(archive, 0o755))
	require.NoError(t, os.MkdirAll(logDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(logDir, "nginx-access-ui.log-20170629"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(archive, "rotated.gz"), nil, 0o644))
	require.NoError(t, os.Symlink(filepath.Join(archive, "rotated.gz"), filepath.Join(logDir, "nginx-access-ui.log-20170630.gz")))
	// dangling and directory targets are skipped
	require.NoError(t, os.Symlink(filepath.Join(archive, "absent"), filepath.Join(logDir, "nginx-access-ui.log-20170702")))
	require.NoError(t, os.Symlink(archive, filepath.Join(logDir, "nginx-access-ui.log-20170701")))

	finder, err := NewLogFileFinder(afero.NewOsFs(), logDir, testPattern)
	require.NoError(t, err)

	file, err := finder.FindLatest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(logDir, "nginx-access-ui.log-20170630.gz"), file.Path)
	assert.Equal(t, models.CompressionGzip, file.Compression)

	rc, err := finder.Open(context.Background(), file)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
}

func TestLogFileFinder_Open(t *testing.T) {
	t.Parallel()

	finder, err := NewLogFileFinder(newFs(t, "nginx-access-ui.log-20170630"), "/var/log/nginx", testPattern)
	require.NoError(t, err)

	file, err := finder.FindLatest(context.Background())
	require.NoError(t, err)

	rc, err := finder.Open(context.Background(), file)
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "nginx-access-ui.log-20170630", string(content))

	_, err = finder.Open(context.Background(), &models.LogFile{Path: "/var/log/nginx/gone"})
	assert.ErrorIs(t, err, ErrSourceNotFound)
}
