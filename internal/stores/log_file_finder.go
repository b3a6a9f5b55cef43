package stores

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"log-analyzer/internal/models"

	"github.com/spf13/afero"
)

const (
	dateGroup  = "date"
	dateLayout = "20060102"
)

var (
	// ErrSourceNotFound is wrapped by every "no log to analyze" condition.
	ErrSourceNotFound  = errors.New("log source not found")
	ErrLogDirNotFound  = fmt.Errorf("%w: log directory does not exist", ErrSourceNotFound)
	ErrLogFileNotFound = fmt.Errorf("%w: no log file matches the pattern", ErrSourceNotFound)
	ErrInvalidPattern  = errors.New("invalid log file pattern")
)

// LogFileFinder selects the access log with the latest date embedded in its name.
//
//go:generate mockgen -source=log_file_finder.go -destination=./mocks/log_file_finder_mock.go -package=mocks
type LogFileFinder interface {
	// FindLatest returns the matching file with the greatest date. Names that do not match,
	// or embed an impossible date, are skipped. Equal dates keep the lexicographically first name.
	FindLatest(ctx context.Context) (*models.LogFile, error)
	Open(ctx context.Context, file *models.LogFile) (io.ReadCloser, error)
}

type logFileFinder struct {
	fs      afero.Fs
	dir     string
	pattern *regexp.Regexp
	dateIdx int
}

func NewLogFileFinder(fs afero.Fs, dir string, pattern string) (LogFileFinder, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	dateIdx := re.SubexpIndex(dateGroup)
	if dateIdx < 0 {
		return nil, fmt.Errorf("%w: missing named group %q", ErrInvalidPattern, dateGroup)
	}
	return &logFileFinder{fs: fs, dir: dir, pattern: re, dateIdx: dateIdx}, nil
}

func (f *logFileFinder) FindLatest(ctx context.Context) (*models.LogFile, error) {
	info, err := f.fs.Stat(f.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLogDirNotFound, f.dir)
		}
		return nil, fmt.Errorf("failed to stat log directory %q: %w", f.dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrLogDirNotFound, f.dir)
	}

	// entries come back sorted by name
	entries, err := afero.ReadDir(f.fs, f.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list log directory %q: %w", f.dir, err)
	}

	var latest *models.LogFile
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		match := f.pattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		if !f.isRegularFile(entry) {
			continue
		}
		date, err := time.Parse(dateLayout, match[f.dateIdx])
		if err != nil {
			continue
		}

		if latest == nil || date.After(latest.Date) {
			latest = &models.LogFile{
				Path:        filepath.Join(f.dir, entry.Name()),
				Date:        date,
				Compression: models.CompressionFromName(entry.Name()),
			}
		}
	}

	if latest == nil {
		return nil, fmt.Errorf("%w: %s in %s", ErrLogFileNotFound, f.pattern.String(), f.dir)
	}
	return latest, nil
}

// isRegularFile accepts regular files and symlinks that resolve to one.
func (f *logFileFinder) isRegularFile(entry os.FileInfo) bool {
	if entry.Mode().IsRegular() {
		return true
	}
	if entry.Mode()&os.ModeSymlink == 0 {
		return false
	}
	target, err := f.fs.Stat(filepath.Join(f.dir, entry.Name()))
	return err == nil && target.Mode().IsRegular()
}

func (f *logFileFinder) Open(ctx context.Context, file *models.LogFile) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, err := f.fs.Open(file.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLogFileNotFound, file.Path)
		}
		return nil, fmt.Errorf("failed to open log file %q: %w", file.Path, err)
	}
	return r, nil
}
