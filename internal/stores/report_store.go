package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"

	"log-analyzer/internal/shared/filestorages"
)

const reportKeyLayout = "report-2006.01.02.html"

var (
	ErrReportAlreadyExists = errors.New("report already exists")
	ErrReportNotFound      = errors.New("report not found")
	ErrInvalidReportKey    = errors.New("invalid report key")

	reportKeyPattern = regexp.MustCompile(`^report-\d{4}\.\d{2}\.\d{2}\.html$`)
)

// ReportStore keeps one HTML report per log date. A report is never overwritten: Put performs
// an atomic create-if-not-exists, so two runs racing on the same date publish exactly one report.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	KeyFor(date time.Time) string
	Exists(ctx context.Context, date time.Time) (bool, error)
	Put(ctx context.Context, date time.Time, content []byte) (string, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// List returns the keys of stored reports, oldest first.
	List(ctx context.Context) ([]string, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage}
}

func (s *reportStore) KeyFor(date time.Time) string {
	return date.Format(reportKeyLayout)
}

func (s *reportStore) Exists(ctx context.Context, date time.Time) (bool, error) {
	exists, err := s.fileStorage.Exists(ctx, s.KeyFor(date))
	if err != nil {
		return false, fmt.Errorf("failed to check report: %w", err)
	}
	return exists, nil
}

func (s *reportStore) Put(ctx context.Context, date time.Time, content []byte) (string, error) {
	key := s.KeyFor(date)
	_, err := s.fileStorage.Put(ctx, key, bytes.NewReader(content), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", fmt.Errorf("%w: %s", ErrReportAlreadyExists, key)
		}
		return "", fmt.Errorf("failed to put report: %w", err)
	}
	return key, nil
}

func (s *reportStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if !reportKeyPattern.MatchString(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReportKey, key)
	}
	rc, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, key)
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return rc, nil
}

func (s *reportStore) List(ctx context.Context) ([]string, error) {
	keys, err := s.fileStorage.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	// the zero-padded date layout sorts chronologically
	reports := make([]string, 0, len(keys))
	for _, key := range keys {
		if reportKeyPattern.MatchString(key) {
			reports = append(reports, key)
		}
	}
	return reports, nil
}
