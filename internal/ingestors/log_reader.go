package ingestors

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/loggers"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
)

const (
	readBufferSize = 64 * 1024
	// longer lines are skipped and counted as failed
	maxLineBytes = 1024 * 1024
)

// ReadOptions configures a single read pass.
type ReadOptions struct {
	// MinSuccessRate in [0,1]; nil disables the check.
	MinSuccessRate *float64
}

// SampleStream yields the samples of one read pass, one at a time.
//
// Next advances to the next successfully parsed line and returns false once the source
// is exhausted or failed; Err then reports the terminal condition. A success rate below
// the minimum is only reported after every sample has been yielded.
//
//go:generate mockgen -source=log_reader.go -destination=./mocks/log_reader_mock.go -package=mocks
type SampleStream interface {
	Next() bool
	Sample() models.Sample
	Err() error
	// Summary reports the lines counted so far; final once Next returned false.
	Summary() models.ReadSummary
	Close() error
}

type LogReader interface {
	// Read starts a single-pass read of r. Decompression errors on the stream header
	// are returned here, before any sample.
	Read(ctx context.Context, r io.Reader, compression models.Compression, opts ReadOptions) (SampleStream, error)
}

type logReader struct {
	parser LineParser
}

func NewLogReader(parser LineParser) LogReader {
	return &logReader{parser: parser}
}

func (lr *logReader) Read(ctx context.Context, r io.Reader, compression models.Compression, opts ReadOptions) (SampleStream, error) {
	src, closeFn, err := decompress(r, compression)
	if err != nil {
		return nil, err
	}

	return &sampleStream{
		ctx:            ctx,
		logger:         loggers.Ctx(ctx),
		parser:         lr.parser,
		reader:         bufio.NewReaderSize(src, readBufferSize),
		closeFn:        closeFn,
		minSuccessRate: opts.MinSuccessRate,
	}, nil
}

func decompress(r io.Reader, compression models.Compression) (io.Reader, func() error, error) {
	noop := func() error { return nil }

	switch compression {
	case models.CompressionNone, "":
		return r, noop, nil
	case models.CompressionGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return gz, gz.Close, nil
	case models.CompressionZstd:
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return zr, func() error { zr.Close(); return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedCompression, string(compression))
	}
}

type sampleStream struct {
	ctx            context.Context
	logger         *zerolog.Logger
	parser         LineParser
	reader         *bufio.Reader
	closeFn        func() error
	minSuccessRate *float64

	total   int
	parsed  int
	current models.Sample
	err     error
	done    bool
}

func (s *sampleStream) Next() bool {
	if s.done {
		return false
	}

	for {
		line, err := s.readLine()
		switch {
		case errors.Is(err, io.EOF):
			s.finish(s.checkSuccessRate())
			return false
		case errors.Is(err, ErrLineTooLong):
			// counted below as a failed line
		case err != nil:
			s.finish(fmt.Errorf("failed to read log source at line %d: %w", s.total+1, err))
			return false
		}
		if ctxErr := s.ctx.Err(); ctxErr != nil {
			s.finish(fmt.Errorf("read cancelled: %w", ctxErr))
			return false
		}

		s.total++
		var sample models.Sample
		if err == nil {
			sample, err = s.parser.Parse(line)
		}
		if err != nil {
			linesFailed.Inc()
			s.logger.Debug().Err(err).Int(loggers.FieldLineNumber, s.total).Msg("skipping unparsable line")
			continue
		}

		linesParsed.Inc()
		s.parsed++
		s.current = sample
		return true
	}
}

// readLine returns the next line without its "\n" or "\r\n" terminator, and io.EOF once
// nothing is left. A line longer than maxLineBytes is read to its end and discarded; the
// returned error then wraps ErrLineTooLong.
func (s *sampleStream) readLine() (string, error) {
	var (
		buf     []byte
		read    int
		tooLong bool
	)
	for {
		chunk, err := s.reader.ReadSlice('\n')
		read += len(chunk)
		if !tooLong {
			if len(buf)+len(chunk) > maxLineBytes+1 {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && read == 0:
			return "", io.EOF
		case err != nil && !errors.Is(err, io.EOF):
			return "", err
		}

		if tooLong {
			return "", fmt.Errorf("%w: %d bytes", ErrLineTooLong, read)
		}
		buf = bytes.TrimSuffix(buf, []byte("\n"))
		buf = bytes.TrimSuffix(buf, []byte("\r"))
		return string(buf), nil
	}
}

func (s *sampleStream) Sample() models.Sample {
	return s.current
}

func (s *sampleStream) Err() error {
	return s.err
}

func (s *sampleStream) Summary() models.ReadSummary {
	// parsed <= total holds by construction
	summary, _ := models.NewReadSummary(s.total, s.parsed)
	return summary
}

func (s *sampleStream) Close() error {
	return s.closeFn()
}

func (s *sampleStream) finish(err error) {
	s.done = true
	s.err = err
	s.current = models.Sample{}

	event := s.logger.Info()
	if err != nil {
		event = s.logger.Warn().Err(err)
	}
	event = event.Int(loggers.FieldTotalLines, s.total).Int(loggers.FieldParsedLines, s.parsed)
	if rate, rateErr := s.Summary().SuccessRate(); rateErr == nil {
		metricLastSuccessRate.Set(rate)
		event = event.Float64(loggers.FieldSuccessRate, rate)
	}
	event.Msg("finished reading log source")
}

func (s *sampleStream) checkSuccessRate() error {
	if s.minSuccessRate == nil {
		return nil
	}

	rate, err := s.Summary().SuccessRate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTooManyParseErrors, err)
	}
	if rate < *s.minSuccessRate {
		return fmt.Errorf("%w: success rate %.4f below minimum %.4f (%d of %d lines parsed)",
			ErrTooManyParseErrors, rate, *s.minSuccessRate, s.parsed, s.total)
	}
	return nil
}
