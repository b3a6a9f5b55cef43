package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyRead is returned by SuccessRate when no line was read.
var ErrEmptyRead = errors.New("success rate undefined: no lines read")

// ReadSummary counts the lines of a single read pass. It is immutable once built.
type ReadSummary struct {
	total  int
	parsed int
}

// NewReadSummary builds a summary, rejecting counts that break parsed <= total.
func NewReadSummary(total, parsed int) (ReadSummary, error) {
	if total < 0 || parsed < 0 || parsed > total {
		return ReadSummary{}, fmt.Errorf("invalid read summary: parsed=%d total=%d", parsed, total)
	}
	return ReadSummary{total: total, parsed: parsed}, nil
}

func (s ReadSummary) Total() int  { return s.total }
func (s ReadSummary) Parsed() int { return s.parsed }
func (s ReadSummary) Failed() int { return s.total - s.parsed }

// SuccessRate returns parsed/total, or ErrEmptyRead when total is zero.
func (s ReadSummary) SuccessRate() (float64, error) {
	if s.total == 0 {
		return 0, ErrEmptyRead
	}
	return float64(s.parsed) / float64(s.total), nil
}

func (s ReadSummary) MarshalJSON() ([]byte, error) {
	out := struct {
		Total       int      `json:"total"`
		Parsed      int      `json:"parsed"`
		SuccessRate *float64 `json:"successRate,omitempty"`
	}{Total: s.total, Parsed: s.parsed}
	if rate, err := s.SuccessRate(); err == nil {
		out.SuccessRate = &rate
	}
	return json.Marshal(out)
}
