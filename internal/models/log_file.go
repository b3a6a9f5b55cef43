package models

import "time"

// LogFile is the access log selected for a run.
type LogFile struct {
	Path        string      `json:"path"`
	Date        time.Time   `json:"date"` // date embedded in the file name, UTC midnight
	Compression Compression `json:"compression"`
}
