package models

// Sample is one (URL, latency) observation extracted from a single access log line.
type Sample struct {
	URL       string
	Latency   float64 // seconds, >= 0
	UserAgent string  // best-effort, empty when the record carries none
}
