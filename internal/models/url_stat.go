package models

// URLStat is one report row. Numeric fields are rounded to 3 decimal places.
type URLStat struct {
	URL          string  `json:"url"`
	Count        int     `json:"count"`
	CountPercent float64 `json:"count_perc"`
	TimeSum      float64 `json:"time_sum"`
	TimePercent  float64 `json:"time_perc"`
	TimeAvg      float64 `json:"time_avg"`
	TimeMax      float64 `json:"time_max"`
	TimeMedian   float64 `json:"time_med"`
}

// ReportData is the ranked, size-bounded list of report rows.
type ReportData []URLStat

// LatencyQuantiles are approximate global latency quantiles in seconds.
type LatencyQuantiles struct {
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

// ClientCount is the number of samples sent by one client family.
type ClientCount struct {
	Family string `json:"family"`
	Count  int64  `json:"count"`
}
