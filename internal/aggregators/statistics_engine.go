package aggregators

import (
	"fmt"
	"math"
	"sort"

	"log-analyzer/internal/models"
)

//go:generate mockgen -source=statistics_engine.go -destination=./mocks/statistics_engine_mock.go -package=mocks
type StatisticsEngine interface {
	// ComputeStats ranks URLs by descending total latency and keeps the first reportSize rows.
	// Ties keep the aggregate's first-seen URL order.
	ComputeStats(agg *models.URLAggregate, reportSize int) (models.ReportData, error)
}

type statisticsEngine struct{}

func NewStatisticsEngine() StatisticsEngine {
	return &statisticsEngine{}
}

// urlTotals holds unrounded values; rounding happens only when a row is emitted.
type urlTotals struct {
	url       string
	latencies []float64
	timeSum   float64
}

func (e *statisticsEngine) ComputeStats(agg *models.URLAggregate, reportSize int) (models.ReportData, error) {
	if reportSize < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidReportSize, reportSize)
	}
	if agg == nil || agg.SampleCount() == 0 {
		return nil, fmt.Errorf("%w: aggregate has no samples", ErrStatisticsPrecondition)
	}
	if agg.TotalLatency() == 0 {
		return nil, fmt.Errorf("%w: total latency is zero", ErrStatisticsPrecondition)
	}

	totals := make([]urlTotals, 0, agg.Len())
	for _, url := range agg.URLs() {
		latencies := agg.Latencies(url)
		totals = append(totals, urlTotals{url: url, latencies: latencies, timeSum: sum(latencies)})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].timeSum > totals[j].timeSum
	})
	if len(totals) > reportSize {
		totals = totals[:reportSize]
	}

	sampleCount := float64(agg.SampleCount())
	totalLatency := agg.TotalLatency()

	data := make(models.ReportData, 0, len(totals))
	for _, t := range totals {
		count := len(t.latencies)
		data = append(data, models.URLStat{
			URL:          t.url,
			Count:        count,
			CountPercent: round3(100 * float64(count) / sampleCount),
			TimeSum:      round3(t.timeSum),
			TimePercent:  round3(100 * t.timeSum / totalLatency),
			TimeAvg:      round3(t.timeSum / float64(count)),
			TimeMax:      round3(maxOf(t.latencies)),
			TimeMedian:   round3(median(t.latencies)),
		})
	}

	return data, nil
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// median sorts values in place. Even-length input yields the mean of the two middle values.
func median(values []float64) float64 {
	sort.Float64s(values)
	n := len(values)
	if n%2 == 1 {
		return values[n/2]
	}
	return (values[n/2-1] + values[n/2]) / 2
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
