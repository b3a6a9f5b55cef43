package aggregators

import (
	"log-analyzer/internal/models"

	"github.com/influxdata/tdigest"
)

// digestCompression keeps roughly 100 centroids whatever the sample count.
const digestCompression = 100

// LatencyDigest approximates global latency quantiles over every observed sample.
type LatencyDigest struct {
	digest *tdigest.TDigest
	count  int
}

func NewLatencyDigest() *LatencyDigest {
	return &LatencyDigest{digest: tdigest.NewWithCompression(digestCompression)}
}

func (d *LatencyDigest) Observe(sample models.Sample) {
	d.digest.Add(sample.Latency, 1)
	d.count++
}

// Quantiles returns p50/p95/p99 in seconds, and false when nothing was observed.
func (d *LatencyDigest) Quantiles() (models.LatencyQuantiles, bool) {
	if d.count == 0 {
		return models.LatencyQuantiles{}, false
	}
	return models.LatencyQuantiles{
		P50: round3(d.digest.Quantile(0.50)),
		P95: round3(d.digest.Quantile(0.95)),
		P99: round3(d.digest.Quantile(0.99)),
	}, true
}
