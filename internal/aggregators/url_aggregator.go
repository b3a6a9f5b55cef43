package aggregators

import (
	"log-analyzer/internal/models"
)

// SampleIterator is the pull side of a sample sequence. ingestors.SampleStream satisfies it.
type SampleIterator interface {
	Next() bool
	Sample() models.Sample
	Err() error
}

// SampleObserver sees every sample folded into an aggregate, in arrival order.
type SampleObserver interface {
	Observe(sample models.Sample)
}

//go:generate mockgen -source=url_aggregator.go -destination=./mocks/url_aggregator_mock.go -package=mocks
type URLAggregator interface {
	// Aggregate drains samples to completion. It always returns the aggregate built so far,
	// together with the iterator's terminal error; the caller decides whether to keep it.
	Aggregate(samples SampleIterator, observers ...SampleObserver) (*models.URLAggregate, error)
}

type urlAggregator struct{}

func NewURLAggregator() URLAggregator {
	return &urlAggregator{}
}

func (a *urlAggregator) Aggregate(samples SampleIterator, observers ...SampleObserver) (*models.URLAggregate, error) {
	builder := models.NewURLAggregateBuilder()
	for samples.Next() {
		sample := samples.Sample()
		builder.Add(sample)
		for _, o := range observers {
			o.Observe(sample)
		}
		metricSamplesAggregatedTotal.Inc()
	}

	agg := builder.Build()
	metricLastDistinctURLs.Set(float64(agg.Len()))
	return agg, samples.Err()
}
