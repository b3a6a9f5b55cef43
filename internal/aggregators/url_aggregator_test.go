package aggregators

import (
	"errors"
	"testing"

	"log-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceIterator yields samples from memory and then reports err.
type sliceIterator struct {
	samples []models.Sample
	pos     int
	err     error
}

func (it *sliceIterator) Next() bool {
	if it.pos >= len(it.samples) {
		return false
	}
	it.pos++
	return true
}

func (it *sliceIterator) Sample() models.Sample { return it.samples[it.pos-1] }
func (it *sliceIterator) Err() error            { return it.err }

type recordingObserver struct {
	seen []string
}

func (o *recordingObserver) Observe(s models.Sample) { o.seen = append(o.seen, s.URL) }

func TestURLAggregator_Aggregate(t *testing.T) {
	t.Parallel()

	samples := []models.Sample{
		{URL: "/url1", Latency: 1},
		{URL: "/url1", Latency: 2},
		{URL: "/url1", Latency: 3},
		{URL: "/url2", Latency: 4},
	}
	observer := &recordingObserver{}

	agg, err := NewURLAggregator().Aggregate(&sliceIterator{samples: samples}, observer)
	require.NoError(t, err)
	assert.Equal(t, 4, agg.SampleCount())
	assert.InDelta(t, 10, agg.TotalLatency(), 1e-12)
	assert.Equal(t, []string{"/url1", "/url2"}, agg.URLs())
	assert.Equal(t, []float64{1, 2, 3}, agg.Latencies("/url1"))
	assert.Equal(t, []string{"/url1", "/url1", "/url1", "/url2"}, observer.seen)
}

func TestURLAggregator_Aggregate_TotalsIndependentOfOrder(t *testing.T) {
	t.Parallel()

	forward := []models.Sample{
		{URL: "/a", Latency: 0.25},
		{URL: "/b", Latency: 0.5},
		{URL: "/a", Latency: 0.125},
	}
	backward := []models.Sample{forward[2], forward[1], forward[0]}

	aggregator := NewURLAggregator()
	a, err := aggregator.Aggregate(&sliceIterator{samples: forward})
	require.NoError(t, err)
	b, err := aggregator.Aggregate(&sliceIterator{samples: backward})
	require.NoError(t, err)

	assert.Equal(t, a.SampleCount(), b.SampleCount())
	assert.Equal(t, a.TotalLatency(), b.TotalLatency())
	assert.Equal(t, []float64{0.25, 0.125}, a.Latencies("/a"))
	assert.Equal(t, []float64{0.125, 0.25}, b.Latencies("/a"))
}

func TestURLAggregator_Aggregate_ReturnsPartialAggregateWithError(t *testing.T) {
	t.Parallel()

	terminal := errors.New("too many parse errors")
	it := &sliceIterator{samples: []models.Sample{{URL: "/a", Latency: 1}}, err: terminal}

	agg, err := NewURLAggregator().Aggregate(it)
	assert.ErrorIs(t, err, terminal)
	require.NotNil(t, agg)
	assert.Equal(t, 1, agg.SampleCount())
}

func TestURLAggregator_Aggregate_Empty(t *testing.T) {
	t.Parallel()

	agg, err := NewURLAggregator().Aggregate(&sliceIterator{})
	require.NoError(t, err)
	assert.True(t, agg.IsEmpty())
	assert.Equal(t, 0, agg.Len())
}
