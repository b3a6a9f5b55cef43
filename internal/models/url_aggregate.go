package models

// URLAggregate groups latencies per URL together with the global totals.
// It is immutable once returned by URLAggregateBuilder.Build.
//
// URLs() reports URLs in first-seen order, which keeps downstream ranking
// deterministic for a deterministic input.
type URLAggregate struct {
	urls         []string
	latencies    map[string][]float64
	sampleCount  int
	totalLatency float64
}

func (a *URLAggregate) URLs() []string {
	out := make([]string, len(a.urls))
	copy(out, a.urls)
	return out
}

// Latencies returns a copy of the latencies of url in arrival order.
func (a *URLAggregate) Latencies(url string) []float64 {
	src := a.latencies[url]
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

func (a *URLAggregate) Len() int              { return len(a.urls) }
func (a *URLAggregate) SampleCount() int      { return a.sampleCount }
func (a *URLAggregate) TotalLatency() float64 { return a.totalLatency }
func (a *URLAggregate) IsEmpty() bool         { return a.sampleCount == 0 }

// URLAggregateBuilder accumulates samples into a URLAggregate. Not safe for concurrent use.
type URLAggregateBuilder struct {
	agg   *URLAggregate
	built bool
}

func NewURLAggregateBuilder() *URLAggregateBuilder {
	return &URLAggregateBuilder{agg: &URLAggregate{latencies: make(map[string][]float64)}}
}

// Add records one sample. Calls after Build panic.
func (b *URLAggregateBuilder) Add(s Sample) {
	if b.built {
		panic("models: URLAggregateBuilder.Add called after Build")
	}
	list, ok := b.agg.latencies[s.URL]
	if !ok {
		b.agg.urls = append(b.agg.urls, s.URL)
	}
	b.agg.latencies[s.URL] = append(list, s.Latency)
	b.agg.sampleCount++
	b.agg.totalLatency += s.Latency
}

// Build seals the builder and returns the aggregate.
func (b *URLAggregateBuilder) Build() *URLAggregate {
	b.built = true
	return b.agg
}
