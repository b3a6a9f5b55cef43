package aggregators

import (
	"sort"

	"log-analyzer/internal/models"

	"github.com/mileusna/useragent"
)

const unknownClient = "unknown"

// ClientTally counts samples per client family parsed from the user agent.
type ClientTally struct {
	counts map[string]int64
	// raw user agents repeat heavily in access logs
	cache map[string]string
}

func NewClientTally() *ClientTally {
	return &ClientTally{
		counts: make(map[string]int64),
		cache:  make(map[string]string),
	}
}

func (c *ClientTally) Observe(sample models.Sample) {
	family, ok := c.cache[sample.UserAgent]
	if !ok {
		family = normalizeUserAgent(sample.UserAgent)
		c.cache[sample.UserAgent] = family
	}
	c.counts[family]++
}

// Top returns the n most frequent families, ties ordered by name. n <= 0 returns all.
func (c *ClientTally) Top(n int) []models.ClientCount {
	out := make([]models.ClientCount, 0, len(c.counts))
	for family, count := range c.counts {
		out = append(out, models.ClientCount{Family: family, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Family < out[j].Family
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// normalizeUserAgent parses user agent to extract family, or returns original if parsing fails.
func normalizeUserAgent(ua string) string {
	if ua == "" {
		return unknownClient
	}

	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}

	return ua
}
