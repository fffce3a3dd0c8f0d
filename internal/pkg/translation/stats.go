package translation

import "sync"

type Stats struct {
	TotalRequests  int            `json:"total_requests"`
	Success        int            `json:"success"`
	FallbackUsed   int            `json:"fallback_used"`
	AlreadyEnglish int            `json:"already_english"`
	Failed         int            `json:"failed"`
	Languages      map[string]int `json:"languages"`
}

type statsCounter struct {
	mu sync.Mutex
	s  Stats
}

func newStatsCounter() *statsCounter {
	return &statsCounter{s: Stats{Languages: make(map[string]int)}}
}

func (c *statsCounter) record(res Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.s.TotalRequests++
	switch res.Method {
	case MethodAPI:
		c.s.Success++
	case MethodFallback:
		c.s.FallbackUsed++
	case MethodAlreadyEnglish:
		c.s.AlreadyEnglish++
	case MethodFailed:
		c.s.Failed++
	}
	if res.Lang != "" {
		c.s.Languages[res.Lang]++
	}
}

// snapshot returns a copy that is safe to hand out.
func (c *statsCounter) snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.s
	out.Languages = make(map[string]int, len(c.s.Languages))
	for k, v := range c.s.Languages {
		out.Languages[k] = v
	}
	return out
}
