package devcycle

import (
	"context"
	"sync"
)

type Metric struct {
	Name  string                 `json:"name"`
	Type  string                 `json:"type"`
	Value float64                `json:"value"`
	Tags  map[string]interface{} `json:"tags"`
}

// In-memory client that records every metric it receives. Useful for tests and as a
// starting point for a real integration.
type observabilityClientExample struct {
	incrementMetrics    []Metric
	distributionMetrics []Metric
	initialized         bool
	mu                  sync.RWMutex
}

func NewObservabilityClientExample() *observabilityClientExample {
	return &observabilityClientExample{
		incrementMetrics:    make([]Metric, 0),
		distributionMetrics: make([]Metric, 0),
	}
}

func (o *observabilityClientExample) Init(ctx context.Context) error {
	o.mu.Lock()
	o.initialized = true
	o.mu.Unlock()
	return nil
}

func (o *observabilityClientExample) Increment(metricName string, value int, tags map[string]interface{}) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.incrementMetrics = append(o.incrementMetrics, Metric{
		Name:  metricName,
		Type:  "increment",
		Value: float64(value),
		Tags:  tags,
	})
	return nil
}

func (o *observabilityClientExample) Distribution(metricName string, value float64, tags map[string]interface{}) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.distributionMetrics = append(o.distributionMetrics, Metric{
		Name:  metricName,
		Type:  "distribution",
		Value: value,
		Tags:  tags,
	})
	return nil
}

func (o *observabilityClientExample) Shutdown(ctx context.Context) error {
	o.mu.Lock()
	o.initialized = false
	o.mu.Unlock()
	return nil
}

func (o *observabilityClientExample) GetMetrics(metricType string) []Metric {
	o.mu.RLock()
	defer o.mu.RUnlock()

	switch metricType {
	case "":
		metrics := make([]Metric, 0, len(o.incrementMetrics)+len(o.distributionMetrics))
		metrics = append(metrics, o.incrementMetrics...)
		return append(metrics, o.distributionMetrics...)
	case "increment":
		metrics := make([]Metric, len(o.incrementMetrics))
		copy(metrics, o.incrementMetrics)
		return metrics
	case "distribution":
		metrics := make([]Metric, len(o.distributionMetrics))
		copy(metrics, o.distributionMetrics)
		return metrics
	default:
		return []Metric{}
	}
}

func (o *observabilityClientExample) IsInitialized() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.initialized
}

func (o *observabilityClientExample) ClearMetrics() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.incrementMetrics = make([]Metric, 0)
	o.distributionMetrics = make([]Metric, 0)
}
