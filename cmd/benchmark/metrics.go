package main

import (
	"math"
	"sort"
	"sync"
	"time"
)

// Metrics acumula latências e contadores de uma rodada. Seguro para uso
// concorrente.
type Metrics struct {
	mu           sync.Mutex
	latencies    []time.Duration
	successCount int
	errorCount   int
}

func NewMetrics(capacity int) *Metrics {
	return &Metrics{latencies: make([]time.Duration, 0, capacity)}
}

func (m *Metrics) Record(latency time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latencies = append(m.latencies, latency)
	if err == nil {
		m.successCount++
	} else {
		m.errorCount++
	}
}

type BenchmarkResult struct {
	Operation     string
	Middleware    string
	TotalRequests int
	SuccessCount  int
	SuccessRate   float64
	AvgLatency    time.Duration
	P50Latency    time.Duration
	P95Latency    time.Duration
	P99Latency    time.Duration
	Throughput    float64
}

// Result resume as medições; elapsed é o tempo de parede da rodada.
func (m *Metrics) Result(elapsed time.Duration) BenchmarkResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := len(m.latencies)
	if total == 0 {
		return BenchmarkResult{}
	}

	var sum time.Duration
	for _, lat := range m.latencies {
		sum += lat
	}

	result := BenchmarkResult{
		TotalRequests: total,
		SuccessCount:  m.successCount,
		SuccessRate:   float64(m.successCount) / float64(total) * 100.0,
		AvgLatency:    sum / time.Duration(total),
		P50Latency:    percentile(m.latencies, 50),
		P95Latency:    percentile(m.latencies, 95),
		P99Latency:    percentile(m.latencies, 99),
	}
	if elapsed > 0 {
		result.Throughput = float64(total) / elapsed.Seconds()
	}
	return result
}

// percentile usa o método nearest-rank sobre uma cópia ordenada.
func percentile(latencies []time.Duration, p float64) time.Duration {
	if len(latencies) == 0 {
		return 0
	}
	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	rank := int(math.Ceil(float64(len(sorted))*p/100.0)) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}
