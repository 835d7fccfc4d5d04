package main

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	lat := make([]time.Duration, 0, 100)
	for i := 100; i >= 1; i-- {
		lat = append(lat, time.Duration(i)*time.Millisecond)
	}

	assert.Equal(t, 50*time.Millisecond, percentile(lat, 50))
	assert.Equal(t, 95*time.Millisecond, percentile(lat, 95))
	assert.Equal(t, 99*time.Millisecond, percentile(lat, 99))
	assert.Equal(t, 1*time.Millisecond, percentile(lat, 0))
	assert.Equal(t, 100*time.Millisecond, percentile(lat, 100))
	assert.Equal(t, time.Duration(0), percentile(nil, 50))

	// a entrada não é reordenada
	assert.Equal(t, 100*time.Millisecond, lat[0])
}

func TestMetrics_Result(t *testing.T) {
	m := NewMetrics(4)
	m.Record(10*time.Millisecond, nil)
	m.Record(20*time.Millisecond, nil)
	m.Record(30*time.Millisecond, errors.New("boom"))
	m.Record(40*time.Millisecond, nil)

	r := m.Result(2 * time.Second)
	assert.Equal(t, 4, r.TotalRequests)
	assert.Equal(t, 3, r.SuccessCount)
	assert.InDelta(t, 75.0, r.SuccessRate, 0.001)
	assert.Equal(t, 25*time.Millisecond, r.AvgLatency)
	assert.Equal(t, 20*time.Millisecond, r.P50Latency)
	assert.Equal(t, 40*time.Millisecond, r.P99Latency)
	assert.InDelta(t, 2.0, r.Throughput, 0.001)
}

func TestMetrics_Empty(t *testing.T) {
	assert.Equal(t, BenchmarkResult{}, NewMetrics(0).Result(time.Second))
}

func TestMetrics_ConcurrentRecord(t *testing.T) {
	m := NewMetrics(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Record(time.Millisecond, nil)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, m.Result(time.Second).SuccessCount)
}
