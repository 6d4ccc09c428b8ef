package services

import (
	"sync"
	"time"
)

// recordingMetrics counts every IncrementCounter call by name
type recordingMetrics struct {
	mu       sync.Mutex
	counters map[string]int
	timings  map[string]int
	gauges   map[string]float64
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		counters: make(map[string]int),
		timings:  make(map[string]int),
		gauges:   make(map[string]float64),
	}
}

func (m *recordingMetrics) IncrementCounter(name string, _ map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

func (m *recordingMetrics) RecordProcessingTime(name string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name]++
}

func (m *recordingMetrics) RecordGauge(name string, value float64, _ map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = value
}

func (m *recordingMetrics) counter(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

func (m *recordingMetrics) timing(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timings[name]
}
