package util

const metricsBufferSize = 64

// MetricsGetter allows access to tracked performance metrics.
type MetricsGetter interface {
	Avg() uint64
	GetLast() uint64
}

// MetricsHandler takes care of storing and updating tracked performance
// metrics and computes a rolling average to give basic insight into program
// performance, e.g. the time a frame takes to render.
type MetricsHandler struct {
	values [metricsBufferSize]uint64
	index  int
	count  int
}

// GetLast returns the most recently added value.
func (h *MetricsHandler) GetLast() uint64 {
	return h.values[h.index]
}

// Add inserts a new value into the ring buffer.
func (h *MetricsHandler) Add(value uint64) {
	h.index = (h.index + 1) % metricsBufferSize
	h.values[h.index] = value
	if h.count < metricsBufferSize {
		h.count++
	}
}

// Avg returns the average over the values currently in the ring buffer, or 0
// if none were added yet.
func (h *MetricsHandler) Avg() uint64 {
	if h.count == 0 {
		return 0
	}
	sum := uint64(0)
	for _, v := range h.values {
		sum += v
	}
	return sum / uint64(h.count)
}
