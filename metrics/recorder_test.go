package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lixenwraith/pathrunner/motion"
)

type spyCounter struct {
	noop.Int64Counter
	total int64
}

func (c *spyCounter) Add(_ context.Context, v int64, _ ...metric.AddOption) { c.total += v }

type spyHistogram struct {
	noop.Float64Histogram
	values []float64
}

func (h *spyHistogram) Record(_ context.Context, v float64, _ ...metric.RecordOption) {
	h.values = append(h.values, v)
}

// spyMeter hands out recording instruments; everything else is no-op
type spyMeter struct {
	noop.Meter
	counters  map[string]*spyCounter
	histogram *spyHistogram
	failOn    string
}

func newSpyMeter() *spyMeter {
	return &spyMeter{counters: make(map[string]*spyCounter)}
}

func (m *spyMeter) Int64Counter(name string, _ ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	if name == m.failOn {
		return nil, errors.New("boom")
	}
	c := &spyCounter{}
	m.counters[name] = c
	return c, nil
}

func (m *spyMeter) Float64Histogram(name string, _ ...metric.Float64HistogramOption) (metric.Float64Histogram, error) {
	if name == m.failOn {
		return nil, errors.New("boom")
	}
	m.histogram = &spyHistogram{}
	return m.histogram, nil
}

func TestNew_GlobalMeter(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	// global meter is a no-op without a provider; recording must still be safe
	r.OnTraversalEvent(motion.Event{Type: motion.EventTableBuilt, Length: 3})
}

func TestRecorder_CountsEvents(t *testing.T) {
	m := newSpyMeter()
	r, err := NewWithMeter(m)
	require.NoError(t, err)

	r.OnTraversalEvent(motion.Event{Type: motion.EventTableBuilt, Segment: 0, Length: 10})
	r.OnTraversalEvent(motion.Event{Type: motion.EventSegmentAdvanced, Segment: 1, Completed: 0, Length: 10})
	r.OnTraversalEvent(motion.Event{Type: motion.EventTableBuilt, Segment: 1, Length: 4.5})
	r.OnTraversalEvent(motion.Event{Type: motion.EventPlaybackFinished, Segment: 0, Completed: 1, Length: 4.5})

	assert.Equal(t, int64(2), m.counters["pathrunner.table.builds"].total)
	assert.Equal(t, int64(2), m.counters["pathrunner.segments.completed"].total)
	assert.Equal(t, int64(1), m.counters["pathrunner.playbacks.completed"].total)
	assert.Equal(t, []float64{10, 4.5}, m.histogram.values)
}

func TestNewWithMeter_InstrumentError(t *testing.T) {
	for _, name := range []string{
		"pathrunner.table.builds",
		"pathrunner.segments.completed",
		"pathrunner.playbacks.completed",
		"pathrunner.segment.length",
	} {
		m := newSpyMeter()
		m.failOn = name

		_, err := NewWithMeter(m)
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "creating")
	}
}

func TestNewWithMeter_NoopProvider(t *testing.T) {
	r, err := NewWithMeter(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	r.OnTraversalEvent(motion.Event{Type: motion.EventPlaybackFinished})
}
