// Package metrics counts traversal activity through OpenTelemetry instruments.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/pathrunner/motion"
)

// Recorder translates traversal events into metric updates
type Recorder struct {
	tableBuilds       metric.Int64Counter
	segmentsCompleted metric.Int64Counter
	playbacks         metric.Int64Counter
	segmentLength     metric.Float64Histogram
}

var _ motion.Listener = (*Recorder)(nil)

// New creates a Recorder on the global OTel meter (no-op if not configured)
func New() (*Recorder, error) {
	return NewWithMeter(meter())
}

// NewWithMeter creates a Recorder on m
func NewWithMeter(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}
	var err error

	r.tableBuilds, err = m.Int64Counter(
		"pathrunner.table.builds",
		metric.WithDescription("Arc-length tables built"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating table builds counter: %w", err)
	}

	r.segmentsCompleted, err = m.Int64Counter(
		"pathrunner.segments.completed",
		metric.WithDescription("Segments fully traversed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating segments counter: %w", err)
	}

	r.playbacks, err = m.Int64Counter(
		"pathrunner.playbacks.completed",
		metric.WithDescription("Playbacks run to the end of the path"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating playbacks counter: %w", err)
	}

	r.segmentLength, err = m.Float64Histogram(
		"pathrunner.segment.length",
		metric.WithDescription("Arc length of built segments"),
		metric.WithUnit("{unit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating segment length histogram: %w", err)
	}

	return r, nil
}

// OnTraversalEvent records one traversal event
func (r *Recorder) OnTraversalEvent(ev motion.Event) {
	ctx := context.Background()
	switch ev.Type {
	case motion.EventTableBuilt:
		seg := metric.WithAttributes(attribute.Int("segment", ev.Segment))
		r.tableBuilds.Add(ctx, 1, seg)
		r.segmentLength.Record(ctx, ev.Length, seg)
	case motion.EventSegmentAdvanced:
		r.segmentsCompleted.Add(ctx, 1, metric.WithAttributes(attribute.Int("segment", ev.Completed)))
	case motion.EventPlaybackFinished:
		r.segmentsCompleted.Add(ctx, 1, metric.WithAttributes(attribute.Int("segment", ev.Completed)))
		r.playbacks.Add(ctx, 1)
	}
}
