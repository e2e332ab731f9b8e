package metrics

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/pathrunner/metrics"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
