package txmonitor

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies spans and metrics emitted by the engine.
const instrumentationName = "github.com/gabapcia/alertforge/internal/txmonitor"

// instruments groups the counters recorded by the engine. Until a global
// MeterProvider is installed the otel API hands out no-op instruments.
type instruments struct {
	tracer trace.Tracer

	alertsSent       metric.Int64Counter
	fetchFailures    metric.Int64Counter
	dispatchFailures metric.Int64Counter
	paymentsApplied  metric.Int64Counter
	signaturesPruned metric.Int64Counter
}

// newInstruments builds the engine instruments from the global providers.
func newInstruments() instruments {
	return newInstrumentsFrom(otel.GetMeterProvider(), otel.GetTracerProvider())
}

// newInstrumentsFrom builds the engine instruments from explicit providers.
// Instrument creation only fails on invalid names, in which case the counter
// is replaced by a no-op.
func newInstrumentsFrom(mp metric.MeterProvider, tp trace.TracerProvider) instruments {
	meter := mp.Meter(instrumentationName)

	counter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			return noop.Int64Counter{}
		}
		return c
	}

	return instruments{
		tracer:           tp.Tracer(instrumentationName),
		alertsSent:       counter("alertforge.alerts.sent", "Wallet and payment alerts delivered"),
		fetchFailures:    counter("alertforge.fetch.failures", "Indexer fetches that failed"),
		dispatchFailures: counter("alertforge.dispatch.failures", "Notifications that could not be delivered"),
		paymentsApplied:  counter("alertforge.payments.applied", "Qualifying payments processed"),
		signaturesPruned: counter("alertforge.signatures.pruned", "Ledger entries removed by pruning"),
	}
}
