// SPDX-License-Identifier: MIT

package contextgraph

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("github.com/katalvlaran/causalctx/contextgraph")

// contextName is the attribute key carrying Context.Name on every record, so
// counts can be read per context or across all of them.
const contextName = "context"

var (
	// contextoidsAdded counts AddContextoid calls.
	contextoidsAdded metric.Int64Counter
	// contextoidsRemoved counts Contextoids actually removed; no-op removals
	// are not counted.
	contextoidsRemoved metric.Int64Counter
	// edgesAdded counts newly created edges. Weight updates are not counted.
	edgesAdded metric.Int64Counter
	// edgesRemoved counts removed edges, including those severed by
	// RemoveContextoid.
	edgesRemoved metric.Int64Counter
)

func init() {
	var err error
	contextoidsAdded, err = meter.Int64Counter(
		"contextoid.added",
		metric.WithDescription("The number of contextoids added to a context."),
	)
	if err != nil {
		panic("contextgraph: failed to init 'contextoid.added' instrument")
	}

	contextoidsRemoved, err = meter.Int64Counter(
		"contextoid.removed",
		metric.WithDescription("The number of contextoids removed from a context."),
	)
	if err != nil {
		panic("contextgraph: failed to init 'contextoid.removed' instrument")
	}

	edgesAdded, err = meter.Int64Counter(
		"edge.added",
		metric.WithDescription("The number of directed edges created in a context."),
	)
	if err != nil {
		panic("contextgraph: failed to init 'edge.added' instrument")
	}

	edgesRemoved, err = meter.Int64Counter(
		"edge.removed",
		metric.WithDescription("The number of directed edges removed from a context."),
	)
	if err != nil {
		panic("contextgraph: failed to init 'edge.removed' instrument")
	}
}

// contextAttrs builds the attribute set recorded with every measurement.
// Built once per Context; metric.WithAttributeSet avoids re-hashing per record.
func contextAttrs(name string) attribute.Set {
	return attribute.NewSet(attribute.String(contextName, name))
}

// record adds n to counter when n is positive. Context mutations are
// synchronous and take no context.Context, so measurements use Background.
func record(counter metric.Int64Counter, n int, attrs attribute.Set) {
	if n <= 0 {
		return
	}
	counter.Add(context.Background(), int64(n), metric.WithAttributeSet(attrs))
}
