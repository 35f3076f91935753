package chart

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key "earley.chart".
func tracer() tracing.Trace {
	return tracing.Select("earley.chart")
}
