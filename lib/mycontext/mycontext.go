package mycontext

import (
	"context"
	"fmt"
)

// CtxTraceContext is a context key for the trace context (used by mylog)
type CtxTraceContext struct{}

// NewBootContext returns a context that carries the trace of a single kernel boot.
func NewBootContext(c context.Context, projectID string, traceID string) context.Context {
	trace := traceID
	if projectID != "" {
		trace = fmt.Sprintf("projects/%s/traces/%s", projectID, traceID)
	}
	return WithTrace(c, trace)
}

func WithTrace(c context.Context, trace string) context.Context {
	return context.WithValue(c, CtxTraceContext{}, trace)
}

// Trace returns the trace stored in the context or "" when there is none.
func Trace(c context.Context) string {
	if c == nil {
		return ""
	}
	trace, _ := c.Value(CtxTraceContext{}).(string)
	return trace
}
