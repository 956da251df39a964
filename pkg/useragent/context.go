package useragent

import "context"

type agentContextKey struct{}

// WithAgent stores a in ctx.
func WithAgent(ctx context.Context, a *Agent) context.Context {
	return context.WithValue(ctx, agentContextKey{}, a)
}

// FromContext returns the Agent stored by WithAgent, or nil.
func FromContext(ctx context.Context) *Agent {
	a, _ := ctx.Value(agentContextKey{}).(*Agent)
	return a
}
