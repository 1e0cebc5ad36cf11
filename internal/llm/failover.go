package llm

import "context"

// FailoverProvider tries a primary provider and falls back to a secondary
// when the primary fails. The original deployment ran OpenAI first with a
// cheaper hosted model behind it; here any two Providers can be stacked.
type FailoverProvider struct {
	primary   Provider
	secondary Provider
}

// WithFailover wraps primary so that errors fall through to secondary.
// If secondary is nil the primary is returned unwrapped.
func WithFailover(primary, secondary Provider) Provider {
	if secondary == nil {
		return primary
	}
	return &FailoverProvider{primary: primary, secondary: secondary}
}

func (f *FailoverProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := f.primary.Generate(ctx, req)
	if err == nil {
		return resp, nil
	}

	// Context errors mean the caller gave up, not that the tier failed.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return f.secondary.Generate(ctx, req)
}

// ModelID reports the primary model; the secondary only serves spillover.
func (f *FailoverProvider) ModelID() string {
	return f.primary.ModelID()
}
