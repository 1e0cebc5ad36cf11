package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and logging middleware. When cfg.Secondary is set the result fails over
// to that tier before giving up.
func NewProvider(ctx context.Context, cfg Config, logger *zap.Logger) (Provider, error) {
	primary, err := newBaseProvider(ctx, cfg, cfg.Provider)
	if err != nil {
		return nil, err
	}

	var secondary Provider
	if cfg.Secondary != "" {
		secondary, err = newBaseProvider(ctx, cfg, cfg.Secondary)
		if err != nil {
			return nil, err
		}
		secondary = WithLogging(secondary, logger)
	}

	// Middleware order: caller → failover → retry → logging → base.
	wrapped := WithRetry(WithLogging(primary, logger), cfg.Retry)
	return WithFailover(wrapped, secondary), nil
}

// NewProviderFromEnv builds a Provider from SMARTLEARN_* env vars, or by
// probing standard API key vars when none are set.
func NewProviderFromEnv(ctx context.Context, logger *zap.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, logger)
}

func newBaseProvider(ctx context.Context, cfg Config, name string) (Provider, error) {
	var base Provider
	var err error

	switch name {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", name, err)
	}
	return base, nil
}
