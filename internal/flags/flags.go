package flags

import (
	"context"
	"log/slog"
	"sync"
)

// Flag keys consulted by the journey layer.
const (
	FeeRemission  = "dlrm-fee-remission"
	SetAside      = "dlrm-setaside"
	Ftpa          = "ftpa"
	HearingBundle = "hearing-bundle"
)

// Provider answers feature-flag lookups. The journey resolvers consult it
// synchronously; when a flag is off the pre-flag behavior applies unchanged.
type Provider interface {
	GetVariation(ctx context.Context, key string, defaultValue bool) (bool, error)
}

// StaticProvider serves variations from a fixed map, seeded from config at
// startup. Unknown keys fall back to the caller's default.
type StaticProvider struct {
	mu         sync.RWMutex
	variations map[string]bool
}

func NewStaticProvider(variations map[string]bool) *StaticProvider {
	copied := make(map[string]bool, len(variations))
	for key, value := range variations {
		copied[key] = value
	}
	return &StaticProvider{variations: copied}
}

func (p *StaticProvider) GetVariation(ctx context.Context, key string, defaultValue bool) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if value, ok := p.variations[key]; ok {
		return value, nil
	}
	slog.DebugContext(ctx, "feature flag not configured, using default", "flag", key, "default", defaultValue)
	return defaultValue, nil
}

// Set overrides a variation after construction. Tests use it to flip flags
// between cases without rebuilding the provider.
func (p *StaticProvider) Set(key string, value bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.variations[key] = value
}
