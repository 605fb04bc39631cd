package ai

import (
	"fmt"

	"github.com/DachengChen/paiBI/config"
)

// NewProvider creates an assistant backend from the application config.
func NewProvider(cfg *config.AppConfig) (Provider, error) {
	switch cfg.Assistant.Backend {
	case "simulated", "":
		syn := NewSynthesizer(WithIllustrative(DefaultIllustrative().WithRates(cfg.Forex)))
		return NewSimulated(
			WithSynthesizer(syn),
			WithLatency(cfg.Simulation.QueryLatency(), cfg.Simulation.TableLatency()),
		), nil

	default:
		return nil, fmt.Errorf("unknown assistant backend %q. Supported: %v", cfg.Assistant.Backend, config.SupportedBackends)
	}
}
