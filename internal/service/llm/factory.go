package llm

import (
	"fmt"
	"log/slog"

	"filedrive/internal/config"
	"filedrive/internal/domain/services"
	"filedrive/internal/service/llm/providers/openai"
	"filedrive/internal/service/llm/providers/static"
)

// SetupProvider creates the completion provider named by the config.
func SetupProvider(cfg *config.Config, logger *slog.Logger) (services.CompletionProvider, error) {
	switch cfg.InsightProvider {
	case "openai":
		provider, err := openai.NewProvider(cfg.OpenAIAPIKey)
		if err != nil {
			return nil, fmt.Errorf("setup openai provider: %w", err)
		}
		logger.Info("completion provider configured", "provider", provider.Name(), "model", cfg.InsightModel)
		return provider, nil
	case "static":
		provider := static.NewProvider()
		logger.Info("completion provider configured", "provider", provider.Name())
		return provider, nil
	default:
		return nil, fmt.Errorf("unknown completion provider: %s", cfg.InsightProvider)
	}
}
