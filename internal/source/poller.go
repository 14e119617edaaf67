package source

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Poller периодически опрашивает поставщиков и передает показания в хаб
type Poller struct {
	interval  time.Duration
	updater   Updater
	providers []Provider
	logger    *zap.Logger
}

// NewPoller создает опросчик
func NewPoller(interval time.Duration, updater Updater, logger *zap.Logger, providers ...Provider) *Poller {
	return &Poller{
		interval:  interval,
		updater:   updater,
		providers: providers,
		logger:    logger,
	}
}

// Run опрашивает поставщиков до отмены контекста
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.Poll(ctx)
		case <-ctx.Done():
			p.logger.Info("sensor polling stopped")
			return
		}
	}
}

// Poll выполняет один опрос всех поставщиков
func (p *Poller) Poll(ctx context.Context) {
	for i, provider := range p.providers {
		readings, err := provider.Collect(ctx)
		if err != nil {
			p.logger.Warn("failed to collect readings from provider",
				zap.Int("provider_index", i),
				zap.Error(err))
			continue
		}

		for _, r := range readings {
			if _, err := p.updater.Update(r.Metric, r.Value); err != nil {
				p.logger.Error("failed to update reading",
					zap.Stringer("metric", r.Metric),
					zap.Error(err))
			}
		}
	}
}
