package app

import (
	"context"
	"fmt"

	"github.com/kazakovdmitriy/go-weather-hub/internal/config"
	"github.com/kazakovdmitriy/go-weather-hub/internal/hub"
	"github.com/kazakovdmitriy/go-weather-hub/internal/observers"
	"github.com/kazakovdmitriy/go-weather-hub/internal/retry"
	"github.com/kazakovdmitriy/go-weather-hub/internal/scenario"
	"github.com/kazakovdmitriy/go-weather-hub/internal/source"
	"go.uber.org/zap"
)

type App struct {
	cfg       *config.HubFlags
	log       *zap.Logger
	hub       *hub.Hub
	resources *ResourceGroup
	providers []source.Provider
}

func NewApp(cfg *config.HubFlags, log *zap.Logger) *App {
	return &App{
		cfg:       cfg,
		log:       log,
		hub:       hub.New(log),
		resources: NewResourceGroup(log),
		providers: []source.Provider{source.NewGopsutilProvider()},
	}
}

// Hub возвращает хаб приложения
func (a *App) Hub() *hub.Hub {
	return a.hub
}

// Run прогоняет сценарий и, если задан интервал, опрашивает датчики хоста до отмены контекста
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.resources.CloseAll(); closeErr != nil && err == nil {
			err = fmt.Errorf("close resources: %w", closeErr)
		}
	}()

	extra, err := a.auditObservers()
	if err != nil {
		return err
	}

	sc, err := a.loadScenario()
	if err != nil {
		return err
	}

	result, err := scenario.NewRunner(a.hub, a.log, extra...).Run(ctx, sc)
	if err != nil {
		return fmt.Errorf("scenario failed: %w", err)
	}
	a.log.Info("scenario finished",
		zap.Int("changed", result.Changed),
		zap.Int("ignored", result.Ignored),
		zap.Int("duplicates", result.Duplicates),
	)

	if a.cfg.PollInterval == 0 {
		return nil
	}

	a.log.Info("sensor polling started", zap.Duration("interval", a.cfg.GetPollInterval()))
	source.NewPoller(a.cfg.GetPollInterval(), a.hub, a.log, a.providers...).Run(ctx)
	return nil
}

func (a *App) loadScenario() (*scenario.Scenario, error) {
	if a.cfg.ScenarioFile == "" {
		return scenario.Default()
	}

	a.log.Info("loading scenario", zap.String("path", a.cfg.ScenarioFile))
	return scenario.Load(a.cfg.ScenarioFile)
}

func (a *App) auditObservers() ([]observers.Observer, error) {
	extra := []observers.Observer{observers.NewMetricLogger(a.log.Named("audit"))}

	if a.cfg.AuditFile != "" {
		fileObserver, err := observers.NewFileObserver(a.cfg.AuditFile, a.log)
		if err != nil {
			return nil, fmt.Errorf("audit file observer: %w", err)
		}
		a.resources.Register(fileObserver)
		extra = append(extra, fileObserver)
	}

	if a.cfg.AuditURL != "" {
		delays, err := a.cfg.GetRetryDelaysAsDuration()
		if err != nil {
			return nil, err
		}
		httpObserver := observers.NewHTTPObserver(a.cfg.AuditURL, retry.Config{
			MaxRetries: a.cfg.MaxRetries,
			Delays:     delays,
		}, a.log)
		a.resources.Register(httpObserver)
		extra = append(extra, httpObserver)
	}

	return extra, nil
}
