package scenario

import (
	"context"
	"fmt"

	"github.com/kazakovdmitriy/go-weather-hub/internal/hub"
	"github.com/kazakovdmitriy/go-weather-hub/internal/model"
	"github.com/kazakovdmitriy/go-weather-hub/internal/observers"
	"go.uber.org/zap"
)

// ObserverFactory создает наблюдателя для участника сценария
type ObserverFactory func(name string) observers.Observer

// Result - итог прогона сценария
type Result struct {
	Changed    int
	Ignored    int
	Duplicates int
	Observers  map[string]observers.Observer
}

type Runner struct {
	hub     *hub.Hub
	log     *zap.Logger
	factory ObserverFactory
	extra   []observers.Observer
}

// NewRunner создает исполнителя сценариев. Дополнительные наблюдатели
// подписываются на все метрики до первого шага.
func NewRunner(h *hub.Hub, log *zap.Logger, extra ...observers.Observer) *Runner {
	return &Runner{
		hub: h,
		log: log,
		factory: func(name string) observers.Observer {
			return observers.NewParticipant(name, log)
		},
		extra: extra,
	}
}

// WithFactory заменяет способ создания участников
func (r *Runner) WithFactory(factory ObserverFactory) *Runner {
	r.factory = factory
	return r
}

func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	for _, o := range r.extra {
		for _, m := range model.AllMetrics() {
			if _, err := r.hub.Register(m, o); err != nil {
				return nil, fmt.Errorf("register extra observer: %w", err)
			}
		}
	}

	result := &Result{Observers: make(map[string]observers.Observer, len(sc.Participants))}
	for _, name := range sc.Participants {
		result.Observers[name] = r.factory(name)
	}

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := r.apply(step, result); err != nil {
			return result, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
	}

	return result, nil
}

func (r *Runner) apply(step Step, result *Result) error {
	switch step.Action {
	case ActionRegister:
		added, err := r.hub.Register(*step.Metric, result.Observers[step.Participant])
		if err != nil {
			return err
		}
		if !added {
			result.Duplicates++
		}
	case ActionUnregister:
		if _, err := r.hub.Unregister(*step.Metric, result.Observers[step.Participant]); err != nil {
			return err
		}
	case ActionUpdate:
		changed, err := r.hub.Update(*step.Metric, step.Value)
		if err != nil {
			return err
		}
		if changed {
			result.Changed++
		} else {
			result.Ignored++
		}
	case ActionPrint:
		r.log.Info(step.Message)
	}
	return nil
}
