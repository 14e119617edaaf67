// Package scenario описывает и загружает демонстрационные сценарии работы хаба.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/kazakovdmitriy/go-weather-hub/internal/model"
	"gopkg.in/yaml.v3"
)

type Action string

const (
	ActionRegister   Action = "register"
	ActionUnregister Action = "unregister"
	ActionUpdate     Action = "update"
	ActionPrint      Action = "print"
)

var ErrInvalidScenario = errors.New("invalid scenario")

//go:embed default.yaml
var defaultScenario []byte

type Step struct {
	Action      Action       `yaml:"action"`
	Participant string       `yaml:"participant,omitempty"`
	Metric      *model.Metric `yaml:"metric,omitempty"`
	Value       float64      `yaml:"value,omitempty"`
	Message     string       `yaml:"message,omitempty"`
}

type Scenario struct {
	Participants []string `yaml:"participants"`
	Steps        []Step   `yaml:"steps"`
}

// Default возвращает встроенный сценарий с Julie и Michael
func Default() (*Scenario, error) {
	return Parse(defaultScenario)
}

// Load читает сценарий из YAML файла
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse разбирает и проверяет сценарий
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate проверяет, что шаги ссылаются на объявленных участников
func (s *Scenario) Validate() error {
	known := make(map[string]struct{}, len(s.Participants))
	for _, name := range s.Participants {
		if name == "" {
			return fmt.Errorf("%w: empty participant name", ErrInvalidScenario)
		}
		if _, dup := known[name]; dup {
			return fmt.Errorf("%w: duplicate participant %q", ErrInvalidScenario, name)
		}
		known[name] = struct{}{}
	}

	for i, step := range s.Steps {
		switch step.Action {
		case ActionRegister, ActionUnregister:
			if _, ok := known[step.Participant]; !ok {
				return fmt.Errorf("%w: step %d: unknown participant %q", ErrInvalidScenario, i+1, step.Participant)
			}
			if step.Metric == nil {
				return fmt.Errorf("%w: step %d: metric is required", ErrInvalidScenario, i+1)
			}
		case ActionUpdate:
			if step.Metric == nil {
				return fmt.Errorf("%w: step %d: metric is required", ErrInvalidScenario, i+1)
			}
		case ActionPrint:
		default:
			return fmt.Errorf("%w: step %d: unknown action %q", ErrInvalidScenario, i+1, step.Action)
		}
	}
	return nil
}
