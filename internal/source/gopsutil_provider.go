package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/kazakovdmitriy/go-weather-hub/internal/model"
	"github.com/shirou/gopsutil/v3/host"
)

// ErrNoSensors - на хосте нет датчиков температуры
var ErrNoSensors = errors.New("no temperature sensors available")

// SensorsFunc читает датчики температуры хоста
type SensorsFunc func(ctx context.Context) ([]host.TemperatureStat, error)

// GopsutilProvider отдает среднюю температуру датчиков хоста через gopsutil
type GopsutilProvider struct {
	sensors SensorsFunc
}

// NewGopsutilProvider создает поставщика температуры хоста
func NewGopsutilProvider() *GopsutilProvider {
	return &GopsutilProvider{sensors: host.SensorsTemperaturesWithContext}
}

// Collect собирает показания датчиков
func (p *GopsutilProvider) Collect(ctx context.Context) ([]model.Reading, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	stats, err := p.sensors(ctx)
	// gopsutil возвращает частичный результат вместе с предупреждениями
	if err != nil && len(stats) == 0 {
		return nil, fmt.Errorf("read temperature sensors: %w", err)
	}

	var sum float64
	var count int
	for _, s := range stats {
		if s.Temperature <= 0 {
			continue
		}
		sum += s.Temperature
		count++
	}

	if count == 0 {
		return nil, ErrNoSensors
	}

	return []model.Reading{{Metric: model.Temperature, Value: sum / float64(count)}}, nil
}
