package source

import (
	"context"

	"github.com/kazakovdmitriy/go-weather-hub/internal/model"
)

// Provider - поставщик показаний для хаба
type Provider interface {
	Collect(ctx context.Context) ([]model.Reading, error)
}

// Updater - приемник показаний, которым выступает хаб
type Updater interface {
	Update(metric model.Metric, value float64) (bool, error)
}
