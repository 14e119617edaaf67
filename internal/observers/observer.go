package observers

import (
	"github.com/kazakovdmitriy/go-weather-hub/internal/model"
)

// Observer - интерфейс подписчика на изменения метрик.
// Хаб сравнивает подписчиков по значению интерфейса, поэтому реализации
// должны быть указателями: два наблюдателя с одинаковым состоянием остаются разными подписчиками.
type Observer interface {
	OnMetricUpdated(metric model.Metric, value float64)
}
