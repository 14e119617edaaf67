package observers

import (
	"github.com/kazakovdmitriy/go-weather-hub/internal/model"
	"go.uber.org/zap"
)

type MetricLogger struct {
	logger *zap.Logger
}

func NewMetricLogger(logger *zap.Logger) *MetricLogger {
	return &MetricLogger{
		logger: logger,
	}
}

func (m *MetricLogger) OnMetricUpdated(metric model.Metric, value float64) {
	m.logger.Info("Metric updated", zap.Stringer("metric", metric), zap.Float64("value", value))
}
