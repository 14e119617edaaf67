package model

import "time"

// MetricUpdatedEvent - событие изменения показания, пишется в аудит
type MetricUpdatedEvent struct {
	Timestamp time.Time `json:"-"`  // Внутреннее представление времени
	Ts        int64     `json:"ts"` // Unix timestamp в миллисекундах
	Metric    Metric    `json:"metric"`
	Value     float64   `json:"value"`
	Previous  float64   `json:"previous"` // Предыдущее значение, 0 для первого уведомления
}

// NewMetricUpdatedEvent создает событие с текущим временем
func NewMetricUpdatedEvent(metric Metric, value, previous float64) MetricUpdatedEvent {
	now := time.Now()
	return MetricUpdatedEvent{
		Timestamp: now,
		Ts:        now.UnixMilli(),
		Metric:    metric,
		Value:     value,
		Previous:  previous,
	}
}

// LastValues запоминает последнее значение каждой метрики,
// из него наблюдатели аудита берут поле Previous
type LastValues [MetricCount]float64

// Swap сохраняет новое значение и возвращает предыдущее
func (l *LastValues) Swap(metric Metric, value float64) float64 {
	if !metric.Valid() {
		return 0
	}
	previous := l[metric]
	l[metric] = value
	return previous
}
