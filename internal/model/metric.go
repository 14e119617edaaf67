package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMetric - метрика не входит в фиксированный набор
var ErrUnknownMetric = errors.New("unknown metric")

// Metric - идентификатор наблюдаемой величины
type Metric int

const (
	Temperature Metric = iota
	Humidity
	Pressure

	// MetricCount - количество известных метрик, используется для размеров массивов
	MetricCount
)

var metricNames = [MetricCount]string{
	Temperature: "Temperature",
	Humidity:    "Humidity",
	Pressure:    "Pressure",
}

// AllMetrics возвращает все метрики в порядке объявления
func AllMetrics() []Metric {
	metrics := make([]Metric, 0, MetricCount)
	for m := Metric(0); m < MetricCount; m++ {
		metrics = append(metrics, m)
	}
	return metrics
}

// Valid проверяет, что метрика входит в набор
func (m Metric) Valid() bool {
	return m >= 0 && m < MetricCount
}

func (m Metric) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

// ParseMetric разбирает имя метрики без учета регистра
func ParseMetric(name string) (Metric, error) {
	name = strings.TrimSpace(name)
	for m, n := range metricNames {
		if strings.EqualFold(n, name) {
			return Metric(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}

// MarshalText позволяет использовать метрику в JSON и YAML по имени
func (m Metric) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMetric, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Metric) UnmarshalText(text []byte) error {
	parsed, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Reading - значение одной метрики
type Reading struct {
	Metric Metric  `json:"metric"`
	Value  float64 `json:"value"`
}
