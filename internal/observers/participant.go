package observers

import (
	"sync"

	"github.com/kazakovdmitriy/go-weather-hub/internal/model"
	"go.uber.org/zap"
)

// Participant - именованный наблюдатель, запоминает последнее полученное значение
type Participant struct {
	name string
	log  *zap.Logger

	mu       sync.Mutex
	last     [model.MetricCount]float64
	received [model.MetricCount]int
}

func NewParticipant(name string, log *zap.Logger) *Participant {
	return &Participant{
		name: name,
		log:  log,
	}
}

func (p *Participant) Name() string {
	return p.name
}

func (p *Participant) OnMetricUpdated(metric model.Metric, value float64) {
	if !metric.Valid() {
		p.log.Warn("Unknown metric received", zap.String("participant", p.name), zap.Int("metric", int(metric)))
		return
	}

	p.mu.Lock()
	p.last[metric] = value
	p.received[metric]++
	p.mu.Unlock()

	p.log.Info(p.name+" received update",
		zap.String("participant", p.name),
		zap.Stringer("metric", metric),
		zap.Float64("value", value),
	)
}

// LastValue возвращает последнее значение и признак того, что уведомление было
func (p *Participant) LastValue(metric model.Metric) (float64, bool) {
	if !metric.Valid() {
		return 0, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last[metric], p.received[metric] > 0
}

// Received возвращает количество уведомлений по метрике
func (p *Participant) Received(metric model.Metric) int {
	if !metric.Valid() {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.received[metric]
}
