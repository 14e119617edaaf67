// Package hub хранит текущие показания метрик и рассылает изменения подписчикам.
package hub

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sync"

	"github.com/kazakovdmitriy/go-weather-hub/internal/model"
	"github.com/kazakovdmitriy/go-weather-hub/internal/observers"
	"go.uber.org/zap"
)

// Epsilon - минимальная разница между показаниями, которая считается изменением
const Epsilon = 0.001

var (
	ErrNilObserver           = errors.New("observer is nil")
	ErrObserverNotComparable = errors.New("observer type is not comparable")
)

type subscriberSet map[observers.Observer]struct{}

// Hub - реестр показаний и подписок.
//
// Рассылка синхронная: Update возвращается только после того, как все
// подписчики обработали уведомление, поэтому медленный подписчик задерживает вызов.
// Уведомление получают те, кто был подписан на момент начала Update;
// подписки и отписки из обработчика вступают в силу со следующего изменения.
type Hub struct {
	mu          sync.Mutex
	readings    [model.MetricCount]float64
	subscribers [model.MetricCount]subscriberSet
	log         *zap.Logger
}

// New создает хаб с нулевыми показаниями и пустыми подписками для всех метрик
func New(log *zap.Logger) *Hub {
	h := &Hub{log: log}
	for m := range h.subscribers {
		h.subscribers[m] = make(subscriberSet)
	}
	return h
}

// Register подписывает наблюдателя на метрику.
// Возвращает false без ошибки, если подписка уже существует.
func (h *Hub) Register(metric model.Metric, observer observers.Observer) (bool, error) {
	if err := validate(metric, observer); err != nil {
		return false, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.subscribers[metric]
	if _, exists := set[observer]; exists {
		h.log.Info("Registration already exists", zap.Stringer("metric", metric))
		return false, nil
	}

	set[observer] = struct{}{}
	h.log.Info("Successfully registered for updates", zap.Stringer("metric", metric))
	return true, nil
}

// Unregister отписывает наблюдателя; если подписки не было, ничего не делает
func (h *Hub) Unregister(metric model.Metric, observer observers.Observer) (bool, error) {
	if err := validate(metric, observer); err != nil {
		return false, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.subscribers[metric]
	if _, exists := set[observer]; !exists {
		return false, nil
	}

	delete(set, observer)
	h.log.Info("Registration removed", zap.Stringer("metric", metric))
	return true, nil
}

// Update сохраняет новое показание и уведомляет подписчиков.
// Если значение отличается от текущего меньше чем на Epsilon, ничего не происходит и возвращается false.
func (h *Hub) Update(metric model.Metric, value float64) (bool, error) {
	if !metric.Valid() {
		return false, fmt.Errorf("%w: %d", model.ErrUnknownMetric, int(metric))
	}

	h.mu.Lock()
	if math.Abs(h.readings[metric]-value) < Epsilon {
		h.mu.Unlock()
		return false, nil
	}

	h.readings[metric] = value
	recipients := make([]observers.Observer, 0, len(h.subscribers[metric]))
	for o := range h.subscribers[metric] {
		recipients = append(recipients, o)
	}
	h.mu.Unlock()

	h.log.Debug("Broadcasting update",
		zap.Stringer("metric", metric),
		zap.Float64("value", value),
		zap.Int("subscribers", len(recipients)),
	)

	for _, o := range recipients {
		o.OnMetricUpdated(metric, value)
	}

	return true, nil
}

// Reading возвращает текущее показание метрики
func (h *Hub) Reading(metric model.Metric) (float64, error) {
	if !metric.Valid() {
		return 0, fmt.Errorf("%w: %d", model.ErrUnknownMetric, int(metric))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.readings[metric], nil
}

// Subscribers возвращает количество подписчиков метрики
func (h *Hub) Subscribers(metric model.Metric) (int, error) {
	if !metric.Valid() {
		return 0, fmt.Errorf("%w: %d", model.ErrUnknownMetric, int(metric))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[metric]), nil
}

// IsSubscribed проверяет наличие подписки
func (h *Hub) IsSubscribed(metric model.Metric, observer observers.Observer) bool {
	if validate(metric, observer) != nil {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, exists := h.subscribers[metric][observer]
	return exists
}

func validate(metric model.Metric, observer observers.Observer) error {
	if !metric.Valid() {
		return fmt.Errorf("%w: %d", model.ErrUnknownMetric, int(metric))
	}
	if observer == nil {
		return ErrNilObserver
	}
	if !reflect.TypeOf(observer).Comparable() {
		return fmt.Errorf("%w: %T", ErrObserverNotComparable, observer)
	}
	return nil
}
