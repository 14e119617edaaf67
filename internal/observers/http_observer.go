package observers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/kazakovdmitriy/go-weather-hub/internal/model"
	"github.com/kazakovdmitriy/go-weather-hub/internal/retry"
	"go.uber.org/zap"
)

var errServerStatus = errors.New("audit server error")

// HTTPObserver отправляет события изменения метрик на внешний сервер аудита.
// Отправка асинхронная, чтобы медленный сервер не задерживал рассылку хаба.
type HTTPObserver struct {
	url      string
	log      *zap.Logger
	client   *http.Client
	retryCfg retry.Config

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	closed bool
	last   model.LastValues
	wg     sync.WaitGroup
}

func NewHTTPObserver(url string, retryCfg retry.Config, log *zap.Logger) *HTTPObserver {
	ctx, cancel := context.WithCancel(context.Background())
	retryCfg.IsRetryableFn = isRetryableSendError

	return &HTTPObserver{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		retryCfg: retryCfg,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (h *HTTPObserver) OnMetricUpdated(metric model.Metric, value float64) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		h.log.Warn("HTTP observer is closed, event dropped", zap.Stringer("metric", metric))
		return
	}
	event := model.NewMetricUpdatedEvent(metric, value, h.last.Swap(metric, value))
	h.wg.Add(1)
	h.mu.Unlock()

	go func() {
		defer h.wg.Done()
		h.sendEvent(event)
	}()
}

// Flush ждет завершения всех начатых отправок.
// Новые события на время ожидания блокируются на мьютексе, чтобы Add не пересекался с Wait.
func (h *HTTPObserver) Flush() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.wg.Wait()
}

// Close перестает принимать события и ждет завершения начатых отправок
func (h *HTTPObserver) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	h.wg.Wait()
	h.cancel()
	return nil
}

func (h *HTTPObserver) sendEvent(event model.MetricUpdatedEvent) {
	buf, err := encodeEvent(event)
	if err != nil {
		h.log.Error("Failed to marshal event", zap.Error(err))
		return
	}
	defer bufferPool.Put(buf)

	body := buf.Bytes()
	err = retry.Do(h.ctx, h.retryCfg, func(ctx context.Context) error {
		return h.post(ctx, body)
	})
	if err != nil {
		h.log.Warn("Failed to send event", zap.Stringer("metric", event.Metric), zap.Error(err))
	}
}

func (h *HTTPObserver) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(resp.Body)
		h.log.Warn("Audit server rejected event", zap.Int("status", resp.StatusCode), zap.ByteString("body", respBody))
		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: status %d", errServerStatus, resp.StatusCode)
		}
		return fmt.Errorf("audit request rejected: status %d", resp.StatusCode)
	}

	h.log.Debug("Successfully sent event", zap.Int("status", resp.StatusCode))
	return nil
}

func isRetryableSendError(err error) bool {
	if errors.Is(err, errServerStatus) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
