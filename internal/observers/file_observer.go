package observers

import (
	"fmt"
	"os"
	"sync"

	"github.com/kazakovdmitriy/go-weather-hub/internal/model"
	"go.uber.org/zap"
)

// FileObserver пишет события изменения метрик в файл аудита (JSON lines)
type FileObserver struct {
	file     *os.File
	filePath string
	log      *zap.Logger
	mu       sync.Mutex
	last     model.LastValues
}

func NewFileObserver(filePath string, log *zap.Logger) (*FileObserver, error) {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return &FileObserver{
		file:     file,
		filePath: filePath,
		log:      log,
	}, nil
}

// Close закрывает файл при завершении работы
func (f *FileObserver) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}

	if err := f.file.Sync(); err != nil {
		f.log.Warn("Sync failed on close", zap.Error(err))
	}

	if err := f.file.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}

	f.file = nil
	f.log.Info("File observer closed", zap.String("path", f.filePath))
	return nil
}

func (f *FileObserver) OnMetricUpdated(metric model.Metric, value float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		f.log.Warn("File observer is closed, event dropped", zap.Stringer("metric", metric))
		return
	}

	buf, err := encodeEvent(model.NewMetricUpdatedEvent(metric, value, f.last.Swap(metric, value)))
	if err != nil {
		f.log.Error("Error marshaling event", zap.Error(err))
		return
	}
	defer bufferPool.Put(buf)

	if _, err := f.file.Write(buf.Bytes()); err != nil {
		f.log.Error("Error writing to file", zap.Error(err))
		return
	}

	f.log.Debug("Metric update written", zap.Stringer("metric", metric), zap.Float64("value", value))
}
