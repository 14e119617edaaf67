package observers

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kazakovdmitriy/go-weather-hub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func readEvents(t *testing.T, path string) []model.MetricUpdatedEvent {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var events []model.MetricUpdatedEvent
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var event model.MetricUpdatedEvent
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &event))
		events = append(events, event)
	}
	require.NoError(t, scanner.Err())
	return events
}

func TestFileObserver_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	f, err := NewFileObserver(path, zaptest.NewLogger(t))
	require.NoError(t, err)

	f.OnMetricUpdated(model.Temperature, 25.5)
	f.OnMetricUpdated(model.Pressure, 1013.2)
	f.OnMetricUpdated(model.Temperature, 26.0)
	require.NoError(t, f.Close())

	events := readEvents(t, path)
	require.Len(t, events, 3)
	assert.Equal(t, model.Temperature, events[0].Metric)
	assert.Equal(t, 25.5, events[0].Value)
	assert.Zero(t, events[0].Previous)
	assert.Equal(t, model.Pressure, events[1].Metric)
	assert.Zero(t, events[1].Previous)
	assert.NotZero(t, events[1].Ts)
	assert.Equal(t, 26.0, events[2].Value)
	assert.Equal(t, 25.5, events[2].Previous)
}

func TestFileObserver_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")

	for _, value := range []float64{1, 2} {
		f, err := NewFileObserver(path, zaptest.NewLogger(t))
		require.NoError(t, err)
		f.OnMetricUpdated(model.Humidity, value)
		require.NoError(t, f.Close())
	}

	assert.Len(t, readEvents(t, path), 2)
}

func TestFileObserver_DropsAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	f, err := NewFileObserver(path, zaptest.NewLogger(t))
	require.NoError(t, err)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
	f.OnMetricUpdated(model.Humidity, 65)

	assert.Empty(t, readEvents(t, path))
}

func TestNewFileObserver_BadPath(t *testing.T) {
	_, err := NewFileObserver(filepath.Join(t.TempDir(), "missing", "audit.log"), zaptest.NewLogger(t))
	assert.Error(t, err)
}
