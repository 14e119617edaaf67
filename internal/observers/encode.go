package observers

import (
	"bytes"
	"encoding/json"

	"github.com/kazakovdmitriy/go-weather-hub/internal/model"
	"github.com/kazakovdmitriy/go-weather-hub/pkg/objpool"
)

var bufferPool = objpool.New(func() *bytes.Buffer { return new(bytes.Buffer) })

// encodeEvent пишет событие в буфер из пула; буфер нужно вернуть через bufferPool.Put
func encodeEvent(event model.MetricUpdatedEvent) (*bytes.Buffer, error) {
	buf := bufferPool.Get()
	if err := json.NewEncoder(buf).Encode(event); err != nil {
		bufferPool.Put(buf)
		return nil, err
	}
	return buf, nil
}
