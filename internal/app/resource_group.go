package app

import (
	"errors"
	"io"

	"go.uber.org/zap"
)

// ResourceGroup закрывает ресурсы в порядке, обратном регистрации
type ResourceGroup struct {
	closers []io.Closer
	log     *zap.Logger
}

func NewResourceGroup(log *zap.Logger) *ResourceGroup {
	return &ResourceGroup{
		closers: []io.Closer{},
		log:     log,
	}
}

func (rg *ResourceGroup) Register(c io.Closer) {
	rg.closers = append(rg.closers, c)
}

// CloseAll закрывает все ресурсы, даже если часть из них вернула ошибку
func (rg *ResourceGroup) CloseAll() error {
	var errs []error
	for i := len(rg.closers) - 1; i >= 0; i-- {
		if err := rg.closers[i].Close(); err != nil {
			rg.log.Error("Resource close failed",
				zap.Int("resource_index", i),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	rg.closers = rg.closers[:0]

	return errors.Join(errs...)
}
