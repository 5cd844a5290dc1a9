package service

import (
	"context"

	"model-catalog/internal/model"
)

// Cache variants. Each response envelope is cached under its own namespace.
const (
	variantModels               = "models"
	variantModelsWithParameters = "models_with_parameters"
)

// ResponseCache caches serialized query responses. Lookup returns the key a
// subsequent Store must use; Invalidate drops every cached response.
type ResponseCache interface {
	Lookup(ctx context.Context, variant string, q model.IncomingModelQuery, dst interface{}) (string, bool, error)
	Store(ctx context.Context, key string, v interface{}) error
	Invalidate(ctx context.Context) error
}

// NoopCache is used when no cache backend is configured.
type NoopCache struct{}

func (NoopCache) Lookup(context.Context, string, model.IncomingModelQuery, interface{}) (string, bool, error) {
	return "", false, nil
}

func (NoopCache) Store(context.Context, string, interface{}) error { return nil }

func (NoopCache) Invalidate(context.Context) error { return nil }
