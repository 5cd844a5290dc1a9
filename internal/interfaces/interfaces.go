package interfaces

import (
	"context"

	"model-catalog/internal/model"
	"model-catalog/internal/service"
)

// CatalogService defines the contract the API layer needs from the catalog.
// Handlers depend on this interface so they can be tested against a mock.
type CatalogService interface {
	Query(ctx context.Context, q model.IncomingModelQuery) (*model.ModelResponse, error)
	QueryWithParameters(ctx context.Context, q model.IncomingModelQuery) (*model.ModelResponseWithOptionalParameters, error)
	Register(ctx context.Context, req *service.RegisterModelRequest) (*model.ModelInfo, error)
	Get(ctx context.Context, id string) (*model.ModelInfo, error)
	GetWithParameters(ctx context.Context, id string) (*model.ModelCombinedWithOptionalParameters, error)
	Delete(ctx context.Context, id string) error
	SetParameters(ctx context.Context, id string, params model.ModelOptionalParameters) error
}

var _ CatalogService = (*service.CatalogService)(nil)
