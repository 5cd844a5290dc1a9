package repository

import (
	"context"

	"model-catalog/internal/model"
)

// ModelRecord is a catalog entry as stored, including the category tag that
// model_type filters match against.
type ModelRecord struct {
	Info      model.ModelInfo
	ModelType string
}

// CatalogRepository defines the storage operations behind the catalog.
type CatalogRepository interface {
	CreateModel(ctx context.Context, rec *ModelRecord, params *model.ModelOptionalParameters) error
	GetModel(ctx context.Context, id string) (*ModelRecord, error)
	DeleteModel(ctx context.Context, id string) error

	// QueryModels returns matching entries in registration order.
	QueryModels(ctx context.Context, q model.IncomingModelQuery) ([]model.ModelInfo, error)

	GetParameters(ctx context.Context, modelID string) (*model.ModelOptionalParameters, error)
	GetParametersForModels(ctx context.Context, modelIDs []string) (map[string]model.ModelOptionalParameters, error)
	SetParameters(ctx context.Context, modelID string, params model.ModelOptionalParameters) error
}
