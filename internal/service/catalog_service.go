package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	app_errors "model-catalog/internal/errors"
	"model-catalog/internal/llm"
	"model-catalog/internal/model"
	"model-catalog/internal/repository"
	"model-catalog/internal/validation"
)

// RegisterModelRequest is the payload for adding a model to the catalog. The
// catalog assigns object_type and created_at itself.
type RegisterModelRequest struct {
	ID                      string                         `json:"id" validate:"required,max=256" example:"Deepseek R1"`
	OwnedBy                 string                         `json:"owned_by" validate:"required" example:"deepseek"`
	ModelType               string                         `json:"model_type" validate:"max=64" example:"free"`
	LocalPath               string                         `json:"local_path"`
	BaseURL                 string                         `json:"base_url" validate:"omitempty,url" example:"https://openrouter.ai/api/v1"`
	ModelPath               string                         `json:"model_path" example:"deepseek/deepseek-r1:free"`
	AvailableRoles          []string                       `json:"available_roles" validate:"dive,required" example:"ai,user,system"`
	MaxInputTokenWindowSize int                            `json:"max_input_token_window_size" validate:"gte=0" example:"128000"`
	MaxOutputTokenSize      int                            `json:"max_output_token_size" validate:"gte=0" example:"8000"`
	OptionalParameters      *model.ModelOptionalParameters `json:"optional_parameters,omitempty"`
}

// CatalogService answers catalog queries and manages catalog entries.
type CatalogService struct {
	repo   repository.CatalogRepository
	params *ParameterResolver
	cache  ResponseCache
	now    func() time.Time
}

// NewCatalogService wires the service. provider and cache may be nil.
func NewCatalogService(repo repository.CatalogRepository, provider llm.LLMProvider, cache ResponseCache) *CatalogService {
	if cache == nil {
		cache = NoopCache{}
	}
	return &CatalogService{
		repo:   repo,
		params: NewParameterResolver(repo, provider),
		cache:  cache,
		now:    time.Now,
	}
}

// Query returns the entries matching q with fresh execution metrics.
func (s *CatalogService) Query(ctx context.Context, q model.IncomingModelQuery) (*model.ModelResponse, error) {
	start := time.Now()

	var cached model.ModelResponse
	key, hit, err := s.cache.Lookup(ctx, variantModels, q, &cached)
	if err != nil {
		slog.Warn("Response cache lookup failed", "error", err)
	}

	models := cached.Models
	if !hit {
		models, err = s.repo.QueryModels(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("could not query catalog: %w", err)
		}
	}

	metrics, err := model.NewQueryMetrics(elapsedMs(start), len(models))
	if err != nil {
		return nil, err
	}
	resp, err := model.NewModelResponse(metrics, models)
	if err != nil {
		return nil, fmt.Errorf("%w: catalog returned an invalid entry: %v", app_errors.ErrInternal, err)
	}

	if !hit {
		if err := s.cache.Store(ctx, key, resp); err != nil {
			slog.Warn("Response cache store failed", "error", err)
		}
	}
	slog.Debug("Catalog query served", "total_records", metrics.TotalRecords, "query_time_ms", metrics.QueryTimeMs, "cache_hit", hit)
	return &resp, nil
}

// QueryWithParameters is Query plus the resolved sampling parameters of each entry.
func (s *CatalogService) QueryWithParameters(ctx context.Context, q model.IncomingModelQuery) (*model.ModelResponseWithOptionalParameters, error) {
	start := time.Now()

	var cached model.ModelResponseWithOptionalParameters
	key, hit, err := s.cache.Lookup(ctx, variantModelsWithParameters, q, &cached)
	if err != nil {
		slog.Warn("Response cache lookup failed", "error", err)
	}

	combined := cached.Models
	if !hit {
		models, err := s.repo.QueryModels(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("could not query catalog: %w", err)
		}
		combined, err = s.params.Resolve(ctx, models)
		if err != nil {
			return nil, err
		}
	}

	metrics, err := model.NewQueryMetrics(elapsedMs(start), len(combined))
	if err != nil {
		return nil, err
	}
	resp, err := model.NewModelResponseWithOptionalParameters(metrics, combined)
	if err != nil {
		return nil, fmt.Errorf("%w: catalog returned an invalid entry: %v", app_errors.ErrInternal, err)
	}

	if !hit {
		if err := s.cache.Store(ctx, key, resp); err != nil {
			slog.Warn("Response cache store failed", "error", err)
		}
	}
	return &resp, nil
}

// Register validates req, including any optional_parameters, and adds it to
// the catalog.
func (s *CatalogService) Register(ctx context.Context, req *RegisterModelRequest) (*model.ModelInfo, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	info, err := model.NewModelInfo(model.ModelInfo{
		ID:                      req.ID,
		ObjectType:              model.ObjectTypeModel,
		CreatedAt:               s.now().UTC(),
		OwnedBy:                 req.OwnedBy,
		LocalPath:               req.LocalPath,
		BaseURL:                 req.BaseURL,
		ModelPath:               req.ModelPath,
		AvailableRoles:          model.NewRoleSet(req.AvailableRoles...),
		MaxInputTokenWindowSize: req.MaxInputTokenWindowSize,
		MaxOutputTokenSize:      req.MaxOutputTokenSize,
	})
	if err != nil {
		return nil, err
	}

	rec := &repository.ModelRecord{Info: info, ModelType: req.ModelType}
	if err := s.repo.CreateModel(ctx, rec, req.OptionalParameters); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: model %q is already registered", app_errors.ErrConflict, req.ID)
		}
		return nil, fmt.Errorf("could not register model: %w", err)
	}

	s.invalidate(ctx)
	slog.Info("Registered model", "id", info.ID, "owned_by", info.OwnedBy, "model_type", req.ModelType)
	return &info, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*model.ModelInfo, error) {
	rec, err := s.repo.GetModel(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, id)
	}
	return &rec.Info, nil
}

// GetWithParameters returns a single entry joined with its resolved parameters.
func (s *CatalogService) GetWithParameters(ctx context.Context, id string) (*model.ModelCombinedWithOptionalParameters, error) {
	rec, err := s.repo.GetModel(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, id)
	}
	combined, err := s.params.Resolve(ctx, []model.ModelInfo{rec.Info})
	if err != nil {
		return nil, err
	}
	return &combined[0], nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteModel(ctx, id); err != nil {
		return translateNotFound(err, id)
	}
	s.invalidate(ctx)
	slog.Info("Deleted model", "id", id)
	return nil
}

// SetParameters replaces the stored sampling parameters of an existing model.
func (s *CatalogService) SetParameters(ctx context.Context, id string, params model.ModelOptionalParameters) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if _, err := s.repo.GetModel(ctx, id); err != nil {
		return translateNotFound(err, id)
	}
	if err := s.repo.SetParameters(ctx, id, params); err != nil {
		return translateNotFound(err, id)
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate response cache", "error", err)
	}
}

func translateNotFound(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: model %q", app_errors.ErrNotFound, id)
	}
	return fmt.Errorf("catalog storage error: %w", err)
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
