package service

import (
	"context"
	"fmt"
	"log/slog"

	"model-catalog/internal/llm"
	"model-catalog/internal/model"
	"model-catalog/internal/repository"
)

// ParameterResolver joins catalog entries with their sampling parameters.
// Stored parameters win; locally served models without stored parameters are
// looked up in Ollama; everything else gets model.DefaultOptionalParameters.
type ParameterResolver struct {
	repo repository.CatalogRepository
	llm  llm.LLMProvider
}

// NewParameterResolver builds a resolver. provider may be nil, which disables
// the Ollama lookup.
func NewParameterResolver(repo repository.CatalogRepository, provider llm.LLMProvider) *ParameterResolver {
	return &ParameterResolver{repo: repo, llm: provider}
}

// Resolve returns one combined record per model, in the same order.
func (r *ParameterResolver) Resolve(ctx context.Context, models []model.ModelInfo) ([]model.ModelCombinedWithOptionalParameters, error) {
	ids := make([]string, len(models))
	for i, m := range models {
		ids[i] = m.ID
	}
	stored, err := r.repo.GetParametersForModels(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("could not load stored parameters: %w", err)
	}

	fromBackend := make(map[string]model.ModelOptionalParameters)
	combined := make([]model.ModelCombinedWithOptionalParameters, 0, len(models))
	for _, m := range models {
		params, ok := stored[m.ID]
		if !ok {
			params = r.backendDefaults(ctx, m, fromBackend)
		}
		c, err := model.NewModelCombinedWithOptionalParameters(m, params)
		if err != nil {
			return nil, fmt.Errorf("invalid parameters for model %q: %w", m.ID, err)
		}
		combined = append(combined, c)
	}
	return combined, nil
}

// backendDefaults asks Ollama for a locally served model's parameters. Results
// are memoized per model_path for the duration of one Resolve call.
func (r *ParameterResolver) backendDefaults(ctx context.Context, m model.ModelInfo, seen map[string]model.ModelOptionalParameters) model.ModelOptionalParameters {
	defaults := model.DefaultOptionalParameters()
	if r.llm == nil || m.BaseURL != "" || m.ModelPath == "" {
		return defaults
	}
	if p, ok := seen[m.ModelPath]; ok {
		return p
	}

	params := defaults
	info, err := r.llm.ShowModelInfo(ctx, &llm.ShowModelRequest{Model: m.ModelPath})
	if err != nil {
		slog.Warn("Could not fetch parameters from Ollama, using defaults", "model", m.ID, "model_path", m.ModelPath, "error", err)
	} else {
		parsed := llm.ParseParameters(info.Parameters, defaults)
		if err := parsed.Validate(); err != nil {
			slog.Warn("Ollama returned out-of-range parameters, using defaults", "model", m.ID, "error", err)
		} else {
			params = parsed
		}
	}
	seen[m.ModelPath] = params
	return params
}
