package model

import (
	"encoding/json"
	"time"

	"model-catalog/internal/validation"
)

// ObjectTypeModel is the discriminator carried by every catalog entry.
const ObjectTypeModel = "model"

// QueryMetrics describes how a catalog query was executed.
type QueryMetrics struct {
	QueryTimeMs  float64 `json:"query_time_ms" validate:"gte=0" example:"1.25"`
	TotalRecords int     `json:"total_records" validate:"gte=0" example:"3"`
}

func NewQueryMetrics(queryTimeMs float64, totalRecords int) (QueryMetrics, error) {
	m := QueryMetrics{QueryTimeMs: queryTimeMs, TotalRecords: totalRecords}
	if err := m.Validate(); err != nil {
		return QueryMetrics{}, err
	}
	return m, nil
}

func (m QueryMetrics) Validate() error { return validation.Struct(m) }

func (m *QueryMetrics) UnmarshalJSON(data []byte) error {
	type alias QueryMetrics
	if err := requireKeys(data, "query_time_ms", "total_records"); err != nil {
		return err
	}
	var a alias
	if err := decodeStrict(data, &a); err != nil {
		return err
	}
	built := QueryMetrics(a)
	if err := built.Validate(); err != nil {
		return err
	}
	*m = built
	return nil
}

// ModelInfo is a catalog entry. CreatedAt is the registration time in this
// catalog, not the model's training date.
type ModelInfo struct {
	ID                      string    `json:"id" validate:"required" example:"Deepseek R1"`
	ObjectType              string    `json:"object_type" validate:"required" example:"model"`
	CreatedAt               time.Time `json:"created_at" validate:"required"`
	OwnedBy                 string    `json:"owned_by" validate:"required" example:"deepseek"`
	LocalPath               string    `json:"local_path"`
	BaseURL                 string    `json:"base_url"`
	ModelPath               string    `json:"model_path" example:"deepseek/deepseek-r1:free"`
	AvailableRoles          RoleSet   `json:"available_roles" swaggertype:"array,string" example:"ai,user,system"`
	MaxInputTokenWindowSize int       `json:"max_input_token_window_size" validate:"gte=0" example:"128000"`
	MaxOutputTokenSize      int       `json:"max_output_token_size" validate:"gte=0" example:"8000"`
}

var modelInfoKeys = []string{
	"id", "object_type", "created_at", "owned_by", "local_path", "base_url",
	"model_path", "available_roles", "max_input_token_window_size", "max_output_token_size",
}

// NewModelInfo validates m and returns a copy that shares no roles with it.
func NewModelInfo(m ModelInfo) (ModelInfo, error) {
	m.AvailableRoles = m.AvailableRoles.Clone()
	if err := m.Validate(); err != nil {
		return ModelInfo{}, err
	}
	return m, nil
}

func (m ModelInfo) Validate() error { return validation.Struct(m) }

func (m *ModelInfo) UnmarshalJSON(data []byte) error {
	type alias ModelInfo
	if err := requireKeys(data, modelInfoKeys...); err != nil {
		return err
	}
	var a alias
	if err := decodeStrict(data, &a); err != nil {
		return err
	}
	built := ModelInfo(a)
	if err := built.Validate(); err != nil {
		return err
	}
	*m = built
	return nil
}

// ModelCombinedWithOptionalParameters pairs a catalog entry with the sampling
// parameters resolved for it.
type ModelCombinedWithOptionalParameters struct {
	Model              ModelInfo               `json:"model"`
	OptionalParameters ModelOptionalParameters `json:"optional_parameters"`
}

func NewModelCombinedWithOptionalParameters(m ModelInfo, p ModelOptionalParameters) (ModelCombinedWithOptionalParameters, error) {
	c := ModelCombinedWithOptionalParameters{Model: m, OptionalParameters: p}
	c.Model.AvailableRoles = m.AvailableRoles.Clone()
	if err := c.Validate(); err != nil {
		return ModelCombinedWithOptionalParameters{}, err
	}
	return c, nil
}

func (c ModelCombinedWithOptionalParameters) Validate() error { return validation.Struct(c) }

func (c *ModelCombinedWithOptionalParameters) UnmarshalJSON(data []byte) error {
	type alias ModelCombinedWithOptionalParameters
	if err := requireKeys(data, "model", "optional_parameters"); err != nil {
		return err
	}
	var a alias
	if err := decodeStrict(data, &a); err != nil {
		return err
	}
	*c = ModelCombinedWithOptionalParameters(a)
	return nil
}

// ModelResponse is the envelope returned by a plain catalog query.
type ModelResponse struct {
	QueryMetrics QueryMetrics `json:"query_metrics"`
	Models       []ModelInfo  `json:"models" validate:"dive"`
}

// NewModelResponse validates the envelope. An empty models list is valid.
func NewModelResponse(metrics QueryMetrics, models []ModelInfo) (ModelResponse, error) {
	r := ModelResponse{QueryMetrics: metrics, Models: make([]ModelInfo, len(models))}
	copy(r.Models, models)
	if err := r.Validate(); err != nil {
		return ModelResponse{}, err
	}
	return r, nil
}

func (r ModelResponse) Validate() error { return validation.Struct(r) }

func (r ModelResponse) MarshalJSON() ([]byte, error) {
	type alias ModelResponse
	if r.Models == nil {
		r.Models = []ModelInfo{}
	}
	return json.Marshal(alias(r))
}

func (r *ModelResponse) UnmarshalJSON(data []byte) error {
	type alias ModelResponse
	if err := requireKeys(data, "query_metrics", "models"); err != nil {
		return err
	}
	var a alias
	if err := decodeStrict(data, &a); err != nil {
		return err
	}
	*r = ModelResponse(a)
	return nil
}

// ModelResponseWithOptionalParameters is the envelope returned when the caller
// asks for sampling parameters alongside each entry.
type ModelResponseWithOptionalParameters struct {
	QueryMetrics QueryMetrics                          `json:"query_metrics"`
	Models       []ModelCombinedWithOptionalParameters `json:"models" validate:"dive"`
}

func NewModelResponseWithOptionalParameters(metrics QueryMetrics, models []ModelCombinedWithOptionalParameters) (ModelResponseWithOptionalParameters, error) {
	r := ModelResponseWithOptionalParameters{
		QueryMetrics: metrics,
		Models:       make([]ModelCombinedWithOptionalParameters, len(models)),
	}
	copy(r.Models, models)
	if err := r.Validate(); err != nil {
		return ModelResponseWithOptionalParameters{}, err
	}
	return r, nil
}

func (r ModelResponseWithOptionalParameters) Validate() error { return validation.Struct(r) }

func (r ModelResponseWithOptionalParameters) MarshalJSON() ([]byte, error) {
	type alias ModelResponseWithOptionalParameters
	if r.Models == nil {
		r.Models = []ModelCombinedWithOptionalParameters{}
	}
	return json.Marshal(alias(r))
}

func (r *ModelResponseWithOptionalParameters) UnmarshalJSON(data []byte) error {
	type alias ModelResponseWithOptionalParameters
	if err := requireKeys(data, "query_metrics", "models"); err != nil {
		return err
	}
	var a alias
	if err := decodeStrict(data, &a); err != nil {
		return err
	}
	*r = ModelResponseWithOptionalParameters(a)
	return nil
}
