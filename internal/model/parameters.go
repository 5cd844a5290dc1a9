package model

import "model-catalog/internal/validation"

// ModelOptionalParameters are the generation-time sampling settings for a
// model. Ranges follow the common OpenAI/OpenRouter conventions.
type ModelOptionalParameters struct {
	Temperature       float64 `json:"temperature" validate:"gte=0,lte=2" example:"0.5"`
	TopP              float64 `json:"top_p" validate:"gte=0,lte=1" example:"0.9"`
	TopK              int     `json:"top_k" validate:"gte=0" example:"40"`
	FrequencyPenalty  float64 `json:"frequency_penalty" validate:"gte=-2,lte=2" example:"0.5"`
	PresencePenalty   float64 `json:"presence_penalty" validate:"gte=-2,lte=2" example:"0.5"`
	RepetitionPenalty float64 `json:"repetition_penalty" validate:"gt=0,lte=2" example:"1.0"`
	MinP              float64 `json:"min_p" validate:"gte=0,lte=1" example:"0.0"`
	TopA              float64 `json:"top_a" validate:"gte=0,lte=1" example:"0.9"`
}

var optionalParameterKeys = []string{
	"temperature", "top_p", "top_k", "frequency_penalty",
	"presence_penalty", "repetition_penalty", "min_p", "top_a",
}

// DefaultOptionalParameters are the neutral settings used when neither the
// catalog nor the serving backend knows better.
func DefaultOptionalParameters() ModelOptionalParameters {
	return ModelOptionalParameters{
		Temperature:       1.0,
		TopP:              1.0,
		TopK:              0,
		FrequencyPenalty:  0,
		PresencePenalty:   0,
		RepetitionPenalty: 1.0,
		MinP:              0,
		TopA:              0,
	}
}

func NewModelOptionalParameters(p ModelOptionalParameters) (ModelOptionalParameters, error) {
	if err := p.Validate(); err != nil {
		return ModelOptionalParameters{}, err
	}
	return p, nil
}

func (p ModelOptionalParameters) Validate() error { return validation.Struct(p) }

func (p *ModelOptionalParameters) UnmarshalJSON(data []byte) error {
	type alias ModelOptionalParameters
	if err := requireKeys(data, optionalParameterKeys...); err != nil {
		return err
	}
	var a alias
	if err := decodeStrict(data, &a); err != nil {
		return err
	}
	built := ModelOptionalParameters(a)
	if err := built.Validate(); err != nil {
		return err
	}
	*p = built
	return nil
}
