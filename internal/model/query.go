package model

import (
	"encoding/json"
	"strings"

	"model-catalog/internal/validation"
)

// IncomingModelQueryFields is the raw filter input as supplied by a caller.
// A nil field means "no filter on this dimension"; a pointer to "" is a filter
// on the empty string.
type IncomingModelQueryFields struct {
	ModelName                    *string `json:"model_name,omitempty" example:"Deepseek R1"`
	ModelOwner                   *string `json:"model_owner,omitempty" example:"deepseek"`
	ModelType                    *string `json:"model_type,omitempty" example:"free"`
	ModelInputContextGreaterThan *int    `json:"model_input_context_greater_than,omitempty" validate:"omitempty,gte=0" example:"128000"`
}

// IncomingModelQuery holds validated, immutable filter criteria. The zero value
// is a query with no filters.
type IncomingModelQuery struct {
	name       *string
	owner      *string
	modelType  *string
	minContext *int
}

// NewIncomingModelQuery copies fields, lower-cases model_owner and rejects a
// negative model_input_context_greater_than.
func NewIncomingModelQuery(fields IncomingModelQueryFields) (IncomingModelQuery, error) {
	if err := validation.Struct(fields); err != nil {
		return IncomingModelQuery{}, err
	}
	q := IncomingModelQuery{
		name:       copyPtr(fields.ModelName),
		modelType:  copyPtr(fields.ModelType),
		minContext: copyPtr(fields.ModelInputContextGreaterThan),
	}
	if fields.ModelOwner != nil {
		owner := strings.ToLower(*fields.ModelOwner)
		q.owner = &owner
	}
	return q, nil
}

func (q IncomingModelQuery) ModelName() (string, bool)  { return deref(q.name) }
func (q IncomingModelQuery) ModelOwner() (string, bool) { return deref(q.owner) }
func (q IncomingModelQuery) ModelType() (string, bool)  { return deref(q.modelType) }

func (q IncomingModelQuery) ModelInputContextGreaterThan() (int, bool) {
	return deref(q.minContext)
}

// Fields returns a detached copy of the criteria, suitable for building a
// modified query through NewIncomingModelQuery.
func (q IncomingModelQuery) Fields() IncomingModelQueryFields {
	return IncomingModelQueryFields{
		ModelName:                    copyPtr(q.name),
		ModelOwner:                   copyPtr(q.owner),
		ModelType:                    copyPtr(q.modelType),
		ModelInputContextGreaterThan: copyPtr(q.minContext),
	}
}

func (q IncomingModelQuery) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.Fields())
}

func (q *IncomingModelQuery) UnmarshalJSON(data []byte) error {
	var fields IncomingModelQueryFields
	if err := decodeStrict(data, &fields); err != nil {
		return err
	}
	built, err := NewIncomingModelQuery(fields)
	if err != nil {
		return err
	}
	*q = built
	return nil
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
