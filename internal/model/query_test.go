package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "model-catalog/internal/errors"
	"model-catalog/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestNewIncomingModelQuery_ContextLowerBound(t *testing.T) {
	for _, n := range []int{0, 1, 8000, 128000, 1 << 30} {
		q, err := model.NewIncomingModelQuery(model.IncomingModelQueryFields{ModelInputContextGreaterThan: ptr(n)})
		require.NoError(t, err, "n=%d", n)
		got, ok := q.ModelInputContextGreaterThan()
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}

	for _, n := range []int{-1, -2, -128000} {
		_, err := model.NewIncomingModelQuery(model.IncomingModelQueryFields{ModelInputContextGreaterThan: ptr(n)})
		require.Error(t, err, "n=%d", n)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
		assert.Contains(t, err.Error(), "model_input_context_greater_than")
	}
}

func TestNewIncomingModelQuery_OwnerLowerCased(t *testing.T) {
	for _, owner := range []string{"DeepSeek", "google", "OPENAI", "Meta-Llama", ""} {
		q, err := model.NewIncomingModelQuery(model.IncomingModelQueryFields{ModelOwner: ptr(owner)})
		require.NoError(t, err)
		got, ok := q.ModelOwner()
		assert.True(t, ok)
		assert.Equal(t, strings.ToLower(owner), got)
	}
}

func TestNewIncomingModelQuery_OwnerNormalizedWithoutContextFilter(t *testing.T) {
	q, err := model.NewIncomingModelQuery(model.IncomingModelQueryFields{ModelOwner: ptr("Google")})
	require.NoError(t, err)

	owner, _ := q.ModelOwner()
	assert.Equal(t, "google", owner)
	_, ok := q.ModelInputContextGreaterThan()
	assert.False(t, ok)
}

func TestNewIncomingModelQuery_AbsentFields(t *testing.T) {
	q, err := model.NewIncomingModelQuery(model.IncomingModelQueryFields{})
	require.NoError(t, err)

	_, ok := q.ModelName()
	assert.False(t, ok)
	_, ok = q.ModelOwner()
	assert.False(t, ok)
	_, ok = q.ModelType()
	assert.False(t, ok)
	_, ok = q.ModelInputContextGreaterThan()
	assert.False(t, ok)

	// Empty string is a filter, not an absence.
	q, err = model.NewIncomingModelQuery(model.IncomingModelQueryFields{ModelName: ptr("")})
	require.NoError(t, err)
	name, ok := q.ModelName()
	assert.True(t, ok)
	assert.Equal(t, "", name)
}

func TestNewIncomingModelQuery_DoesNotAliasInput(t *testing.T) {
	name := "Deepseek R1"
	fields := model.IncomingModelQueryFields{ModelName: &name}
	q, err := model.NewIncomingModelQuery(fields)
	require.NoError(t, err)

	name = "changed"
	got, _ := q.ModelName()
	assert.Equal(t, "Deepseek R1", got)

	out := q.Fields()
	*out.ModelName = "also changed"
	got, _ = q.ModelName()
	assert.Equal(t, "Deepseek R1", got)
}

func TestIncomingModelQuery_JSON(t *testing.T) {
	t.Run("End to end example", func(t *testing.T) {
		var q model.IncomingModelQuery
		err := json.Unmarshal([]byte(`{"model_owner":"DeepSeek","model_input_context_greater_than":128000}`), &q)
		require.NoError(t, err)

		owner, _ := q.ModelOwner()
		assert.Equal(t, "deepseek", owner)
		n, _ := q.ModelInputContextGreaterThan()
		assert.Equal(t, 128000, n)
	})

	t.Run("Negative lower bound fails", func(t *testing.T) {
		var q model.IncomingModelQuery
		err := json.Unmarshal([]byte(`{"model_input_context_greater_than":-1}`), &q)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("Wrong type fails", func(t *testing.T) {
		var q model.IncomingModelQuery
		err := json.Unmarshal([]byte(`{"model_input_context_greater_than":"lots"}`), &q)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("Absent fields are omitted on output", func(t *testing.T) {
		q, err := model.NewIncomingModelQuery(model.IncomingModelQueryFields{ModelType: ptr("free")})
		require.NoError(t, err)
		data, err := json.Marshal(q)
		require.NoError(t, err)
		assert.JSONEq(t, `{"model_type":"free"}`, string(data))
	})
}
