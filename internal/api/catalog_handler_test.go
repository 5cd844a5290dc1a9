package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"model-catalog/internal/api"
	app_errors "model-catalog/internal/errors"
	"model-catalog/internal/interfaces/mocks"
	"model-catalog/internal/model"
	"model-catalog/internal/service"
)

func setupRouter(t *testing.T) (http.Handler, *mocks.MockCatalogService) {
	mockSvc := mocks.NewMockCatalogService(t)
	return api.NewRouter(api.NewCatalogHandler(mockSvc)), mockSvc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func entry(id string) model.ModelInfo {
	return model.ModelInfo{
		ID:                      id,
		ObjectType:              model.ObjectTypeModel,
		CreatedAt:               time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
		OwnedBy:                 "deepseek",
		ModelPath:               "deepseek/deepseek-r1:free",
		AvailableRoles:          model.NewRoleSet("ai", "user", "system"),
		MaxInputTokenWindowSize: 128000,
		MaxOutputTokenSize:      8000,
	}
}

// queryMatching asserts on the filter criteria the handler built.
func queryMatching(check func(q model.IncomingModelQuery) bool) interface{} {
	return mock.MatchedBy(check)
}

func TestCatalogHandler_ListModels(t *testing.T) {
	t.Run("Filters from query string", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		resp := &model.ModelResponse{QueryMetrics: model.QueryMetrics{QueryTimeMs: 0.4, TotalRecords: 1}, Models: []model.ModelInfo{entry("Deepseek R1")}}

		mockSvc.On("Query", mock.Anything, queryMatching(func(q model.IncomingModelQuery) bool {
			owner, ownerSet := q.ModelOwner()
			n, nSet := q.ModelInputContextGreaterThan()
			_, nameSet := q.ModelName()
			return ownerSet && owner == "deepseek" && nSet && n == 128000 && !nameSet
		})).Return(resp, nil).Once()

		rr := serve(router, http.MethodGet, "/api/v1/models?model_owner=DeepSeek&model_input_context_greater_than=128000", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		var body model.ModelResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, 1, body.QueryMetrics.TotalRecords)
		assert.Equal(t, "Deepseek R1", body.Models[0].ID)
	})

	t.Run("Empty result", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("Query", mock.Anything, mock.Anything).Return(&model.ModelResponse{}, nil).Once()

		rr := serve(router, http.MethodGet, "/api/v1/models", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"query_metrics":{"query_time_ms":0,"total_records":0},"models":[]}`, rr.Body.String())
	})

	t.Run("Negative lower bound", func(t *testing.T) {
		router, _ := setupRouter(t)

		rr := serve(router, http.MethodGet, "/api/v1/models?model_input_context_greater_than=-1", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "model_input_context_greater_than")
	})

	t.Run("Non-integer lower bound", func(t *testing.T) {
		router, _ := setupRouter(t)

		rr := serve(router, http.MethodGet, "/api/v1/models?model_input_context_greater_than=big", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Service failure", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("db is gone")).Once()

		rr := serve(router, http.MethodGet, "/api/v1/models", "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "db is gone")
	})
}

func TestCatalogHandler_QueryModels(t *testing.T) {
	t.Run("JSON body", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("Query", mock.Anything, queryMatching(func(q model.IncomingModelQuery) bool {
			modelType, ok := q.ModelType()
			return ok && modelType == "free"
		})).Return(&model.ModelResponse{}, nil).Once()

		rr := serve(router, http.MethodPost, "/api/v1/models/query", `{"model_type":"free"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Empty body means no filters", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("Query", mock.Anything, model.IncomingModelQuery{}).Return(&model.ModelResponse{}, nil).Once()

		rr := serve(router, http.MethodPost, "/api/v1/models/query", "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Negative lower bound", func(t *testing.T) {
		router, _ := setupRouter(t)

		rr := serve(router, http.MethodPost, "/api/v1/models/query", `{"model_input_context_greater_than":-1}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		router, _ := setupRouter(t)

		rr := serve(router, http.MethodPost, "/api/v1/models/query", `{"model_type":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCatalogHandler_WithParameters(t *testing.T) {
	router, mockSvc := setupRouter(t)
	combined := model.ModelCombinedWithOptionalParameters{Model: entry("Deepseek R1"), OptionalParameters: model.DefaultOptionalParameters()}
	resp := &model.ModelResponseWithOptionalParameters{
		QueryMetrics: model.QueryMetrics{QueryTimeMs: 1, TotalRecords: 1},
		Models:       []model.ModelCombinedWithOptionalParameters{combined},
	}
	mockSvc.On("QueryWithParameters", mock.Anything, mock.Anything).Return(resp, nil).Twice()

	for _, rr := range []*httptest.ResponseRecorder{
		serve(router, http.MethodGet, "/api/v1/models/with-parameters?model_name=deepseek", ""),
		serve(router, http.MethodPost, "/api/v1/models/query/with-parameters", `{"model_name":"deepseek"}`),
	} {
		assert.Equal(t, http.StatusOK, rr.Code)

		var raw struct {
			Models []map[string]json.RawMessage `json:"models"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
		require.Len(t, raw.Models, 1)
		assert.Len(t, raw.Models[0], 2)
		assert.Contains(t, raw.Models[0], "model")
		assert.Contains(t, raw.Models[0], "optional_parameters")
	}
}

func TestCatalogHandler_RegisterModel(t *testing.T) {
	body := `{"id":"Deepseek R1","owned_by":"deepseek","model_type":"free","model_path":"deepseek/deepseek-r1:free",
		"available_roles":["ai","user"],"max_input_token_window_size":128000,"max_output_token_size":8000}`

	t.Run("Created", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		created := entry("Deepseek R1")
		mockSvc.On("Register", mock.Anything, mock.MatchedBy(func(req *service.RegisterModelRequest) bool {
			return req.ID == "Deepseek R1" && req.ModelType == "free" && req.OptionalParameters == nil
		})).Return(&created, nil).Once()

		rr := serve(router, http.MethodPost, "/api/v1/models", body)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var info model.ModelInfo
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
		assert.Equal(t, "Deepseek R1", info.ID)
	})

	t.Run("Conflict", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("Register", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: model %q is already registered", app_errors.ErrConflict, "Deepseek R1")).Once()

		rr := serve(router, http.MethodPost, "/api/v1/models", body)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Incomplete parameters are rejected before the service", func(t *testing.T) {
		router, _ := setupRouter(t)

		rr := serve(router, http.MethodPost, "/api/v1/models", `{"id":"x","owned_by":"y","optional_parameters":{"temperature":0.5}}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "top_p")
	})

	t.Run("Missing body", func(t *testing.T) {
		router, _ := setupRouter(t)

		rr := serve(router, http.MethodPost, "/api/v1/models", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCatalogHandler_ModelByID(t *testing.T) {
	t.Run("Get with encoded id", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		found := entry("deepseek/deepseek-r1:free")
		mockSvc.On("Get", mock.Anything, "deepseek/deepseek-r1:free").Return(&found, nil).Once()

		rr := serve(router, http.MethodGet, "/api/v1/models/deepseek%2Fdeepseek-r1:free", "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Get with space in id", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		found := entry("Deepseek R1")
		mockSvc.On("Get", mock.Anything, "Deepseek R1").Return(&found, nil).Once()

		rr := serve(router, http.MethodGet, "/api/v1/models/Deepseek%20R1", "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Escaped percent is decoded once", func(t *testing.T) {
		testCases := []struct {
			target string
			id     string
		}{
			{"/api/v1/models/a%2541", "a%41"},
			{"/api/v1/models/100%25free", "100%free"},
			{"/api/v1/models/org%2F100%25free", "org/100%free"},
		}
		for _, tc := range testCases {
			router, mockSvc := setupRouter(t)
			found := entry(tc.id)
			mockSvc.On("Get", mock.Anything, tc.id).Return(&found, nil).Once()

			rr := serve(router, http.MethodGet, tc.target, "")

			assert.Equal(t, http.StatusOK, rr.Code, tc.target)
		}
	})

	t.Run("Delete id containing percent", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("Delete", mock.Anything, "100%free").Return(nil).Once()

		rr := serve(router, http.MethodDelete, "/api/v1/models/100%25free", "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Get missing", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("Get", mock.Anything, "nope").Return(nil, app_errors.ErrNotFound).Once()

		rr := serve(router, http.MethodGet, "/api/v1/models/nope", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Get parameters", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		combined := &model.ModelCombinedWithOptionalParameters{Model: entry("a"), OptionalParameters: model.DefaultOptionalParameters()}
		mockSvc.On("GetWithParameters", mock.Anything, "a").Return(combined, nil).Once()

		rr := serve(router, http.MethodGet, "/api/v1/models/a/parameters", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"optional_parameters"`)
	})

	t.Run("Set parameters", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		expected := model.ModelOptionalParameters{Temperature: 0.5, TopP: 0.9, TopK: 40, FrequencyPenalty: 0.5, PresencePenalty: 0.5, RepetitionPenalty: 1.0, MinP: 0, TopA: 0.9}
		mockSvc.On("SetParameters", mock.Anything, "a", expected).Return(nil).Once()

		rr := serve(router, http.MethodPut, "/api/v1/models/a/parameters",
			`{"temperature":0.5,"top_p":0.9,"top_k":40,"frequency_penalty":0.5,"presence_penalty":0.5,"repetition_penalty":1.0,"min_p":0.0,"top_a":0.9}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("Set out-of-range parameters", func(t *testing.T) {
		router, _ := setupRouter(t)

		rr := serve(router, http.MethodPut, "/api/v1/models/a/parameters",
			`{"temperature":9,"top_p":0.9,"top_k":40,"frequency_penalty":0.5,"presence_penalty":0.5,"repetition_penalty":1.0,"min_p":0.0,"top_a":0.9}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("Delete", mock.Anything, "a").Return(nil).Once()

		rr := serve(router, http.MethodDelete, "/api/v1/models/a", "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRouter_Healthz(t *testing.T) {
	router, _ := setupRouter(t)

	rr := serve(router, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
