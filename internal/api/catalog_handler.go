package api

import (
	"net/http"

	"model-catalog/internal/interfaces"
	"model-catalog/internal/model"
	"model-catalog/internal/service"
)

// CatalogHandler serves the model catalog endpoints.
type CatalogHandler struct {
	service interfaces.CatalogService
}

func NewCatalogHandler(svc interfaces.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// HandleListModels godoc
// @Summary      Query the model catalog
// @Description  Returns catalog entries matching the optional filters, in registration order.
// @Tags         Models
// @Produce      json
// @Param        model_name                        query  string   false  "Case-insensitive substring of the model id"
// @Param        model_owner                       query  string   false  "Owner, matched case-insensitively"
// @Param        model_type                        query  string   false  "Category tag, e.g. free or premium"
// @Param        model_input_context_greater_than  query  integer  false  "Minimum input window (exclusive), >= 0"
// @Success      200  {object}  model.ModelResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/models [get]
func (h *CatalogHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromURL(r.URL.Query())
	if err != nil {
		respondWithError(w, err)
		return
	}
	h.query(w, r, q)
}

// HandleQueryModels godoc
// @Summary      Query the model catalog with a JSON body
// @Description  Same as GET /v1/models, with the filters sent as an IncomingModelQuery body. An empty body means no filters.
// @Tags         Models
// @Accept       json
// @Produce      json
// @Param        query  body      model.IncomingModelQueryFields  false  "Filter criteria"
// @Success      200    {object}  model.ModelResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /v1/models/query [post]
func (h *CatalogHandler) HandleQueryModels(w http.ResponseWriter, r *http.Request) {
	var q model.IncomingModelQuery
	if err := decodeJSONBody(w, r, &q, true); err != nil {
		respondWithError(w, err)
		return
	}
	h.query(w, r, q)
}

func (h *CatalogHandler) query(w http.ResponseWriter, r *http.Request, q model.IncomingModelQuery) {
	resp, err := h.service.Query(r.Context(), q)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// HandleListModelsWithParameters godoc
// @Summary      Query the catalog including sampling parameters
// @Description  Like GET /v1/models, but every entry is paired with its resolved optional parameters.
// @Tags         Models
// @Produce      json
// @Param        model_name                        query  string   false  "Case-insensitive substring of the model id"
// @Param        model_owner                       query  string   false  "Owner, matched case-insensitively"
// @Param        model_type                        query  string   false  "Category tag, e.g. free or premium"
// @Param        model_input_context_greater_than  query  integer  false  "Minimum input window (exclusive), >= 0"
// @Success      200  {object}  model.ModelResponseWithOptionalParameters
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/models/with-parameters [get]
func (h *CatalogHandler) HandleListModelsWithParameters(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromURL(r.URL.Query())
	if err != nil {
		respondWithError(w, err)
		return
	}
	h.queryWithParameters(w, r, q)
}

// HandleQueryModelsWithParameters godoc
// @Summary      Query the catalog including sampling parameters, with a JSON body
// @Tags         Models
// @Accept       json
// @Produce      json
// @Param        query  body      model.IncomingModelQueryFields  false  "Filter criteria"
// @Success      200    {object}  model.ModelResponseWithOptionalParameters
// @Failure      400    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /v1/models/query/with-parameters [post]
func (h *CatalogHandler) HandleQueryModelsWithParameters(w http.ResponseWriter, r *http.Request) {
	var q model.IncomingModelQuery
	if err := decodeJSONBody(w, r, &q, true); err != nil {
		respondWithError(w, err)
		return
	}
	h.queryWithParameters(w, r, q)
}

func (h *CatalogHandler) queryWithParameters(w http.ResponseWriter, r *http.Request, q model.IncomingModelQuery) {
	resp, err := h.service.QueryWithParameters(r.Context(), q)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// HandleRegisterModel godoc
// @Summary      Register a model
// @Description  Adds a catalog entry. object_type and created_at are assigned by the catalog.
// @Tags         Models
// @Accept       json
// @Produce      json
// @Param        model  body      service.RegisterModelRequest  true  "Model to register"
// @Success      201    {object}  model.ModelInfo
// @Failure      400    {object}  ErrorResponse
// @Failure      409    {object}  ErrorResponse
// @Router       /v1/models [post]
func (h *CatalogHandler) HandleRegisterModel(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterModelRequest
	if err := decodeJSONBody(w, r, &req, false); err != nil {
		respondWithError(w, err)
		return
	}
	info, err := h.service.Register(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, info)
}

// HandleGetModel godoc
// @Summary      Get a catalog entry
// @Tags         Models
// @Produce      json
// @Param        modelID  path      string  true  "Model id (percent-encoded)"
// @Success      200      {object}  model.ModelInfo
// @Failure      404      {object}  ErrorResponse
// @Router       /v1/models/{modelID} [get]
func (h *CatalogHandler) HandleGetModel(w http.ResponseWriter, r *http.Request) {
	id, err := modelIDParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	info, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, info)
}

// HandleGetModelParameters godoc
// @Summary      Get a catalog entry with its sampling parameters
// @Tags         Models
// @Produce      json
// @Param        modelID  path      string  true  "Model id (percent-encoded)"
// @Success      200      {object}  model.ModelCombinedWithOptionalParameters
// @Failure      404      {object}  ErrorResponse
// @Router       /v1/models/{modelID}/parameters [get]
func (h *CatalogHandler) HandleGetModelParameters(w http.ResponseWriter, r *http.Request) {
	id, err := modelIDParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	combined, err := h.service.GetWithParameters(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, combined)
}

// HandleSetModelParameters godoc
// @Summary      Replace a model's sampling parameters
// @Tags         Models
// @Accept       json
// @Produce      json
// @Param        modelID     path      string                         true  "Model id (percent-encoded)"
// @Param        parameters  body      model.ModelOptionalParameters  true  "All eight parameters"
// @Success      200         {object}  StatusResponse
// @Failure      400         {object}  ErrorResponse
// @Failure      404         {object}  ErrorResponse
// @Router       /v1/models/{modelID}/parameters [put]
func (h *CatalogHandler) HandleSetModelParameters(w http.ResponseWriter, r *http.Request) {
	id, err := modelIDParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	var params model.ModelOptionalParameters
	if err := decodeJSONBody(w, r, &params, false); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.SetParameters(r.Context(), id, params); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleDeleteModel godoc
// @Summary      Remove a model from the catalog
// @Tags         Models
// @Produce      json
// @Param        modelID  path      string  true  "Model id (percent-encoded)"
// @Success      200      {object}  StatusResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /v1/models/{modelID} [delete]
func (h *CatalogHandler) HandleDeleteModel(w http.ResponseWriter, r *http.Request) {
	id, err := modelIDParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
