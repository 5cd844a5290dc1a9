package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	app_errors "model-catalog/internal/errors"
	"model-catalog/internal/model"
)

// This file turns HTTP input (bodies, query strings, path parameters) into
// validated catalog types. Validation itself lives on the types.

// maxBodyBytes caps request bodies; catalog payloads are small.
const maxBodyBytes = 1 << 20

// decodeJSONBody decodes the request body into dst. Schema types validate
// themselves while decoding; syntax errors are reported as validation errors
// too. An empty body is accepted when allowEmpty is set.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}, allowEmpty bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF) && allowEmpty:
		// An empty body decodes as io.EOF.
		return nil
	case errors.Is(err, app_errors.ErrValidation):
		// Raised by a type's UnmarshalJSON, already names the field.
		return err
	default:
		return fmt.Errorf("%w: invalid request payload: %s", app_errors.ErrValidation, err.Error())
	}
}

// queryFromURL builds filter criteria from URL query parameters. A parameter
// that is present but empty is a filter on the empty string.
func queryFromURL(values url.Values) (model.IncomingModelQuery, error) {
	var fields model.IncomingModelQueryFields

	// optional distinguishes an absent key (nil) from a present empty one.
	optional := func(key string) *string {
		if !values.Has(key) {
			return nil
		}
		v := values.Get(key)
		return &v
	}
	fields.ModelName = optional("model_name")
	fields.ModelOwner = optional("model_owner")
	fields.ModelType = optional("model_type")

	// Range checks are left to NewIncomingModelQuery; only the syntax is checked here.
	if raw := optional("model_input_context_greater_than"); raw != nil {
		n, err := strconv.Atoi(*raw)
		if err != nil {
			return model.IncomingModelQuery{}, fmt.Errorf("%w: Field 'model_input_context_greater_than' must be an integer", app_errors.ErrValidation)
		}
		fields.ModelInputContextGreaterThan = &n
	}

	return model.NewIncomingModelQuery(fields)
}

// modelIDParam reads {modelID}. chi matches against r.URL.RawPath when the
// request carried escapes the default encoding would not produce (such as
// %2F), and the parameter is then still escaped. Otherwise chi already saw
// the decoded path, and decoding again would corrupt ids containing '%'.
func modelIDParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, "modelID")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(id)
		if err != nil {
			return "", fmt.Errorf("%w: invalid model id", app_errors.ErrValidation)
		}
		id = unescaped
	}
	if id == "" {
		return "", fmt.Errorf("%w: invalid model id", app_errors.ErrValidation)
	}
	return id, nil
}
