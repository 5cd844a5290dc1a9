package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	app_errors "model-catalog/internal/errors"
)

// requireKeys fails with ErrValidation when any of keys is missing from the
// JSON object in data or set to null. encoding/json cannot tell an absent
// number from a zero one, so required fields are checked before decoding.
func requireKeys(data []byte, keys ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", app_errors.ErrValidation, err.Error())
	}
	var missing []string
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required field(s): %s", app_errors.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// decodeStrict decodes data into v, turning type mismatches into ErrValidation.
// Errors from nested shapes are already validation errors and pass through.
func decodeStrict(data []byte, v interface{}) error {
	err := json.Unmarshal(data, v)
	if err == nil || errors.Is(err, app_errors.ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %s", app_errors.ErrValidation, err.Error())
}
