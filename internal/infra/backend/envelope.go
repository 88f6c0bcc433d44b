package backend

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// The backend wraps list payloads inconsistently: a bare array, an object
// with the array under "data", or an object keyed by the resource name.
// decodeList accepts all three; when none of the keys is present the result
// is an empty list, not an error. Malformed JSON is still an error.
func decodeList[T any](raw []byte, keys ...string) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}

	if raw[0] == '[' {
		var list []T
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, errors.Wrap(err, "failed to decode list body")
		}

		return list, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode response envelope")
	}

	for _, key := range append([]string{"data"}, keys...) {
		inner, ok := envelope[key]
		if !ok {
			continue
		}
		inner = bytes.TrimSpace(inner)
		if len(inner) == 0 || bytes.Equal(inner, []byte("null")) {
			return []T{}, nil
		}
		var list []T
		if err := json.Unmarshal(inner, &list); err != nil {
			return nil, errors.Wrapf(err, "failed to decode list under %q", key)
		}

		return list, nil
	}

	return []T{}, nil
}

// decodeObject accepts a detail payload either bare or wrapped under "data"
// or a resource-specific key.
func decodeObject[T any](raw []byte, keys ...string) (*T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, errors.New("empty response body")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode response envelope")
	}

	for _, key := range append([]string{"data"}, keys...) {
		if inner, ok := envelope[key]; ok && len(bytes.TrimSpace(inner)) > 0 && inner[0] == '{' {
			out := new(T)
			if err := json.Unmarshal(inner, out); err != nil {
				return nil, errors.Wrapf(err, "failed to decode object under %q", key)
			}

			return out, nil
		}
	}

	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, errors.Wrap(err, "failed to decode object body")
	}

	return out, nil
}
