//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body after it has been flattened to a map.
type Mutation func(map[string]any)

// DtoMap flattens a request DTO through its JSON tags so tests can break
// individual fields without a second struct.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value, or drops it when value is nil.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Nested applies muts to the object stored under key, e.g. the guest block
// of a checkout request.
func Nested(key string, muts ...Mutation) Mutation {
	return func(m map[string]any) {
		inner, ok := m[key].(map[string]any)
		if !ok {
			return
		}
		for _, f := range muts {
			f(inner)
		}
	}
}
