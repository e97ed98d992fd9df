//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// JSONMap renders v the way a client would send it and applies edits, so
// tests can corrupt or drop single fields of an otherwise valid body.
func JSONMap(t *testing.T, v any, edits ...func(map[string]any)) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, edit := range edits {
		edit(m)
	}
	return m
}

func Set(key string, value any) func(map[string]any) {
	return func(m map[string]any) { m[key] = value }
}

func Without(key string) func(map[string]any) {
	return func(m map[string]any) { delete(m, key) }
}
