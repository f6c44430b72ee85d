package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderURL(t *testing.T) {
	assert.Equal(t, "https://placehold.co/150x150?text=Branco+3", PlaceholderURL(LabelWhiteBackground, "3"))
	assert.Equal(t, "https://placehold.co/150x150?text=Medidas", PlaceholderURL(LabelMeasures, ""))
	assert.Equal(t, "https://placehold.co/150x150?text=Ambient+LP+01", PlaceholderURL(LabelAmbient, "LP 01"))
}

func TestPlaceholderURLDistinctKeys(t *testing.T) {
	keys := []string{"a b", "a+b", "a%20b", "3", "03", ""}
	seen := map[string]string{}
	for _, k := range keys {
		u := PlaceholderURL(LabelWhiteBackground, k)
		prev, dup := seen[u]
		require.Falsef(t, dup, "keys %q and %q share placeholder %s", prev, k, u)
		seen[u] = k
	}
}

func TestPlaceholderPhotoSet(t *testing.T) {
	set := PlaceholderPhotoSet("3")

	assert.Contains(t, set.WhiteBackground, "Branco+3")
	assert.Contains(t, set.Ambient, "Ambient+3")
	assert.Contains(t, set.Measures, "Medidas+3")
	assert.Equal(t, set, PlaceholderPhotoSet("3"), "placeholders must be deterministic")
	assert.NotEqual(t, set, PlaceholderPhotoSet("4"))
}
