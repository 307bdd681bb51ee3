package translate_test

import (
	"context"
	"testing"

	"github.com/docsmith/translaterc/pkg/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestMarkerTranslator tests marker prepending
func TestMarkerTranslator(t *testing.T) {
	tr, err := translate.NewMarkerTranslator(translate.DefaultMarker)
	require.NoError(t, err)

	out, err := tr.Translate(context.Background(), "FAQ.md", []byte("# FAQ\n"))
	require.NoError(t, err)
	assert.Equal(t, "<!-- TRANSLATED TO ENGLISH (replace with real translation) -->\n# FAQ\n", string(out))
}

// 🧪 TestMarkerTranslatorEmptyContent tests translating an empty file
func TestMarkerTranslatorEmptyContent(t *testing.T) {
	tr, err := translate.NewMarkerTranslator(translate.DefaultMarker)
	require.NoError(t, err)

	out, err := tr.Translate(context.Background(), "FAQ.md", nil)
	require.NoError(t, err)
	assert.Equal(t, translate.DefaultMarker+"\n", string(out))
}

// 🧪 TestMarkerTranslatorIdempotentInput tests that output is stable across runs
func TestMarkerTranslatorIdempotentInput(t *testing.T) {
	tr, err := translate.NewMarkerTranslator(translate.DefaultMarker)
	require.NoError(t, err)

	first, err := tr.Translate(context.Background(), "FAQ.md", []byte("# FAQ\n"))
	require.NoError(t, err)
	second, err := tr.Translate(context.Background(), "FAQ.md", []byte("# FAQ\n"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// 🧪 TestNewMarkerTranslatorRequiresMarker tests constructor validation
func TestNewMarkerTranslatorRequiresMarker(t *testing.T) {
	_, err := translate.NewMarkerTranslator("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marker is required")
}
