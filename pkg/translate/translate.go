// Package translate produces the translated form of a documentation file.
package translate

import (
	"bytes"
	"context"

	"gitlab.com/tozd/go/errors"
)

// DefaultMarker is the line prepended to every translated file until a real
// translation backend replaces it.
const DefaultMarker = "<!-- TRANSLATED TO ENGLISH (replace with real translation) -->"

// 🌐 Translator transforms source file content into its translated form
type Translator interface {
	// Translate returns the translated content for the named file
	Translate(ctx context.Context, name string, content []byte) ([]byte, error)
}

// 📝 MarkerTranslator prepends a marker line to the content. It stands in for
// a translation API call: swap this implementation out to translate for real.
type MarkerTranslator struct {
	marker string
}

// NewMarkerTranslator creates a MarkerTranslator with the given marker line
func NewMarkerTranslator(marker string) (*MarkerTranslator, error) {
	if marker == "" {
		return nil, errors.New("marker is required")
	}
	return &MarkerTranslator{marker: marker}, nil
}

// Translate prepends the marker line followed by a newline
func (t *MarkerTranslator) Translate(ctx context.Context, name string, content []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(t.marker) + 1 + len(content))
	buf.WriteString(t.marker)
	buf.WriteByte('\n')
	buf.Write(content)
	return buf.Bytes(), nil
}

// Marker returns the configured marker line
func (t *MarkerTranslator) Marker() string {
	return t.marker
}
