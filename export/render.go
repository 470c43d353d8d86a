package export

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// RenderPreview converts newsletter markdown to HTML for the in-app
// preview tab. The download conversion in HTMLDocument is a separate,
// cruder format and must stay that way.
func RenderPreview(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
