package html

import (
	"bytes"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	introPolicyOnce sync.Once
	introPolicy     *bluemonday.Policy
)

// renderIntro converts the catalog's markdown intro into sanitized markup.
func renderIntro(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	introPolicyOnce.Do(func() {
		introPolicy = bluemonday.UGCPolicy()
	})
	return strings.TrimSpace(string(introPolicy.SanitizeBytes(buf.Bytes()))), nil
}
