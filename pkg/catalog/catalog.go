// Package catalog loads the option data a registration form is built from.
//
// A catalog document is JSON or YAML. The package embeds the default
// conference catalog; callers may load their own from disk or from any fs.FS.
// Every loaded catalog is sanitized (labels, hints and the intro keep only a
// small set of inline formatting tags) and validated before it is returned.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
)

//go:embed registration.yaml
var defaultDocument []byte

// DefaultSource names the embedded document in error messages.
const DefaultSource = "registration.yaml"

// Default parses the embedded conference catalog.
func Default() (model.Catalog, error) {
	return Parse(defaultDocument, DefaultSource)
}

// MustDefault is Default for init-time wiring.
func MustDefault() model.Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads and parses a catalog document from disk.
func LoadFile(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses the named catalog document from fsys.
func LoadFS(fsys fs.FS, name string) (model.Catalog, error) {
	if fsys == nil {
		return model.Catalog{}, fmt.Errorf("catalog: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("catalog: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes a JSON or YAML catalog document, then sanitizes and validates
// it. source is only used in error messages.
func Parse(data []byte, source string) (model.Catalog, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return model.Catalog{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	var c model.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		c = model.Catalog{}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return model.Catalog{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
		}
	}

	c = Sanitize(c)
	if err := Validate(c); err != nil {
		return model.Catalog{}, fmt.Errorf("catalog: %s: %w", source, err)
	}
	return c, nil
}
