// Package template wraps pongo2 behind a small engine used by the markup
// renderers. Templates are loaded from an fs.FS, compiled once and cached.
// Data passed to the engine is flattened through its JSON form, so templates
// address fields by their json tag names.
package template
