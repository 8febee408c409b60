package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/form"
)

// readValues decodes a YAML or JSON answers document. A path of "-" reads
// from stdin. Unknown keys are rejected.
func readValues(path string, stdin io.Reader) (form.Values, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return form.Values{}, fmt.Errorf("read values: %w", err)
	}

	var v form.Values
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil && !errors.Is(err, io.EOF) {
		return form.Values{}, fmt.Errorf("parse values %s: %w", path, err)
	}
	return v, nil
}
