package io

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ptable/pkg/element"
	"github.com/matzehuels/ptable/pkg/errors"
	"github.com/matzehuels/ptable/pkg/observability"
)

// ReadOverrides decodes JSON data overrides from r. Numbers decode as
// float64. The result is not checked against an element table; use
// [element.WithOverrides] for that.
func ReadOverrides(r io.Reader) (element.Overrides, error) {
	var o element.Overrides
	if err := json.NewDecoder(r).Decode(&o); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode overrides")
	}
	return o, nil
}

// ImportOverrides reads overrides from a .json or .toml file.
func ImportOverrides(ctx context.Context, path string) (element.Overrides, error) {
	data, err := os.ReadFile(path)
	observability.IO().OnRead(ctx, path, len(data), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadOverrides(bytes.NewReader(data))
	case ".toml":
		var o element.Overrides
		if err := toml.Unmarshal(data, &o); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", path)
		}
		return o, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported overrides file %s (want .json or .toml)", path)
}
