package artifacts

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/spboyer/mixlab/internal/model"
	"github.com/spboyer/mixlab/internal/validation"
)

type format int

const (
	formatJSON format = iota
	formatYAML
	formatText
)

// decompress wraps r according to a trailing .gz or .zst extension and
// returns the name with that extension stripped.
func decompress(name string, r io.Reader) (io.ReadCloser, string, error) {
	switch path.Ext(name) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, name, err
		}
		return zr, strings.TrimSuffix(name, ".gz"), nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, name, err
		}
		return zr.IOReadCloser(), strings.TrimSuffix(name, ".zst"), nil
	default:
		return io.NopCloser(r), name, nil
	}
}

func formatOf(name string) (format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".txt":
		return formatText, nil
	default:
		return 0, fmt.Errorf("unsupported artifact extension %q", path.Ext(name))
	}
}

// schemaErrors reports the first few schema violations as one error.
func schemaErrors(errs []string) error {
	const limit = 5
	if len(errs) > limit {
		errs = append(errs[:limit:limit], fmt.Sprintf("... and %d more", len(errs)-limit))
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(errs, "; "))
}

func decodeDocument(kind validation.DocumentKind, f format, data []byte) (model.Document, error) {
	var doc model.Document
	switch f {
	case formatJSON:
		if errs := validation.ValidateJSONBytes(kind, data); len(errs) > 0 {
			return doc, schemaErrors(errs)
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return doc, err
		}
	case formatYAML:
		if errs := validation.ValidateYAMLBytes(kind, data); len(errs) > 0 {
			return doc, schemaErrors(errs)
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return doc, err
		}
	default:
		return doc, fmt.Errorf("%s documents must be JSON or YAML", kind)
	}
	return doc, nil
}

func decodeFeatures(f format, data []byte) ([]string, error) {
	var features []string
	switch f {
	case formatJSON:
		if errs := validation.ValidateJSONBytes(validation.DocumentFeatures, data); len(errs) > 0 {
			return nil, schemaErrors(errs)
		}
		if err := json.Unmarshal(data, &features); err != nil {
			return nil, err
		}
	case formatYAML:
		if errs := validation.ValidateYAMLBytes(validation.DocumentFeatures, data); len(errs) > 0 {
			return nil, schemaErrors(errs)
		}
		if err := yaml.Unmarshal(data, &features); err != nil {
			return nil, err
		}
	case formatText:
		sc := bufio.NewScanner(bytes.NewReader(data))
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			features = append(features, line)
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
		generic := make([]any, len(features))
		for i, name := range features {
			generic[i] = name
		}
		if errs := validation.ValidateDocument(validation.DocumentFeatures, generic); len(errs) > 0 {
			return nil, schemaErrors(errs)
		}
	}
	return features, nil
}
