// Package validation checks model artifact documents against their
// embedded JSON Schemas before they are decoded.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spboyer/mixlab/schemas"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// DocumentKind selects the schema a document is validated against.
type DocumentKind string

const (
	DocumentModel    DocumentKind = "model"
	DocumentScaler   DocumentKind = "scaler"
	DocumentFeatures DocumentKind = "features"
)

// defaultPrinter is used to format schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

var compiled map[DocumentKind]*jsonschema.Schema

func init() {
	compiled = map[DocumentKind]*jsonschema.Schema{
		DocumentModel:    mustCompileSchema(schemas.ModelSchemaJSON, "model.schema.json"),
		DocumentScaler:   mustCompileSchema(schemas.ScalerSchemaJSON, "scaler.schema.json"),
		DocumentFeatures: mustCompileSchema(schemas.FeaturesSchemaJSON, "features.schema.json"),
	}
}

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	var schemaDoc any
	if err := json.Unmarshal([]byte(raw), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// ValidateJSONBytes validates a JSON document. A parse failure is reported
// as a single error string.
func ValidateJSONBytes(kind DocumentKind, data []byte) []string {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return []string{fmt.Sprintf("JSON parse error: %v", err)}
	}
	return ValidateDocument(kind, doc)
}

// ValidateYAMLBytes validates a YAML document.
func ValidateYAMLBytes(kind DocumentKind, data []byte) []string {
	var yamlDoc any
	if err := yaml.Unmarshal(data, &yamlDoc); err != nil {
		return []string{fmt.Sprintf("YAML parse error: %v", err)}
	}
	return ValidateDocument(kind, convertToJSONCompatible(yamlDoc))
}

// ValidateDocument validates an already decoded document.
func ValidateDocument(kind DocumentKind, instance any) []string {
	schema, ok := compiled[kind]
	if !ok {
		return []string{fmt.Sprintf("no schema for document kind %q", kind)}
	}
	return validateAgainstSchema(schema, instance)
}

func validateAgainstSchema(schema *jsonschema.Schema, instance any) []string {
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}

// convertToJSONCompatible rewrites YAML maps with non-string keys so the
// schema validator sees JSON objects.
func convertToJSONCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, v2 := range val {
			result[k] = convertToJSONCompatible(v2)
		}
		return result
	case map[any]any:
		result := make(map[string]any, len(val))
		for k, v2 := range val {
			result[fmt.Sprint(k)] = convertToJSONCompatible(v2)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, v2 := range val {
			result[i] = convertToJSONCompatible(v2)
		}
		return result
	default:
		return val
	}
}
