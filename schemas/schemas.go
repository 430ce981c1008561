// Package schemas embeds the JSON Schemas for model artifact documents.
package schemas

import _ "embed"

//go:embed model.schema.json
var ModelSchemaJSON string

//go:embed scaler.schema.json
var ScalerSchemaJSON string

//go:embed features.schema.json
var FeaturesSchemaJSON string
