// Package web holds the static mix form page served by mixlab serve.
package web

import "embed"

// Assets contains the page under dist/.
//
//go:embed dist
var Assets embed.FS
