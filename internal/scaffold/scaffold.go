// Package scaffold writes a starter project for mixlab init: a
// .mixlab.yaml and a small demo artifact set that loads and predicts.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrExists is returned when a file would be overwritten without force.
var ErrExists = errors.New("file already exists")

// ValidateDir rejects artifact directory names that escape the project.
func ValidateDir(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("artifacts directory must not be empty")
	}
	if filepath.IsAbs(name) {
		return nil
	}
	cleaned := filepath.Clean(name)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("artifacts directory %q is outside the project", name)
	}
	return nil
}

// ProjectYAML returns a default .mixlab.yaml pointing at artifactsDir.
func ProjectYAML(artifactsDir string) string {
	return fmt.Sprintf(`# mixlab project configuration
artifacts:
  dir: %s
  model: model.json
  scaler: scaler.json
  features: features.json
  # Load from Azure Blob Storage instead of dir:
  # blob:
  #   account_url: https://<account>.blob.core.windows.net
  #   container: models
  #   prefix: prod

server:
  port: 8501
  no_browser: false

form:
  dosage_default: 200
  dosage_step: 10

session:
  log: false
  dir: .mixlab/sessions
`, artifactsDir)
}

// DemoArtifacts returns a linear model over standardized features with
// plausible coefficients. It is meant for trying the tool, not for design.
func DemoArtifacts() map[string]string {
	return map[string]string{
		"features.json": demoFeatures,
		"scaler.json":   demoScaler,
		"model.json":    demoModel,
	}
}

const demoFeatures = `["Cement", "Slag", "FlyAsh", "Water", "Superplasticizer", "CoarseAggregate", "FineAggregate", "Age"]
`

const demoScaler = `{
  "kind": "standard_scaler",
  "params": {
    "mean": [281.2, 73.9, 54.2, 181.6, 6.2, 972.9, 773.6, 45.7],
    "scale": [104.5, 86.3, 64.0, 21.4, 6.0, 77.8, 80.2, 63.2]
  }
}
`

const demoModel = `{
  "kind": "linear",
  "params": {
    "coefficients": [12.54, 8.975, 5.632, -3.21, 1.746, 1.4, 1.604, 7.205],
    "intercept": 35.657,
    "importances": [0.30, 0.08, 0.03, 0.11, 0.07, 0.03, 0.05, 0.33]
  }
}
`

// Files returns the full starter project, keyed by path relative to the
// project root.
func Files(artifactsDir string) map[string]string {
	files := map[string]string{
		".mixlab.yaml": ProjectYAML(artifactsDir),
	}
	for name, content := range DemoArtifacts() {
		files[filepath.Join(artifactsDir, name)] = content
	}
	return files
}

// Write creates the starter project under root and returns the written
// paths in order. Existing files are left alone unless force is set.
func Write(root, artifactsDir string, force bool) ([]string, error) {
	if err := ValidateDir(artifactsDir); err != nil {
		return nil, err
	}
	files := Files(artifactsDir)

	paths := make([]string, 0, len(files))
	for rel := range files {
		paths = append(paths, rel)
	}
	sort.Strings(paths)

	if !force {
		for _, rel := range paths {
			p := filepath.Join(root, rel)
			if _, err := os.Stat(p); err == nil {
				return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, p)
			}
		}
	}

	written := make([]string, 0, len(paths))
	for _, rel := range paths {
		p := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return written, fmt.Errorf("creating %s: %w", filepath.Dir(p), err)
		}
		if err := os.WriteFile(p, []byte(files[rel]), 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", p, err)
		}
		written = append(written, p)
	}
	return written, nil
}
