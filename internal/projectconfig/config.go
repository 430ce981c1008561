// Package projectconfig provides the ProjectConfig struct and loader for
// .mixlab.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up by Load.
const FileName = ".mixlab.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultArtifactsDir  = "models_prod/"
	DefaultModelFile     = "model.json"
	DefaultScalerFile    = "scaler.json"
	DefaultFeaturesFile  = "features.json"
	DefaultServerPort    = 8501
	DefaultDosage        = 200
	DefaultDosageStep    = 10
	DefaultSessionLogDir = ".mixlab/sessions"
)

// BlobConfig points at artifacts stored in Azure Blob Storage. It is used
// instead of the artifacts directory when AccountURL is set.
type BlobConfig struct {
	AccountURL string `yaml:"account_url,omitempty"`
	Container  string `yaml:"container,omitempty"`
	Prefix     string `yaml:"prefix,omitempty"`
}

// ArtifactsConfig locates the model, scaler and feature list.
type ArtifactsConfig struct {
	Dir      string     `yaml:"dir,omitempty"`
	Model    string     `yaml:"model,omitempty"`
	Scaler   string     `yaml:"scaler,omitempty"`
	Features string     `yaml:"features,omitempty"`
	Blob     BlobConfig `yaml:"blob,omitempty"`
}

// ServerConfig holds web form server settings.
type ServerConfig struct {
	Port      int   `yaml:"port,omitempty"`
	NoBrowser *bool `yaml:"no_browser,omitempty"`
}

// FormConfig holds the dosage input defaults.
type FormConfig struct {
	DosageDefault float64 `yaml:"dosage_default,omitempty"`
	DosageStep    float64 `yaml:"dosage_step,omitempty"`
}

// SessionConfig controls the NDJSON log of interactive sessions.
type SessionConfig struct {
	Log *bool  `yaml:"log,omitempty"`
	Dir string `yaml:"dir,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .mixlab.yaml.
type ProjectConfig struct {
	Artifacts ArtifactsConfig `yaml:"artifacts,omitempty"`
	Server    ServerConfig    `yaml:"server,omitempty"`
	Form      FormConfig      `yaml:"form,omitempty"`
	Session   SessionConfig   `yaml:"session,omitempty"`

	// Root is the directory holding the config file, or the start
	// directory when none was found. Relative paths resolve against it.
	Root string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Artifacts: ArtifactsConfig{
			Dir:      DefaultArtifactsDir,
			Model:    DefaultModelFile,
			Scaler:   DefaultScalerFile,
			Features: DefaultFeaturesFile,
		},
		Server: ServerConfig{
			Port:      DefaultServerPort,
			NoBrowser: boolPtr(false),
		},
		Form: FormConfig{
			DosageDefault: DefaultDosage,
			DosageStep:    DefaultDosageStep,
		},
		Session: SessionConfig{
			Log: boolPtr(false),
			Dir: DefaultSessionLogDir,
		},
	}
}

// Load finds .mixlab.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", startDir, err)
	}
	cfg.Root = absDir

	data, root, err := findConfigFile(absDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	cfg.Root = root
	return cfg, nil
}

// ArtifactsPath resolves the artifacts directory against Root.
func (c *ProjectConfig) ArtifactsPath() string {
	return c.resolve(c.Artifacts.Dir)
}

// SessionLogPath resolves the session log directory against Root.
func (c *ProjectConfig) SessionLogPath() string {
	return c.resolve(c.Session.Dir)
}

func (c *ProjectConfig) resolve(p string) string {
	if filepath.IsAbs(p) || c.Root == "" {
		return p
	}
	return filepath.Join(c.Root, p)
}

// findConfigFile walks up from dir looking for .mixlab.yaml (max 10 levels)
// and returns its contents and directory. Returns os.ErrNotExist if no
// config file is found.
func findConfigFile(dir string) ([]byte, string, error) {
	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, dir, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, "", os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Artifacts
	if src.Artifacts.Dir != "" {
		dst.Artifacts.Dir = src.Artifacts.Dir
	}
	if src.Artifacts.Model != "" {
		dst.Artifacts.Model = src.Artifacts.Model
	}
	if src.Artifacts.Scaler != "" {
		dst.Artifacts.Scaler = src.Artifacts.Scaler
	}
	if src.Artifacts.Features != "" {
		dst.Artifacts.Features = src.Artifacts.Features
	}
	if src.Artifacts.Blob.AccountURL != "" {
		dst.Artifacts.Blob.AccountURL = src.Artifacts.Blob.AccountURL
	}
	if src.Artifacts.Blob.Container != "" {
		dst.Artifacts.Blob.Container = src.Artifacts.Blob.Container
	}
	if src.Artifacts.Blob.Prefix != "" {
		dst.Artifacts.Blob.Prefix = src.Artifacts.Blob.Prefix
	}

	// Server
	if src.Server.Port != 0 {
		dst.Server.Port = src.Server.Port
	}
	if src.Server.NoBrowser != nil {
		dst.Server.NoBrowser = src.Server.NoBrowser
	}

	// Form
	if src.Form.DosageDefault != 0 {
		dst.Form.DosageDefault = src.Form.DosageDefault
	}
	if src.Form.DosageStep != 0 {
		dst.Form.DosageStep = src.Form.DosageStep
	}

	// Session
	if src.Session.Log != nil {
		dst.Session.Log = src.Session.Log
	}
	if src.Session.Dir != "" {
		dst.Session.Dir = src.Session.Dir
	}
}

func boolPtr(b bool) *bool {
	return &b
}
