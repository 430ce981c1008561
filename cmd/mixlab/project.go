package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spboyer/mixlab/internal/artifacts"
	"github.com/spboyer/mixlab/internal/mix"
	"github.com/spboyer/mixlab/internal/prediction"
	"github.com/spboyer/mixlab/internal/projectconfig"
	"github.com/spboyer/mixlab/internal/spinner"
)

// loadProject reads .mixlab.yaml from the working directory upward and
// applies the --artifacts override.
func loadProject(cmd *cobra.Command) (*projectconfig.ProjectConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := projectconfig.Load(wd)
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("artifacts"); dir != "" {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(wd, dir)
		}
		cfg.Artifacts.Dir = dir
		// An explicit directory always wins over a configured blob container.
		cfg.Artifacts.Blob = projectconfig.BlobConfig{}
	}
	return cfg, nil
}

func artifactNames(cfg *projectconfig.ProjectConfig) artifacts.Names {
	return artifacts.Names{
		Model:    cfg.Artifacts.Model,
		Scaler:   cfg.Artifacts.Scaler,
		Features: cfg.Artifacts.Features,
	}
}

// artifactSource picks the blob container when one is configured and the
// local artifacts directory otherwise.
func artifactSource(cfg *projectconfig.ProjectConfig) (artifacts.Source, error) {
	blob := cfg.Artifacts.Blob
	if blob.AccountURL == "" {
		return artifacts.DirSource{Dir: cfg.ArtifactsPath()}, nil
	}
	if blob.Container == "" {
		return nil, fmt.Errorf("artifacts.blob.container is required when account_url is set")
	}
	src, err := artifacts.NewBlobSource(blob.AccountURL, blob.Container, blob.Prefix)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// loadService loads the artifacts once. The returned service is never nil;
// a load failure leaves it in the model-unavailable state.
func loadService(cmd *cobra.Command, cfg *projectconfig.ProjectConfig) (*prediction.Service, error) {
	src, err := artifactSource(cfg)
	if err != nil {
		return nil, err
	}

	var sp *spinner.Spinner
	if _, remote := src.(*artifacts.BlobSource); remote && isTerminal(cmd.ErrOrStderr()) {
		sp = spinner.Start(cmd.ErrOrStderr(), "Loading model from "+src.String())
	}
	svc := prediction.LoadService(cmd.Context(), src, artifactNames(cfg))
	if sp != nil {
		if svc.Ready() != nil {
			sp.Stop("✗ model unavailable")
		} else {
			sp.Stop("✓ model loaded")
		}
	}
	return svc, nil
}

func formSpec(cfg *projectconfig.ProjectConfig) mix.FormSpec {
	return mix.NewFormSpec(cfg.Form.DosageDefault, cfg.Form.DosageStep)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
