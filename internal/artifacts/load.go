package artifacts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/spboyer/mixlab/internal/model"
	"github.com/spboyer/mixlab/internal/validation"
)

var (
	// ErrArtifactNotFound is returned when an artifact does not exist.
	ErrArtifactNotFound = errors.New("artifact not found")
	// ErrArtifactCorrupt is returned when an artifact cannot be parsed or
	// fails schema validation.
	ErrArtifactCorrupt = errors.New("artifact corrupt")
)

// Artifact names used in LoadError.
const (
	ArtifactModel    = "model"
	ArtifactScaler   = "scaler"
	ArtifactFeatures = "features"
)

// ErrorKind classifies a load failure.
type ErrorKind string

const (
	KindNotFound       ErrorKind = "not_found"
	KindCorrupt        ErrorKind = "corrupt"
	KindSchemaMismatch ErrorKind = "schema_mismatch"
	KindIO             ErrorKind = "io"
)

// LoadError reports which artifact failed to load and why.
type LoadError struct {
	Artifact string
	Name     string
	Kind     ErrorKind
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s artifact %q (%s): %v", e.Artifact, e.Name, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is lets callers match on the kind sentinels regardless of the cause.
func (e *LoadError) Is(target error) bool {
	switch e.Kind {
	case KindNotFound:
		return target == ErrArtifactNotFound
	case KindCorrupt:
		return target == ErrArtifactCorrupt
	case KindSchemaMismatch:
		return target == model.ErrSchemaMismatch
	}
	return false
}

// Names are the artifact file (or blob) names within a Source.
type Names struct {
	Model    string
	Scaler   string
	Features string
}

// DefaultNames returns the stock artifact names.
func DefaultNames() Names {
	return Names{
		Model:    "model.json",
		Scaler:   "scaler.json",
		Features: "features.json",
	}
}

// Load fetches all three artifacts concurrently and cross-checks their
// dimensions. The returned Artifacts are immutable.
func Load(ctx context.Context, src Source, names Names) (*model.Artifacts, error) {
	var (
		predictor   model.Predictor
		transformer model.Transformer
		features    []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		predictor, err = loadPredictor(gctx, src, names.Model)
		return err
	})
	g.Go(func() error {
		var err error
		transformer, err = loadTransformer(gctx, src, names.Scaler)
		return err
	})
	g.Go(func() error {
		var err error
		features, err = loadFeatures(gctx, src, names.Features)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a, err := model.NewArtifacts(predictor, transformer, features)
	if err != nil {
		artifact, name := ArtifactModel, names.Model
		var mismatch *model.SchemaMismatchError
		if errors.As(err, &mismatch) && mismatch.Component == "transformer" {
			artifact, name = ArtifactScaler, names.Scaler
		}
		return nil, &LoadError{Artifact: artifact, Name: name, Kind: KindSchemaMismatch, Err: err}
	}

	if unresolved := model.UnresolvedFeatures(features); len(unresolved) > 0 {
		slog.Warn("feature list names fields the mix form does not collect; predictions will fail",
			"features", unresolved)
	}
	slog.Info("model artifacts loaded", "source", src.String(), "features", len(features))
	return a, nil
}

func read(ctx context.Context, src Source, artifact, name string) ([]byte, format, error) {
	fail := func(kind ErrorKind, err error) ([]byte, format, error) {
		return nil, 0, &LoadError{Artifact: artifact, Name: name, Kind: kind, Err: err}
	}

	rc, err := src.Open(ctx, name)
	if err != nil {
		if errors.Is(err, ErrArtifactNotFound) {
			return fail(KindNotFound, err)
		}
		return fail(KindIO, err)
	}
	defer rc.Close() //nolint:errcheck

	zr, plain, err := decompress(name, rc)
	if err != nil {
		return fail(KindCorrupt, fmt.Errorf("decompressing: %w", err))
	}
	defer zr.Close() //nolint:errcheck

	f, err := formatOf(plain)
	if err != nil {
		return fail(KindCorrupt, err)
	}

	data, err := io.ReadAll(zr)
	if err != nil {
		if ctx.Err() != nil {
			return fail(KindIO, err)
		}
		return fail(KindCorrupt, fmt.Errorf("reading: %w", err))
	}
	slog.Debug("artifact fetched", "artifact", artifact, "name", name, "bytes", len(data))
	return data, f, nil
}

func loadPredictor(ctx context.Context, src Source, name string) (model.Predictor, error) {
	data, f, err := read(ctx, src, ArtifactModel, name)
	if err != nil {
		return nil, err
	}
	doc, err := decodeDocument(validation.DocumentModel, f, data)
	if err != nil {
		return nil, &LoadError{Artifact: ArtifactModel, Name: name, Kind: KindCorrupt, Err: err}
	}
	p, err := model.DecodePredictor(doc)
	if err != nil {
		return nil, &LoadError{Artifact: ArtifactModel, Name: name, Kind: KindCorrupt, Err: err}
	}
	return p, nil
}

func loadTransformer(ctx context.Context, src Source, name string) (model.Transformer, error) {
	data, f, err := read(ctx, src, ArtifactScaler, name)
	if err != nil {
		return nil, err
	}
	doc, err := decodeDocument(validation.DocumentScaler, f, data)
	if err != nil {
		return nil, &LoadError{Artifact: ArtifactScaler, Name: name, Kind: KindCorrupt, Err: err}
	}
	t, err := model.DecodeTransformer(doc)
	if err != nil {
		return nil, &LoadError{Artifact: ArtifactScaler, Name: name, Kind: KindCorrupt, Err: err}
	}
	return t, nil
}

func loadFeatures(ctx context.Context, src Source, name string) ([]string, error) {
	data, f, err := read(ctx, src, ArtifactFeatures, name)
	if err != nil {
		return nil, err
	}
	features, err := decodeFeatures(f, data)
	if err != nil {
		return nil, &LoadError{Artifact: ArtifactFeatures, Name: name, Kind: KindCorrupt, Err: err}
	}
	return features, nil
}
