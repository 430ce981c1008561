package model

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Kind names a backend in an artifact document.
type Kind string

const (
	KindLinear         Kind = "linear"
	KindForest         Kind = "forest"
	KindStandardScaler Kind = "standard_scaler"
	KindIdentity       Kind = "identity"
)

// Document is the serialized form of a predictor or transformer.
type Document struct {
	Kind   Kind           `json:"kind" yaml:"kind"`
	Params map[string]any `json:"params" yaml:"params"`
}

// DecodePredictor builds the predictor a document describes.
func DecodePredictor(doc Document) (Predictor, error) {
	switch doc.Kind {
	case KindLinear:
		var args LinearArgs
		if err := decodeParams(doc.Params, &args); err != nil {
			return nil, fmt.Errorf("decoding linear model: %w", err)
		}
		return NewLinearRegressor(args)
	case KindForest:
		var args ForestArgs
		if err := decodeParams(doc.Params, &args); err != nil {
			return nil, fmt.Errorf("decoding forest model: %w", err)
		}
		return NewForestRegressor(args)
	default:
		return nil, fmt.Errorf("unsupported predictor kind %q", doc.Kind)
	}
}

// DecodeTransformer builds the transformer a document describes.
func DecodeTransformer(doc Document) (Transformer, error) {
	switch doc.Kind {
	case KindStandardScaler:
		var args ScalerArgs
		if err := decodeParams(doc.Params, &args); err != nil {
			return nil, fmt.Errorf("decoding standard scaler: %w", err)
		}
		return NewStandardScaler(args)
	case KindIdentity:
		return IdentityTransformer{}, nil
	default:
		return nil, fmt.Errorf("unsupported transformer kind %q", doc.Kind)
	}
}

func decodeParams(params map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(params)
}
