// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/lightfield/internal/logging"
)

// Feature names an optional hardware capability of a graphics backend.
type Feature string

const (
	// FeatureHalfFloatTexture allows RGBA16Float render targets.
	FeatureHalfFloatTexture Feature = "half-float-texture"

	// FeatureHalfFloatLinear allows linear filtering of half-float textures.
	FeatureHalfFloatLinear Feature = "half-float-linear"

	// FeatureColorBufferHalfFloat allows rendering into half-float color buffers.
	FeatureColorBufferHalfFloat Feature = "color-buffer-half-float"

	// FeatureColorBufferFloat allows rendering into float color buffers.
	FeatureColorBufferFloat Feature = "color-buffer-float"

	// FeatureStandardDerivatives enables dFdx/dFdy in fragment programs.
	FeatureStandardDerivatives Feature = "standard-derivatives"
)

// RequiredFeatures must all be supported or startup fails.
var RequiredFeatures = []Feature{
	FeatureHalfFloatTexture,
	FeatureHalfFloatLinear,
}

// OptionalFeatures are requested best-effort. Some drivers misreport them
// as missing while supporting them, so their absence is only logged.
var OptionalFeatures = []Feature{
	FeatureColorBufferHalfFloat,
	FeatureColorBufferFloat,
	FeatureStandardDerivatives,
}

// ErrMissingFeature is returned by CheckFeatures when a required feature
// is not supported.
var ErrMissingFeature = errors.New("render: required feature not supported")

// CheckFeatures verifies that g supports every required feature.
func CheckFeatures(g Graphics) error {
	if g == nil {
		return errors.New("render: nil graphics")
	}
	var missing []string
	for _, f := range RequiredFeatures {
		if !g.Supports(f) {
			missing = append(missing, string(f))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFeature, strings.Join(missing, ", "))
	}
	for _, f := range OptionalFeatures {
		if !g.Supports(f) {
			logging.Logger().Warn("optional graphics feature not reported", "feature", string(f))
		}
	}
	return nil
}
