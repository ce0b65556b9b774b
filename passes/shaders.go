// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package passes

import _ "embed"

//go:embed shaders/rain.wgsl
var rainShaderSource string

//go:embed shaders/bloom_blur.wgsl
var bloomBlurShaderSource string

//go:embed shaders/bloom_combine.wgsl
var bloomCombineShaderSource string

//go:embed shaders/palette.wgsl
var paletteShaderSource string

//go:embed shaders/stripe.wgsl
var stripeShaderSource string

//go:embed shaders/image.wgsl
var imageShaderSource string

//go:embed shaders/resurrection.wgsl
var resurrectionShaderSource string

//go:embed shaders/quilt.wgsl
var quiltShaderSource string
