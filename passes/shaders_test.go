// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package passes

import (
	"strings"
	"testing"

	"github.com/gogpu/lightfield/render"
)

var passShaders = []struct {
	name   string
	source string
}{
	{"rain", rainShaderSource},
	{"bloom_blur", bloomBlurShaderSource},
	{"bloom_combine", bloomCombineShaderSource},
	{"palette", paletteShaderSource},
	{"stripe", stripeShaderSource},
	{"image", imageShaderSource},
	{"resurrection", resurrectionShaderSource},
	{"quilt", quiltShaderSource},
}

func TestShaderSourcesContainEntryPoint(t *testing.T) {
	for _, s := range passShaders {
		if !strings.Contains(s.source, "fn fs_main(frag: VertexOutput)") {
			t.Errorf("%s shader has no fs_main entry point", s.name)
		}
	}
}

func TestShadersCompile(t *testing.T) {
	for _, s := range passShaders {
		t.Run(s.name, func(t *testing.T) {
			words, err := render.DefaultCompiler(s.name, render.FullScreenVertexSource()+s.source)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if len(words) == 0 || words[0] != 0x07230203 {
				t.Errorf("output is not SPIR-V")
			}
		})
	}
}
