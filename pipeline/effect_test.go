// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import "testing"

func TestParseEffect(t *testing.T) {
	tests := []struct {
		name   string
		want   Effect
		wantOK bool
	}{
		{"plain", EffectPlain, true},
		{"none", EffectNone, true},
		{"stripes", EffectStripes, true},
		{"pride", EffectStripes, true},
		{"trans", EffectStripes, true},
		{"transPride", EffectStripes, true},
		{"customStripes", EffectStripes, true},
		{"image", EffectImage, true},
		{"resurrection", EffectResurrection, true},
		{"resurrections", EffectResurrection, true},
		{"", EffectPlain, false},
		{"Plain", EffectPlain, false},
		{"mirror", EffectPlain, false},
	}
	for _, tt := range tests {
		got, ok := ParseEffect(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseEffect(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestEffectString(t *testing.T) {
	for _, e := range []Effect{EffectPlain, EffectNone, EffectStripes, EffectImage, EffectResurrection} {
		got, ok := ParseEffect(e.String())
		if !ok || got != e {
			t.Errorf("ParseEffect(%v.String()) = %v, %v", e, got, ok)
		}
	}
	if Effect(99).String() != "unknown" {
		t.Errorf("Effect(99).String() = %q", Effect(99).String())
	}
}

// namedFactory returns a factory building a pass with the given name.
func namedFactory(name string) Factory {
	return func(Context, Outputs) Pass {
		return &fakePass{name: name, ready: Resolved(nil)}
	}
}

func TestEffectTableLookup(t *testing.T) {
	table := EffectTable{
		EffectPlain:   namedFactory("palette"),
		EffectNone:    nil,
		EffectStripes: namedFactory("stripe"),
	}
	tests := []struct {
		name     string
		wantPass string
	}{
		{"plain", "palette"},
		{"pride", "stripe"},
		{"unknown-effect", "palette"},
		{"image", "palette"},
		{"none", ""},
	}
	for _, tt := range tests {
		f := table.Lookup(tt.name)
		if tt.wantPass == "" {
			if f != nil {
				t.Errorf("Lookup(%q) should return a nil factory", tt.name)
			}
			continue
		}
		if f == nil {
			t.Fatalf("Lookup(%q) = nil", tt.name)
		}
		if got := f(Context{}, nil).Name(); got != tt.wantPass {
			t.Errorf("Lookup(%q) builds %q, want %q", tt.name, got, tt.wantPass)
		}
	}
}

func TestEffectTableFallbackIsDeterministic(t *testing.T) {
	table := EffectTable{EffectPlain: namedFactory("palette")}
	for range 5 {
		if got := table.Lookup("does-not-exist")(Context{}, nil).Name(); got != "palette" {
			t.Fatalf("fallback built %q, want palette", got)
		}
	}
}
