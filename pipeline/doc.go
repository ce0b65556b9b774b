// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pipeline defines the pass contract and builds ordered pass chains.
//
// A pipeline is built once at startup from an ordered list of factories.
// Each factory receives the shared Context and the outputs of the pass
// built before it, so a pass can only read from passes earlier in the
// chain. The pipeline never changes after Build: only the internal state
// of its passes does.
//
// # Readiness
//
// Passes load resources asynchronously. Construction returns at once and
// the pass resolves its Ready signal when loading completes. The frame
// driver calls Pipeline.AwaitReady before the first frame; any load
// failure aborts startup.
//
// # Effects
//
// The effect stage is chosen by name from an EffectTable. Unknown names
// select the plain palette effect.
package pipeline
