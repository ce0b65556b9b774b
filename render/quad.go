// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// QuadGeometry holds the vertex attributes of a quad drawn as a
// triangle strip: bottom-left, bottom-right, top-left, top-right.
type QuadGeometry struct {
	// Positions are clip-space vertex positions.
	Positions [4][2]float32

	// TexCoords are the per-vertex texture coordinates.
	TexCoords [4][2]float32
}

// FullScreenGeometry returns a quad covering the whole viewport with
// texture coordinates spanning [0, 1].
func FullScreenGeometry() QuadGeometry {
	return QuadGeometry{
		Positions: [4][2]float32{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}},
		TexCoords: [4][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	}
}

// TexCoordAt interpolates the texture coordinates at normalized viewport
// position (s, t), where (0, 0) is the bottom-left corner.
func (q *QuadGeometry) TexCoordAt(s, t float32) (u, v float32) {
	tc := q.TexCoords
	bottomU := tc[0][0] + (tc[1][0]-tc[0][0])*s
	bottomV := tc[0][1] + (tc[1][1]-tc[0][1])*s
	topU := tc[2][0] + (tc[3][0]-tc[2][0])*s
	topV := tc[2][1] + (tc[3][1]-tc[2][1])*s
	return bottomU + (topU-bottomU)*t, bottomV + (topV-bottomV)*t
}

// FullScreenQuad gives passes a "draw over the whole frame" scope.
//
// The quad is created once at startup and shared by reference; no pass
// owns it. Scopes nest: the frame driver opens one scope around the whole
// pass sequence and passes may open their own inside it.
//
// FullScreenQuad is NOT safe for concurrent use.
type FullScreenQuad struct {
	graphics Graphics
	geometry QuadGeometry
	depth    int
}

// NewFullScreenQuad sets up the quad geometry for g.
func NewFullScreenQuad(g Graphics) *FullScreenQuad {
	return &FullScreenQuad{
		graphics: g,
		geometry: FullScreenGeometry(),
	}
}

// Scope runs fn with the quad bound. The binding is released when the
// outermost scope returns, even if fn panics.
func (q *FullScreenQuad) Scope(fn func()) {
	if q.depth == 0 {
		q.graphics.BindQuad(&q.geometry)
	}
	q.depth++
	defer func() {
		q.depth--
		if q.depth == 0 {
			q.graphics.UnbindQuad()
		}
	}()
	fn()
}

// Active reports whether a scope is currently open.
func (q *FullScreenQuad) Active() bool {
	return q.depth > 0
}
