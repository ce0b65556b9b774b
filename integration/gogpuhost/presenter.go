// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpuhost

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/lightfield/internal/logging"
	"github.com/gogpu/lightfield/render"
)

// Presentation errors.
var (
	// ErrPresenterClosed is returned by Present after Close.
	ErrPresenterClosed = errors.New("gogpuhost: presenter is closed")

	// ErrNilScreen is returned by Present for a nil screen target.
	ErrNilScreen = errors.New("gogpuhost: nil screen target")

	// ErrInvalidRenderer is returned when the draw context has no
	// texture creator.
	ErrInvalidRenderer = errors.New("gogpuhost: draw context has no gpucontext.TextureCreator")

	// ErrInvalidTexture is returned when the created texture cannot be
	// drawn.
	ErrInvalidTexture = errors.New("gogpuhost: texture does not implement gpucontext.Texture")
)

// textureUpdater matches gpucontext.TextureUpdater.
type textureUpdater interface {
	UpdateData(data []byte) error
}

// textureDestroyer matches the gogpu texture Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// newTextureFunc creates a window texture from RGBA pixels.
type newTextureFunc func(width, height int, data []byte) (any, error)

// Presenter uploads a screen target into a window texture and draws it.
//
// The texture is created on first use and recreated when the screen size
// changes. The replaced texture is destroyed only after its successor was
// created, since in-flight command buffers may still sample it.
//
// Presenter is NOT safe for concurrent use.
type Presenter struct {
	texture    any
	oldTexture any
	width      int
	height     int
	uploads    int
	closed     bool
}

// NewPresenter creates a presenter. Textures are created lazily.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Present uploads screen and draws it at the window origin.
//
// The dc parameter should be obtained from gogpu.Context.AsTextureDrawer().
func (p *Presenter) Present(dc gpucontext.TextureDrawer, screen *render.PixmapTarget) error {
	if p.closed {
		return ErrPresenterClosed
	}
	creator := dc.TextureCreator()
	if creator == nil {
		return ErrInvalidRenderer
	}
	tex, err := p.upload(screen, func(width, height int, data []byte) (any, error) {
		return creator.NewTextureFromRGBA(width, height, data)
	})
	if err != nil {
		return err
	}
	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidTexture
	}
	return dc.DrawTexture(gpuTex, 0, 0)
}

// upload brings the window texture up to date with screen and returns it.
func (p *Presenter) upload(screen *render.PixmapTarget, newTexture newTextureFunc) (any, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	w, h := screen.Width(), screen.Height()
	data := screen.Pixels()

	if p.texture != nil && (w != p.width || h != p.height) {
		logging.Logger().Debug("gogpuhost: screen resized", "width", w, "height", h)
		p.destroy(p.oldTexture)
		p.oldTexture = p.texture
		p.texture = nil
	}

	if p.texture == nil {
		tex, err := newTexture(w, h, data)
		if err != nil {
			return nil, fmt.Errorf("gogpuhost: NewTextureFromRGBA failed: %w", err)
		}
		p.texture = tex
		p.width, p.height = w, h
		p.uploads++

		// The upload waited for the GPU, so the old texture is idle now.
		p.destroy(p.oldTexture)
		p.oldTexture = nil
		return tex, nil
	}

	if updater, ok := p.texture.(textureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return nil, fmt.Errorf("gogpuhost: texture update failed: %w", err)
		}
		p.uploads++
	}
	return p.texture, nil
}

// Uploads returns the number of texture uploads so far.
func (p *Presenter) Uploads() int {
	return p.uploads
}

// Size returns the size of the current window texture.
func (p *Presenter) Size() (width, height int) {
	return p.width, p.height
}

// Close destroys the window textures. Close is idempotent.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.destroy(p.oldTexture)
	p.destroy(p.texture)
	p.oldTexture, p.texture = nil, nil
	return nil
}

func (p *Presenter) destroy(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
