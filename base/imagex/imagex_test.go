// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	for ext, want := range map[string]Formats{".png": PNG, "JPG": JPEG, ".tif": TIFF, "bmp": BMP, ".webp": WebP} {
		f, err := ExtToFormat(ext)
		assert.NoError(t, err)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".xcf")
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 0xff}), image.Point{}, draw.Src)
	img.Set(0, 0, color.RGBA{0xa0, 0xa0, 0, 0xff})
	img.Set(2, 1, color.RGBA{0, 0xa0, 0xa0, 0xff})
	dir := t.TempDir()
	for _, name := range []string{"snap.png", "snap.bmp", "snap.tiff"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, Save(img, fn))
		got, f, err := Open(fn)
		require.NoError(t, err, name)
		want, _ := ExtToFormat(filepath.Ext(name))
		assert.Equal(t, want, f)
		assert.Equal(t, img.Bounds(), got.Bounds())
		for _, p := range []image.Point{{0, 0}, {2, 1}, {1, 1}} {
			assert.Equal(t, img.RGBAAt(p.X, p.Y), color.RGBAModel.Convert(got.At(p.X, p.Y)), name)
		}
	}
	assert.Error(t, Save(img, filepath.Join(dir, "snap.webp")))
}
