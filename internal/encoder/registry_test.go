package encoder

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		in   string
		want string
	}{
		{"png", "png"},
		{"PNG", "png"},
		{".jpg", "jpeg"},
		{"jpeg", "jpeg"},
	}
	for _, tc := range tests {
		enc := r.Get(tc.in)
		require.NotNil(t, enc, tc.in)
		assert.Equal(t, tc.want, enc.Format())
	}
	assert.Nil(t, r.Get("avif"))

	_, err := r.Resolve("gif")
	assert.ErrorContains(t, err, "png, jpeg")
}

func TestRegistry_ForPath(t *testing.T) {
	r := NewRegistry()

	enc, err := r.ForPath("out/painted.JPG", "png")
	require.NoError(t, err)
	assert.Equal(t, "jpeg", enc.Format())

	enc, err = r.ForPath("out/painted", "png")
	require.NoError(t, err)
	assert.Equal(t, "png", enc.Format())

	_, err = r.ForPath("out/painted.tga", "bmp")
	assert.Error(t, err)
}

func TestEncoders_ProduceDecodableOutput(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 30), B: 90, A: 255})
		}
	}

	for _, enc := range []Encoder{&PNGEncoder{}, &JPEGEncoder{}} {
		data, err := enc.Encode(img, 0)
		require.NoError(t, err, enc.Format())

		_, format, err := image.Decode(bytes.NewReader(data))
		require.NoError(t, err, enc.Format())
		assert.Equal(t, enc.Format(), format)
	}
}
