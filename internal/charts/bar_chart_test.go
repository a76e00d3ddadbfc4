package charts

import (
	"bytes"
	"image"
	"image/jpeg"
	"strings"
	"testing"

	"wifi-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRanking = []models.VendorCount{
	{Vendor: "Samsung Electronics Co.,Ltd", Count: 40},
	{Vendor: "Apple, Inc.", Count: 20},
	{Vendor: "Intel Corporate", Count: 10},
}

func TestBarChartRenderer_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    Options
		ranking []models.VendorCount
		width   int
		height  int
	}{
		{
			name:    "defaults",
			ranking: testRanking,
			width:   DefaultWidth,
			height:  DefaultHeight,
		},
		{
			name:    "custom size",
			opts:    Options{Width: 800, Height: 400, Caption: "Vendors"},
			ranking: testRanking,
			width:   800,
			height:  400,
		},
		{
			name:   "empty ranking draws the caption only",
			width:  DefaultWidth,
			height: DefaultHeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			renderer := NewBarChartRenderer(tt.opts)
			assert.Equal(t, "image/jpeg", renderer.ContentType())

			var buf bytes.Buffer
			require.NoError(t, renderer.Render(&buf, tt.ranking))

			img, err := jpeg.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, tt.width, tt.height), img.Bounds())
		})
	}
}

func TestBarChartRenderer_BarsAreBlue(t *testing.T) {
	t.Parallel()

	opts := Options{}.withDefaults()
	var buf bytes.Buffer
	require.NoError(t, NewBarChartRenderer(opts).Render(&buf, testRanking))
	img, err := jpeg.Decode(&buf)
	require.NoError(t, err)

	for _, bar := range barRects(opts, testRanking) {
		center := image.Pt((bar.Min.X+bar.Max.X)/2, (bar.Min.Y+bar.Max.Y)/2)
		r, g, b, _ := img.At(center.X, center.Y).RGBA()
		// JPEG is lossy; the bar colour only has to be clearly blue.
		assert.Greater(t, b>>8, uint32(150))
		assert.Less(t, r>>8, uint32(60))
		assert.Less(t, g>>8, uint32(150))
	}
}

func TestBarRects_LargestOnTopAndProportional(t *testing.T) {
	t.Parallel()

	opts := Options{}.withDefaults()
	rects := barRects(opts, testRanking)
	require.Len(t, rects, 3)

	assert.Less(t, rects[0].Min.Y, rects[1].Min.Y)
	assert.Less(t, rects[1].Min.Y, rects[2].Min.Y)
	// Integer division may lose a pixel.
	assert.InDelta(t, rects[0].Dx(), 2*rects[1].Dx(), 2)
	assert.InDelta(t, rects[1].Dx(), 2*rects[2].Dx(), 2)
	for _, r := range rects {
		assert.True(t, r.In(image.Rect(0, 0, opts.Width, opts.Height)))
	}

	assert.Nil(t, barRects(opts, nil))

	zero := barRects(opts, []models.VendorCount{{Vendor: "none", Count: 0}})
	assert.Equal(t, 0, zero[0].Dx())
}

func TestBarChartRenderer_CanvasTooSmall(t *testing.T) {
	t.Parallel()

	err := NewBarChartRenderer(Options{Width: 100, Height: 100}).Render(&bytes.Buffer{}, testRanking)
	assert.ErrorIs(t, err, ErrCanvasTooSmall)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Apple", truncate("Apple", 10))
	assert.Equal(t, "Samsung...", truncate("Samsung Electronics", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Len(t, []rune(truncate(strings.Repeat("é", 50), 43)), 43)
}
