package charts

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"io"
	"strconv"

	"wifi-analytics/internal/models"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultWidth   = 1433
	DefaultHeight  = 860
	DefaultCaption = "Top 10 vendors in dataset"
	DefaultQuality = 90

	minWidth  = 480
	minHeight = 200

	margin        = 20
	captionHeight = 40
	labelWidth    = 320
	valueWidth    = 70
	charWidth     = 7
)

var ErrCanvasTooSmall = errors.New("chart canvas too small")

var (
	barColor        = color.RGBA{R: 0, G: 100, B: 200, A: 255}
	backgroundColor = color.White
	textColor       = color.Black
)

// Renderer draws a vendor ranking as an image.
//
//go:generate mockgen -source=bar_chart.go -destination=./mocks/bar_chart_mock.go -package=mocks
type Renderer interface {
	// Render encodes the chart of ranking to w. The ranking is drawn in the given order, first
	// entry on top.
	Render(w io.Writer, ranking []models.VendorCount) error
	// ContentType is the media type of the encoded image.
	ContentType() string
}

type Options struct {
	Width   int
	Height  int
	Caption string
	// Quality is the JPEG quality, 1 to 100.
	Quality int
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Caption == "" {
		o.Caption = DefaultCaption
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = DefaultQuality
	}
	return o
}

type barChartRenderer struct {
	opts Options
}

// NewBarChartRenderer returns a Renderer drawing horizontal bars with the vendor name on the left
// and the count at the end of each bar.
func NewBarChartRenderer(opts Options) Renderer {
	return &barChartRenderer{opts: opts.withDefaults()}
}

func (r *barChartRenderer) ContentType() string {
	return "image/jpeg"
}

func (r *barChartRenderer) Render(w io.Writer, ranking []models.VendorCount) error {
	if r.opts.Width < minWidth || r.opts.Height < minHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrCanvasTooSmall, r.opts.Width, r.opts.Height, minWidth, minHeight)
	}

	img := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	captionX := (r.opts.Width - len(r.opts.Caption)*charWidth) / 2
	drawText(img, r.opts.Caption, max(captionX, margin), margin+basicfont.Face7x13.Ascent)

	bars := barRects(r.opts, ranking)
	for i, bar := range bars {
		draw.Draw(img, bar, image.NewUniform(barColor), image.Point{}, draw.Src)

		baseline := bar.Min.Y + (bar.Dy()+basicfont.Face7x13.Ascent)/2
		label := truncate(ranking[i].Vendor, (labelWidth-margin)/charWidth)
		drawText(img, label, margin, baseline)
		drawText(img, strconv.FormatUint(uint64(ranking[i].Count), 10), bar.Max.X+6, baseline)
	}

	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: r.opts.Quality}); err != nil {
		return fmt.Errorf("encode chart: %w", err)
	}
	return nil
}

// barRects lays out one bar per entry. Widths are proportional to the largest count, which
// gets the full plot width.
func barRects(opts Options, ranking []models.VendorCount) []image.Rectangle {
	if len(ranking) == 0 {
		return nil
	}
	var largest uint32
	for _, vc := range ranking {
		largest = max(largest, vc.Count)
	}

	plotLeft := margin + labelWidth
	plotWidth := opts.Width - plotLeft - valueWidth - margin
	plotTop := margin + captionHeight
	rowHeight := (opts.Height - plotTop - margin) / len(ranking)
	barHeight := max(rowHeight*7/10, 1)

	rects := make([]image.Rectangle, len(ranking))
	for i, vc := range ranking {
		width := 0
		if largest > 0 {
			width = int(uint64(plotWidth) * uint64(vc.Count) / uint64(largest))
		}
		top := plotTop + i*rowHeight + (rowHeight-barHeight)/2
		rects[i] = image.Rect(plotLeft, top, plotLeft+width, top+barHeight)
	}
	return rects
}

func drawText(dst draw.Image, s string, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
