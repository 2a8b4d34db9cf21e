package sink

import (
	"bytes"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/matzehuels/ptable/pkg/errors"
	"github.com/matzehuels/ptable/pkg/render/table"
)

// DefaultDPI is the raster resolution used when none is given.
const DefaultDPI = 150

// Format is an output format name.
type Format string

const (
	SVG  Format = "svg"
	PNG  Format = "png"
	JPEG Format = "jpeg"
	TIFF Format = "tiff"
	PDF  Format = "pdf"
	EPS  Format = "eps"
	JSON Format = "json"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{SVG, PNG, JPEG, TIFF, PDF, EPS, JSON} }

// ParseFormat normalises a format name or file extension.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	switch f {
	case "jpg":
		return JPEG, nil
	case "tif":
		return TIFF, nil
	case SVG, PNG, JPEG, TIFF, PDF, EPS, JSON:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q (supported: %v)", s, Formats())
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "%s has no file extension", path)
	}
	return ParseFormat(ext)
}

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	dpi         int
	transparent bool
	variant     string
}

// WithDPI sets the raster resolution.
func WithDPI(dpi int) Option { return func(r *renderer) { r.dpi = dpi } }

// WithTransparent skips the white background.
func WithTransparent() Option { return func(r *renderer) { r.transparent = true } }

// WithFont selects the Liberation variant: "Serif" (default), "Sans" or "Mono".
func WithFont(variant string) Option { return func(r *renderer) { r.variant = variant } }

func newRenderer(opts ...Option) (renderer, error) {
	r := renderer{dpi: DefaultDPI, variant: FontSerif}
	for _, opt := range opts {
		opt(&r)
	}
	if r.dpi <= 0 {
		return r, errors.New(errors.ErrCodeInvalidConfig, "dpi must be positive, got %d", r.dpi)
	}
	if !validVariant(r.variant) {
		return r, errors.New(errors.ErrCodeInvalidConfig, "unknown font variant %q", r.variant)
	}
	return r, nil
}

func figureSize(scene *table.Scene) (vg.Length, vg.Length) {
	return vg.Length(scene.Figure[0]) * vg.Inch, vg.Length(scene.Figure[1]) * vg.Inch
}

// Render encodes scene in format f.
func Render(f Format, scene *table.Scene, opts ...Option) ([]byte, error) {
	switch f {
	case SVG:
		return RenderSVG(scene, opts...)
	case PNG:
		return RenderPNG(scene, opts...)
	case JPEG:
		return RenderJPEG(scene, opts...)
	case TIFF:
		return RenderTIFF(scene, opts...)
	case PDF:
		return RenderPDF(scene, opts...)
	case EPS:
		return RenderEPS(scene, opts...)
	case JSON:
		return RenderJSON(scene)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q", f)
}

// RenderSVG draws scene as SVG.
func RenderSVG(scene *table.Scene, opts ...Option) ([]byte, error) {
	return renderVector(scene, opts, func(w, h vg.Length) vectorCanvas { return vgsvg.New(w, h) })
}

// RenderPDF draws scene as PDF.
func RenderPDF(scene *table.Scene, opts ...Option) ([]byte, error) {
	return renderVector(scene, opts, func(w, h vg.Length) vectorCanvas { return vgpdf.New(w, h) })
}

// RenderEPS draws scene as Encapsulated PostScript.
func RenderEPS(scene *table.Scene, opts ...Option) ([]byte, error) {
	return renderVector(scene, opts, func(w, h vg.Length) vectorCanvas { return vgeps.New(w, h) })
}

// RenderPNG draws scene as PNG.
func RenderPNG(scene *table.Scene, opts ...Option) ([]byte, error) {
	return renderRaster(scene, opts, func(c *vgimg.Canvas) io.WriterTo { return vgimg.PngCanvas{Canvas: c} })
}

// RenderJPEG draws scene as JPEG. Transparency is ignored.
func RenderJPEG(scene *table.Scene, opts ...Option) ([]byte, error) {
	opts = append(opts, func(r *renderer) { r.transparent = false })
	return renderRaster(scene, opts, func(c *vgimg.Canvas) io.WriterTo { return vgimg.JpegCanvas{Canvas: c} })
}

// RenderTIFF draws scene as TIFF.
func RenderTIFF(scene *table.Scene, opts ...Option) ([]byte, error) {
	return renderRaster(scene, opts, func(c *vgimg.Canvas) io.WriterTo { return vgimg.TiffCanvas{Canvas: c} })
}

type vectorCanvas interface {
	vg.Canvas
	io.WriterTo
}

func renderVector(scene *table.Scene, opts []Option, newCanvas func(w, h vg.Length) vectorCanvas) ([]byte, error) {
	r, err := newRenderer(opts...)
	if err != nil {
		return nil, err
	}
	if scene == nil {
		return nil, errors.New(errors.ErrCodeInternal, "nil scene")
	}
	w, h := figureSize(scene)
	c := newCanvas(w, h)
	if err := Draw(c, w, h, scene, r.transparent, r.variant); err != nil {
		return nil, err
	}
	return encode(c)
}

func renderRaster(scene *table.Scene, opts []Option, wrap func(*vgimg.Canvas) io.WriterTo) ([]byte, error) {
	r, err := newRenderer(opts...)
	if err != nil {
		return nil, err
	}
	if scene == nil {
		return nil, errors.New(errors.ErrCodeInternal, "nil scene")
	}
	w, h := figureSize(scene)
	var bg color.Color = white
	if r.transparent {
		bg = color.Transparent
	}
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(r.dpi), vgimg.UseBackgroundColor(bg))
	if err := Draw(c, w, h, scene, r.transparent, r.variant); err != nil {
		return nil, err
	}
	return encode(wrap(c))
}

func encode(w io.WriterTo) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode image")
	}
	return buf.Bytes(), nil
}

// Export renders scene to path, choosing the format from its extension.
func Export(path string, scene *table.Scene, transparent bool, opts ...Option) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if transparent {
		opts = append(opts, WithTransparent())
	}
	data, err := Render(f, scene, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
