package styles

import (
	"image/color"
	"maps"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"

	"github.com/matzehuels/ptable/pkg/errors"
)

// DefaultColormap is used by gradients that do not name one.
const DefaultColormap = "coolwarm"

// colorbarStops is the number of samples stored for drawing a colour bar.
const colorbarStops = 64

var colormaps = map[string]func() palette.ColorMap{
	"coolwarm":           func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"blue-red":           func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"blue-tan":           func() palette.ColorMap { return moreland.SmoothBlueTan() },
	"green-purple":       func() palette.ColorMap { return moreland.SmoothGreenPurple() },
	"green-red":          func() palette.ColorMap { return moreland.SmoothGreenRed() },
	"purple-orange":      func() palette.ColorMap { return moreland.SmoothPurpleOrange() },
	"blackbody":          func() palette.ColorMap { return moreland.BlackBody() },
	"extended-blackbody": func() palette.ColorMap { return moreland.ExtendedBlackBody() },
	"kindlmann":          func() palette.ColorMap { return moreland.Kindlmann() },
	"extended-kindlmann": func() palette.ColorMap { return moreland.ExtendedKindlmann() },
}

// Colormaps returns the recognised colormap names. Any name may take an "_r"
// suffix to reverse it.
func Colormaps() []string { return slices.Sorted(maps.Keys(colormaps)) }

// Colormap returns a fresh colormap scaled to [lo, hi].
func Colormap(name string, lo, hi float64) (palette.ColorMap, error) {
	if name == "" {
		name = DefaultColormap
	}
	key := strings.ToLower(name)
	reverse := strings.HasSuffix(key, "_r")
	key = strings.TrimSuffix(key, "_r")

	ctor, ok := colormaps[key]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownColormap, "unknown colormap %q (known: %v)", name, Colormaps())
	}
	cm := ctor()
	if reverse {
		cm = reversed{cm}
	}
	if hi <= lo {
		hi = lo + 1
	}
	cm.SetMax(hi)
	cm.SetMin(lo)
	return cm, nil
}

// reversed mirrors a colormap around the middle of its range. The reflected
// value is clamped so that rounding never pushes the extremes out of range.
type reversed struct {
	palette.ColorMap
}

func (r reversed) At(v float64) (color.Color, error) {
	lo, hi := r.Min(), r.Max()
	if v < lo || v > hi {
		return r.ColorMap.At(v)
	}
	return r.ColorMap.At(math.Max(lo, math.Min(hi, lo+hi-v)))
}

func (r reversed) Palette(n int) palette.Palette {
	fwd := r.ColorMap.Palette(n).Colors()
	out := make(colorList, len(fwd))
	for i, c := range fwd {
		out[len(fwd)-1-i] = c
	}
	return out
}

type colorList []color.Color

func (c colorList) Colors() []color.Color { return c }

// sample returns the colour for v, clamped to the colormap range.
func sample(cm palette.ColorMap, v float64) (string, error) {
	v = math.Max(cm.Min(), math.Min(cm.Max(), v))
	c, err := cm.At(v)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "sample colormap at %g", v)
	}
	return toHex(c), nil
}

func stops(cm palette.ColorMap, n int) ([]string, error) {
	out := make([]string, n)
	for i := range n {
		v := cm.Min() + (cm.Max()-cm.Min())*float64(i)/float64(n-1)
		c, err := sample(cm, v)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
