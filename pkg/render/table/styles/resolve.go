package styles

import (
	"slices"

	"github.com/matzehuels/ptable/pkg/element"
	"github.com/matzehuels/ptable/pkg/errors"
)

// Resolver turns channel rules and labels into per-cell colours. The zero
// value uses [DefaultPalette].
type Resolver struct {
	Palette []string
}

// Resolve uses a zero [Resolver].
func Resolve(spec Spec, labels []LabelGroup, p element.Provider) (Resolution, []LegendEntry, error) {
	return Resolver{}.Resolve(spec, labels, p)
}

// Resolve computes the per-cell colours and legend entries. Legend entries
// list frame labels before background labels, each in definition order.
func (r Resolver) Resolve(spec Spec, labels []LabelGroup, p element.Provider) (Resolution, []LegendEntry, error) {
	spec = spec.withDefaults()
	pal := r.Palette
	if len(pal) == 0 {
		pal = DefaultPalette
	}
	for _, c := range pal {
		if err := ValidateColor(c); err != nil {
			return Resolution{}, nil, err
		}
	}

	for _, name := range []ChannelName{Frame, Background} {
		if ex, ok := spec.Channel(name).(Explicit); ok && len(ex.Colors) != element.Count {
			return Resolution{}, nil, errors.New(errors.ErrCodeColorLength,
				"%s colours: got %d, want one per element (%d)", name, len(ex.Colors), element.Count)
		}
	}

	byChannel := map[ChannelName][]LabelGroup{}
	for _, lg := range labels {
		ch := lg.Channel
		if ch == "" {
			ch = Background
		}
		if ch != Frame && ch != Background {
			return Resolution{}, nil, errors.New(errors.ErrCodeInvalidConfig, "label %q: unknown channel %q", lg.Name, lg.Channel)
		}
		lg.Channel = ch
		byChannel[ch] = append(byChannel[ch], lg)
	}
	for _, name := range []ChannelName{Frame, Background} {
		if _, ok := spec.Channel(name).(Gradient); ok && len(byChannel[name]) > 0 {
			return Resolution{}, nil, errors.New(errors.ErrCodeGradientLabelConflict,
				"%s channel is a gradient and cannot carry labels", name)
		}
	}

	var res Resolution
	var err error
	if res.Frame, res.FrameGradient, err = initChannel(Frame, spec.Frame, p); err != nil {
		return Resolution{}, nil, err
	}
	if res.Background, res.BackgroundGradient, err = initChannel(Background, spec.Background, p); err != nil {
		return Resolution{}, nil, err
	}

	var legend []LegendEntry
	for _, name := range []ChannelName{Frame, Background} {
		colors := res.Frame
		if name == Background {
			colors = res.Background
		}
		for i, lg := range byChannel[name] {
			c := lg.Color
			if c == "" {
				c = pal[i%len(pal)]
			} else if err := ValidateColor(c); err != nil {
				return Resolution{}, nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "label %q", lg.Name)
			}
			for _, ref := range lg.Elements {
				idx, err := element.Index(p, ref)
				if err != nil {
					return Resolution{}, nil, errors.Wrap(errors.ErrCodeUnknownElement, err, "label %q", lg.Name)
				}
				colors[idx] = c
			}
			entry := LegendEntry{Text: lg.Name, Edge: None, Face: None}
			if name == Frame {
				entry.Edge = c
			} else {
				entry.Face = c
			}
			legend = append(legend, entry)
		}
	}
	return res, legend, nil
}

func initChannel(name ChannelName, ch Channel, p element.Provider) ([]string, *GradientInfo, error) {
	switch c := ch.(type) {
	case Flat:
		if err := ValidateColor(c.Color); err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "%s colour", name)
		}
		out := make([]string, element.Count)
		for i := range out {
			out[i] = c.Color
		}
		return out, nil, nil
	case Explicit:
		for i, col := range c.Colors {
			if err := ValidateColor(col); err != nil {
				return nil, nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "%s colour for Z=%d", name, i+1)
			}
		}
		return slices.Clone(c.Colors), nil, nil
	case Gradient:
		return initGradient(name, c, p)
	}
	return nil, nil, errors.New(errors.ErrCodeInternal, "%s channel has unknown rule %T", name, ch)
}

func initGradient(name ChannelName, g Gradient, p element.Provider) ([]string, *GradientInfo, error) {
	if !element.HasProperty(p, g.Property) {
		return nil, nil, errors.New(errors.ErrCodeUnknownProperty,
			"%s gradient: unknown property %q (known: %v)", name, g.Property, p.Properties())
	}
	lo, hi, err := element.Range(p, g.Property)
	if err != nil {
		return nil, nil, err
	}
	if g.Min != nil {
		lo = *g.Min
	}
	if g.Max != nil {
		hi = *g.Max
	}
	cm, err := Colormap(g.Colormap, lo, hi)
	if err != nil {
		return nil, nil, err
	}

	out := make([]string, element.Count)
	for i := range out {
		out[i] = None
	}
	for _, e := range p.All() {
		if e.Z < 1 || e.Z > element.Count {
			continue
		}
		v, ok := e.Float(g.Property)
		if !ok {
			continue
		}
		if out[e.Z-1], err = sample(cm, v); err != nil {
			return nil, nil, err
		}
	}
	bar, err := stops(cm, colorbarStops)
	if err != nil {
		return nil, nil, err
	}

	cmName := g.Colormap
	if cmName == "" {
		cmName = DefaultColormap
	}
	info := &GradientInfo{
		Channel:  name,
		Property: g.Property,
		Colormap: cmName,
		Colorbar: g.Colorbar,
		Min:      cm.Min(),
		Max:      cm.Max(),
		Stops:    bar,
	}
	return out, info, nil
}
