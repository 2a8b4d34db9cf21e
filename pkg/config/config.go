package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ptable/pkg/element"
	"github.com/matzehuels/ptable/pkg/errors"
	"github.com/matzehuels/ptable/pkg/render/table"
	"github.com/matzehuels/ptable/pkg/render/table/frame"
	"github.com/matzehuels/ptable/pkg/render/table/layout"
	"github.com/matzehuels/ptable/pkg/render/table/styles"
)

// File is a decoded configuration file.
type File struct {
	Frame  map[string]any            `toml:"frame"`
	Colors map[string]any            `toml:"colors"`
	Labels map[string]any            `toml:"labels"`
	Data   map[string]map[string]any `toml:"data"`
	Render Render                    `toml:"render"`

	labels []labelKey
}

// Render holds figure and export options. Zero values leave the decision to
// the caller.
type Render struct {
	Title         string   `toml:"title"`
	TitleFontSize float64  `toml:"title_font_size"`
	Width         float64  `toml:"width"`
	Height        float64  `toml:"height"`
	Transparent   bool     `toml:"transparent"`
	DPI           int      `toml:"dpi"`
	Font          string   `toml:"font"`
	Formats       []string `toml:"formats"`
	Legend        Legend   `toml:"legend"`
}

// Legend mirrors [table.LegendOptions].
type Legend struct {
	Loc      string    `toml:"loc"`
	Anchor   []float64 `toml:"anchor"`
	FontSize float64   `toml:"font_size"`
	Hidden   bool      `toml:"hidden"`
}

type labelKey struct {
	channel styles.ChannelName
	name    string
	nested  bool // Declared under [labels.<channel>]
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return f, nil
}

// Parse decodes TOML configuration data.
func Parse(data []byte) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	// Keys below the free-form tables are checked when the file is converted.
	for _, key := range md.Undecoded() {
		if !freeForm(key[0]) {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", key.String())
		}
	}
	for _, key := range md.Keys() {
		if len(key) < 2 || key[0] != "labels" {
			continue
		}
		switch {
		case len(key) == 2 && !isChannel(key[1]):
			f.labels = append(f.labels, labelKey{styles.Background, key[1], false})
		case len(key) == 3 && isChannel(key[1]):
			f.labels = append(f.labels, labelKey{styles.ChannelName(key[1]), key[2], true})
		}
	}
	return &f, nil
}

func freeForm(table string) bool {
	switch table {
	case "frame", "colors", "labels", "data":
		return true
	}
	return false
}

func isChannel(s string) bool {
	return s == string(styles.Frame) || s == string(styles.Background)
}

// Table converts the file into a renderer configuration.
func (f *File) Table() (table.Config, error) {
	var cfg table.Config
	var err error
	if cfg.Frame, err = f.frame(); err != nil {
		return table.Config{}, err
	}
	if cfg.Colors, err = f.colors(); err != nil {
		return table.Config{}, err
	}
	if cfg.Labels, err = f.labelGroups(); err != nil {
		return table.Config{}, err
	}
	if len(f.Data) > 0 {
		cfg.Data = element.Overrides(f.Data)
	}
	return cfg, nil
}

// RenderOptions converts the [render] table.
func (f *File) RenderOptions() (table.RenderOptions, error) {
	r := f.Render
	opts := table.RenderOptions{
		Title:         r.Title,
		TitleFontSize: r.TitleFontSize,
		FigureSize:    [2]float64{r.Width, r.Height},
		Legend: table.LegendOptions{
			Loc:      r.Legend.Loc,
			FontSize: r.Legend.FontSize,
			Hidden:   r.Legend.Hidden,
		},
	}
	switch len(r.Legend.Anchor) {
	case 0:
	case 2:
		opts.Legend.Anchor = &layout.Point{X: r.Legend.Anchor[0], Y: r.Legend.Anchor[1]}
	default:
		return table.RenderOptions{}, errors.New(errors.ErrCodeInvalidConfig, "render.legend.anchor needs 2 values, got %d", len(r.Legend.Anchor))
	}
	return opts, nil
}

func (f *File) frame() (frame.Spec, error) {
	var spec frame.Spec
	for k, v := range f.Frame {
		switch k {
		case "shape":
			s, ok := v.(string)
			if !ok {
				return frame.Spec{}, errors.New(errors.ErrCodeInvalidConfig, "frame.shape must be a string, got %T", v)
			}
			spec.Shape = s
		case "size":
			vals, err := floats(v)
			if err != nil || len(vals) != 2 {
				return frame.Spec{}, errors.New(errors.ErrCodeInvalidConfig, "frame.size must be [width, height]")
			}
			spec.Size = [2]float64{vals[0], vals[1]}
		default:
			if spec.KW == nil {
				spec.KW = make(map[string]any)
			}
			spec.KW[k] = v
		}
	}
	return spec, nil
}

func (f *File) colors() (styles.Spec, error) {
	var spec styles.Spec
	for k, v := range f.Colors {
		if !isChannel(k) {
			return styles.Spec{}, errors.New(errors.ErrCodeInvalidConfig, "unknown colour channel %q (want frame or background)", k)
		}
		ch, err := channel(k, v)
		if err != nil {
			return styles.Spec{}, err
		}
		if k == string(styles.Frame) {
			spec.Frame = ch
		} else {
			spec.Background = ch
		}
	}
	return spec, nil
}

func channel(name string, v any) (styles.Channel, error) {
	switch x := v.(type) {
	case string:
		return styles.Flat{Color: x}, nil
	case []any:
		colors, err := strs(x)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "colors.%s", name)
		}
		return styles.Explicit{Colors: colors}, nil
	case map[string]any:
		return gradient(name, x)
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "colors.%s: unsupported value %T", name, v)
}

func gradient(name string, m map[string]any) (styles.Gradient, error) {
	var g styles.Gradient
	for k, v := range m {
		var ok bool
		switch k {
		case "depend_on":
			g.Property, ok = v.(string)
		case "cmap":
			g.Colormap, ok = v.(string)
		case "cbar":
			g.Colorbar, ok = v.(bool)
		case "min", "max":
			var f float64
			if f, ok = number(v); ok {
				if k == "min" {
					g.Min = &f
				} else {
					g.Max = &f
				}
			}
		default:
			return styles.Gradient{}, errors.New(errors.ErrCodeInvalidConfig, "colors.%s: unknown gradient key %q", name, k)
		}
		if !ok {
			return styles.Gradient{}, errors.New(errors.ErrCodeInvalidConfig, "colors.%s.%s: unexpected %T", name, k, v)
		}
	}
	if g.Property == "" {
		return styles.Gradient{}, errors.New(errors.ErrCodeInvalidConfig, "colors.%s: gradient needs depend_on", name)
	}
	return g, nil
}

func (f *File) labelGroups() ([]styles.LabelGroup, error) {
	for _, ch := range []styles.ChannelName{styles.Frame, styles.Background} {
		if v, ok := f.Labels[string(ch)]; ok {
			if _, ok := v.(map[string]any); !ok {
				return nil, errors.New(errors.ErrCodeInvalidConfig, "labels.%s must be a table of labels", ch)
			}
		}
	}
	var groups []styles.LabelGroup
	for _, key := range f.labels {
		v := f.Labels[key.name]
		if key.nested {
			v = f.Labels[string(key.channel)].(map[string]any)[key.name]
		}
		g, err := labelGroup(key, v)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func labelGroup(key labelKey, v any) (styles.LabelGroup, error) {
	g := styles.LabelGroup{Channel: key.channel, Name: key.name}
	var list any
	switch x := v.(type) {
	case []any:
		list = x
	case map[string]any:
		for k := range x {
			if k != "elements" && k != "color" {
				return g, errors.New(errors.ErrCodeInvalidConfig, "label %q: unknown key %q", key.name, k)
			}
		}
		list = x["elements"]
		if c, ok := x["color"]; ok {
			s, ok := c.(string)
			if !ok {
				return g, errors.New(errors.ErrCodeInvalidConfig, "label %q: color must be a string", key.name)
			}
			g.Color = s
		}
	default:
		return g, errors.New(errors.ErrCodeInvalidConfig, "label %q: unsupported value %T", key.name, v)
	}
	items, ok := list.([]any)
	if !ok {
		return g, errors.New(errors.ErrCodeInvalidConfig, "label %q: elements must be an array", key.name)
	}
	for _, it := range items {
		ref, err := element.ParseRef(it)
		if err != nil {
			return g, errors.Wrap(errors.ErrCodeInvalidConfig, err, "label %q", key.name)
		}
		g.Elements = append(g.Elements, ref)
	}
	return g, nil
}

func strs(items []any) ([]string, error) {
	out := make([]string, len(items))
	for i, it := range items {
		s, ok := it.(string)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "item %d: want string, got %T", i, it)
		}
		out[i] = strings.TrimSpace(s)
	}
	return out, nil
}

func floats(v any) ([]float64, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "want array, got %T", v)
	}
	out := make([]float64, len(items))
	for i, it := range items {
		f, ok := number(it)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "item %d: want number, got %T", i, it)
		}
		out[i] = f
	}
	return out, nil
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
