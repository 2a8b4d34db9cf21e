package styles

import (
	"github.com/matzehuels/ptable/pkg/element"
)

// ChannelName identifies one of the two colour channels.
type ChannelName string

const (
	Frame      ChannelName = "frame"
	Background ChannelName = "background"
)

// Channel is the colour rule of a channel: [Flat], [Explicit] or [Gradient].
type Channel interface {
	channel()
}

// Flat paints every cell with the same colour.
type Flat struct {
	Color string
}

// Explicit paints each cell with its own colour; Colors[Z-1] belongs to the
// element with atomic number Z.
type Explicit struct {
	Colors []string
}

// Gradient maps a numeric element property through a colormap. Min and Max
// default to the property's range over all elements.
type Gradient struct {
	Property string
	Colormap string
	Colorbar bool
	Min, Max *float64
}

func (Flat) channel()     {}
func (Explicit) channel() {}
func (Gradient) channel() {}

// Spec holds the rules for both channels. Nil channels take the defaults:
// black frames and unpainted backgrounds.
type Spec struct {
	Frame      Channel
	Background Channel
}

// DefaultSpec returns the channel defaults.
func DefaultSpec() Spec {
	return Spec{Frame: Flat{Color: "black"}, Background: Flat{Color: None}}
}

func (s Spec) withDefaults() Spec {
	d := DefaultSpec()
	if s.Frame == nil {
		s.Frame = d.Frame
	}
	if s.Background == nil {
		s.Background = d.Background
	}
	return s
}

// Channel returns the rule for name.
func (s Spec) Channel(name ChannelName) Channel {
	s = s.withDefaults()
	if name == Frame {
		return s.Frame
	}
	return s.Background
}

// LabelGroup colours a named set of elements on one channel.
type LabelGroup struct {
	Channel  ChannelName
	Name     string
	Elements []element.Ref
	Color    string // Optional; empty takes the next palette colour
}

// LegendEntry is one legend row. The channel the label does not colour is
// "none".
type LegendEntry struct {
	Text string `json:"text"`
	Edge string `json:"edge"`
	Face string `json:"face"`
}

// GradientInfo describes a resolved gradient channel.
type GradientInfo struct {
	Channel  ChannelName `json:"channel"`
	Property string      `json:"property"`
	Colormap string      `json:"colormap"`
	Colorbar bool        `json:"colorbar"`
	Min      float64     `json:"min"`
	Max      float64     `json:"max"`
	Stops    []string    `json:"stops"` // Evenly spaced samples from Min to Max
}

// Resolution holds per-cell colours for both channels, indexed by Z-1.
type Resolution struct {
	Frame              []string
	Background         []string
	FrameGradient      *GradientInfo
	BackgroundGradient *GradientInfo
}

// Gradients returns the resolved gradient channels, frame first.
func (r Resolution) Gradients() []GradientInfo {
	var out []GradientInfo
	for _, g := range []*GradientInfo{r.FrameGradient, r.BackgroundGradient} {
		if g != nil {
			out = append(out, *g)
		}
	}
	return out
}
