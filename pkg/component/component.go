// Package component defines the closed set of UI component variants that
// the control and presentation sides exchange, together with the tagged
// scalar values numeric components carry.
//
// Components are identified by label. Both sides keep their own table of
// these types: the control side a mirror used for non-blocking reads, the
// presentation side the authoritative copy the render loop mutates. All
// cross-side effects travel as messages; the tables never share memory.
package component

// Component is one entry of a component table. The variant set is
// closed: Button, Toggle, NumberLabel, RangedNumber and EnumCombo.
// Call sites recover the concrete variant with a type switch.
type Component interface {
	isComponent()
}

// Button is a momentary push button. Pressed latches true when the
// presentation side reports a click and is cleared by the control-side
// read.
type Button struct {
	Pressed bool
}

// Toggle is a boolean checkbox.
type Toggle struct {
	Value bool
}

// NumberLabel is a read-only numeric display.
type NumberLabel struct {
	Value Scalar
}

// RangedNumber is a numeric slider. Value stays within [Min, Max] for
// every update produced by the protocol; writes outside the range are a
// caller error and are not defended here.
type RangedNumber struct {
	Value Scalar
	Min   Scalar
	Max   Scalar
}

// EnumCombo is a combo box over a closed option list. Value is the
// string rendering of the selected variant and is always one of Options.
type EnumCombo struct {
	Value   string
	Options []string
}

func (*Button) isComponent()       {}
func (*Toggle) isComponent()       {}
func (*NumberLabel) isComponent()  {}
func (*RangedNumber) isComponent() {}
func (*EnumCombo) isComponent()    {}

// ImageRGBA8 is a decoded image: width, height and tightly packed RGBA
// bytes (4 per pixel, row-major). It is the only image representation
// the core consumes; decoding is a collaborator concern.
type ImageRGBA8 struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Bytes  []byte `json:"bytes"`
}

// AspectRatio returns width over height, or 1 for a degenerate image.
func (img ImageRGBA8) AspectRatio() float64 {
	if img.Height == 0 {
		return 1
	}
	return float64(img.Width) / float64(img.Height)
}
