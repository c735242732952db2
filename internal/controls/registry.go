package controls

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/unvolume/internal/control"
)

// Info pairs a control name with its menu copy.
type Info struct {
	Name        string
	Title       string
	Instruction string
}

// Catalog lists every control in menu order.
var Catalog = []Info{
	{"gravity", "Gravity Slider", "Drag to tilt the bar. The volume is set by the resting position of the ball."},
	{"color", "Color Matcher", "Recreate the target color using the RGB sliders."},
	{"slingshot", "Slingshot", "Pull back and release. Pull distance is the volume."},
	{"isotope", "Unstable Isotope", "Set the slider. It will not stay set."},
	{"circle", "Perfect Circle", "Draw a circle. Roundness is the volume."},
	{"bounce", "Bouncy Ball", "Fling the ball. Every hard bounce is one volume."},
	{"memory", "Memory Match", "Match the pairs. Progress is the volume."},
}

// Names returns the control names in menu order.
func Names() []string {
	names := make([]string, len(Catalog))
	for i, info := range Catalog {
		names[i] = info.Name
	}
	return names
}

// New constructs a control by name with its default tuning.
func New(name string, rng *rand.Rand) (control.Control, error) {
	switch name {
	case "gravity":
		return NewGravity(), nil
	case "color":
		return NewColorMatch(rng), nil
	case "slingshot":
		return NewSlingshot(), nil
	case "isotope":
		return NewIsotope(), nil
	case "circle":
		return NewCircle(), nil
	case "bounce":
		return NewBounce(), nil
	case "memory":
		return NewMemory(rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", control.ErrUnknownControl, name)
	}
}
