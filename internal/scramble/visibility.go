package scramble

// Tracker decides which labels are in the scrolled viewport and drives
// their reveal/rescramble transitions.
//
// Entry and exit conditions are deliberately asymmetric: a label enters
// when its vertical center is inside the viewport (inclusive bounds),
// but only leaves once it is fully outside. The hysteresis keeps labels
// straddling the boundary from flickering between states.
type Tracker struct {
	entries []entry
}

type entry struct {
	label  *Label
	top    float64
	height float64
}

// Add registers a label with its layout top-offset and height.
func (t *Tracker) Add(l *Label, top, height float64) {
	t.entries = append(t.entries, entry{label: l, top: top, height: height})
}

// Labels returns the tracked labels in registration order.
func (t *Tracker) Labels() []*Label {
	out := make([]*Label, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.label
	}
	return out
}

// Check recomputes visibility for every tracked label. Call on every
// scroll change and once after initial layout settles.
func (t *Tracker) Check(scroll, viewport float64) {
	bottom := scroll + viewport
	for _, e := range t.entries {
		center := e.top + e.height/2
		visible := center >= scroll && center <= bottom

		switch {
		case visible && !e.label.inView:
			e.label.inView = true
			e.label.StartReveal()
		case !visible && e.label.inView:
			// Stricter exit: the label must be fully out of view.
			if e.top+e.height < scroll || e.top > bottom {
				e.label.inView = false
				e.label.ResetScramble()
			}
		}
	}
}
