package ui

// LayerSelector tracks which field layer a viewer shows and whether the
// overlay is visible. It is pure view state; flipping it never touches the
// simulation.
type LayerSelector struct {
	names   []string
	idx     int
	visible bool
}

// NewLayerSelector starts on the first layer with the overlay hidden.
func NewLayerSelector(names []string) *LayerSelector {
	return &LayerSelector{names: append([]string(nil), names...)}
}

// Toggle flips overlay visibility.
func (l *LayerSelector) Toggle() { l.visible = !l.visible }

// SetVisible forces overlay visibility.
func (l *LayerSelector) SetVisible(v bool) { l.visible = v }

// Visible reports whether the overlay is on.
func (l *LayerSelector) Visible() bool { return l.visible && len(l.names) > 0 }

// Next cycles to the following layer.
func (l *LayerSelector) Next() {
	if len(l.names) == 0 {
		return
	}
	l.idx = (l.idx + 1) % len(l.names)
}

// Current returns the selected layer name, or "" when there are none.
func (l *LayerSelector) Current() string {
	if len(l.names) == 0 {
		return ""
	}
	return l.names[l.idx]
}

// Label describes the selector state for status lines.
func (l *LayerSelector) Label() string {
	if !l.Visible() {
		return "overlay off"
	}
	return "overlay " + l.Current()
}
