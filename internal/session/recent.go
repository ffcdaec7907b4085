package session

import "github.com/leonardotrapani/colorcontrast/internal/color"

// DefaultRecentSize matches the number of custom color slots a color
// picker dialog offers.
const DefaultRecentSize = 16

// Recent is a bounded, ordered set of colors, oldest first.
type Recent struct {
	size   int
	colors []color.Color
}

func NewRecent(size int) *Recent {
	if size <= 0 {
		size = DefaultRecentSize
	}
	return &Recent{size: size, colors: make([]color.Color, 0, size)}
}

// Add appends c unless an equal color is already present. When full, the
// oldest entry is evicted.
func (r *Recent) Add(c color.Color) {
	for _, existing := range r.colors {
		if existing.Equal(c) {
			return
		}
	}
	if len(r.colors) >= r.size {
		r.colors = append(r.colors[:0], r.colors[1:]...)
	}
	r.colors = append(r.colors, c)
}

// List returns a copy, oldest first.
func (r *Recent) List() []color.Color {
	out := make([]color.Color, len(r.colors))
	copy(out, r.colors)
	return out
}

func (r *Recent) Len() int  { return len(r.colors) }
func (r *Recent) Size() int { return r.size }
