// Package hit provides rectangular screen-region tracking for mouse
// targeting. Regions are registered after rendering (render-then-measure),
// so hit tests always reflect what is actually on screen.
package hit

// Rect is a rectangular screen region. Width and height are exclusive:
// a Rect at (10,10) with W=20 covers columns 10 through 29.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell at (x, y) falls inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a labelled rectangle with optional attached data.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// Map holds labelled regions for hit testing. Regions added later take
// priority over earlier ones, so callers register back-to-front.
type Map struct {
	regions []Region
}

// NewMap creates an empty region map.
func NewMap() *Map {
	return &Map{}
}

// Add registers a region.
func (m *Map) Add(id string, x, y, w, h int, data any) {
	m.regions = append(m.regions, Region{
		ID:   id,
		Rect: Rect{X: x, Y: y, W: w, H: h},
		Data: data,
	})
}

// Test returns the topmost region containing (x, y), or nil on a miss.
func (m *Map) Test(x, y int) *Region {
	for i := len(m.regions) - 1; i >= 0; i-- {
		if m.regions[i].Rect.Contains(x, y) {
			return &m.regions[i]
		}
	}
	return nil
}

// Regions returns all registered regions in registration order.
func (m *Map) Regions() []Region {
	return m.regions
}

// Clear removes all regions.
func (m *Map) Clear() {
	m.regions = m.regions[:0]
}
