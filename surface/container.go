package surface

import (
	"errors"
	"sync"
)

// ============================================================================
// CONTAINER — Mount target with exclusive clear-then-draw access
// ============================================================================
// A Container stands in for the page element a chart is mounted into. It owns
// the Scene, remembers the style width it was given and reports the width it
// actually lays out at, which the parent layout may constrain.
// ============================================================================

// ErrContainerBusy is returned when a container is acquired while another
// draw into it is still running.
var ErrContainerBusy = errors.New("container is already being drawn")

// Container is a chart mount point.
type Container struct {
	ID string
	// MaxWidth is the width available from the parent layout. Zero means
	// unconstrained.
	MaxWidth float64

	mu         sync.Mutex
	styleWidth float64
	scene      Scene
}

// NewContainer creates an empty container.
func NewContainer(id string, maxWidth float64) *Container {
	return &Container{ID: id, MaxWidth: maxWidth}
}

// Scene returns a copy of the current content.
func (c *Container) Scene() Scene {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scene.Clone()
}

// Acquire takes exclusive access and clears previous content.
// Callers must Release the returned surface on every path.
func (c *Container) Acquire() (*Surface, error) {
	if !c.mu.TryLock() {
		return nil, ErrContainerBusy
	}
	c.scene.Reset(0, 0)
	c.styleWidth = 0
	return &Surface{c: c}, nil
}

// Surface is a drawing handle bound to an acquired container.
type Surface struct {
	c        *Container
	released bool
}

// SetWidth applies the requested style width.
func (s *Surface) SetWidth(px float64) {
	s.c.styleWidth = px
}

// MeasuredWidth is the width the container lays out at: the style width,
// clamped by the parent's available width.
func (s *Surface) MeasuredWidth() float64 {
	w := s.c.styleWidth
	if s.c.MaxWidth > 0 && w > s.c.MaxWidth {
		w = s.c.MaxWidth
	}
	return w
}

// Scene returns the scene to draw into.
func (s *Surface) Scene() *Scene {
	return &s.c.scene
}

// Release gives up exclusive access. It is safe to call more than once.
func (s *Surface) Release() {
	if s.released {
		return
	}
	s.released = true
	s.c.mu.Unlock()
}
