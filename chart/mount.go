package chart

import (
	"fmt"

	"github.com/spektr-org/statchart/surface"
)

// ============================================================================
// MOUNT — Chart kind dispatcher
// ============================================================================
// Entry point: Mount(container, spec, opts...)
//
// Pipeline:
//   1. Acquire the container exclusively (clears prior content)
//   2. Apply the requested width and measure the container
//   3. Reject non-positive measured width or height
//   4. Dispatch to exactly one drawing routine
//   5. Release the container on every path
//
// Caller-contract faults come back as *MountError. Data conditions (nulls,
// empty series) never fault; they render a degraded chart.
// ============================================================================

// Mount draws spec into c, replacing whatever c held.
func Mount(c *surface.Container, spec Spec, opts ...Option) error {
	cfg := applyOptions(opts)
	kind := spec.Kind()
	fault := func(err error) error {
		cfg.Log.Warnf("⚠️ chart %q: %v", c.ID, err)
		return &MountError{ContainerID: c.ID, Kind: kind, Err: err}
	}

	if p, ok := spec.Payload.(GroupLineData); ok && p.Params != nil {
		if err := p.Params.Validate(); err != nil {
			return fault(err)
		}
	}

	surf, err := c.Acquire()
	if err != nil {
		return fault(err)
	}
	defer surf.Release()

	surf.SetWidth(spec.Width)
	width := surf.MeasuredWidth()
	if err := checkSize(width, spec.Height); err != nil {
		return fault(err)
	}

	cfg.Log.Debugf("🔧 mounting %s chart into %q at %gx%g (requested width %g)", kind, c.ID, width, spec.Height, spec.Width)

	scene := surf.Scene()
	switch p := spec.Payload.(type) {
	case LineData:
		err = DrawLineChart(scene, width, spec.Height, p.Groups, spec.Unit, opts...)
	case SingleBarData:
		err = DrawSingleBarChart(scene, width, spec.Height, p.Points, spec.Unit, opts...)
	case GroupBarData:
		err = DrawGroupBarChart(scene, width, spec.Height, p.Groups, spec.Unit, opts...)
	case StackBarData:
		err = DrawStackBarChart(scene, width, spec.Height, p.Groups, spec.Unit, opts...)
	case GroupLineData:
		err = DrawGroupLineChart(scene, width, spec.Height, p.Groups, p.Titles, p.Params, spec.Unit, opts...)
	case HistogramData:
		err = DrawHistogram(scene, width, spec.Height, p.Points, spec.Unit, opts...)
	case nil:
		err = fmt.Errorf("%w: no payload", ErrMissingPayload)
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownKind, p)
	}
	if err != nil {
		scene.Reset(0, 0)
		return fault(err)
	}
	return nil
}

// MountProps validates wire props and mounts them.
func MountProps(c *surface.Container, p Props, opts ...Option) error {
	spec, err := p.Spec()
	if err != nil {
		cfg := applyOptions(opts)
		cfg.Log.Warnf("⚠️ chart %q: %v", c.ID, err)
		return &MountError{ContainerID: c.ID, Kind: specKind(p.Type), Err: err}
	}
	return Mount(c, spec, opts...)
}

func specKind(tag string) Kind {
	k, _ := ParseKind(tag)
	return k
}
