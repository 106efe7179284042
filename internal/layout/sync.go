package layout

import "fmt"

// ClampPolicy decides how a group treats members with unequal scroll ranges.
// ClampIndependent is the default: panes with more content stay reachable
// to their end at the cost of shorter panes stopping early. ClampShortest
// trades that reach for panes that never drift apart.
type ClampPolicy int

const (
	// ClampIndependent applies the driver's offset to every member and lets
	// each member clamp on its own. Shorter members may fall behind.
	ClampIndependent ClampPolicy = iota
	// ClampShortest limits the shared offset to the smallest maximum among
	// live members so every pane stays aligned.
	ClampShortest
)

func (p ClampPolicy) String() string {
	if p == ClampShortest {
		return "shortest"
	}
	return "independent"
}

// ParseClampPolicy accepts "independent" or "shortest".
func ParseClampPolicy(value string) (ClampPolicy, error) {
	switch value {
	case "independent", "":
		return ClampIndependent, nil
	case "shortest", "min":
		return ClampShortest, nil
	}
	return 0, fmt.Errorf("%w: unknown clamp policy %q", ErrInvalidConfiguration, value)
}

type groupMember struct {
	region *Region
	cancel func()
}

// SyncGroup keeps the offsets of its members equal on the axes it covers.
type SyncGroup struct {
	axes    Axes
	policy  ClampPolicy
	members []groupMember
	syncing bool
}

// NewSyncGroup binds the regions. At least one region and one axis are
// required.
func NewSyncGroup(axes Axes, policy ClampPolicy, regions ...*Region) (*SyncGroup, error) {
	if axes&BothAxes == 0 {
		return nil, fmt.Errorf("%w: sync group needs at least one axis", ErrInvalidConfiguration)
	}
	live := 0
	for _, r := range regions {
		if r != nil {
			live++
		}
	}
	if live == 0 {
		return nil, fmt.Errorf("%w: sync group needs at least one member", ErrInvalidConfiguration)
	}
	g := &SyncGroup{axes: axes & BothAxes, policy: policy}
	for _, r := range regions {
		g.add(r)
	}
	return g, nil
}

func (g *SyncGroup) add(r *Region) {
	if r == nil || g.contains(r) {
		return
	}
	cancel := r.OnOffsetChanged(g.mirror)
	g.members = append(g.members, groupMember{region: r, cancel: cancel})
}

// Axes returns the synchronized axes.
func (g *SyncGroup) Axes() Axes { return g.axes }

// Policy returns the clamp policy.
func (g *SyncGroup) Policy() ClampPolicy { return g.policy }

// Members returns the live members in registration order.
func (g *SyncGroup) Members() []*Region {
	out := make([]*Region, 0, len(g.members))
	for _, m := range g.members {
		if !m.region.Detached() {
			out = append(out, m.region)
		}
	}
	return out
}

// Remove unregisters r. Removing an unknown region is a no-op.
func (g *SyncGroup) Remove(r *Region) {
	for i, m := range g.members {
		if m.region == r {
			m.cancel()
			g.members = append(g.members[:i], g.members[i+1:]...)
			return
		}
	}
}

func (g *SyncGroup) contains(r *Region) bool {
	for _, m := range g.members {
		if m.region == r {
			return true
		}
	}
	return false
}

// driverFor picks the region the input landed on, falling back to the first
// live member.
func (g *SyncGroup) driverFor(r *Region) *Region {
	if r != nil && !r.Detached() && g.contains(r) {
		return r
	}
	for _, m := range g.members {
		if !m.region.Detached() {
			return m.region
		}
	}
	return nil
}

// ApplyDelta handles one scroll input. The driver's clamped target is
// written to every live member as an absolute offset. On an axis the group
// does not cover only the driver moves. Returns the driver's applied offset.
func (g *SyncGroup) ApplyDelta(driver *Region, a Axis, delta int) int {
	d := g.driverFor(driver)
	if d == nil {
		return 0
	}
	if g.syncing {
		return d.Offset(a)
	}
	if !g.axes.Has(a) {
		return d.ScrollBy(a, delta)
	}
	target := clamp(d.Offset(a)+delta, 0, g.limit(d, a))
	g.broadcast(a, target)
	return d.Offset(a)
}

// SetOffset jumps every live member to value on the axis.
func (g *SyncGroup) SetOffset(driver *Region, a Axis, value int) int {
	d := g.driverFor(driver)
	if d == nil {
		return 0
	}
	if !g.axes.Has(a) || g.syncing {
		return d.SetOffset(a, value)
	}
	g.broadcast(a, clamp(value, 0, g.limit(d, a)))
	return d.Offset(a)
}

func (g *SyncGroup) limit(driver *Region, a Axis) int {
	limit := driver.MaxOffset(a)
	if g.policy != ClampShortest {
		return limit
	}
	for _, m := range g.members {
		if m.region.Detached() {
			continue
		}
		if other := m.region.MaxOffset(a); other < limit {
			limit = other
		}
	}
	return limit
}

func (g *SyncGroup) broadcast(a Axis, target int) {
	g.syncing = true
	defer func() { g.syncing = false }()
	for _, m := range g.members {
		if m.region.Detached() {
			continue
		}
		m.region.SetOffset(a, target)
	}
}

// mirror follows offsets written straight to a member.
func (g *SyncGroup) mirror(ev OffsetEvent) {
	if g.syncing || !g.axes.Has(ev.Axis) {
		return
	}
	target := ev.Offset
	if g.policy == ClampShortest {
		target = clamp(target, 0, g.limit(ev.Region, ev.Axis))
	}
	g.broadcast(ev.Axis, target)
}

// Close unsubscribes from every member.
func (g *SyncGroup) Close() {
	for _, m := range g.members {
		m.cancel()
	}
	g.members = nil
}
