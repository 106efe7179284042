package layout

import "fmt"

// SplitPair keeps the follower's divider at the primary's position, in
// absolute cells, whichever of the two the user drags.
type SplitPair struct {
	primary  *Split
	follower *Split

	propagating bool
	cancels     []func()
}

// NewSplitPair binds two distinct splits and aligns the follower to the
// primary.
func NewSplitPair(primary, follower *Split) (*SplitPair, error) {
	if primary == nil || follower == nil {
		return nil, fmt.Errorf("%w: split pair needs two splits", ErrInvalidConfiguration)
	}
	if primary == follower {
		return nil, fmt.Errorf("%w: split pair members must differ", ErrInvalidConfiguration)
	}
	p := &SplitPair{primary: primary, follower: follower}
	p.cancels = []func(){
		primary.OnDividerMoved(func(ev DividerEvent) { p.OnDividerMoved(ev.Split, ev.Position) }),
		follower.OnDividerMoved(func(ev DividerEvent) { p.OnDividerMoved(ev.Split, ev.Position) }),
	}
	p.OnDividerMoved(primary, primary.Position())
	return p, nil
}

// Primary returns the primary split.
func (p *SplitPair) Primary() *Split { return p.primary }

// Follower returns the follower split.
func (p *SplitPair) Follower() *Split { return p.follower }

// OnDividerMoved mirrors position from source onto the other split. Calls
// made while a mirror is in flight are dropped, so the two splits cannot
// bounce the change back and forth. A follower moved past the primary's
// range is pulled back to where the primary settled; the primary is allowed
// to sit beyond the follower's range.
func (p *SplitPair) OnDividerMoved(source *Split, position int) {
	if p.propagating {
		return
	}
	var target *Split
	switch source {
	case p.primary:
		target = p.follower
	case p.follower:
		target = p.primary
	default:
		return
	}
	p.propagating = true
	defer func() { p.propagating = false }()
	applied := target.MoveDivider(position)
	if source == p.follower && applied != position {
		source.MoveDivider(applied)
	}
}

// Close detaches the pair from both splits.
func (p *SplitPair) Close() {
	for _, cancel := range p.cancels {
		cancel()
	}
	p.cancels = nil
}
