// Package layout holds the geometry primitives behind the frozen grid: scroll
// regions that clamp their own offsets, groups that keep several regions
// scrolled in lockstep, and two-segment splits whose divider can be mirrored
// onto a paired split.
//
// Everything here runs on the Bubble Tea update goroutine. Nothing blocks and
// nothing locks; the only discipline is that groups and pairs never re-enter
// themselves while they are mirroring a change onto their members.
//
// Geometry input is never an error. Offsets and divider positions are clamped
// silently. The only failure is ErrInvalidConfiguration, reported by the
// constructors.
package layout
