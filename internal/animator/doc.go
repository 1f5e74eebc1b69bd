// Package animator advances the per-frame transform of the heart cloud.
//
// Each frame the [Animator] computes a breathing scale from elapsed time,
// adds a constant increment to the cumulative rotation and eases the
// viewpoint toward a target derived from the pointer. It never fails and
// never blocks.
//
// # Thread Safety
//
// Animator is NOT thread-safe. It is driven from a single frame loop; the
// pointer is read as whatever value was last stored.
package animator
