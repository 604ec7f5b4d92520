// Package event implements the sweepline event queue: site events and
// circle events ordered by decreasing sweep-line y, with lazy
// invalidation of circle events that stop being geometrically valid.
//
// Ties are broken so that site events are popped before circle events
// at the same y; the algorithm's correctness on horizontal-collinear
// input depends on preserving this.
package event
