// Package geom provides the planar point type and the geometric
// primitives the sweepline algorithm is built from: circumcentres,
// parabola breakpoints, orientation, and distance.
package geom
