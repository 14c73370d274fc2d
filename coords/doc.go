// Package coords implements the cube-face projection consumed by cell ids.
//
// A point on the unit sphere is projected onto one of six cube faces, giving
// face-local (u,v) coordinates in [-1,1]. A quadratic transform maps (u,v) to
// (s,t) in [0,1] so that cells have roughly equal area, and (s,t) is
// quantized to integer (i,j) leaf coordinates in [0, MaxSize).
//
// Face numbering and axis orientation:
//
//	face 0: +x    face 3: -x
//	face 1: +y    face 4: -y
//	face 2: +z    face 5: -z
//
// Everything in this package is a pure function of its arguments.
package coords
