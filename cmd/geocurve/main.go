// Command geocurve turns control point sequences into antimeridian-safe
// curve segments.
//
// It reads a GeoJSON FeatureCollection of LineString features, where every
// feature holds the control points of one curve, and writes a
// FeatureCollection of MultiLineString features, one per input feature and
// one line per segment. Feature properties are carried over.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
