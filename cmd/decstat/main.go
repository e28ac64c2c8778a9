// SPDX-License-Identifier: MIT

// Command decstat builds DEC operators for OBJ meshes and reports their
// shape and algebraic sanity.
//
//	decstat ops bunny.obj
//	decstat laplacian --area circumcentric bunny.obj
//	decstat fixture torus --rings 16 --segments 8 > torus.obj
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
