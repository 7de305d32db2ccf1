// Package iconlint analyzes the geometry of icon path data.
//
// # Overview
//
// iconlint checks that SVG icon artwork obeys a strict geometric contract
// before it is accepted into an icon library. This package is the
// geometry engine: it tokenizes path data, resolves relative instructions
// to absolute coordinates, computes tight bounding boxes, and detects
// instructions that draw nothing.
//
// # Quick Start
//
//	p, err := iconlint.ParsePath("M0 0h24v24H0z")
//	if err != nil {
//		// err matches iconlint.ErrMalformedPath
//	}
//	box := iconlint.Bounds(p)            // {Min: (0,0), Max: (24,24)}
//	extra := iconlint.Redundancies(p)    // instructions with no effect
//
// # Supported Commands
//
// M, L, H, V, C, S and Z, each in absolute (uppercase) and relative
// (lowercase) form. Quadratic curves and arcs are rejected by ParsePath.
//
// # Coordinate System
//
// Uses the SVG user coordinate system:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Architecture
//
// The library is organized into:
//   - Public API: ParsePath, Resolve, Bounds, Redundancies
//   - internal/rules: the named lint checks and their diagnostics
//   - internal/ledger: the known-issues list suppressing accepted failures
//   - internal/lint: batch analysis over many icons
//   - cmd/iconlint: the command-line front end
package iconlint
