// SPDX-License-Identifier: MIT

// Package meshio converts between mesh.Soup and the Wavefront OBJ text format.
//
// Only geometry and connectivity are exchanged: "v" and "f" records. Normals,
// texture coordinates, groups and materials are skipped on read and never
// written. Face corners may use any of the a, a/b, a//c and a/b/c forms; only
// the vertex index is kept. Indices are 1-based, and negative indices count
// back from the most recently read vertex.
//
//	soup, err := meshio.ReadOBJ(f)
//	m, err := mesh.New(soup)
//
// ReadMesh combines both calls.
package meshio
