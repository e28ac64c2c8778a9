// SPDX-License-Identifier: MIT
// Package meshio - OBJ reader and writer.
//
// Reader contract:
//   - Line-oriented; '#' starts a comment anywhere on a line.
//   - "v x y z [w]": w is ignored.
//   - "f c1 c2 ... ck": k >= 3, corner = index[/vt][/vn].
//   - Unknown record types are skipped.
//   - Index range is not checked here; mesh.New reports it.
//
// Writer contract:
//   - Coordinates use the shortest decimal form that round-trips exactly
//     (strconv 'g', -1), so ReadOBJ(WriteOBJ(s)) == s.

package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvdec/mesh"
)

// maxLine bounds a single OBJ line; large polygons fit comfortably.
const maxLine = 1 << 20

// ReadOBJ parses positions and faces from r.
func ReadOBJ(r io.Reader) (mesh.Soup, error) {
	var soup mesh.Soup
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseVertex(n, fields[1:])
			if err != nil {
				return mesh.Soup{}, err
			}
			soup.Positions = append(soup.Positions, p)
		case "f":
			face, err := parseFace(n, fields[1:], len(soup.Positions))
			if err != nil {
				return mesh.Soup{}, err
			}
			soup.Faces = append(soup.Faces, face)
		}
	}
	if err := sc.Err(); err != nil {
		return mesh.Soup{}, fmt.Errorf("%s: %w", methodReadOBJ, err)
	}

	return soup, nil
}

// ReadMesh parses r and builds a half-edge mesh from the result.
func ReadMesh(r io.Reader, opts ...mesh.Option) (*mesh.Mesh, error) {
	soup, err := ReadOBJ(r)
	if err != nil {
		return nil, err
	}
	m, err := mesh.New(soup, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodReadMesh, err)
	}

	return m, nil
}

func parseVertex(n int, args []string) (r3.Vec, error) {
	if len(args) < 3 || len(args) > 4 {
		return r3.Vec{}, syntaxErrorf(n, "vertex needs 3 coordinates, got %d", len(args))
	}
	var xyz [3]float64
	for k := range xyz {
		v, err := strconv.ParseFloat(args[k], 64)
		if err != nil {
			return r3.Vec{}, syntaxErrorf(n, "coordinate %q", args[k])
		}
		xyz[k] = v
	}

	return r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// parseFace converts corner tokens to 0-based indices; seen is the number of
// vertices read so far, the base for negative indices.
func parseFace(n int, args []string, seen int) ([]int, error) {
	if len(args) < 3 {
		return nil, syntaxErrorf(n, "face needs at least 3 corners, got %d", len(args))
	}
	face := make([]int, len(args))
	for k, tok := range args {
		ref, _, _ := strings.Cut(tok, "/")
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return nil, syntaxErrorf(n, "corner %q", tok)
		}
		switch {
		case idx > 0:
			face[k] = idx - 1
		case idx < 0 && seen+idx >= 0:
			face[k] = seen + idx
		default:
			return nil, syntaxErrorf(n, "corner index %d with %d vertices read", idx, seen)
		}
	}

	return face, nil
}

// WriteOBJ writes soup as "v" and "f" records with 1-based indices.
func WriteOBJ(w io.Writer, soup mesh.Soup) error {
	nV := len(soup.Positions)
	for f, face := range soup.Faces {
		for _, v := range face {
			if v < 0 || v >= nV {
				return fmt.Errorf("%s: face %d: vertex %d not in [0,%d): %w", methodWriteOBJ, f, v, nV, ErrInvalidSoup)
			}
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d faces\n", nV, len(soup.Faces))
	for _, p := range soup.Positions {
		bw.WriteString("v ")
		bw.WriteString(formatFloat(p.X))
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(p.Y))
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(p.Z))
		bw.WriteByte('\n')
	}
	for _, face := range soup.Faces {
		bw.WriteByte('f')
		for _, v := range face {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(v + 1))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteOBJ, err)
	}

	return nil
}

func formatFloat(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
