// SPDX-License-Identifier: MIT

package meshio

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates a malformed OBJ record. The wrapping error names the
	// line number.
	ErrSyntax = errors.New("meshio: OBJ syntax error")

	// ErrInvalidSoup indicates a soup that cannot be written, such as a face
	// referring to a missing position.
	ErrInvalidSoup = errors.New("meshio: invalid soup")
)

const (
	methodReadOBJ  = "ReadOBJ"
	methodWriteOBJ = "WriteOBJ"
	methodReadMesh = "ReadMesh"
)

// syntaxErrorf reports a malformed record on line n.
func syntaxErrorf(n int, format string, args ...any) error {
	return fmt.Errorf("%s: line %d: %s: %w", methodReadOBJ, n, fmt.Sprintf(format, args...), ErrSyntax)
}
