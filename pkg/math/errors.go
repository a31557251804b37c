package math

import "errors"

var (
	// ErrSingularMatrix is returned by TryInverse when the determinant is
	// zero or not finite.
	ErrSingularMatrix = errors.New("math: singular matrix")

	// ErrZeroQuaternion is the panic value of Quaternion.Inverse for the
	// zero quaternion, and the error returned by Quaternion.TryInverse.
	ErrZeroQuaternion = errors.New("math: inverse of zero quaternion")
)
