package math

// ConvertVec2 changes the scalar type of a float vector.
func ConvertVec2[U, T Float](v Vector2[T]) Vector2[U] {
	return Vector2[U]{U(v.X), U(v.Y)}
}

// ConvertVec3 changes the scalar type of a float vector.
func ConvertVec3[U, T Float](v Vector3[T]) Vector3[U] {
	return Vector3[U]{U(v.X), U(v.Y), U(v.Z)}
}

// ConvertVec4 changes the scalar type of a float vector.
func ConvertVec4[U, T Float](v Vector4[T]) Vector4[U] {
	return Vector4[U]{U(v.X), U(v.Y), U(v.Z), U(v.W)}
}

// ConvertIntVec2 changes the scalar type of an integer vector. Values that
// do not fit wrap as Go integer conversions do.
func ConvertIntVec2[U, T Integer](v IntVector2[T]) IntVector2[U] {
	return IntVector2[U]{U(v.X), U(v.Y)}
}

// ConvertIntVec3 is ConvertIntVec2 for three components.
func ConvertIntVec3[U, T Integer](v IntVector3[T]) IntVector3[U] {
	return IntVector3[U]{U(v.X), U(v.Y), U(v.Z)}
}

// ConvertIntVec4 is ConvertIntVec2 for four components.
func ConvertIntVec4[U, T Integer](v IntVector4[T]) IntVector4[U] {
	return IntVector4[U]{U(v.X), U(v.Y), U(v.Z), U(v.W)}
}

// IntVec2FromFloat truncates every component toward zero. NaN becomes zero
// and out-of-range values saturate at the integer limits.
func IntVec2FromFloat[I Integer, F Float](v Vector2[F]) IntVector2[I] {
	return IntVector2[I]{saturate[I](v.X), saturate[I](v.Y)}
}

// IntVec3FromFloat is IntVec2FromFloat for three components.
func IntVec3FromFloat[I Integer, F Float](v Vector3[F]) IntVector3[I] {
	return IntVector3[I]{saturate[I](v.X), saturate[I](v.Y), saturate[I](v.Z)}
}

// IntVec4FromFloat is IntVec2FromFloat for four components.
func IntVec4FromFloat[I Integer, F Float](v Vector4[F]) IntVector4[I] {
	return IntVector4[I]{saturate[I](v.X), saturate[I](v.Y), saturate[I](v.Z), saturate[I](v.W)}
}

func saturate[I Integer, F Float](f F) I {
	lo, hi := intLimits[I]()
	switch {
	case f != f:
		return 0
	case float64(f) <= float64(lo):
		return lo
	case float64(f) >= float64(hi):
		return hi
	}
	return I(f)
}

// intLimits returns the smallest and largest values of I.
func intLimits[I Integer]() (lo, hi I) {
	hi = ^I(0)
	if hi > 0 {
		return 0, hi
	}
	hi = 1
	for next := hi<<1 | 1; next > hi; next = next<<1 | 1 {
		hi = next
	}
	return -hi - 1, hi
}

// FloatVec2FromInt converts every component to a float.
func FloatVec2FromInt[F Float, I Integer](v IntVector2[I]) Vector2[F] {
	return Vector2[F]{F(v.X), F(v.Y)}
}

// FloatVec3FromInt converts every component to a float.
func FloatVec3FromInt[F Float, I Integer](v IntVector3[I]) Vector3[F] {
	return Vector3[F]{F(v.X), F(v.Y), F(v.Z)}
}

// FloatVec4FromInt converts every component to a float.
func FloatVec4FromInt[F Float, I Integer](v IntVector4[I]) Vector4[F] {
	return Vector4[F]{F(v.X), F(v.Y), F(v.Z), F(v.W)}
}

// ConvertMat2 changes the scalar type of a matrix.
func ConvertMat2[U, T Float](m Matrix2[T]) Matrix2[U] {
	var result Matrix2[U]
	for c := range m {
		for r := range m[c] {
			result[c][r] = U(m[c][r])
		}
	}
	return result
}

// ConvertMat3 changes the scalar type of a matrix.
func ConvertMat3[U, T Float](m Matrix3[T]) Matrix3[U] {
	var result Matrix3[U]
	for c := range m {
		for r := range m[c] {
			result[c][r] = U(m[c][r])
		}
	}
	return result
}

// ConvertMat4 changes the scalar type of a matrix.
func ConvertMat4[U, T Float](m Matrix4[T]) Matrix4[U] {
	var result Matrix4[U]
	for c := range m {
		for r := range m[c] {
			result[c][r] = U(m[c][r])
		}
	}
	return result
}

// ConvertQuat changes the scalar type of a quaternion.
func ConvertQuat[U, T Float](q Quaternion[T]) Quaternion[U] {
	return Quaternion[U]{U(q.R), U(q.I), U(q.J), U(q.K)}
}
