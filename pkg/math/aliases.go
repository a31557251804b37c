package math

// Single precision float types, the common case for GPU uniforms.
type (
	Vec2 = Vector2[float32]
	Vec3 = Vector3[float32]
	Vec4 = Vector4[float32]
	Mat2 = Matrix2[float32]
	Mat3 = Matrix3[float32]
	Mat4 = Matrix4[float32]
	Quat = Quaternion[float32]
)

// Double precision float types.
type (
	DVec2 = Vector2[float64]
	DVec3 = Vector3[float64]
	DVec4 = Vector4[float64]
	DMat2 = Matrix2[float64]
	DMat3 = Matrix3[float64]
	DMat4 = Matrix4[float64]
	DQuat = Quaternion[float64]
)

// Integer vector types.
type (
	IVec2  = IntVector2[int32]
	IVec3  = IntVector3[int32]
	IVec4  = IntVector4[int32]
	UVec2  = IntVector2[uint32]
	UVec3  = IntVector3[uint32]
	UVec4  = IntVector4[uint32]
	DIVec2 = IntVector2[int64]
	DIVec3 = IntVector3[int64]
	DIVec4 = IntVector4[int64]
	DUVec2 = IntVector2[uint64]
	DUVec3 = IntVector3[uint64]
	DUVec4 = IntVector4[uint64]
)
