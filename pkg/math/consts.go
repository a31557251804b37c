package math

// Float vector constants.
var (
	Vec2Zero = Vec2{}
	Vec2One  = Vec2{1, 1}
	Vec2X    = Vec2{1, 0}
	Vec2Y    = Vec2{0, 1}

	Vec3Zero = Vec3{}
	Vec3One  = Vec3{1, 1, 1}
	Vec3X    = Vec3{1, 0, 0}
	Vec3Y    = Vec3{0, 1, 0}
	Vec3Z    = Vec3{0, 0, 1}

	Vec4Zero = Vec4{}
	Vec4One  = Vec4{1, 1, 1, 1}
	Vec4X    = Vec4{1, 0, 0, 0}
	Vec4Y    = Vec4{0, 1, 0, 0}
	Vec4Z    = Vec4{0, 0, 1, 0}
	Vec4W    = Vec4{0, 0, 0, 1}

	DVec2Zero = DVec2{}
	DVec2One  = DVec2{1, 1}
	DVec2X    = DVec2{1, 0}
	DVec2Y    = DVec2{0, 1}

	DVec3Zero = DVec3{}
	DVec3One  = DVec3{1, 1, 1}
	DVec3X    = DVec3{1, 0, 0}
	DVec3Y    = DVec3{0, 1, 0}
	DVec3Z    = DVec3{0, 0, 1}

	DVec4Zero = DVec4{}
	DVec4One  = DVec4{1, 1, 1, 1}
	DVec4X    = DVec4{1, 0, 0, 0}
	DVec4Y    = DVec4{0, 1, 0, 0}
	DVec4Z    = DVec4{0, 0, 1, 0}
	DVec4W    = DVec4{0, 0, 0, 1}
)

// Integer vector constants.
var (
	IVec2Zero = IVec2{}
	IVec2One  = IVec2{1, 1}
	IVec2X    = IVec2{1, 0}
	IVec2Y    = IVec2{0, 1}

	IVec3Zero = IVec3{}
	IVec3One  = IVec3{1, 1, 1}
	IVec3X    = IVec3{1, 0, 0}
	IVec3Y    = IVec3{0, 1, 0}
	IVec3Z    = IVec3{0, 0, 1}

	IVec4Zero = IVec4{}
	IVec4One  = IVec4{1, 1, 1, 1}
	IVec4X    = IVec4{1, 0, 0, 0}
	IVec4Y    = IVec4{0, 1, 0, 0}
	IVec4Z    = IVec4{0, 0, 1, 0}
	IVec4W    = IVec4{0, 0, 0, 1}

	UVec2Zero = UVec2{}
	UVec2One  = UVec2{1, 1}
	UVec2X    = UVec2{1, 0}
	UVec2Y    = UVec2{0, 1}

	UVec3Zero = UVec3{}
	UVec3One  = UVec3{1, 1, 1}
	UVec3X    = UVec3{1, 0, 0}
	UVec3Y    = UVec3{0, 1, 0}
	UVec3Z    = UVec3{0, 0, 1}

	UVec4Zero = UVec4{}
	UVec4One  = UVec4{1, 1, 1, 1}
	UVec4X    = UVec4{1, 0, 0, 0}
	UVec4Y    = UVec4{0, 1, 0, 0}
	UVec4Z    = UVec4{0, 0, 1, 0}
	UVec4W    = UVec4{0, 0, 0, 1}

	DIVec2Zero = DIVec2{}
	DIVec2One  = DIVec2{1, 1}
	DIVec2X    = DIVec2{1, 0}
	DIVec2Y    = DIVec2{0, 1}

	DIVec3Zero = DIVec3{}
	DIVec3One  = DIVec3{1, 1, 1}
	DIVec3X    = DIVec3{1, 0, 0}
	DIVec3Y    = DIVec3{0, 1, 0}
	DIVec3Z    = DIVec3{0, 0, 1}

	DIVec4Zero = DIVec4{}
	DIVec4One  = DIVec4{1, 1, 1, 1}
	DIVec4X    = DIVec4{1, 0, 0, 0}
	DIVec4Y    = DIVec4{0, 1, 0, 0}
	DIVec4Z    = DIVec4{0, 0, 1, 0}
	DIVec4W    = DIVec4{0, 0, 0, 1}

	DUVec2Zero = DUVec2{}
	DUVec2One  = DUVec2{1, 1}
	DUVec2X    = DUVec2{1, 0}
	DUVec2Y    = DUVec2{0, 1}

	DUVec3Zero = DUVec3{}
	DUVec3One  = DUVec3{1, 1, 1}
	DUVec3X    = DUVec3{1, 0, 0}
	DUVec3Y    = DUVec3{0, 1, 0}
	DUVec3Z    = DUVec3{0, 0, 1}

	DUVec4Zero = DUVec4{}
	DUVec4One  = DUVec4{1, 1, 1, 1}
	DUVec4X    = DUVec4{1, 0, 0, 0}
	DUVec4Y    = DUVec4{0, 1, 0, 0}
	DUVec4Z    = DUVec4{0, 0, 1, 0}
	DUVec4W    = DUVec4{0, 0, 0, 1}
)

// Boolean vector constants.
var (
	BVec2True  = BVec2{true, true}
	BVec2False = BVec2{}
	BVec2X     = BVec2{X: true}
	BVec2Y     = BVec2{Y: true}

	BVec3True  = BVec3{true, true, true}
	BVec3False = BVec3{}
	BVec3X     = BVec3{X: true}
	BVec3Y     = BVec3{Y: true}
	BVec3Z     = BVec3{Z: true}

	BVec4True  = BVec4{true, true, true, true}
	BVec4False = BVec4{}
	BVec4X     = BVec4{X: true}
	BVec4Y     = BVec4{Y: true}
	BVec4Z     = BVec4{Z: true}
	BVec4W     = BVec4{W: true}
)

// Identities. The zero value of a matrix is the zero matrix, not the
// identity.
var (
	Mat2Identity  = Identity2[float32]()
	Mat3Identity  = Identity3[float32]()
	Mat4Identity  = Identity4[float32]()
	DMat2Identity = Identity2[float64]()
	DMat3Identity = Identity3[float64]()
	DMat4Identity = Identity4[float64]()

	QuatIdentity  = IdentityQuaternion[float32]()
	DQuatIdentity = IdentityQuaternion[float64]()
)
