package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// AxisX is the world right axis.
	AxisX = mgl32.Vec3{1, 0, 0}
	// AxisY is the world up axis.
	AxisY = mgl32.Vec3{0, 1, 0}
	// AxisZ is the world backward axis (forward is -Z).
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// DegToRad converts an angle in degrees to radians.
//
// Parameters:
//   - deg: angle in degrees
//
// Returns:
//   - float32: angle in radians
func DegToRad(deg float32) float32 {
	return deg * (math.Pi / 180.0)
}

// RadToDeg converts an angle in radians to degrees.
//
// Parameters:
//   - rad: angle in radians
//
// Returns:
//   - float32: angle in degrees
func RadToDeg(rad float32) float32 {
	return rad * (180.0 / math.Pi)
}

// Clamp limits v to the closed interval [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// QuatFromEulerYXZ composes a rotation from Euler angles applied in Y, X, Z order:
// yaw about the world up axis, then pitch about the local right axis, then roll
// about the local forward axis. The result equals Ry(yaw) * Rx(pitch) * Rz(roll).
//
// Parameters:
//   - yaw: rotation about Y in radians
//   - pitch: rotation about X in radians
//   - roll: rotation about Z in radians
//
// Returns:
//   - mgl32.Quat: the composed unit quaternion
func QuatFromEulerYXZ(yaw, pitch, roll float32) mgl32.Quat {
	qy := mgl32.QuatRotate(yaw, AxisY)
	qx := mgl32.QuatRotate(pitch, AxisX)
	qz := mgl32.QuatRotate(roll, AxisZ)
	return qy.Mul(qx).Mul(qz)
}

// EulerYXZ decomposes a rotation into the (yaw, pitch, roll) triple accepted by
// QuatFromEulerYXZ. Pitch is returned in [-π/2, π/2].
//
// For R = Ry(yaw) * Rx(pitch) * Rz(roll) the rotation matrix elements satisfy
//
//	r12 = -sin(pitch)
//	r02 =  sin(yaw) cos(pitch),  r22 = cos(yaw) cos(pitch)
//	r10 =  cos(pitch) sin(roll), r11 = cos(pitch) cos(roll)
//
// Parameters:
//   - q: the rotation to decompose (need not be normalized)
//
// Returns:
//   - yaw, pitch, roll: Euler angles in radians
func EulerYXZ(q mgl32.Quat) (yaw, pitch, roll float32) {
	q = q.Normalize()
	w, x, y, z := float64(q.W), float64(q.V[0]), float64(q.V[1]), float64(q.V[2])

	r12 := 2 * (y*z - w*x)
	r02 := 2 * (x*z + w*y)
	r22 := 1 - 2*(x*x+y*y)
	r10 := 2 * (x*y + w*z)
	r11 := 1 - 2*(x*x+z*z)

	pitch = float32(math.Asin(math.Max(-1, math.Min(1, -r12))))
	yaw = float32(math.Atan2(r02, r22))
	roll = float32(math.Atan2(r10, r11))
	return yaw, pitch, roll
}

// Perspective creates a perspective projection matrix using the WebGPU clip
// space depth range [0, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// Orthographic creates an orthographic projection matrix using the WebGPU clip
// space depth range [0, 1]. The view volume spans [-halfHeight*aspect, halfHeight*aspect]
// horizontally and [-halfHeight, halfHeight] vertically.
//
// Parameters:
//   - halfHeight: half of the vertical extent of the view volume
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func Orthographic(halfHeight, aspect, near, far float32) mgl32.Mat4 {
	halfWidth := halfHeight * aspect

	out := mgl32.Ident4()
	out[0] = 1 / halfWidth
	out[5] = 1 / halfHeight
	out[10] = 1 / (near - far)
	out[14] = near / (near - far)
	return out
}

// TransformMatrix builds a model matrix from a translation and a rotation.
//
// Parameters:
//   - position: world-space translation
//   - rotation: world-space rotation
//
// Returns:
//   - mgl32.Mat4: translation * rotation (column-major)
func TransformMatrix(position mgl32.Vec3, rotation mgl32.Quat) mgl32.Mat4 {
	return mgl32.Translate3D(position[0], position[1], position[2]).Mul4(rotation.Normalize().Mat4())
}

// ViewMatrix builds the world-to-view matrix for an eye at position with the given
// orientation. The eye looks down its local -Z axis.
//
// Parameters:
//   - position: world-space eye position
//   - rotation: world-space eye orientation
//
// Returns:
//   - mgl32.Mat4: the inverse of the eye's model matrix
func ViewMatrix(position mgl32.Vec3, rotation mgl32.Quat) mgl32.Mat4 {
	inv := rotation.Normalize().Conjugate()
	t := inv.Rotate(position.Mul(-1))
	return mgl32.Translate3D(t[0], t[1], t[2]).Mul4(inv.Mat4())
}
