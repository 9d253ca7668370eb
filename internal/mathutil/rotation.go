package mathutil

// AxisAngle returns the rotation of deg degrees around an arbitrary axis,
// matching the convention of a fixed-function glRotate call.
func AxisAngle(deg float64, axis Vec3) Mat4 {
	return FromMat3Translation(QuatToMat3(QuatFromAxisAngle(deg, axis)), Vec3{})
}
