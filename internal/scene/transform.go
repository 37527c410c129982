package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform guarda posição, rotação (Euler em graus) e escala de um nó.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Graus em torno de X, Y, Z
	Scale    rl.Vector3
}

// IdentityTransform retorna a transformação neutra.
func IdentityTransform() Transform {
	return Transform{Scale: rl.Vector3{X: 1, Y: 1, Z: 1}}
}

// At retorna uma transformação neutra na posição indicada.
func At(x, y, z float32) Transform {
	t := IdentityTransform()
	t.Position = rl.Vector3{X: x, Y: y, Z: z}
	return t
}

// Matrix monta a matriz local na ordem T * R * S.
// 1. Scale local -> 2. Rotate local -> 3. Translate para o mundo.
func (t Transform) Matrix() rl.Matrix {
	scale := t.Scale
	if scale.X == 0 && scale.Y == 0 && scale.Z == 0 {
		scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	}

	scaleMat := rl.MatrixScale(scale.X, scale.Y, scale.Z)
	rotMat := rl.MatrixRotateXYZ(rl.Vector3{
		X: t.Rotation.X * rl.Deg2rad,
		Y: t.Rotation.Y * rl.Deg2rad,
		Z: t.Rotation.Z * rl.Deg2rad,
	})
	transMat := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)

	// No Raylib MatrixMultiply(A, B) aplica A antes de B. Queremos
	// escala -> rotação -> translação, ou seja T * R * S.
	matrix := rl.MatrixMultiply(scaleMat, rotMat)
	return rl.MatrixMultiply(matrix, transMat)
}
