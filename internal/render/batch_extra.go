package render

import (
	"SceneFusion/internal/meshing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UploadGeometry converte buffers puros em malha e sobe para a GPU.
// Usado pelo viewer para desenhar nós de geometria avulsos (pré-merge).
func UploadGeometry(data meshing.GeometryData) rl.Mesh {
	mesh := geometryToMesh(data)
	rl.UploadMesh(&mesh, false)
	return mesh
}
