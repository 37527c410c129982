package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"SceneFusion/internal/meshing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// geometryToMesh converte buffers puros de geometria numa rl.Mesh.
// Os buffers são copiados para memória C porque o raylib assume posse
// deles no UploadMesh/UnloadMesh.
func geometryToMesh(data meshing.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	mesh.VertexCount = int32(data.VertexCount())
	mesh.TriangleCount = int32(data.TriangleCount())

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.Colors) > 0 {
		mesh.Colors = (*uint8)(copyToC(unsafe.Pointer(&data.Colors[0]), len(data.Colors)))
	}
	if len(data.UVs) > 0 {
		mesh.Texcoords = (*float32)(copyToC(unsafe.Pointer(&data.UVs[0]), len(data.UVs)*4))
	}
	if len(data.Indices) > 0 {
		mesh.Indices = (*uint16)(copyToC(unsafe.Pointer(&data.Indices[0]), len(data.Indices)*2))
	}
	return mesh
}

func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}
