package physics

import (
	"fmt"

	"SceneFusion/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxHullPoints limita o tamanho da nuvem de pontos do casco convexo.
// Acima disso os vértices são subamostrados: o casco é uma aproximação
// rápida, não uma reconstrução exata.
const MaxHullPoints = 256

// DeriveConvex deriva um casco convexo aproximado da geometria.
// Função pura da geometria base: não depende de transformações de instância.
func DeriveConvex(g meshing.GeometryData) (*ConvexShape, error) {
	if g.IsEmpty() {
		return nil, fmt.Errorf("geometria vazia")
	}

	// Remove vértices repetidos (faces duras repetem posições)
	seen := make(map[[3]float32]bool, g.VertexCount())
	points := make([]mgl32.Vec3, 0, g.VertexCount())
	for i := 0; i+2 < len(g.Vertices); i += 3 {
		key := [3]float32{g.Vertices[i], g.Vertices[i+1], g.Vertices[i+2]}
		if seen[key] {
			continue
		}
		seen[key] = true
		points = append(points, mgl32.Vec3{key[0], key[1], key[2]})
	}

	if len(points) < 4 {
		return nil, fmt.Errorf("geometria degenerada: %d pontos distintos", len(points))
	}

	// Geometria achatada em algum eixo não forma volume convexo
	min, max := g.AABB()
	if max.X-min.X == 0 || max.Y-min.Y == 0 || max.Z-min.Z == 0 {
		return nil, fmt.Errorf("geometria degenerada: sem volume")
	}

	// Subamostragem para manter o casco barato de avaliar
	if len(points) > MaxHullPoints {
		stride := (len(points) + MaxHullPoints - 1) / MaxHullPoints
		sampled := make([]mgl32.Vec3, 0, MaxHullPoints)
		for i := 0; i < len(points); i += stride {
			sampled = append(sampled, points[i])
		}
		points = sampled
	}

	return &ConvexShape{Points: points}, nil
}

// DeriveTrimesh deriva a forma côncava exata da geometria. Os buffers são
// referenciados, não copiados: a forma resultante compartilha os triângulos
// imutáveis da malha de origem.
func DeriveTrimesh(g meshing.GeometryData) (*TrimeshShape, error) {
	if g.IsEmpty() {
		return nil, fmt.Errorf("geometria vazia")
	}
	if g.TriangleCount() == 0 {
		return nil, fmt.Errorf("geometria degenerada: sem triângulos")
	}
	return &TrimeshShape{
		Vertices: g.Vertices,
		Indices:  g.Indices,
	}, nil
}
