package physics

import "github.com/go-gl/mathgl/mgl32"

// ShapeKind identifica a variante de uma forma de colisão.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapeConvex  // Casco convexo aproximado (nuvem de pontos)
	ShapeTrimesh // Malha de triângulos exata (côncava)
)

// Shape é uma forma de colisão. Formas autorais (caixa, esfera) são leves e
// podem ser duplicadas sem custo; as derivadas (casco, trimesh) compartilham
// buffers imutáveis e a duplicação copia os buffers.
type Shape interface {
	Kind() ShapeKind
	// Duplicate retorna uma cópia independente: mutações na cópia nunca
	// afetam a forma original.
	Duplicate() Shape
}

// BoxShape é uma caixa definida por meias-dimensões.
type BoxShape struct {
	HalfExtents mgl32.Vec3
}

func (s *BoxShape) Kind() ShapeKind { return ShapeBox }

func (s *BoxShape) Duplicate() Shape {
	clone := *s
	return &clone
}

// SphereShape é uma esfera definida pelo raio.
type SphereShape struct {
	Radius float32
}

func (s *SphereShape) Kind() ShapeKind { return ShapeSphere }

func (s *SphereShape) Duplicate() Shape {
	clone := *s
	return &clone
}

// ConvexShape é um casco convexo aproximado representado pela nuvem de
// pontos de suporte. A simulação avalia o casco a partir dos pontos.
type ConvexShape struct {
	Points []mgl32.Vec3
}

func (s *ConvexShape) Kind() ShapeKind { return ShapeConvex }

func (s *ConvexShape) Duplicate() Shape {
	clone := &ConvexShape{Points: make([]mgl32.Vec3, len(s.Points))}
	copy(clone.Points, s.Points)
	return clone
}

// TrimeshShape é a forma côncava exata: referencia os triângulos da
// geometria de origem. Os buffers são tratados como imutáveis.
type TrimeshShape struct {
	Vertices []float32
	Indices  []uint16
}

func (s *TrimeshShape) Kind() ShapeKind { return ShapeTrimesh }

func (s *TrimeshShape) Duplicate() Shape {
	clone := &TrimeshShape{
		Vertices: make([]float32, len(s.Vertices)),
		Indices:  make([]uint16, len(s.Indices)),
	}
	copy(clone.Vertices, s.Vertices)
	copy(clone.Indices, s.Indices)
	return clone
}
