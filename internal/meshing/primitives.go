package meshing

// Geradores de primitivas usados pela cena de demonstração e pelos testes.
// Seguem o mesmo layout de buffers do mesher: 3 floats por vértice,
// 3 floats por normal, 2 floats por UV e índices de 16 bits.

// BoxGeometry gera uma caixa centrada na origem com as dimensões informadas.
// São 24 vértices (4 por face, normais duras) e 12 triângulos.
func BoxGeometry(width, height, depth float32) GeometryData {
	hx := width / 2
	hy := height / 2
	hz := depth / 2

	g := GeometryData{
		Vertices: make([]float32, 0, 24*3),
		Normals:  make([]float32, 0, 24*3),
		UVs:      make([]float32, 0, 24*2),
		Indices:  make([]uint16, 0, 36),
	}

	addFace := func(v [4][3]float32, n [3]float32) {
		base := uint16(len(g.Vertices) / 3)
		for _, p := range v {
			g.Vertices = append(g.Vertices, p[0], p[1], p[2])
			g.Normals = append(g.Normals, n[0], n[1], n[2])
		}
		g.UVs = append(g.UVs, 0, 0, 1, 0, 1, 1, 0, 1)
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	// Frente (+Z)
	addFace([4][3]float32{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}, [3]float32{0, 0, 1})
	// Trás (-Z)
	addFace([4][3]float32{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}, [3]float32{0, 0, -1})
	// Topo (+Y)
	addFace([4][3]float32{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}}, [3]float32{0, 1, 0})
	// Base (-Y)
	addFace([4][3]float32{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}, [3]float32{0, -1, 0})
	// Direita (+X)
	addFace([4][3]float32{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}}, [3]float32{1, 0, 0})
	// Esquerda (-X)
	addFace([4][3]float32{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}, [3]float32{-1, 0, 0})

	return g
}

// PlaneGeometry gera um plano horizontal (XZ) centrado na origem.
func PlaneGeometry(width, depth float32) GeometryData {
	hx := width / 2
	hz := depth / 2
	return GeometryData{
		Vertices: []float32{
			-hx, 0, hz,
			hx, 0, hz,
			hx, 0, -hz,
			-hx, 0, -hz,
		},
		Normals: []float32{
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
		},
		UVs:     []float32{0, 0, 1, 0, 1, 1, 0, 1},
		Indices: []uint16{0, 1, 2, 0, 2, 3},
	}
}
