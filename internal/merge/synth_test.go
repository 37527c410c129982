package merge

import (
	"testing"

	"SceneFusion/internal/meshing"
	"SceneFusion/internal/physics"
	"SceneFusion/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// makeProxy monta um lote com n instâncias em posições distintas.
func makeProxy(n int) *BatchedProxy {
	node := scene.NewNode("lote", scene.KindProxy)
	mesh := &scene.MeshResource{ID: "caixa", Geometry: meshing.BoxGeometry(1, 1, 1)}
	node.Mesh = mesh

	transforms := make([]rl.Matrix, n)
	for i := range transforms {
		transforms[i] = rl.MatrixTranslate(float32(i), 0, float32(i%7))
	}
	node.InstanceTransforms = transforms

	return &BatchedProxy{Key: "caixa", Mesh: mesh, Transforms: transforms, Node: node}
}

func generatedBodies(proxyNode *scene.Node) []*scene.Node {
	var out []*scene.Node
	for _, c := range proxyNode.Children() {
		if c.Generated && c.Kind == scene.KindStaticBody {
			out = append(out, c)
		}
	}
	return out
}

func TestSynthesizeOneBodyPerInstance(t *testing.T) {
	proxy := makeProxy(3)
	synth := Synthesizer{Policy: PolicyConvex, Layer: 2, Mask: 4}

	n, err := synth.Run(proxy, scene.ImmediateSink{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 3 {
		t.Fatalf("corpos gerados = %d, want 3", n)
	}

	bodies := generatedBodies(proxy.Node)
	if len(bodies) != 3 {
		t.Fatalf("corpos na cena = %d, want 3", len(bodies))
	}

	var shared physics.Shape
	for i, body := range bodies {
		if body.LocalMatrix() != proxy.Transforms[i] {
			t.Errorf("corpo %d não usa a transformação da instância %d", i, i)
		}
		if body.Layer != 2 || body.Mask != 4 {
			t.Errorf("corpo %d: camada/máscara = %d/%d, want 2/4", i, body.Layer, body.Mask)
		}
		shapes := scene.ShapeChildren(body)
		if len(shapes) != 1 {
			t.Fatalf("corpo %d: filhos de forma = %d, want 1", i, len(shapes))
		}
		// A forma derivada é imutável e compartilhada entre os corpos
		if shared == nil {
			shared = shapes[0].Shape
		} else if shapes[0].Shape != shared {
			t.Errorf("corpo %d porta forma própria em vez da compartilhada", i)
		}
	}
}

func TestSynthesizeRegenerationReplaces(t *testing.T) {
	proxy := makeProxy(5)
	synth := Synthesizer{Policy: PolicyConvex}
	sink := scene.ImmediateSink{}

	if _, err := synth.Run(proxy, sink); err != nil {
		t.Fatalf("primeira geração: %v", err)
	}
	if _, err := synth.Run(proxy, sink); err != nil {
		t.Fatalf("segunda geração: %v", err)
	}

	if got := len(generatedBodies(proxy.Node)); got != 5 {
		t.Errorf("corpos após regenerar = %d, want 5 (substituir, não acumular)", got)
	}
}

func TestSynthesizeShapePolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy ShapePolicy
		want   physics.ShapeKind
	}{
		{"convexo", PolicyConvex, physics.ShapeConvex},
		{"concavo", PolicyConcave, physics.ShapeTrimesh},
	}

	for _, tt := range tests {
		proxy := makeProxy(1)
		synth := Synthesizer{Policy: tt.policy}
		run, err := synth.Begin(proxy, scene.ImmediateSink{})
		if err != nil {
			t.Fatalf("%s: Begin: %v", tt.name, err)
		}
		if run.Shape().Kind() != tt.want {
			t.Errorf("%s: forma derivada = %v, want %v", tt.name, run.Shape().Kind(), tt.want)
		}
	}
}

func TestSynthesizeRejectsInvalidProxies(t *testing.T) {
	semInstancias := makeProxy(0)

	semGeometria := makeProxy(1)
	semGeometria.Mesh = &scene.MeshResource{ID: "vazio"}

	// Todos os vértices no mesmo ponto: sem extensão, o casco degenera
	degenerada := makeProxy(1)
	degenerada.Mesh = &scene.MeshResource{
		ID:       "plano_zero",
		Geometry: meshing.GeometryData{Vertices: make([]float32, 12), Indices: []uint16{0, 1, 2}},
	}

	tests := []struct {
		name  string
		proxy *BatchedProxy
	}{
		{"proxy nulo", nil},
		{"sem instâncias", semInstancias},
		{"sem geometria base", semGeometria},
		{"geometria degenerada", degenerada},
	}

	synth := Synthesizer{Policy: PolicyConvex}
	for _, tt := range tests {
		if _, err := synth.Begin(tt.proxy, scene.ImmediateSink{}); err == nil {
			t.Errorf("%s: Begin deveria falhar", tt.name)
		}
	}
}

func TestSynthesizeFailureLeavesOthersIntact(t *testing.T) {
	bom := makeProxy(2)
	ruim := makeProxy(0)
	synth := Synthesizer{Policy: PolicyConvex}
	sink := scene.ImmediateSink{}

	if _, err := synth.Run(ruim, sink); err == nil {
		t.Fatalf("proxy sem instâncias deveria falhar")
	}
	// A falha de um proxy não impede a geração dos demais
	if n, err := synth.Run(bom, sink); err != nil || n != 2 {
		t.Fatalf("Run após falha alheia = (%d, %v), want (2, nil)", n, err)
	}
}

func TestSynthesizeChunkedTenThousand(t *testing.T) {
	proxy := makeProxy(10000)
	synth := Synthesizer{Policy: PolicyConvex, YieldInterval: 100}

	run, err := synth.Begin(proxy, scene.ImmediateSink{})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	yields := 0
	for !run.Step() {
		yields++
		if yields > 10000 {
			t.Fatalf("geração não termina")
		}
	}

	// 10000 corpos em lotes de 100: 99 passos intermediários + 1 final
	if yields != 99 {
		t.Errorf("passos intermediários = %d, want 99", yields)
	}
	if run.Generated() != 10000 {
		t.Errorf("corpos gerados = %d, want 10000", run.Generated())
	}

	bodies := generatedBodies(proxy.Node)
	if len(bodies) != 10000 {
		t.Fatalf("corpos na cena = %d, want 10000", len(bodies))
	}
	for i, body := range bodies {
		if body.LocalMatrix() != proxy.Transforms[i] {
			t.Fatalf("corpo %d não casa com a transformação da instância %d", i, i)
		}
	}
}
