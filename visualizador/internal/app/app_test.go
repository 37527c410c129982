package app

import (
	"fmt"
	"testing"

	"SceneFusion/internal/merge"
	"SceneFusion/internal/meshing"
	"SceneFusion/internal/scene"
	"SceneFusion/shared/config"
)

// twoBatchProxies monta dois lotes sem colisão autoral, como a cena de
// demonstração (caixas e barris), com contagens de instâncias distintas.
func twoBatchProxies(t *testing.T, caixas, barris int) []*merge.BatchedProxy {
	t.Helper()

	caixa := &scene.MeshResource{ID: "malhas/caixa", Geometry: meshing.BoxGeometry(1, 1, 1)}
	barril := &scene.MeshResource{ID: "malhas/barril", Geometry: meshing.BoxGeometry(0.8, 1.2, 0.8)}

	var objects []*scene.Node
	for i := 0; i < caixas+barris; i++ {
		obj := scene.NewNode(fmt.Sprintf("prop_%02d", i), scene.KindGeometry)
		if i < caixas {
			obj.Mesh = caixa
		} else {
			obj.Mesh = barril
		}
		obj.Local = scene.At(float32(i), 0, 0)
		objects = append(objects, obj)
	}

	set, err := merge.BuildGroups(objects)
	if err != nil {
		t.Fatalf("BuildGroups: %v", err)
	}
	return merge.AssembleProxies(set, merge.AssemblerOptions{})
}

func countBodies(proxy *merge.BatchedProxy) int {
	count := 0
	for _, c := range proxy.Node.Children() {
		if c.Generated && c.Kind == scene.KindStaticBody {
			count++
		}
	}
	return count
}

func TestQueueSynthesisCoversEveryBatch(t *testing.T) {
	a := New(config.DefaultConfig())
	a.Config.YieldInterval = 4

	proxies := twoBatchProxies(t, 12, 9)
	a.queueSynthesis(proxies)
	if len(a.synthRuns) != 2 {
		t.Fatalf("gerações na fila = %d, want 2", len(a.synthRuns))
	}

	// Dirige a fila como o loop de frames: um passo por iteração
	for i := 0; len(a.synthRuns) > 0; i++ {
		if i > 1000 {
			t.Fatalf("fila de síntese nunca esvaziou")
		}
		a.stepSynthesis()
	}

	// Cada lote recebeu um corpo por instância
	if got := countBodies(proxies[0]); got != 12 {
		t.Errorf("corpos do primeiro lote = %d, want 12", got)
	}
	if got := countBodies(proxies[1]); got != 9 {
		t.Errorf("corpos do segundo lote = %d, want 9", got)
	}
}

func TestQueueSynthesisSkipsFailedBatch(t *testing.T) {
	a := New(config.DefaultConfig())

	proxies := twoBatchProxies(t, 3, 5)
	// O primeiro lote perde a geometria base: a derivação falha só para ele
	proxies[0].Mesh = &scene.MeshResource{ID: "malhas/caixa"}

	a.queueSynthesis(proxies)
	if len(a.synthRuns) != 1 {
		t.Fatalf("gerações na fila = %d, want 1 (lote defeituoso fora)", len(a.synthRuns))
	}

	for len(a.synthRuns) > 0 {
		a.stepSynthesis()
	}

	if got := countBodies(proxies[0]); got != 0 {
		t.Errorf("lote defeituoso recebeu %d corpos, want 0", got)
	}
	if got := countBodies(proxies[1]); got != 5 {
		t.Errorf("lote saudável = %d corpos, want 5", got)
	}
}
