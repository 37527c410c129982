package merge

import (
	"fmt"
	"log"

	"SceneFusion/internal/physics"
	"SceneFusion/internal/scene"
)

// ShapePolicy escolhe como a forma de colisão é derivada da geometria base.
type ShapePolicy int

const (
	// PolicyConvex deriva um casco convexo aproximado: barato de avaliar,
	// adequado para geometria de origem aproximadamente convexa.
	PolicyConvex ShapePolicy = iota
	// PolicyConcave deriva a malha de triângulos exata: precisa, mais cara
	// de avaliar na simulação.
	PolicyConcave
)

// ParseShapePolicy converte o valor de configuração ("convex"/"concave").
func ParseShapePolicy(s string) ShapePolicy {
	if s == "concave" {
		return PolicyConcave
	}
	return PolicyConvex
}

// Synthesizer gera corpos de colisão por instância para proxies cuja malha
// não tem colisão pré-autoral. A forma é derivada UMA vez da geometria base
// (função pura, independe das instâncias) e referenciada por todos os
// corpos, já que é imutável e as instâncias diferem só pela colocação.
type Synthesizer struct {
	Policy      ShapePolicy
	Layer, Mask uint32
	// YieldInterval é o número de corpos gerados por passo antes de
	// devolver o controle ao chamador. Zero ou negativo: tudo num passo.
	YieldInterval int
}

// SynthesisRun é uma geração em andamento. O chamador puxa passos com Step
// até a conclusão; cada passo gera no máximo YieldInterval corpos, para a
// geração não bloquear quem dirige o loop de frames.
type SynthesisRun struct {
	proxy    *BatchedProxy
	shape    physics.Shape
	sink     scene.Sink
	layer    uint32
	mask     uint32
	interval int
	next     int
}

// Begin valida o proxy, deriva a forma e limpa qualquer geração anterior.
// Regenerar é substituir, nunca acumular: todos os corpos sintetizados
// anteriormente para o mesmo proxy são removidos antes do primeiro passo.
//
// Falha fatalmente para ESTE proxy (outros proxies seguem normalmente)
// quando ele não tem instâncias, não tem geometria base, ou a derivação da
// forma falha por geometria degenerada.
func (s *Synthesizer) Begin(proxy *BatchedProxy, sink scene.Sink) (*SynthesisRun, error) {
	if proxy == nil || proxy.Node == nil {
		return nil, fmt.Errorf("proxy inválido")
	}
	if len(proxy.Transforms) == 0 {
		return nil, fmt.Errorf("proxy %s sem instâncias", proxy.Key)
	}
	if proxy.Mesh == nil || proxy.Mesh.Geometry.IsEmpty() {
		return nil, fmt.Errorf("proxy %s sem geometria base", proxy.Key)
	}

	var shape physics.Shape
	var err error
	switch s.Policy {
	case PolicyConcave:
		shape, err = physics.DeriveTrimesh(proxy.Mesh.Geometry)
	default:
		shape, err = physics.DeriveConvex(proxy.Mesh.Geometry)
	}
	if err != nil {
		return nil, fmt.Errorf("derivação de forma para %s: %w", proxy.Key, err)
	}

	clearGenerated(proxy.Node, sink)

	interval := s.YieldInterval
	if interval <= 0 {
		interval = len(proxy.Transforms)
	}

	return &SynthesisRun{
		proxy:    proxy,
		shape:    shape,
		sink:     sink,
		layer:    s.Layer,
		mask:     s.Mask,
		interval: interval,
	}, nil
}

// Run executa a geração completa de uma vez (uso fora do loop de frames).
// Retorna o número de corpos gerados.
func (s *Synthesizer) Run(proxy *BatchedProxy, sink scene.Sink) (int, error) {
	run, err := s.Begin(proxy, sink)
	if err != nil {
		return 0, err
	}
	for !run.Step() {
	}
	return run.Generated(), nil
}

// Step gera o próximo lote de corpos e retorna true quando a geração
// terminou. Cada corpo recebe a transformação da instância do proxy no
// mesmo índice e um filho de forma que referencia a forma compartilhada.
func (r *SynthesisRun) Step() bool {
	total := len(r.proxy.Transforms)
	end := r.next + r.interval
	if end > total {
		end = total
	}

	for i := r.next; i < end; i++ {
		body := scene.NewNode(fmt.Sprintf("colisao_inst_%d", i), scene.KindStaticBody)
		body.Layer = r.layer
		body.Mask = r.mask
		body.Generated = true
		body.SetLocalMatrix(r.proxy.Transforms[i])

		shapeNode := scene.NewNode("forma", scene.KindShape)
		shapeNode.Shape = r.shape // compartilhada, não duplicada
		shapeNode.Generated = true
		body.AddChild(shapeNode)

		r.sink.AddChild(r.proxy.Node, body)
	}

	r.next = end
	if r.next >= total {
		log.Printf("[Merge] Síntese concluída: %d corpos para o proxy %s", total, r.proxy.Key)
		return true
	}
	return false
}

// Generated retorna quantos corpos já foram emitidos para o sink.
func (r *SynthesisRun) Generated() int { return r.next }

// Shape retorna a forma derivada compartilhada pelos corpos desta geração.
func (r *SynthesisRun) Shape() physics.Shape { return r.shape }

// clearGenerated remove do nó do proxy os corpos de uma geração anterior.
func clearGenerated(proxyNode *scene.Node, sink scene.Sink) {
	removed := 0
	for _, child := range proxyNode.Children() {
		if child.Generated && child.Kind == scene.KindStaticBody {
			sink.Remove(child)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("[Merge] Geração anterior descartada: %d corpos removidos", removed)
	}
}
