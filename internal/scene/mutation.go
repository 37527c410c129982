package scene

import "log"

// Sink é o ponto único de mutação estrutural da cena durante uma operação
// de merge. Existem dois regimes seguros e eles nunca se misturam num mesmo
// passe: aplicação imediata (runtime) e aplicação adiada com atribuição de
// dono (contexto de edição, onde mutar a árvore no meio de uma travessia do
// host é indefinido).
type Sink interface {
	AddChild(parent, child *Node)
	Remove(node *Node)
	// Flush aplica as mutações pendentes no próximo ponto seguro.
	// No regime imediato é um no-op.
	Flush()
}

// ImmediateSink aplica cada mutação na hora. Regime de runtime.
type ImmediateSink struct{}

func (ImmediateSink) AddChild(parent, child *Node) {
	parent.AddChild(child)
}

func (ImmediateSink) Remove(node *Node) {
	node.Detach()
}

func (ImmediateSink) Flush() {}

type deferredOp struct {
	parent *Node // nil para remoção
	node   *Node
}

// DeferredSink acumula mutações e aplica todas de uma vez no Flush,
// atribuindo Owner às subárvores adicionadas para que sejam persistidas
// quando a cena for salva.
type DeferredSink struct {
	// Owner é o nó designado como dono de persistência das estruturas
	// adicionadas (tipicamente a raiz da cena em edição).
	Owner *Node

	queue []deferredOp
}

func (s *DeferredSink) AddChild(parent, child *Node) {
	s.queue = append(s.queue, deferredOp{parent: parent, node: child})
}

func (s *DeferredSink) Remove(node *Node) {
	s.queue = append(s.queue, deferredOp{node: node})
}

// Pending retorna o número de mutações aguardando Flush.
func (s *DeferredSink) Pending() int { return len(s.queue) }

// Flush aplica as mutações acumuladas na ordem em que foram pedidas.
func (s *DeferredSink) Flush() {
	if len(s.queue) == 0 {
		return
	}
	for _, op := range s.queue {
		if op.parent != nil {
			op.parent.AddChild(op.node)
			if s.Owner != nil {
				op.node.SetOwnerRecursive(s.Owner)
			}
		} else {
			op.node.Detach()
		}
	}
	log.Printf("[Cena] %d mutações adiadas aplicadas", len(s.queue))
	s.queue = s.queue[:0]
}
