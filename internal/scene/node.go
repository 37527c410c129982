package scene

import (
	"strings"

	"SceneFusion/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind identifica a variante de um nó. O conjunto é fechado: os sistemas
// consultam a capacidade de um nó pelo Kind, nunca por sondagem dinâmica.
type Kind int

const (
	KindGroup      Kind = iota
	KindGeometry        // Porta uma MeshResource (e material opcional)
	KindStaticBody      // Corpo físico estático; filhos KindShape definem a colisão
	KindShape           // Porta uma physics.Shape
	KindProxy           // Lote de instâncias de uma malha compartilhada
	KindLight           // Fonte de luz (comportamentos de cintilação)
	KindScreen          // Superfície que exibe a textura capturada
)

// Node é um nó da cena. A árvore é de um único dono lógico: não há
// sincronização interna, mutações estruturais passam pelo Sink ativo.
type Node struct {
	Name string
	Kind Kind

	// Posicionamento local. Quando a matriz explícita está definida
	// (via SetLocalMatrix), ela substitui Local.
	Local       Transform
	localMatrix *rl.Matrix

	// Capacidades por Kind
	Mesh               *MeshResource     // KindGeometry, KindProxy (malha base)
	Material           *MaterialResource // Override em Geometry; efetivo em Proxy/Screen
	Shape              physics.Shape     // KindShape
	Layer, Mask        uint32            // KindStaticBody
	InstanceTransforms []rl.Matrix       // KindProxy

	// Owner marca o nó responsável pela persistência desta subárvore
	// quando a cena é salva em contexto de edição.
	Owner *Node

	// Generated marca estruturas criadas pela síntese de colisão, para que
	// uma regeneração possa removê-las sem tocar em nós autorais.
	Generated bool

	parent   *Node
	children []*Node
}

// NewNode cria um nó com transformação neutra.
func NewNode(name string, kind Kind) *Node {
	return &Node{Name: name, Kind: kind, Local: IdentityTransform()}
}

// AddChild anexa um filho diretamente (sem passar por um Sink).
// Uso interno e de montagem de cena; os sistemas de merge usam o Sink.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.Detach()
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Detach remove o nó do pai, mantendo a subárvore intacta.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Parent retorna o pai do nó (nil para a raiz).
func (n *Node) Parent() *Node { return n.parent }

// Children retorna uma cópia da lista de filhos, na ordem de inserção.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount retorna o número de filhos diretos.
func (n *Node) ChildCount() int { return len(n.children) }

// SetLocalMatrix define o posicionamento local por matriz explícita,
// usado pelas estruturas de merge cuja colocação vem de uma matriz de
// instância e não de componentes TRS.
func (n *Node) SetLocalMatrix(m rl.Matrix) {
	n.localMatrix = &m
}

// LocalMatrix retorna a matriz local efetiva.
func (n *Node) LocalMatrix() rl.Matrix {
	if n.localMatrix != nil {
		return *n.localMatrix
	}
	return n.Local.Matrix()
}

// WorldMatrix compõe a matriz de mundo subindo até a raiz.
// MatrixMultiply(A, B) aplica A antes de B: o local vem primeiro.
func (n *Node) WorldMatrix() rl.Matrix {
	local := n.LocalMatrix()
	if n.parent == nil {
		return local
	}
	return rl.MatrixMultiply(local, n.parent.WorldMatrix())
}

// Walk percorre a subárvore em profundidade (nó antes dos filhos).
// Se fn retornar false, o percurso para.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// FindPath resolve um caminho "A/B/C" por nomes de filhos a partir do nó.
func (n *Node) FindPath(path string) *Node {
	if path == "" {
		return n
	}
	current := n
	for _, part := range strings.Split(path, "/") {
		var next *Node
		for _, c := range current.children {
			if c.Name == part {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		current = next
	}
	return current
}

// SetOwnerRecursive marca o dono de persistência de toda a subárvore.
func (n *Node) SetOwnerRecursive(owner *Node) {
	n.Walk(func(node *Node) bool {
		node.Owner = owner
		return true
	})
}
