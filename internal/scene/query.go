package scene

// Consultas de capacidade sobre a árvore. Resolvidas uma vez por varredura:
// os sistemas de merge chamam estas funções no snapshot de entrada e nunca
// voltam a sondar tipos durante a montagem.

// FindMeshNode procura a primeira malha visual exposta pelo nó: o próprio
// nó e depois os descendentes, em profundidade, na ordem dos filhos.
// Retorna nil quando nada na subárvore porta uma malha.
func FindMeshNode(n *Node) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if node.Kind == KindGeometry && node.Mesh != nil {
			found = node
			return false
		}
		return true
	})
	return found
}

// FindStaticBody procura o primeiro corpo estático exposto pelo nó
// (o próprio nó ou um descendente, em profundidade).
func FindStaticBody(n *Node) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if node.Kind == KindStaticBody {
			found = node
			return false
		}
		return true
	})
	return found
}

// ShapeChildren retorna os filhos diretos do corpo que portam uma forma de
// colisão, na ordem de inserção.
func ShapeChildren(body *Node) []*Node {
	var out []*Node
	for _, c := range body.children {
		if c.Kind == KindShape && c.Shape != nil {
			out = append(out, c)
		}
	}
	return out
}
