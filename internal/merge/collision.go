package merge

import (
	"fmt"
	"log"

	"SceneFusion/internal/scene"
)

// AggregateCollision coleta as formas de colisão pré-autorais dos objetos de
// origem e as funde num único corpo estático. Só contribuem objetos que são
// (ou embrulham) um corpo físico estático; para cada um, cada filho direto
// portador de forma vira uma entrada do corpo unificado, com a forma
// DUPLICADA e a transformação de mundo DA FORMA (a colocação da forma pode
// diferir da origem do objeto dono).
//
// A duplicação é obrigatória: o corpo unificado sobrevive aos objetos de
// origem, então não pode compartilhar estado mutável de forma com eles.
//
// O corpo resultante é anexado aditivamente sob parent através do sink.
// Com zero fontes o agregado é descartado por inteiro — um corpo estático
// vazio na cena é defeito de performance e poluição, não um no-op inócuo.
// Os objetos de origem não são mutados nem removidos aqui; a remoção é
// responsabilidade do orquestrador, depois de todos os consumidores lerem.
func AggregateCollision(objects []*scene.Node, parent *scene.Node, sink scene.Sink, layer, mask uint32) (*scene.Node, int) {
	body := scene.NewNode("colisao_unificada", scene.KindStaticBody)
	body.Layer = layer
	body.Mask = mask

	count := 0
	for _, obj := range objects {
		src := scene.FindStaticBody(obj)
		if src == nil {
			continue
		}
		for _, shapeNode := range scene.ShapeChildren(src) {
			entry := scene.NewNode(fmt.Sprintf("forma_%d", count), scene.KindShape)
			entry.Shape = shapeNode.Shape.Duplicate()
			entry.SetLocalMatrix(shapeNode.WorldMatrix())
			body.AddChild(entry)
			count++
		}
	}

	if count == 0 {
		return nil, 0
	}

	sink.AddChild(parent, body)
	log.Printf("[Merge] Colisão unificada: %d formas agregadas", count)
	return body, count
}
