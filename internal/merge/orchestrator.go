package merge

import (
	"errors"
	"fmt"
	"log"

	"SceneFusion/internal/scene"
)

// Phase é o estado corrente do orquestrador.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseGathering
	PhaseGrouping
	PhaseAssembling
	PhaseFinalizing
	PhaseDone
	PhaseFailed
)

var (
	// ErrInProgress indica recusa por merge já em andamento (guarda de
	// reentrância). Tratado como no-op com diagnóstico, nunca como pane.
	ErrInProgress = errors.New("merge já em andamento")
	// ErrAlreadyMerged indica recusa porque o marcador de conclusão de um
	// merge anterior continua ativo e não foi explicitamente zerado.
	ErrAlreadyMerged = errors.New("merge anterior concluído; zere o marcador antes de repetir")
)

// Record é o marcador de conclusão de um merge, estado pequeno e de posse
// externa: o chamador o carrega/persiste e o injeta na construção do
// orquestrador, em vez de o orquestrador esconder um singleton mutável.
type Record struct {
	Completed bool
	Instances int
	Shapes    int
}

// Reset zera o marcador, liberando um novo merge.
func (r *Record) Reset() {
	r.Completed = false
	r.Instances = 0
	r.Shapes = 0
}

// Options configura uma operação de merge.
type Options struct {
	// GroupPath localiza o grupo de objetos alvo a partir da raiz.
	GroupPath string

	// Overrides globais de material (ver AssembleProxies).
	MaterialOverride *scene.MaterialResource
	TextureOverride  string

	// Persistência dos proxies montados.
	Persist bool

	// RetainSources mantém os objetos de origem na cena para inspeção;
	// por padrão eles são removidos na finalização.
	RetainSources bool

	// Camada/máscara para o corpo de colisão unificado.
	Layer, Mask uint32
}

// Result é o desfecho de um merge bem-sucedido.
type Result struct {
	Proxies   []*BatchedProxy
	Collision *scene.Node // nil quando nenhuma fonte de colisão existia
	Skipped   int         // objetos sem malha resolvível
	Instances int
	Shapes    int
}

// Orchestrator sequencia o pipeline de merge: coleta, agrupamento,
// montagem (colisão e proxies, independentes entre si sobre o mesmo
// snapshot imutável) e finalização. Um único ator lógico: a guarda de
// reentrância é uma flag, não um lock.
type Orchestrator struct {
	opts    Options
	sink    scene.Sink
	store   *Store
	record  *Record
	phase   Phase
	running bool
}

// New cria um orquestrador. O sink define o regime de mutação (imediato em
// runtime, adiado com dono em contexto de edição) e vale para o passe
// inteiro — os regimes nunca se misturam. record pode ser nil quando o
// chamador não quer marcador de conclusão; store pode ser nil quando a
// persistência está desabilitada.
func New(opts Options, sink scene.Sink, store *Store, record *Record) *Orchestrator {
	return &Orchestrator{
		opts:   opts,
		sink:   sink,
		store:  store,
		record: record,
		phase:  PhaseIdle,
	}
}

// Phase retorna o estado corrente.
func (o *Orchestrator) Phase() Phase { return o.phase }

// Merge executa um passe completo sobre a cena. Recusa (no-op com
// diagnóstico) se já há merge em andamento ou se o marcador de conclusão
// de um merge anterior continua ativo.
func (o *Orchestrator) Merge(root *scene.Node) (*Result, error) {
	if o.running {
		log.Printf("[Merge] Pedido ignorado: %v", ErrInProgress)
		return nil, ErrInProgress
	}
	if o.record != nil && o.record.Completed {
		log.Printf("[Merge] Pedido ignorado: %v", ErrAlreadyMerged)
		return nil, ErrAlreadyMerged
	}

	o.running = true
	defer func() { o.running = false }()

	// Coleta: resolve o grupo alvo e congela o snapshot de entrada
	o.phase = PhaseGathering
	group := root.FindPath(o.opts.GroupPath)
	if group == nil {
		o.phase = PhaseFailed
		return nil, fmt.Errorf("grupo alvo %q não encontrado", o.opts.GroupPath)
	}
	sources := group.Children()
	if len(sources) == 0 {
		o.phase = PhaseFailed
		return nil, fmt.Errorf("grupo alvo %q está vazio", o.opts.GroupPath)
	}

	// Agrupamento por identidade de malha
	o.phase = PhaseGrouping
	set, err := BuildGroups(sources)
	if err != nil {
		o.phase = PhaseFailed
		return nil, err
	}

	// Montagem: colisão e proxies leem visões disjuntas do mesmo snapshot
	// imutável; a ordem relativa entre os dois é indiferente.
	o.phase = PhaseAssembling
	parent := group.Parent()
	if parent == nil {
		parent = root
	}

	collision, shapeCount := AggregateCollision(sources, parent, o.sink, o.opts.Layer, o.opts.Mask)

	proxies := AssembleProxies(set, AssemblerOptions{
		MaterialOverride: o.opts.MaterialOverride,
		TextureOverride:  o.opts.TextureOverride,
		Persist:          o.opts.Persist,
		Store:            o.store,
	})
	for _, proxy := range proxies {
		o.sink.AddChild(parent, proxy.Node)
	}

	// Finalização: só agora, depois de todos os consumidores lerem, os
	// objetos de origem podem ser removidos. Essa ordem é invariante.
	o.phase = PhaseFinalizing
	if !o.opts.RetainSources {
		for _, src := range sources {
			o.sink.Remove(src)
		}
	}
	o.sink.Flush()

	result := &Result{
		Proxies:   proxies,
		Collision: collision,
		Skipped:   set.Skipped,
		Instances: set.InstanceCount(),
		Shapes:    shapeCount,
	}

	if o.record != nil {
		o.record.Completed = true
		o.record.Instances = result.Instances
		o.record.Shapes = result.Shapes
		if o.store != nil {
			if err := o.store.SaveRecord(o.opts.GroupPath, o.record); err != nil {
				log.Printf("[Merge] AVISO: falha ao persistir marcador: %v", err)
			}
		}
	}

	o.phase = PhaseDone
	log.Printf("[Merge] Concluído: %d lotes, %d instâncias, %d formas de colisão, %d objetos ignorados",
		len(proxies), result.Instances, result.Shapes, result.Skipped)
	return result, nil
}
