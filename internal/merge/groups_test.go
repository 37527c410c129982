package merge

import (
	"testing"

	"SceneFusion/internal/meshing"
	"SceneFusion/internal/scene"
)

// geomObject cria um objeto de origem simples: um nó de geometria avulso.
func geomObject(name string, mesh *scene.MeshResource, mat *scene.MaterialResource, x float32) *scene.Node {
	n := scene.NewNode(name, scene.KindGeometry)
	n.Mesh = mesh
	n.Material = mat
	n.Local = scene.At(x, 0, 0)
	return n
}

// wrappedObject cria um objeto cuja malha está num descendente.
func wrappedObject(name string, mesh *scene.MeshResource, x float32) *scene.Node {
	outer := scene.NewNode(name, scene.KindGroup)
	outer.Local = scene.At(x, 0, 0)
	inner := scene.NewNode("visual", scene.KindGeometry)
	inner.Mesh = mesh
	outer.AddChild(inner)
	return outer
}

func testMesh(id string) *scene.MeshResource {
	return &scene.MeshResource{ID: id, Geometry: meshing.BoxGeometry(1, 1, 1)}
}

func TestBuildGroupsCountsAndOrder(t *testing.T) {
	g1 := testMesh("g1")
	g2 := testMesh("g2")
	// Referência duplicada ao mesmo recurso: ponteiro distinto, mesmo ID
	g1dup := testMesh("g1")

	semMalha := scene.NewNode("vazio", scene.KindGroup)

	objects := []*scene.Node{
		geomObject("a", g1, nil, 0),
		geomObject("b", g2, nil, 1),
		wrappedObject("c", g1dup, 2),
		semMalha,
		geomObject("d", g2, nil, 3),
	}

	set, err := BuildGroups(objects)
	if err != nil {
		t.Fatalf("BuildGroups: %v", err)
	}

	if len(set.Order) != 2 {
		t.Fatalf("grupos = %d, want 2", len(set.Order))
	}
	if set.Order[0] != "g1" || set.Order[1] != "g2" {
		t.Errorf("ordem das chaves = %v, want [g1 g2]", set.Order)
	}
	if set.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", set.Skipped)
	}
	if set.InstanceCount() != 4 {
		t.Errorf("InstanceCount = %d, want 4", set.InstanceCount())
	}
	if len(set.Groups["g1"].Transforms) != 2 || len(set.Groups["g2"].Transforms) != 2 {
		t.Errorf("instâncias por grupo = {%d, %d}, want {2, 2}",
			len(set.Groups["g1"].Transforms), len(set.Groups["g2"].Transforms))
	}
}

func TestBuildGroupsInstanceOrderIsInputOrder(t *testing.T) {
	g1 := testMesh("g1")
	objects := []*scene.Node{
		geomObject("a", g1, nil, 10),
		geomObject("b", g1, nil, 20),
		geomObject("c", g1, nil, 30),
	}

	set, err := BuildGroups(objects)
	if err != nil {
		t.Fatalf("BuildGroups: %v", err)
	}

	group := set.Groups["g1"]
	for i, obj := range objects {
		want := obj.WorldMatrix()
		if group.Transforms[i] != want {
			t.Errorf("transform[%d] não segue a ordem de entrada", i)
		}
	}
}

func TestBuildGroupsIdempotent(t *testing.T) {
	g1 := testMesh("g1")
	g2 := testMesh("g2")
	objects := []*scene.Node{
		geomObject("a", g1, nil, 0),
		geomObject("b", g2, nil, 1),
		geomObject("c", g1, nil, 2),
	}

	first, err := BuildGroups(objects)
	if err != nil {
		t.Fatalf("primeira execução: %v", err)
	}
	second, err := BuildGroups(objects)
	if err != nil {
		t.Fatalf("segunda execução: %v", err)
	}

	if len(first.Order) != len(second.Order) {
		t.Fatalf("número de grupos divergiu entre execuções")
	}
	for i := range first.Order {
		if first.Order[i] != second.Order[i] {
			t.Errorf("ordem das chaves divergiu: %v vs %v", first.Order, second.Order)
		}
		a := first.Groups[first.Order[i]]
		b := second.Groups[second.Order[i]]
		if len(a.Transforms) != len(b.Transforms) {
			t.Fatalf("tamanho do grupo %s divergiu", first.Order[i])
		}
		for j := range a.Transforms {
			if a.Transforms[j] != b.Transforms[j] {
				t.Errorf("grupo %s, transform %d divergiu entre execuções", first.Order[i], j)
			}
		}
	}
}

func TestBuildGroupsFirstMaterialWins(t *testing.T) {
	g1 := testMesh("g1")
	m1 := &scene.MaterialResource{Name: "m1"}
	m2 := &scene.MaterialResource{Name: "m2"}

	objects := []*scene.Node{
		geomObject("a", g1, nil, 0), // sem material: não define nada
		geomObject("b", g1, m1, 1),  // primeiro override visto
		geomObject("c", g1, m2, 2),  // ignorado
	}

	set, err := BuildGroups(objects)
	if err != nil {
		t.Fatalf("BuildGroups: %v", err)
	}

	if got := set.Groups["g1"].Material; got != m1 {
		t.Errorf("material do grupo = %v, want m1", got)
	}
}

func TestBuildGroupsNoResolvableMesh(t *testing.T) {
	objects := []*scene.Node{
		scene.NewNode("a", scene.KindGroup),
		scene.NewNode("b", scene.KindGroup),
	}

	if _, err := BuildGroups(objects); err == nil {
		t.Fatalf("BuildGroups sem malha resolvível deveria falhar")
	}
}
