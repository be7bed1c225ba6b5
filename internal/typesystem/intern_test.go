package typesystem

import (
	"sync"
	"testing"
)

type typedValue struct{ t Type }

func (v typedValue) Type() Type { return v.t }

func TestOfSingletonCollapse(t *testing.T) {
	in := NewInterner()
	for _, a := range Catalog() {
		if got := in.Of(a); got != Type(a) {
			t.Errorf("Of(%s) = %v, want the atomic itself", a, got)
		}
	}
	if in.Len() != 0 {
		t.Errorf("singletons must not be registered, got %d composites", in.Len())
	}
}

func TestOfEmptyIsVoid(t *testing.T) {
	if got := NewInterner().Of(); got != Type(Void) {
		t.Errorf("Of() = %v, want void", got)
	}
}

func TestOfIdempotent(t *testing.T) {
	in := NewInterner()
	first := in.Of(Int, String)
	second := in.Of(Int, String)
	if first != second {
		t.Error("same sequence produced two instances")
	}
	if in.Of(String, Int) == first {
		t.Error("reversed sequence must be a different composite")
	}
	if in.Len() != 2 {
		t.Errorf("Len = %d, want 2", in.Len())
	}
}

func TestOfDoesNotAliasInput(t *testing.T) {
	in := NewInterner()
	seq := []*Atomic{Int, String}
	c := in.Of(seq...)
	seq[0] = Long
	if got := c.Flatten()[0]; got != Int {
		t.Errorf("composite changed with caller slice: %s", got)
	}
	c.Flatten()[1] = Long
	if got := c.Flatten()[1]; got != String {
		t.Errorf("Flatten exposed internal storage: %s", got)
	}
}

func TestOfFootprintAdditive(t *testing.T) {
	in := NewInterner()
	c := in.Of(Int, String, Long, Sprite)
	want := Footprint{Ints: 2, Strings: 1, Longs: 1}
	if c.Footprint() != want {
		t.Errorf("footprint = %v, want %v", c.Footprint(), want)
	}
	if c.String() != "int, string, long, Sprite" {
		t.Errorf("String() = %q", c.String())
	}
	if !c.IsComposite() {
		t.Error("expected composite")
	}
}

func TestTypeForFlattens(t *testing.T) {
	in := NewInterner()
	pair := in.Of(Int, String)
	got := in.TypeFor([]Typed{typedValue{pair}, typedValue{Long}})
	want := in.Of(Int, String, Long)
	if got != want {
		t.Errorf("TypeFor = %v, want interned %v", got, want)
	}
	if single := in.TypeFor([]Typed{typedValue{Graphic}}); single != Type(Graphic) {
		t.Errorf("TypeFor single = %v, want Graphic", single)
	}
	if in.TypeFor(nil) != Type(Void) {
		t.Error("TypeFor of no values should be void")
	}
}

func TestOfConcurrent(t *testing.T) {
	in := NewInterner()
	const workers = 32
	results := make([]Type, workers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = in.Of(Int, String, Boolean)
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 1; i < workers; i++ {
		if results[i] != results[0] {
			t.Fatalf("worker %d got a distinct instance", i)
		}
	}
	snapshot := in.Composites()
	if len(snapshot) != 1 || Type(snapshot[0]) != results[0] {
		t.Errorf("Composites = %v, want only %v", snapshot, results[0])
	}
}

func TestCompositesSnapshotOrder(t *testing.T) {
	in := NewInterner()
	first := in.Of(Int, String)
	second := in.Of(String, Int)
	in.Of(Int, String)

	got := in.Composites()
	if len(got) != 2 || Type(got[0]) != first || Type(got[1]) != second {
		t.Fatalf("Composites = %v, want [%v] [%v]", got, first, second)
	}
	got[0] = nil
	if in.Composites()[0] == nil {
		t.Error("Composites should return a copy")
	}
}

func TestDefaultInterner(t *testing.T) {
	before := InternedCount()
	a := Of(TopLevelInterface, OverlayInterface, NpcUID)
	b := Of(TopLevelInterface, OverlayInterface, NpcUID)
	if a != b {
		t.Error("process-wide store returned distinct instances")
	}
	if InternedCount() != before+1 {
		t.Errorf("InternedCount = %d, want %d", InternedCount(), before+1)
	}
	if TypeFor([]Typed{typedValue{TopLevelInterface}, typedValue{OverlayInterface}, typedValue{NpcUID}}) != a {
		t.Error("TypeFor should reuse the interned composite")
	}
	all := InternedComposites()
	if len(all) != InternedCount() || Type(all[len(all)-1]) != a {
		t.Errorf("InternedComposites should end with %v, got %v", a, all)
	}
}
