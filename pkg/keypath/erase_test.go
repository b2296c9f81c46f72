package keypath

import (
	"testing"

	"github.com/mesh-intelligence/keypath/pkg/container"
)

// wantCastError runs fn and fails unless it panics with a *CastError.
func wantCastError(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("%s: no panic, want *CastError", name)
		}
		if _, ok := r.(*CastError); !ok {
			t.Fatalf("%s: panic value %T (%v), want *CastError", name, r, r)
		}
	}()
	fn()
}

func TestEraseValueReadFidelity(t *testing.T) {
	e := EraseValue(pointX())
	if e.Kind() != KindReadable {
		t.Fatalf("Kind = %s, want Readable", e.Kind())
	}
	p := point{x: 5}
	got := e.Get(&p)
	ptr, ok := got.(*int)
	if !ok || *ptr != 5 {
		t.Fatalf("Get = %T(%v), want *int(5)", got, got)
	}
	// Same value as direct access through the concrete keypath.
	if direct := pointX().Get(&p); *direct != *ptr {
		t.Errorf("erased read %d differs from direct read %d", *ptr, *direct)
	}
}

func TestEraseValueWriteFidelity(t *testing.T) {
	e := EraseValue(pointXMut())
	p := point{x: 1}
	ptr, ok := e.GetMut(&p).(*int)
	if !ok {
		t.Fatal("GetMut did not yield a *int")
	}
	*ptr = 33
	if p.x != 33 {
		t.Errorf("p.x = %d after erased write, want 33", p.x)
	}
}

func TestEraseValueEnumAndOwned(t *testing.T) {
	enum := EraseValue(circleCase())
	root := enum.Embed(circle{radius: 3})
	got, ok := enum.Get(&root).(*circle)
	if !ok || got.radius != 3 {
		t.Fatalf("enum extract = %v, want radius 3", got)
	}
	wantCastError(t, "Embed wrong payload", func() { enum.Embed("not a circle") })

	owned := EraseValue(Owned(func(p point) int { return p.x }))
	if v := owned.GetOwned(point{x: 6}); v != 6 {
		t.Errorf("GetOwned = %v, want 6", v)
	}
}

func TestEraseValueAbsenceStaysNil(t *testing.T) {
	e := EraseValue(positiveX())
	absent := point{x: -1}
	if v := e.Get(&absent); v != nil {
		t.Errorf("Get(absent) = %v, want nil", v)
	}
}

func TestEraseValueCapabilityRules(t *testing.T) {
	e := EraseValue(pointX())
	p := point{x: 1}
	wantKindError(t, "erased GetOwned", func() { e.GetOwned(p) })
	wantKindError(t, "erased Embed", func() { e.Embed(1) })
	o := EraseValue(Owned(func(p point) int { return p.x }))
	wantKindError(t, "erased Get on Owned", func() { o.Get(&p) })
}

func TestRestoreValue(t *testing.T) {
	e := EraseValue(pointX())
	k, ok := RestoreValue[point, int](e)
	if !ok {
		t.Fatal("RestoreValue to the erased type failed")
	}
	p := point{x: 12}
	if v := k.Get(&p); v == nil || *v != 12 {
		t.Errorf("restored Get = %v, want 12", v)
	}
	// Restoring to an incorrect type fails instead of reinterpreting.
	if _, ok := RestoreValue[point, string](e); ok {
		t.Error("RestoreValue to the wrong type succeeded")
	}
}

func TestFullyErasedAccess(t *testing.T) {
	f := Erase(pointXMut())
	if f.Kind() != KindWritable {
		t.Fatalf("Kind = %s, want Writable", f.Kind())
	}
	p := point{x: 1}
	ptr, ok := f.GetMut(&p).(*int)
	if !ok {
		t.Fatal("GetMut did not yield a *int")
	}
	*ptr = 9
	if p.x != 9 {
		t.Errorf("p.x = %d after erased write, want 9", p.x)
	}
	// A root of the wrong concrete type fails loudly, never reinterprets.
	var l line
	wantCastError(t, "wrong root type", func() { f.GetMut(&l) })
}

func TestFullyErasedOwned(t *testing.T) {
	f := Erase(Owned(func(p point) int { return p.x + 1 }))
	if v := f.GetOwned(point{x: 4}); v != 5 {
		t.Errorf("GetOwned = %v, want 5", v)
	}
	wantCastError(t, "wrong owned root", func() { f.GetOwned("not a point") })
}

func TestRestore(t *testing.T) {
	f := Erase(pointX())
	k, ok := Restore[point, int](f)
	if !ok {
		t.Fatal("Restore to the erased types failed")
	}
	p := point{x: 2}
	if v := k.Get(&p); v == nil || *v != 2 {
		t.Errorf("restored Get = %v, want 2", v)
	}
	if _, ok := Restore[line, int](f); ok {
		t.Error("Restore to the wrong root type succeeded")
	}
	if _, ok := Restore[point, string](f); ok {
		t.Error("Restore to the wrong value type succeeded")
	}
}

func TestThenComposesErased(t *testing.T) {
	outer := Erase(lineFrom())
	inner := Erase(pointX())
	k := outer.Then(inner)
	if k.Kind() != KindReadable {
		t.Fatalf("Kind = %s, want Readable", k.Kind())
	}
	l := line{from: point{x: 25}}
	ptr, ok := k.Get(&l).(*int)
	if !ok || *ptr != 25 {
		t.Fatalf("Get = %v, want 25", k.Get(&l))
	}
	// A composed path has no typed original to restore.
	if _, ok := Restore[line, int](k); ok {
		t.Error("Restore succeeded on a Then-composed path")
	}
}

func TestThenPartialShortCircuit(t *testing.T) {
	innerCalls := 0
	outer := Erase(FailableReadable(func(l *line) *point { return nil }))
	inner := Erase(FailableReadable(func(p *point) *int {
		innerCalls++
		return &p.x
	}))
	k := outer.Then(inner)
	if k.Kind() != KindFailableReadable {
		t.Fatalf("Kind = %s, want FailableReadable", k.Kind())
	}
	l := line{}
	if v := k.Get(&l); v != nil {
		t.Errorf("Get = %v, want nil", v)
	}
	if innerCalls != 0 {
		t.Errorf("inner invoked %d times on absent outer, want 0", innerCalls)
	}
}

func TestThenUndefinedPairing(t *testing.T) {
	r := Erase(pointX())
	w := Erase(pointXMut())
	defer func() {
		if _, ok := recover().(*ComposeError); !ok {
			t.Fatal("Then on a read/write mix did not raise *ComposeError")
		}
	}()
	r.Then(w)
}

func TestThenEnums(t *testing.T) {
	outer := Erase(circleCase())
	inner := Erase(ReadableEnum(
		func(c *circle) *int { return &c.radius },
		func(r int) circle { return circle{radius: r} },
	))
	k := outer.Then(inner)
	if k.Kind() != KindReadableEnum {
		t.Fatalf("Kind = %s, want ReadableEnum", k.Kind())
	}
	root := k.Embed(14)
	s, ok := root.(shape)
	if !ok {
		t.Fatalf("Embed produced %T, want shape", root)
	}
	ptr, ok := k.Get(&s).(*int)
	if !ok || *ptr != 14 {
		t.Fatalf("extract(embed(14)) = %v, want 14", k.Get(&s))
	}
}

func TestForOptionErased(t *testing.T) {
	e := ForOptionErased(EraseValue(pointX()))
	if e.Kind() != KindFailableReadable {
		t.Fatalf("Kind = %s, want FailableReadable", e.Kind())
	}
	shell := container.Some(point{x: 5})
	ptr, ok := e.Get(&shell).(*int)
	if !ok || *ptr != 5 {
		t.Fatalf("Get(Some) = %v, want 5", e.Get(&shell))
	}
	empty := container.None[point]()
	if v := e.Get(&empty); v != nil {
		t.Errorf("Get(None) = %v, want nil", v)
	}
	wantAdaptError(t, "ForOptionErased", func() {
		ForOptionErased(EraseValue(Owned(func(p point) int { return p.x })))
	})
}

func TestForResultErasedWrites(t *testing.T) {
	e := ForResultErased(EraseValue(pointXMut()))
	if e.Kind() != KindFailableWritable {
		t.Fatalf("Kind = %s, want FailableWritable", e.Kind())
	}
	shell := container.Ok(point{x: 1})
	ptr, ok := e.GetMut(&shell).(*int)
	if !ok {
		t.Fatal("GetMut(Ok) did not yield *int")
	}
	*ptr = 50
	inner, _ := shell.Get()
	if inner.x != 50 {
		t.Errorf("shell value x = %d after erased write, want 50", inner.x)
	}
}

func TestForBoxErasedPassThrough(t *testing.T) {
	e := ForBoxErased(EraseValue(pointXMut()))
	if e.Kind() != KindWritable {
		t.Fatalf("Kind = %s, want Writable", e.Kind())
	}
	box := container.NewBox(point{x: 1})
	ptr := e.GetMut(&box).(*int)
	*ptr = 4
	read := ForBoxErased(EraseValue(pointX()))
	got := read.Get(&box).(*int)
	if *got != 4 {
		t.Errorf("read after write through erased box = %d, want 4", *got)
	}
}

func TestForSharedErasedRefusesWrites(t *testing.T) {
	e := ForSharedErased(EraseValue(pointX()))
	if e.Kind() != KindReadable {
		t.Fatalf("Kind = %s, want Readable", e.Kind())
	}
	s := container.NewShared(point{x: 3})
	if got := e.Get(&s).(*int); *got != 3 {
		t.Errorf("Get through erased shared = %d, want 3", *got)
	}
	wantAdaptError(t, "ForSharedErased", func() { ForSharedErased(EraseValue(pointXMut())) })
	wantAdaptError(t, "ForSharedErased", func() { ForSharedErased(EraseValue(circleCaseMut())) })
}

func TestForMutexErased(t *testing.T) {
	e := ForMutexErased(EraseValue(pointX()))
	if e.Kind() != KindOwned {
		t.Fatalf("Kind = %s, want Owned", e.Kind())
	}
	m := container.NewMutex(point{x: 2})
	if v := e.GetOwned(m); v != 2 {
		t.Errorf("GetOwned = %v, want 2", v)
	}
	// Guard released before return, and mutations stay visible.
	p := m.Lock()
	p.x = 20
	m.Unlock()
	if v := e.GetOwned(m); v != 20 {
		t.Errorf("GetOwned after mutation = %v, want 20", v)
	}
	wantAdaptError(t, "ForMutexErased", func() { ForMutexErased(EraseValue(pointXMut())) })
}

func TestForRWMutexErased(t *testing.T) {
	e := ForRWMutexErased(EraseValue(positiveX()))
	if e.Kind() != KindFailableOwned {
		t.Fatalf("Kind = %s, want FailableOwned", e.Kind())
	}
	m := container.NewRWMutex(point{x: -2})
	if _, ok := e.GetFailableOwned(m); ok {
		t.Error("GetFailableOwned(absent) reported present")
	}
	if _, ok := m.TryLock(); !ok {
		t.Fatal("lock still held after absent erased read")
	}
	m.Unlock()
}

// TestHeterogeneousStorage stores fully erased keypaths over different root
// and value types in one slice and drives them uniformly.
func TestHeterogeneousStorage(t *testing.T) {
	paths := []FullyErased{
		Erase(pointX()),
		Erase(lineFrom()),
		Erase(circleCase()),
	}
	p := point{x: 1}
	l := line{from: point{x: 2, y: 3}}
	var s shape = &circle{radius: 4}
	roots := []any{&p, &l, &s}
	for i, f := range paths {
		if v := f.Get(roots[i]); v == nil {
			t.Errorf("path %d read absent, want present", i)
		}
	}
	if k, ok := Restore[line, point](paths[1]); !ok {
		t.Error("Restore failed for the stored line path")
	} else if got := k.Get(&l); got == nil || got.x != 2 {
		t.Errorf("restored stored path read %v, want from point", got)
	}
}
