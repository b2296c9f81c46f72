package keypath

import "testing"

func TestGetAllCollectsPresentValues(t *testing.T) {
	k := positiveX()
	roots := []*point{{x: 1}, {x: -2}, {x: 3}, {x: 0}}
	values := k.GetAll(roots)
	if len(values) != 2 {
		t.Fatalf("GetAll returned %d values, want 2", len(values))
	}
	if *values[0] != 1 || *values[1] != 3 {
		t.Errorf("GetAll = [%d %d], want [1 3]", *values[0], *values[1])
	}
}

func TestGetAllFiltersEnumBranches(t *testing.T) {
	k := circleCase()
	roots := make([]*shape, 0, 3)
	for _, s := range []shape{&circle{radius: 1}, &square{side: 2}, &circle{radius: 3}} {
		roots = append(roots, &s)
	}
	values := k.GetAll(roots)
	if len(values) != 2 {
		t.Fatalf("GetAll returned %d values, want 2", len(values))
	}
	if values[0].radius != 1 || values[1].radius != 3 {
		t.Errorf("GetAll radii = [%d %d], want [1 3]", values[0].radius, values[1].radius)
	}
}

func TestGetAllMutWritesEveryMatch(t *testing.T) {
	k := pointXMut()
	roots := []*point{{x: 1}, {x: 2}}
	for _, v := range k.GetAllMut(roots) {
		*v += 10
	}
	if roots[0].x != 11 || roots[1].x != 12 {
		t.Errorf("roots after write = [%d %d], want [11 12]", roots[0].x, roots[1].x)
	}
}

func TestTraversalSideMismatch(t *testing.T) {
	wantKindError(t, "GetAll on Writable", func() { pointXMut().GetAll(nil) })
	wantKindError(t, "GetAllMut on Readable", func() { pointX().GetAllMut(nil) })
	wantKindError(t, "GetAllMut on ReadableEnum", func() { circleCase().GetAllMut(nil) })
}
