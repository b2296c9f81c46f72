package container

import (
	"errors"
	"testing"
)

func TestOption(t *testing.T) {
	some := Some(3)
	if !some.IsSome() {
		t.Error("Some reports empty")
	}
	v, ok := some.Get()
	if !ok || *v != 3 {
		t.Fatalf("Get = %v, %v, want 3, true", v, ok)
	}
	*v = 4
	v2, _ := some.Get()
	if *v2 != 4 {
		t.Errorf("write through Get not observed: %d, want 4", *v2)
	}

	none := None[int]()
	if none.IsSome() {
		t.Error("None reports a value")
	}
	if v, ok := none.Get(); ok || v != nil {
		t.Errorf("None.Get = %v, %v, want nil, false", v, ok)
	}
}

func TestResult(t *testing.T) {
	ok := Ok("payload")
	if !ok.IsOk() || ok.Err() != nil {
		t.Error("Ok reports failure")
	}
	v, err := ok.Get()
	if err != nil || *v != "payload" {
		t.Fatalf("Get = %v, %v", v, err)
	}

	cause := errors.New("backend down")
	failed := Err[string](cause)
	if failed.IsOk() {
		t.Error("Err reports success")
	}
	if _, err := failed.Get(); !errors.Is(err, cause) {
		t.Errorf("Get error = %v, want %v", err, cause)
	}
}

func TestBoxSharesPayloadAcrossCopies(t *testing.T) {
	b := NewBox(10)
	c := b
	*c.Deref() = 11
	if *b.Deref() != 11 {
		t.Errorf("box copy does not alias payload: %d, want 11", *b.Deref())
	}
}

func TestSharedClonesAlias(t *testing.T) {
	s := NewShared(10)
	clone := s.Clone()
	*clone.Deref() = 12
	if *s.Deref() != 12 {
		t.Errorf("clone does not alias payload: %d, want 12", *s.Deref())
	}
}

func TestMutexTryLock(t *testing.T) {
	m := NewMutex(1)
	p, ok := m.TryLock()
	if !ok {
		t.Fatal("TryLock failed on a free lock")
	}
	if _, ok := m.TryLock(); ok {
		t.Fatal("TryLock succeeded while held")
	}
	*p = 2
	m.Unlock()
	if got := m.Lock(); *got != 2 {
		t.Errorf("guarded value = %d, want 2", *got)
	}
	m.Unlock()
}

func TestRWMutexReadersShareWritersExclude(t *testing.T) {
	m := NewRWMutex(1)
	if _, ok := m.TryRLock(); !ok {
		t.Fatal("TryRLock failed on a free lock")
	}
	if _, ok := m.TryRLock(); !ok {
		t.Fatal("second concurrent reader refused")
	}
	if _, ok := m.TryLock(); ok {
		t.Fatal("writer acquired while readers live")
	}
	m.RUnlock()
	m.RUnlock()
	if _, ok := m.TryLock(); !ok {
		t.Fatal("writer refused on a free lock")
	}
	m.Unlock()
}

func TestCellBorrowDiscipline(t *testing.T) {
	c := NewCell(1)

	// Any number of shared borrows may coexist.
	if _, ok := c.TryBorrow(); !ok {
		t.Fatal("shared borrow refused on a free cell")
	}
	if _, ok := c.TryBorrow(); !ok {
		t.Fatal("second shared borrow refused")
	}
	// No writer while readers are live.
	if _, ok := c.TryBorrowMut(); ok {
		t.Fatal("exclusive borrow granted while shared borrows live")
	}
	c.EndBorrow()
	c.EndBorrow()

	p, ok := c.TryBorrowMut()
	if !ok {
		t.Fatal("exclusive borrow refused on a free cell")
	}
	*p = 5
	// Neither readers nor a second writer while the writer is live.
	if _, ok := c.TryBorrow(); ok {
		t.Fatal("shared borrow granted while the writer is live")
	}
	if _, ok := c.TryBorrowMut(); ok {
		t.Fatal("second exclusive borrow granted")
	}
	c.EndBorrowMut()

	v, ok := c.TryBorrow()
	if !ok || *v != 5 {
		t.Errorf("value after exclusive write = %d, %v, want 5, true", *v, ok)
	}
	c.EndBorrow()
}

func TestTaggedDistinguishesByTag(t *testing.T) {
	type meters struct{}
	w := NewTagged[meters](100)
	if *w.Deref() != 100 {
		t.Errorf("Deref = %d, want 100", *w.Deref())
	}
}
