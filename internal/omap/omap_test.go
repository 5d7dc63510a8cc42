package omap

import "testing"

func TestInsertionOrder(t *testing.T) {
	m := New[string, int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)

	want := []string{"b", "a", "c"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReplaceKeepsPosition(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	if m.Len() != 2 {
		t.Fatalf("len = %d, want 2", m.Len())
	}
	if m.Keys()[0] != "a" {
		t.Errorf("replaced key moved to %v", m.Keys())
	}
	if v, _ := m.Get("a"); v != 10 {
		t.Errorf("value = %d, want 10", v)
	}
}

func TestDelete(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Delete("a")
	m.Delete("missing")

	if m.Len() != 1 || m.Keys()[0] != "b" {
		t.Errorf("after delete: keys %v", m.Keys())
	}
	if _, ok := m.Get("a"); ok {
		t.Error("deleted key still present")
	}
}

func TestRangeStopsEarly(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 5; i++ {
		m.Set(i, i)
	}
	var seen int
	m.Range(func(k, v int) bool {
		seen++
		return seen < 2
	})
	if seen != 2 {
		t.Errorf("visited %d entries, want 2", seen)
	}
}
