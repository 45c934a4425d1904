package main

import "testing"

func TestUniqueMove(t *testing.T) {
	p1 := makeUnique(42)
	p2 := p1.Move()
	if p1.Valid() {
		t.Errorf("source still valid after Move")
	}
	if !p2.Valid() || p2.Get() != 42 {
		t.Errorf("moved value = %v wanted 42", p2.Get())
	}
	p3 := p1.Move()
	if p3.Valid() {
		t.Errorf("moving an empty unique produced a value")
	}
}

func TestSharedUseCount(t *testing.T) {
	s1 := makeShared("Hello")
	if s1.UseCount() != 1 {
		t.Fatalf("UseCount() = %d wanted 1", s1.UseCount())
	}
	s2 := s1.Clone()
	if s1.UseCount() != 2 || s2.UseCount() != 2 {
		t.Errorf("UseCount() after Clone = %d, %d wanted 2", s1.UseCount(), s2.UseCount())
	}
	s2.Release()
	if s1.UseCount() != 1 {
		t.Errorf("UseCount() after Release = %d wanted 1", s1.UseCount())
	}
	if s2.UseCount() != 0 {
		t.Errorf("released handle UseCount() = %d wanted 0", s2.UseCount())
	}
	s2.Release()
	if s1.UseCount() != 1 {
		t.Errorf("double Release changed the count to %d", s1.UseCount())
	}
}
