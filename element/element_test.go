package element

import "testing"

func TestNewCharSetSortsAndDedupes(t *testing.T) {
	e := NewCharSet('c', 'a', 'b', 'a')
	got := e.CharSet()
	want := []uint16{'a', 'b', 'c'}
	if len(got) != len(want) {
		t.Fatalf("CharSet() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("CharSet() = %v, want %v", got, want)
		}
	}
}

func TestIsAtom(t *testing.T) {
	atoms := []*Element{NewNothing(), NewChar('a'), NewCharSet('a', 'b')}
	for _, a := range atoms {
		if !a.IsAtom() {
			t.Errorf("%v.IsAtom() = false, want true", a.Kind())
		}
	}
	nonAtoms := []*Element{
		NewSeq(NewChar('a'), NewChar('b')),
		NewMaybe(NewChar('a')),
		NewOr(NewChar('a'), NewChar('b')),
	}
	for _, n := range nonAtoms {
		if n.IsAtom() {
			t.Errorf("%v.IsAtom() = true, want false", n.Kind())
		}
	}
}

func TestAsSequence(t *testing.T) {
	a, b := NewChar('a'), NewChar('b')
	seq := NewSeq(a, b)
	if got := seq.asSequence(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("Seq.asSequence() = %v", got)
	}
	if got := a.asSequence(); len(got) != 1 || got[0] != a {
		t.Fatalf("Char.asSequence() = %v, want [a]", got)
	}
}

func TestNothingSingleton(t *testing.T) {
	if NewNothing() != NewNothing() {
		t.Fatal("NewNothing() should return the shared singleton")
	}
}
