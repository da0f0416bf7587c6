package contagiongo

import "testing"

func TestIndexedSet_AddContainsRemove(t *testing.T) {
	s := NewIndexedSet()
	s.Add(5)
	s.Add(7)
	s.Add(5) // duplicate, no-op
	if l := s.Len(); l != 2 {
		t.Errorf(UnequalIntParameterError, "size after duplicate add", 2, l)
	}
	if !s.Contains(5) || !s.Contains(7) {
		t.Errorf(ExpectedErrorWhileError, "membership check on inserted items")
	}
	s.Remove(5)
	if s.Contains(5) {
		t.Errorf(ExpectedErrorWhileError, "removed item to no longer be a member")
	}
	if l := s.Len(); l != 1 {
		t.Errorf(UnequalIntParameterError, "size after remove", 1, l)
	}
}

func TestIndexedSet_RemoveMiddlePreservesOthers(t *testing.T) {
	s := NewIndexedSet()
	for _, v := range []int{1, 2, 3, 4, 5} {
		s.Add(v)
	}
	s.Remove(3)
	want := map[int]bool{1: true, 2: true, 4: true, 5: true}
	for _, item := range s.Items() {
		if !want[item] {
			t.Errorf(UnexpectedErrorWhileError, "iterating remaining items", item)
		}
		delete(want, item)
	}
	if len(want) != 0 {
		t.Errorf(UnequalIntParameterError, "remaining distinct items found", 0, len(want))
	}
}

func TestIndexedSet_Sample_OnlyReturnsMembers(t *testing.T) {
	s := NewIndexedSet()
	s.Add(42)
	src := NewSource(1)
	for i := 0; i < 10; i++ {
		if v := s.Sample(src); v != 42 {
			t.Errorf(UnequalIntParameterError, "sampled value from a singleton set", 42, v)
		}
	}
}

func TestIndexedSet_RemoveNonMember_NoOp(t *testing.T) {
	s := NewIndexedSet()
	s.Add(1)
	s.Remove(999)
	if l := s.Len(); l != 1 {
		t.Errorf(UnequalIntParameterError, "size after removing a non-member", 1, l)
	}
}
