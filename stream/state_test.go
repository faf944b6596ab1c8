package stream

import (
	"errors"
	"testing"
)

func TestStateFresh(t *testing.T) {
	s := NewState()
	if s.Depth() != 0 {
		t.Errorf("fresh depth = %d", s.Depth())
	}
	if s.Parent() != NodeRoot {
		t.Errorf("fresh parent = %v", s.Parent())
	}
	if s.Done() {
		t.Error("fresh state is done")
	}
	if sep, need := s.Separator(); need {
		t.Errorf("fresh state needs separator %q", sep)
	}
}

func TestStateScalarDocument(t *testing.T) {
	s := NewState()
	if err := s.Enter(NodeValue); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.EndChild()
	if !s.Done() {
		t.Error("single scalar document not done")
	}
	if err := s.Enter(NodeValue); !errors.Is(err, ErrGrammar) {
		t.Errorf("second root value error = %v, want ErrGrammar", err)
	}
	if err := s.Enter(NodeObject); !errors.Is(err, ErrGrammar) {
		t.Errorf("object after root value error = %v, want ErrGrammar", err)
	}
}

func TestStateObjectFlow(t *testing.T) {
	s := NewState()
	if err := s.Enter(NodeObject); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Parent() != NodeObject {
		t.Errorf("parent = %v, want Object", s.Parent())
	}
	if s.Depth() != 1 {
		t.Errorf("depth = %d, want 1", s.Depth())
	}
	// first key: no separator
	if sep, need := s.Separator(); need {
		t.Errorf("empty object needs separator %q", sep)
	}
	if err := s.Enter(NodeKey); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// pending key: colon before the value
	if sep, need := s.Separator(); !need || sep != ':' {
		t.Errorf("separator = %q,%v, want ':'", sep, need)
	}
	if err := s.Enter(NodeValue); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.EndChild()
	// second key: comma
	if sep, need := s.Separator(); !need || sep != ',' {
		t.Errorf("separator = %q,%v, want ','", sep, need)
	}
	if err := s.Enter(NodeKey); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Enter(NodeValue); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.EndChild()
	if err := s.Exit(NodeObject); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Done() {
		t.Error("closed document not done")
	}
}

func TestStateArrayFlow(t *testing.T) {
	s := NewState()
	if err := s.Enter(NodeArray); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sep, need := s.Separator(); need {
		t.Errorf("empty array needs separator %q", sep)
	}
	if err := s.Enter(NodeValue); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.EndChild()
	if sep, need := s.Separator(); !need || sep != ',' {
		t.Errorf("separator = %q,%v, want ','", sep, need)
	}
	if err := s.Exit(NodeArray); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Done() {
		t.Error("closed document not done")
	}
}

func TestStateIllegalSequences(t *testing.T) {
	for _, tc := range []struct {
		name string
		run  func(s *State) error
	}{
		{"key at root", func(s *State) error {
			return s.Enter(NodeKey)
		}},
		{"key in array", func(s *State) error {
			s.Enter(NodeArray)
			return s.Enter(NodeKey)
		}},
		{"value directly in object", func(s *State) error {
			s.Enter(NodeObject)
			return s.Enter(NodeValue)
		}},
		{"key after key", func(s *State) error {
			s.Enter(NodeObject)
			s.Enter(NodeKey)
			return s.Enter(NodeKey)
		}},
		{"close array as object", func(s *State) error {
			s.Enter(NodeArray)
			return s.Exit(NodeObject)
		}},
		{"close object as array", func(s *State) error {
			s.Enter(NodeObject)
			return s.Exit(NodeArray)
		}},
		{"close at root", func(s *State) error {
			return s.Exit(NodeObject)
		}},
		{"close with pending key", func(s *State) error {
			s.Enter(NodeObject)
			s.Enter(NodeKey)
			return s.Exit(NodeObject)
		}},
		{"second root container", func(s *State) error {
			s.Enter(NodeObject)
			s.Exit(NodeObject)
			return s.Enter(NodeArray)
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(NewState()); !errors.Is(err, ErrGrammar) {
				t.Errorf("error = %v, want ErrGrammar", err)
			}
		})
	}
}

func TestStateNesting(t *testing.T) {
	s := NewState()
	// {"a": [{}, 1], "b": 2}
	if err := s.Enter(NodeObject); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Enter(NodeKey); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Enter(NodeArray); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Depth() != 2 {
		t.Errorf("depth = %d, want 2", s.Depth())
	}
	if err := s.Enter(NodeObject); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Exit(NodeObject); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Enter(NodeValue); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.EndChild()
	if err := s.Exit(NodeArray); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// array resolved the pending key; next key legal
	if s.Parent() != NodeObject {
		t.Errorf("parent = %v, want Object", s.Parent())
	}
	if err := s.Enter(NodeKey); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Enter(NodeValue); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.EndChild()
	if err := s.Exit(NodeObject); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Done() {
		t.Error("closed document not done")
	}
}

func TestNodeKindText(t *testing.T) {
	for _, k := range []NodeKind{NodeRoot, NodeObject, NodeArray, NodeKey, NodeValue} {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var back NodeKind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if back != k {
			t.Errorf("round trip of %v gave %v", k, back)
		}
	}
	var k NodeKind
	if err := k.UnmarshalText([]byte("nope")); err == nil {
		t.Error("expected error for unknown kind")
	}
}
