package stream

import (
	"fmt"

	"github.com/jsonwire/jsonwire-go/debug"
)

// State enforces the JSON grammar over a sequence of structural
// operations. It tracks only structure, never value data: a stack of
// node kinds plus, per container, whether a first child has been
// emitted.
//
// The stack always has NodeRoot at the bottom. The document is
// complete when only the root remains and it has a child; every
// further structural call fails.
type State struct {
	stack []node
}

type node struct {
	kind        NodeKind
	hasChildren bool
}

// NewState creates a State for a fresh document.
func NewState() *State {
	return &State{stack: []node{{kind: NodeRoot}}}
}

func (s *State) top() *node {
	return &s.stack[len(s.stack)-1]
}

func (s *State) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

// Enter validates that a node of kind k may begin in the current
// context. NodeObject, NodeArray and NodeKey push; NodeValue only
// validates, since scalars never remain on the stack. Value-producing
// kinds are legal under the root (once), under an array, and under a
// pending key; NodeKey is legal only directly under an object.
func (s *State) Enter(k NodeKind) error {
	top := s.top()
	switch k {
	case NodeObject, NodeArray, NodeValue:
		switch top.kind {
		case NodeRoot:
			if top.hasChildren {
				return fmt.Errorf("%w: multiple root values", ErrGrammar)
			}
		case NodeArray, NodeKey:
		case NodeObject:
			return fmt.Errorf("%w: expected key in object, got %s", ErrGrammar, k)
		default:
			return fmt.Errorf("%w: %s under %s", ErrGrammar, k, top.kind)
		}
	case NodeKey:
		if top.kind != NodeObject {
			return fmt.Errorf("%w: key under %s", ErrGrammar, top.kind)
		}
	default:
		return fmt.Errorf("%w: cannot enter %s", ErrGrammar, k)
	}
	if debug.State() {
		debug.Logf("state: enter %s at depth %d", k, s.Depth())
	}
	switch k {
	case NodeObject, NodeArray, NodeKey:
		s.stack = append(s.stack, node{kind: k})
	}
	return nil
}

// Exit closes the innermost container, which must match k, and
// resolves it as a child of its parent. Closing with a pending key or
// with the wrong container kind fails.
func (s *State) Exit(k NodeKind) error {
	top := s.top()
	if top.kind != k {
		return fmt.Errorf("%w: closing %s, open node is %s", ErrGrammar, k, top.kind)
	}
	switch k {
	case NodeObject, NodeArray:
	default:
		return fmt.Errorf("%w: cannot exit %s", ErrGrammar, k)
	}
	if debug.State() {
		debug.Logf("state: exit %s at depth %d", k, s.Depth())
	}
	s.pop()
	s.EndChild()
	return nil
}

// EndChild resolves a completed child value: a pending key is popped,
// and the enclosing node is marked as having children. Call it after
// emitting a scalar; Exit calls it for containers.
func (s *State) EndChild() {
	if s.top().kind == NodeKey {
		s.pop()
	}
	s.top().hasChildren = true
}

// Separator reports the separator byte that must precede the next
// token: ',' between container siblings, ':' after a pending key.
// Pure query; it never changes state.
func (s *State) Separator() (byte, bool) {
	top := s.top()
	switch {
	case top.kind == NodeKey:
		return ':', true
	case top.hasChildren && (top.kind == NodeObject || top.kind == NodeArray):
		return ',', true
	default:
		return 0, false
	}
}

// Parent returns the kind of the innermost open node. After
// BeginObject it reports NodeObject until the matching EndObject or a
// nested open.
func (s *State) Parent() NodeKind {
	return s.top().kind
}

// Depth returns the container nesting depth (0 = top level).
func (s *State) Depth() int {
	n := 0
	for i := range s.stack {
		switch s.stack[i].kind {
		case NodeObject, NodeArray:
			n++
		}
	}
	return n
}

// Done reports whether the document is complete: only the root
// remains and its single value has been written.
func (s *State) Done() bool {
	return len(s.stack) == 1 && s.stack[0].hasChildren
}
