package suffixtree

import "math"

// infinity marks an open right bound: the substring extends through the
// end of the referenced string as currently known. Readers must clamp
// it against the string's real length before doing index arithmetic.
const infinity = math.MaxInt

// Substring addresses symbols Left..Right (inclusive) of the registered
// string Str. Right < Left denotes an empty substring; Right == the
// open sentinel denotes a substring reaching the string's end.
type Substring struct {
	Str   int
	Left  int
	Right int
}

func (s Substring) Empty() bool {
	return s.Right < s.Left
}

// Open reports whether the right bound is the open sentinel.
func (s Substring) Open() bool {
	return s.Right == infinity
}

// Transition is an edge of the tree: a labelled jump to a target node.
// A node holds at most one transition per distinct first label symbol.
type Transition[C comparable] struct {
	Sub Substring
	Tgt *Node[C]
}

type nodeKind int

const (
	kindInternal nodeKind = iota
	kindLeaf
	kindSink
)

// Node is one state of the tree. The sink variant is the pre-existing
// anchor below the root: its lookup is total, synthesizing a
// one-symbol transition back to the root for any queried symbol, so
// the very first symbol of the very first string is handled by the
// same machinery as every later one.
type Node[C comparable] struct {
	trans      map[C]Transition[C]
	suffixLink *Node[C]
	kind       nodeKind

	// symbols on the path from the root; -1 for the sink
	depth int

	// suffix identity, leaves only
	str int
	pos int
}

func (n *Node[C]) transitionFor(c C) (Transition[C], bool) {
	if n.kind == kindSink {
		return Transition[C]{Sub: Substring{Str: 0, Left: 0, Right: 0}, Tgt: n.suffixLink}, true
	}
	tr, ok := n.trans[c]
	return tr, ok
}

// Transition returns the outgoing transition whose label starts with c.
func (n *Node[C]) Transition(c C) (Transition[C], bool) {
	return n.transitionFor(c)
}

// EachTransition calls fn for every stored outgoing transition, in map
// order.
func (n *Node[C]) EachTransition(fn func(c C, tr Transition[C])) {
	for c, tr := range n.trans {
		fn(c, tr)
	}
}

func (n *Node[C]) SuffixLink() *Node[C] {
	return n.suffixLink
}

// Depth returns the number of symbols on the path from the root to n.
func (n *Node[C]) Depth() int {
	return n.depth
}

// Suffix returns the string id and start offset of the suffix n was
// created for. ok is false when n does not terminate a suffix.
func (n *Node[C]) Suffix() (str, pos int, ok bool) {
	return n.str, n.pos, n.kind == kindLeaf
}

func (t *Tree[C]) newInternal(depth int) *Node[C] {
	t.nodes++
	return &Node[C]{
		trans: make(map[C]Transition[C]),
		depth: depth,
	}
}

func (t *Tree[C]) newLeaf(str, pos, depth int) *Node[C] {
	t.nodes++
	return &Node[C]{
		trans: make(map[C]Transition[C]),
		kind:  kindLeaf,
		depth: depth,
		str:   str,
		pos:   pos,
	}
}
