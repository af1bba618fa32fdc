package suffixtree

// StringSubsumed is returned by AddString when every suffix of the
// string is already represented by existing tree structure, so there
// is nothing left to insert.
type StringSubsumed struct{}

func (e StringSubsumed) Error() string {
	return "string already fully represented in the tree"
}

// Tree is a generalized suffix tree: one shared tree indexing every
// string added so far. Edges carry (string id, left, right) references
// into the registry instead of copying symbols.
//
// The tree is not safe for concurrent mutation; a caller needing
// concurrent insertions must serialize them, and readers must not
// traverse while an insertion is in progress.
type Tree[C comparable] struct {
	root Node[C]
	sink Node[C]

	// registry of inserted strings, keyed by id
	haystack  map[int][]C
	lastIndex int

	// heap nodes currently owned, root and sink excluded
	nodes int
}

// New returns an empty tree with the root and sink wired to each other.
func New[C comparable]() *Tree[C] {
	t := &Tree[C]{haystack: make(map[int][]C)}
	t.sink.kind = kindSink
	t.sink.depth = -1
	t.wire()
	return t
}

func (t *Tree[C]) wire() {
	t.root.trans = make(map[C]Transition[C])
	t.root.suffixLink = &t.sink
	t.sink.suffixLink = &t.root
}

// AddString indexes a copy of s and returns its id, a positive integer
// assigned sequentially. When s is entirely subsumed by existing
// structure the registry entry is rolled back, the id is not consumed,
// and StringSubsumed is returned.
func (t *Tree[C]) AddString(s []C) (int, error) {
	w := make([]C, len(s))
	copy(w, s)

	t.lastIndex++
	t.haystack[t.lastIndex] = w
	if !t.deploySuffixes(w, t.lastIndex) {
		delete(t.haystack, t.lastIndex)
		t.lastIndex--
		return 0, StringSubsumed{}
	}
	return t.lastIndex, nil
}

// Root returns the tree's root node, the entry point for traversal.
func (t *Tree[C]) Root() *Node[C] {
	return &t.root
}

// NodeCount returns the number of heap-allocated nodes the tree
// currently owns. The root and sink are permanent and not counted.
func (t *Tree[C]) NodeCount() int {
	return t.nodes
}

// wordOf resolves a string id through the registry. Lookups never fail
// for an in-tree id; anything else is a corrupted reference.
func (t *Tree[C]) wordOf(str int) []C {
	w, ok := t.haystack[str]
	if !ok {
		panic("suffixtree: transition references an unregistered string id")
	}
	return w
}

// clampRight returns the inclusive right bound of sub, with an open
// bound clamped to the last index of the referenced string.
func (t *Tree[C]) clampRight(sub Substring) int {
	if sub.Right == infinity {
		return len(t.wordOf(sub.Str)) - 1
	}
	return sub.Right
}

// Len returns the symbol length of sub, clamping an open right bound.
func (t *Tree[C]) Len(sub Substring) int {
	if sub.Empty() {
		return 0
	}
	return t.clampRight(sub) - sub.Left + 1
}

// Label resolves sub to the symbols it denotes. The returned slice
// aliases the registry; callers must not modify it.
func (t *Tree[C]) Label(sub Substring) []C {
	if sub.Empty() {
		return nil
	}
	return t.wordOf(sub.Str)[sub.Left : t.clampRight(sub)+1]
}

// Reset tears the tree down to its freshly constructed state. The walk
// is iterative, breadth first over owning transitions only (suffix
// links are non-owning and would loop), so arbitrarily deep trees do
// not recurse. Every owned node must be reached exactly once; a count
// mismatch means the tree was corrupted.
func (t *Tree[C]) Reset() {
	freed := 0
	worklist := []*Node[C]{&t.root}
	for len(worklist) > 0 {
		n := worklist[0]
		worklist = worklist[1:]
		for _, tr := range n.trans {
			worklist = append(worklist, tr.Tgt)
		}
		n.trans = nil
		n.suffixLink = nil
		if n != &t.root {
			freed++
		}
	}
	if freed != t.nodes {
		panic("suffixtree: teardown reached a different number of nodes than were created")
	}

	t.nodes = 0
	t.lastIndex = 0
	t.haystack = make(map[int][]C)
	t.wire()
}
