package suffixtree

/*
Online construction after Ukkonen, extended to several strings sharing
one tree. A position inside the tree is carried around as a reference
point (node, pending substring): the node is explicit, the pending
substring hangs below it along existing edges. A reference point is
canonical when the pending substring is strictly shorter than the edge
it starts down, so canonize is run after every move.
*/

// refPoint is a canonical (node, pending substring) pair. Only the
// left bound of the pending substring is stored; the right bound is
// whatever position the caller is currently processing.
type refPoint[C comparable] struct {
	n    *Node[C]
	left int
}

// testAndSplit reports whether (n, kp) is already an endpoint for the
// next symbol c, that is, whether the tree continues with c there.
// When it is not and kp ends inside an edge, the edge is split and the
// new explicit node is returned; otherwise n itself is. This is the
// only place edges are split, and it allocates at most one node.
func (t *Tree[C]) testAndSplit(n *Node[C], kp Substring, c C) (*Node[C], bool) {
	if kp.Empty() {
		_, ok := n.transitionFor(c)
		return n, ok
	}

	w := t.wordOf(kp.Str)
	delta := kp.Right - kp.Left
	tr, ok := n.transitionFor(w[kp.Left])
	if !ok {
		panic("suffixtree: no transition at a canonical reference point")
	}
	ref := t.wordOf(tr.Sub.Str)
	if ref[tr.Sub.Left+delta+1] == c {
		return n, true
	}

	// split: a new explicit node takes over the first delta+1 symbols
	// of the edge, the tail keeps the original target
	r := t.newInternal(n.depth + delta + 1)
	tail := tr
	tail.Sub.Left += delta + 1
	r.trans[ref[tail.Sub.Left]] = tail
	tr.Sub.Right = tr.Sub.Left + delta
	tr.Tgt = r
	n.trans[w[kp.Left]] = tr
	return r, false
}

// canonize walks (s, kp) down whole edges until the pending substring
// is empty or shorter than the next edge, jumping by edge lengths
// instead of rescanning symbols. Open edges count with their clamped
// length, so the walk can land on a leaf.
func (t *Tree[C]) canonize(s *Node[C], kp Substring) refPoint[C] {
	if kp.Empty() {
		return refPoint[C]{n: s, left: kp.Left}
	}

	w := t.wordOf(kp.Str)
	tr, ok := s.transitionFor(w[kp.Left])
	if !ok {
		panic("suffixtree: no transition at a canonical reference point")
	}
	for {
		delta := t.clampRight(tr.Sub) - tr.Sub.Left
		if delta > kp.Right-kp.Left {
			break
		}
		kp.Left += delta + 1
		s = tr.Tgt
		if kp.Left <= kp.Right {
			tr, ok = s.transitionFor(w[kp.Left])
			if !ok {
				panic("suffixtree: no transition at a canonical reference point")
			}
		}
	}
	return refPoint[C]{n: s, left: kp.Left}
}

// suffixHop moves the reference point (n, kp) to the next shorter
// suffix. Internal nodes, the root and the sink carry suffix links and
// hop in constant time. Leaves acquire a link only once a later
// insertion grows past them, so a linkless leaf re-derives its target
// from the root using the pending substring's coordinates: the suffix
// currently at (n, kp) starts at kp.Left - n.depth.
func (t *Tree[C]) suffixHop(n *Node[C], kp Substring) refPoint[C] {
	if n.suffixLink != nil {
		return t.canonize(n.suffixLink, kp)
	}
	next := Substring{Str: kp.Str, Left: kp.Left - n.depth + 1, Right: kp.Right}
	return t.canonize(&t.root, next)
}

// update extends the tree with the symbol at ki.Right, walking the
// border path from the active point until an endpoint stops it. Each
// stop before the endpoint attaches a fresh open-edged leaf; each
// split node created on the way receives its suffix link on the next
// stop, so links are complete by the time update returns. A node whose
// endpoint fell between explicit states is left linkless instead;
// suffixHop re-derives its target until a later split materializes it.
func (t *Tree[C]) update(s *Node[C], ki Substring) refPoint[C] {
	w := t.wordOf(ki.Str)
	c := w[ki.Right]
	oldr := &t.root
	sk := refPoint[C]{n: s, left: ki.Left}

	ki1 := ki
	ki1.Right = ki.Right - 1
	r, endpoint := t.testAndSplit(s, ki1, c)
	for !endpoint {
		leaf := t.newLeaf(ki.Str, ki.Right-r.depth, r.depth+len(w)-ki.Right)
		r.trans[c] = Transition[C]{
			Sub: Substring{Str: ki.Str, Left: ki.Right, Right: infinity},
			Tgt: leaf,
		}
		if oldr != &t.root {
			oldr.suffixLink = r
		}
		oldr = r

		sk = t.suffixHop(sk.n, ki1)
		ki1.Left = sk.left
		r, endpoint = t.testAndSplit(sk.n, ki1, c)
	}
	// only link when the endpoint is the suffix state itself; a leftover
	// pending substring means the suffix is still implicit, and linking
	// past it would skip that suffix on the next hop
	if oldr != &t.root && ki1.Empty() {
		oldr.suffixLink = sk.n
	}
	return sk
}

// startingPoint fast-forwards r over the prefix of s the tree already
// recognizes, matching symbol by symbol only inside the current edge
// and jumping node to node otherwise. It returns the index of the
// first diverging symbol of s, with r left at the canonical reference
// point to resume from, or infinity when all of s lies on an existing
// path and there is nothing to insert.
func (t *Tree[C]) startingPoint(s []C, r *refPoint[C]) int {
	k := r.left
	for k < len(s) {
		tr, ok := r.n.transitionFor(s[k])
		if !ok {
			r.left = k
			return k
		}
		ref := t.wordOf(tr.Sub.Str)
		end := t.clampRight(tr.Sub)
		i := 1
		for ; i <= end-tr.Sub.Left; i++ {
			if k+i >= len(s) {
				r.left = infinity
				return infinity
			}
			if s[k+i] != ref[tr.Sub.Left+i] {
				r.left = k
				return k + i
			}
		}
		r.n = tr.Tgt
		k += i
		r.left = k
	}
	r.left = infinity
	return infinity
}

// deploySuffixes runs the construction for string idx: fast-forward
// past shared structure, then one update/canonize round per remaining
// position. Reports false when the fast-forward consumed the whole
// string, the degenerate case where no suffix is new.
func (t *Tree[C]) deploySuffixes(s []C, idx int) bool {
	ap := refPoint[C]{n: &t.root, left: 0}
	i := t.startingPoint(s, &ap)
	if i == infinity {
		return false
	}
	for ; i < len(s); i++ {
		ki := Substring{Str: idx, Left: ap.left, Right: i}
		ap = t.update(ap.n, ki)
		ki.Left = ap.left
		ap = t.canonize(ap.n, ki)
	}
	return true
}
