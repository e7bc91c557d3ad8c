package astar

// ledger gives a search access to the scratch record of each node.
type ledger interface {
	// entry returns the scratch record of n, creating it if needed.
	entry(n *Node) *scratch
	// release returns the record of n to neutral once the search is over.
	release(n *Node)
	// shared reports whether records live outside the nodes.
	shared() bool
}

// inPlace keeps scratch inside the nodes themselves.
type inPlace struct{}

func (inPlace) entry(n *Node) *scratch { return &n.scratch }

func (inPlace) release(n *Node) { n.scratch = scratch{} }

func (inPlace) shared() bool { return false }

// sideTable keeps scratch in a search-local map keyed by node identity,
// leaving the graph untouched.
type sideTable map[*Node]*scratch

func (t sideTable) entry(n *Node) *scratch {
	s, ok := t[n]
	if !ok {
		s = &scratch{}
		t[n] = s
	}

	return s
}

func (t sideTable) release(n *Node) { delete(t, n) }

func (sideTable) shared() bool { return true }
