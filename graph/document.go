package graph

import "fmt"

// Document is the flat graph produced for one input text (§3). Nodes are
// appended in pipeline order; order is preserved end to end per §5 (the
// pipeline never sorts the graph).
type Document struct {
	Nodes []Node
}

// Add appends n to the document and returns it, so constructors can be
// chained: doc.Add(graph.NewDiscourseReferent(...)).
func (d *Document) Add(n Node) Node {
	d.Nodes = append(d.Nodes, n)
	return n
}

// ByID returns the node with the given id, or nil if absent.
func (d *Document) ByID(id string) Node {
	for _, n := range d.Nodes {
		if n.NodeID() == id {
			return n
		}
	}
	return nil
}

// ids returns the set of ids present in the document.
func (d *Document) ids() map[string]struct{} {
	set := make(map[string]struct{}, len(d.Nodes))
	for _, n := range d.Nodes {
		set[n.NodeID()] = struct{}{}
	}
	return set
}

// CheckReferences verifies invariant I1: every Ref embedded in every
// node's Properties resolves to a node id present in the document. It
// returns the first dangling reference found, formatted for diagnostics.
func (d *Document) CheckReferences() error {
	ids := d.ids()
	for _, n := range d.Nodes {
		for pred, val := range n.Properties() {
			if err := checkRefValue(ids, n.NodeID(), pred, val); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkRefValue(ids map[string]struct{}, owner, pred string, val any) error {
	switch v := val.(type) {
	case Ref:
		if _, ok := ids[v.ID]; !ok {
			return fmt.Errorf("dangling reference: %s.%s -> %q", owner, pred, v.ID)
		}
	case []Ref:
		for _, r := range v {
			if _, ok := ids[r.ID]; !ok {
				return fmt.Errorf("dangling reference: %s.%s -> %q", owner, pred, r.ID)
			}
		}
	}
	return nil
}
