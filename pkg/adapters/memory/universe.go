// Package memory provides a declarative in-memory diagram universe.
//
// Each node names its key, spin sector, the target of every primitive action
// that is not a fixed point, and the primitive kinds of its parity group.
// Hidden nodes can be reached by actions but are not enumerated, which is how
// inadmissible spin images are modelled.
package memory

import (
	"fmt"

	"github.com/aretw0/orbitsieve/pkg/domain"
)

// Node describes one diagram.
type Node struct {
	Key     domain.Key
	Spin    domain.SpinIndices
	Actions map[domain.Kind]domain.Key
	Parity  []domain.Kind
	Hidden  bool
}

// Universe implements ports.Universe over a fixed node list.
type Universe struct {
	order []domain.Key
	nodes map[domain.Key]*Node
}

// NewUniverse validates nodes and builds the universe. Enumeration follows
// the given order, skipping hidden nodes.
func NewUniverse(nodes ...Node) (*Universe, error) {
	u := &Universe{nodes: make(map[domain.Key]*Node, len(nodes))}
	for i := range nodes {
		n := nodes[i]
		if n.Key == "" {
			return nil, fmt.Errorf("node %d missing key", i)
		}
		if _, dup := u.nodes[n.Key]; dup {
			return nil, fmt.Errorf("duplicate node %s", n.Key)
		}
		u.nodes[n.Key] = &n
		if !n.Hidden {
			u.order = append(u.order, n.Key)
		}
	}
	for _, n := range u.nodes {
		for k, target := range n.Actions {
			if !k.IsPrimitive() {
				return nil, fmt.Errorf("node %s: %s is not a primitive kind", n.Key, k)
			}
			if _, ok := u.nodes[target]; !ok {
				return nil, fmt.Errorf("node %s: %s targets unknown node %s", n.Key, k, target)
			}
		}
		for _, k := range n.Parity {
			if !k.IsPrimitive() {
				return nil, fmt.Errorf("node %s: parity %s is not a primitive kind", n.Key, k)
			}
		}
	}
	return u, nil
}

// Enumerate returns the visible diagrams in declaration order.
func (u *Universe) Enumerate() ([]domain.Diagram, error) {
	out := make([]domain.Diagram, len(u.order))
	for i, k := range u.order {
		out[i] = diagram{node: u.nodes[k], u: u}
	}
	return out, nil
}

// Get returns the diagram for key, hidden or not.
func (u *Universe) Get(key domain.Key) (domain.Diagram, error) {
	n, ok := u.nodes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownKey, key)
	}
	return diagram{node: n, u: u}, nil
}

type diagram struct {
	node *Node
	u    *Universe
}

func (d diagram) Key() domain.Key                 { return d.node.Key }
func (d diagram) SpinIndices() domain.SpinIndices { return d.node.Spin }

func (d diagram) ParityGroup() []domain.Transformation {
	out := make([]domain.Transformation, len(d.node.Parity))
	for i, k := range d.node.Parity {
		out[i] = domain.NewParity(domain.Primitive(k))
	}
	return out
}

// Transform follows the declared action; undeclared kinds are fixed points.
func (d diagram) Transform(k domain.Kind) domain.Diagram {
	target, ok := d.node.Actions[k]
	if !ok {
		return d
	}
	return diagram{node: d.u.nodes[target], u: d.u}
}
