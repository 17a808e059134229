package memory

import (
	"fmt"

	"github.com/aretw0/orbitsieve/pkg/domain"
)

// Builder manages universe construction with a fluent API.
type Builder struct {
	order []domain.Key
	nodes map[domain.Key]*NodeBuilder
}

// NewBuilder creates an empty universe builder.
func NewBuilder() *Builder {
	return &Builder{nodes: make(map[domain.Key]*NodeBuilder)}
}

// NodeBuilder configures a single node.
type NodeBuilder struct {
	node    Node
	builder *Builder
}

// Add creates a node. If the node already exists, its builder is returned.
func (b *Builder) Add(key domain.Key) *NodeBuilder {
	if nb, ok := b.nodes[key]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node:    Node{Key: key, Spin: "ud", Actions: make(map[domain.Kind]domain.Key)},
		builder: b,
	}
	b.nodes[key] = nb
	b.order = append(b.order, key)
	return nb
}

// Spin sets the spin sector (default "ud").
func (n *NodeBuilder) Spin(s domain.SpinIndices) *NodeBuilder {
	n.node.Spin = s
	return n
}

// On declares that primitive k maps this node to target.
func (n *NodeBuilder) On(k domain.Kind, target domain.Key) *NodeBuilder {
	n.node.Actions[k] = target
	return n
}

// Swap declares k as an involution between this node and other.
func (n *NodeBuilder) Swap(k domain.Kind, other domain.Key) *NodeBuilder {
	n.node.Actions[k] = other
	n.builder.Add(other).node.Actions[k] = n.node.Key
	return n
}

// Parity adds primitive kinds to the node's parity group.
func (n *NodeBuilder) Parity(kinds ...domain.Kind) *NodeBuilder {
	n.node.Parity = append(n.node.Parity, kinds...)
	return n
}

// Hidden keeps the node out of enumeration.
func (n *NodeBuilder) Hidden() *NodeBuilder {
	n.node.Hidden = true
	return n
}

// Build validates the declarations and returns the universe.
func (b *Builder) Build() (*Universe, error) {
	nodes := make([]Node, 0, len(b.order))
	for _, k := range b.order {
		nodes = append(nodes, b.nodes[k].node)
	}
	u, err := NewUniverse(nodes...)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory universe: %w", err)
	}
	return u, nil
}
