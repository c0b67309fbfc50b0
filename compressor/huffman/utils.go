package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf carries a Symbol; an internal
// node exclusively owns its two children.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node

	// minSymbol is the smallest symbol of any leaf below this node.
	minSymbol Symbol
}

// NewLeaf returns a leaf node.
func NewLeaf(symbol Symbol, weight uint64) *Node {
	return &Node{Symbol: symbol, Weight: weight, minSymbol: symbol}
}

// NewInternal returns an internal node owning left and right.
func NewInternal(left, right *Node) *Node {
	minSymbol := left.minSymbol
	if right.minSymbol < minSymbol {
		minSymbol = right.minSymbol
	}
	return &Node{
		Symbol:    InvalidSymbol,
		Weight:    left.Weight + right.Weight,
		Left:      left,
		Right:     right,
		minSymbol: minSymbol,
	}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Leaves returns the number of leaves below n.
func (n *Node) Leaves() int {
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// Depth returns the length of the longest root-to-leaf path.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// BuildTree builds the Huffman tree for freq.
//
// Nodes leave the queue in (weight, smallest contained symbol) order, and the
// first node removed becomes the left child, so equal tables always yield
// equal trees.  If freq holds a single symbol (empty input), a zero-weight
// leaf for the smallest unused symbol is added so that every symbol is given
// a code of at least one bit.
func BuildTree(freq FrequencyTable) *Node {
	assert.Assertf(freq[PseudoEOF] == 1, "count of PseudoEOF is %d, expected 1", freq[PseudoEOF])

	var treehub huffmanHeap
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if weight := freq[symbol]; weight > 0 {
			treehub = append(treehub, NewLeaf(symbol, weight))
		}
	}
	if len(treehub) < 2 {
		treehub = append(treehub, NewLeaf(placeholderSymbol(freq), 0))
	}

	heap.Init(&treehub)
	for treehub.Len() > 1 {
		x := heap.Pop(&treehub).(*Node)
		y := heap.Pop(&treehub).(*Node)
		heap.Push(&treehub, NewInternal(x, y))
	}
	return heap.Pop(&treehub).(*Node)
}

func placeholderSymbol(freq FrequencyTable) Symbol {
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if freq[symbol] == 0 {
			return symbol
		}
	}
	panic("huffman: no unused symbol")
}

// type huffmanHeap {{{

type huffmanHeap []*Node

func (hub *huffmanHeap) Push(item any) {
	*hub = append(*hub, item.(*Node))
}

func (hub *huffmanHeap) Pop() any {
	popped := (*hub)[len(*hub)-1]
	(*hub)[len(*hub)-1] = nil
	*hub = (*hub)[:len(*hub)-1]
	return popped
}

func (hub huffmanHeap) Len() int {
	return len(hub)
}

func (hub huffmanHeap) Less(i, j int) bool {
	if hub[i].Weight != hub[j].Weight {
		return hub[i].Weight < hub[j].Weight
	}
	return hub[i].minSymbol < hub[j].minSymbol
}

func (hub huffmanHeap) Swap(i, j int) {
	hub[i], hub[j] = hub[j], hub[i]
}

var _ heap.Interface = (*huffmanHeap)(nil)

// }}}
