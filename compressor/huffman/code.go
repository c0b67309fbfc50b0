package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest code a BitWriter can emit in one call.
const MaxCodeSize = 64

// Code represents a root-to-leaf path: 0 for each left edge, 1 for each
// right edge.
type Code struct {
	// Size holds the number of valid bits.  A Size of 0 marks a symbol
	// that is absent from the tree.
	Size uint8

	// Bits holds the path.  The most significant of the Size valid bits is
	// the edge leaving the root.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size uint8, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

// HasPrefix reports whether prefix is a leading part of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

func (hc Code) extend(bit uint64) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code longer than %d bits", MaxCodeSize)
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | bit}
}

var _ fmt.Stringer = Code{}

// CodeTable maps every Symbol to its Code.
type CodeTable [NumSymbols]Code

// BuildCodeTable walks the tree below root and records the path to every
// leaf.
func BuildCodeTable(root *Node) CodeTable {
	var codes CodeTable
	assignCodes(root, Code{}, &codes)
	return codes
}

func assignCodes(n *Node, prefix Code, codes *CodeTable) {
	if n.IsLeaf() {
		codes[n.Symbol] = prefix
		return
	}
	assignCodes(n.Left, prefix.extend(0), codes)
	assignCodes(n.Right, prefix.extend(1), codes)
}

// Encode returns the Code for symbol.
func (codes *CodeTable) Encode(symbol Symbol) Code {
	return codes[symbol]
}

// Dump writes a programmer-readable listing of every assigned code to the
// given writer.
func (codes *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		hc := codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
