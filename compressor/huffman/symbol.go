package huffman

const (
	// BitsPerWord is the width of one literal input symbol.
	BitsPerWord = 8

	// BitsPerInt is the width of the magic number.
	BitsPerInt = 32

	// BitsPerSymbol is the width of a leaf value in the tree header.  It is
	// one bit wider than BitsPerWord so that PseudoEOF fits.
	BitsPerSymbol = BitsPerWord + 1

	// AlphabetSize is the number of literal symbols.
	AlphabetSize = 1 << BitsPerWord

	// NumSymbols is the number of symbols including PseudoEOF.
	NumSymbols = AlphabetSize + 1

	magicNumber = 0xface8200

	// Magic identifies a stream carrying a tree header.
	Magic = magicNumber | 1
)

// Symbol is one unit of the alphabet: a literal byte in [0, 255] or
// PseudoEOF.
type Symbol int32

// PseudoEOF marks the end of the payload in the body of a stream.  It never
// occurs in real input and is always counted exactly once.
const PseudoEOF = Symbol(AlphabetSize)

// InvalidSymbol is carried by internal tree nodes.
const InvalidSymbol = Symbol(-1)

// IsLiteral reports whether s stands for a byte of input.
func (s Symbol) IsLiteral() bool {
	return s >= 0 && s < PseudoEOF
}

// IsValid reports whether s may appear in a tree header.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= PseudoEOF
}
