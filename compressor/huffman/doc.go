// Package huffman implements a lossless byte-stream compressor built on a
// Huffman tree that is embedded in the compressed stream.
//
// A compressed stream is laid out as follows, most significant bit first:
//
//	magic   32 bits   0xface8201
//	header  variable  pre-order tree: 0 = internal node, 1 = leaf + 9-bit symbol
//	body    variable  one code per input byte, then the code of PseudoEOF
//
// The final byte is zero-padded. Because the body ends with the code of the
// reserved PseudoEOF symbol, no length field is stored.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
