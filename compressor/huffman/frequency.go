package huffman

import (
	"github.com/pkg/errors"
)

// FrequencyTable maps every Symbol to its number of occurrences.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies reads r in BitsPerWord chunks until end-of-stream and
// counts each chunk.  The count of PseudoEOF is always 1.  The caller must
// rewind the underlying stream before reading it again.
func CountFrequencies(r BitReader) (FrequencyTable, error) {
	var freq FrequencyTable
	for {
		chunk, err := r.ReadBits(BitsPerWord)
		if err != nil {
			if isEndOfStream(err) {
				break
			}
			return FrequencyTable{}, errors.Wrap(err, "huffman: count frequencies")
		}
		freq[chunk]++
	}
	freq[PseudoEOF] = 1
	return freq, nil
}

// Total returns the number of literal bytes counted.
func (freq *FrequencyTable) Total() uint64 {
	var total uint64
	for symbol := Symbol(0); symbol < PseudoEOF; symbol++ {
		total += freq[symbol]
	}
	return total
}
