package tagtocyclic

import (
	"fmt"

	"github.com/reusee/tagmachines/cyclic"
	"github.com/reusee/tagmachines/machines"
	"github.com/reusee/tagmachines/tags"
)

// Encode returns the one-hot word of tag idx among n tags.
func Encode(idx tags.TagIndex, n int) cyclic.Word {
	word := make(cyclic.Word, n)
	word[idx] = machines.One
	return word
}

func encodeAll(items []tags.TagIndex, n int) cyclic.Word {
	word := make(cyclic.Word, 0, len(items)*n)
	for _, idx := range items {
		word = append(word, Encode(idx, n)...)
	}
	return word
}

// Decode splits bits into one-hot blocks of n bits.
func Decode(bits []machines.Symbol, n int) ([]tags.TagIndex, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: block size %d", machines.ErrMalformedRow, n)
	}
	if len(bits)%n != 0 {
		return nil, fmt.Errorf("%w: %d bits in blocks of %d", machines.ErrMalformedRow, len(bits), n)
	}
	ret := make([]tags.TagIndex, 0, len(bits)/n)
	for start := 0; start < len(bits); start += n {
		idx := -1
		for i, bit := range bits[start : start+n] {
			if bit != machines.One {
				continue
			}
			if idx >= 0 {
				idx = -1
				break
			}
			idx = i
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: block %s is not one-hot", machines.ErrMalformedRow, cyclic.Word(bits[start:start+n]))
		}
		ret = append(ret, tags.TagIndex(idx))
	}
	return ret, nil
}
