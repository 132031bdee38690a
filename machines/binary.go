package machines

import "fmt"

const maxNumber = 1 << 62

// Number reads symbols as a binary number, most significant first.
func Number(symbols []Symbol) (uint64, error) {
	var n uint64
	for _, s := range symbols {
		if n >= maxNumber>>1 {
			return 0, fmt.Errorf("%w: %d symbols", ErrTooLarge, len(symbols))
		}
		n = n<<1 | uint64(s)
	}
	return n, nil
}
