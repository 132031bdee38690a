package machines

import "fmt"

// Symbol is one tape or queue bit.
type Symbol uint8

const (
	Zero Symbol = 0
	One  Symbol = 1
)

func SymbolOf(b bool) Symbol {
	if b {
		return One
	}
	return Zero
}

// ParseBinary reads the '0'/'1' spelling used by turing machine descriptions.
func ParseBinary(c byte) (Symbol, error) {
	switch c {
	case '0':
		return Zero, nil
	case '1':
		return One, nil
	}
	return Zero, fmt.Errorf("%w: %q", ErrUnknownSymbol, c)
}

func (s Symbol) Binary() byte {
	if s == One {
		return '1'
	}
	return '0'
}

// ParseYN reads the 'N'/'Y' spelling used by cyclic tag system descriptions.
func ParseYN(c byte) (Symbol, error) {
	switch c {
	case 'N':
		return Zero, nil
	case 'Y':
		return One, nil
	}
	return Zero, fmt.Errorf("%w: %q", ErrUnknownSymbol, c)
}

func (s Symbol) YN() byte {
	if s == One {
		return 'Y'
	}
	return 'N'
}
