package cyclic

import (
	"strings"

	"github.com/reusee/tagmachines/machines"
)

// Word is a bit string spelled with Y and N; the empty word is spelled -.
type Word []machines.Symbol

func ParseWord(str string) (Word, error) {
	if str == "-" {
		return Word{}, nil
	}
	word := make(Word, 0, len(str))
	for i := 0; i < len(str); i++ {
		sym, err := machines.ParseYN(str[i])
		if err != nil {
			return nil, err
		}
		word = append(word, sym)
	}
	return word, nil
}

func (w Word) String() string {
	if len(w) == 0 {
		return "-"
	}
	var b strings.Builder
	b.Grow(len(w))
	for _, sym := range w {
		b.WriteByte(sym.YN())
	}
	return b.String()
}
