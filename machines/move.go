package machines

import "fmt"

type Move uint8

const (
	Left Move = iota
	Right
)

func ParseMove(str string) (Move, error) {
	switch str {
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	}
	return Left, fmt.Errorf("%w: %q", ErrUnknownMove, str)
}

func (m Move) String() string {
	if m == Right {
		return "R"
	}
	return "L"
}
