package programs

import (
	"errors"

	"github.com/reusee/e5"
)

var (
	wrap = e5.Wrap.With(e5.WrapStacktrace)
)

var ErrMissingOption = errors.New("missing option")
