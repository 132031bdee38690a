package shells

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tagmachines/programs"
)

type Module struct {
	dscope.Module
	Programs programs.Module
}
