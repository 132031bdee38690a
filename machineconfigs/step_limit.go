package machineconfigs

import (
	"github.com/reusee/tagmachines/configs"
	"github.com/reusee/tagmachines/cyclic"
	"github.com/reusee/tagmachines/vars"
)

// CyclicStepLimit is the configured step fuse, used when -max-steps is not
// given.
type CyclicStepLimit int

func (Module) CyclicStepLimit(
	loader configs.Loader,
) CyclicStepLimit {
	return CyclicStepLimit(vars.FirstNonZero(
		configs.First[int](loader, "cyclic_max_steps"),
		cyclic.DefaultMaxSteps,
	))
}
