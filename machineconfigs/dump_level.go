package machineconfigs

import (
	"github.com/reusee/tagmachines/configs"
	"github.com/reusee/tagmachines/machines"
)

// DumpLevel is the configured trace level, used when -dump is not given.
type DumpLevel machines.DumpLevel

func (Module) DumpLevel(
	loader configs.Loader,
) DumpLevel {
	return DumpLevel(configs.First[uint](loader, "dump_level"))
}
