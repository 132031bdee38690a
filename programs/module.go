package programs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tagmachines/debugs"
	"github.com/reusee/tagmachines/logs"
	"github.com/reusee/tagmachines/machineconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs machineconfigs.Module
	Debugs  debugs.Module
}
