package machineconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tagmachines/configs"
	"github.com/reusee/tagmachines/cyclic"
	"github.com/reusee/tagmachines/logs"
	"github.com/reusee/tagmachines/machines"
	"github.com/reusee/tagmachines/modes"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Call(func(
		level DumpLevel,
		limit CyclicStepLimit,
	) {
		if machines.DumpLevel(level) != machines.DumpFinal {
			t.Fatalf("got %v", level)
		}
		if limit != cyclic.DefaultMaxSteps {
			t.Fatalf("got %v", limit)
		}
	})
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "machines.cue"), []byte(`
dump_level: 2
cyclic_max_steps: 42
`), 0644); err != nil {
		t.Fatal(err)
	}
	paths := searchPaths([]string{dir, t.TempDir()})
	if len(paths) != 1 {
		t.Fatalf("got %v", paths)
	}

	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(paths, schema)
		},
	).Call(func(
		level DumpLevel,
		limit CyclicStepLimit,
	) {
		if machines.DumpLevel(level) != machines.DumpAll {
			t.Fatalf("got %v", level)
		}
		if limit != 42 {
			t.Fatalf("got %v", limit)
		}
	})
}

func TestSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".machines.cue")
	if err := os.WriteFile(path, []byte(`dump_level: 3`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := configs.NewLoader([]string{path}, schema).Check(); err == nil {
		t.Fatal("should fail")
	}
}
