package traces

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrMismatch reports a run that differs from its recorded trace.
var ErrMismatch = errors.New("trace mismatch")

// MaxStates bounds the printed states kept in a trace.
const MaxStates = 10000

// Trace records one program run.
type Trace struct {
	ID        string    `yaml:"id"`
	Program   string    `yaml:"program"`
	Input     string    `yaml:"input"`
	Output    string    `yaml:"output"`
	Started   time.Time `yaml:"started"`
	Finished  time.Time `yaml:"finished"`
	Steps     int       `yaml:"steps"`
	Halted    bool      `yaml:"halted"`
	Error     string    `yaml:"error,omitempty"`
	States    []string  `yaml:"states,omitempty"`
	Truncated bool      `yaml:"truncated,omitempty"`

	partial []byte
}

func New(program, input, output string) *Trace {
	return &Trace{
		ID:      uuid.NewString(),
		Program: program,
		Input:   input,
		Output:  output,
		Started: time.Now(),
	}
}

// Write collects printed states, one per line.
func (t *Trace) Write(p []byte) (int, error) {
	t.partial = append(t.partial, p...)
	for {
		i := bytes.IndexByte(t.partial, '\n')
		if i < 0 {
			break
		}
		t.addState(string(t.partial[:i]))
		t.partial = t.partial[i+1:]
	}
	return len(p), nil
}

func (t *Trace) addState(state string) {
	if len(t.States) >= MaxStates {
		t.Truncated = true
		return
	}
	t.States = append(t.States, state)
}

func (t *Trace) Finish(steps int, halted bool, err error) {
	if len(t.partial) > 0 {
		t.addState(string(t.partial))
		t.partial = nil
	}
	t.Finished = time.Now()
	t.Steps = steps
	t.Halted = halted
	if err != nil {
		t.Error = err.Error()
	}
}

func (t *Trace) Save(path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("trace %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var trace Trace
	if err := yaml.Unmarshal(data, &trace); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return &trace, nil
}

// Compare checks that run repeats t. Ids, paths and times are not compared;
// states past MaxStates are unknown to both and not compared either.
func (t *Trace) Compare(run *Trace) error {
	switch {
	case t.Program != run.Program:
		return fmt.Errorf("%w: program %s, got %s", ErrMismatch, t.Program, run.Program)
	case t.Steps != run.Steps:
		return fmt.Errorf("%w: %d steps, got %d", ErrMismatch, t.Steps, run.Steps)
	case t.Halted != run.Halted:
		return fmt.Errorf("%w: halted %v, got %v", ErrMismatch, t.Halted, run.Halted)
	case t.Error != run.Error:
		return fmt.Errorf("%w: error %q, got %q", ErrMismatch, t.Error, run.Error)
	}
	for i := range min(len(t.States), len(run.States)) {
		if t.States[i] != run.States[i] {
			return fmt.Errorf("%w: state %d is %s, got %s", ErrMismatch, i, t.States[i], run.States[i])
		}
	}
	if len(t.States) != len(run.States) {
		return fmt.Errorf("%w: %d states, got %d", ErrMismatch, len(t.States), len(run.States))
	}
	return nil
}
