package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		testingT *testing.T,
		mode Mode,
		interactive Interactive,
	) {
		if interactive {
			t.Fatal()
		}
		if testingT != t {
			t.Fatal()
		}
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
	})
}
