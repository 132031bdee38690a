package tmtotag

import (
	"github.com/reusee/tagmachines/machines"
	"github.com/reusee/tagmachines/tags"
	"github.com/reusee/tagmachines/turing"
)

// Configuration is a turing machine configuration read back from a queue.
// Left is the left side most significant cell farthest. Right is the right
// side with the cell next to the head least significant.
type Configuration struct {
	State turing.StateIndex
	Head  machines.Symbol
	Left  uint64
	Right uint64
}

// Decode reads the simulated configuration when the front tag is a head
// bit-tag. It counts the tags at even positions, which are Hk_h followed by
// Left copies of Lk_h and Right copies of Rk_h. ok is false for queues not in
// that form.
func Decode(queue *tags.Queue) (conf Configuration, ok bool) {
	front, ok := queue.Front()
	if !ok {
		return
	}
	head := VariantOf(front)
	bit, isBit := head.Role.Bit()
	if !isBit || head.Role.Family() != FamilyH {
		return conf, false
	}
	conf.State = head.State
	conf.Head = bit

	l := Variant{head.State, bitRole(FamilyL, bit)}.Index()
	r := Variant{head.State, bitRole(FamilyR, bit)}.Index()
	for i := 2; i < queue.Len(); i += 2 {
		switch queue.At(i) {
		case l:
			if conf.Right > 0 {
				return conf, false
			}
			conf.Left++
		case r:
			conf.Right++
		default:
			return conf, false
		}
	}
	return conf, true
}
