package tmtotag

const Theory = `
Reduction of a two-symbol turing machine to a 2-tag system

Every turing state k owns ten tags: the bit-tags Hk0 Hk1 Lk0 Lk1 Rk0 Rk1 and
the dispatchers Hk Lk Rk Rkk. A configuration with state k, head bit h, left
number m and right number n is kept in the queue as

	Hk_h Hk_x (Lk_h Lk_x)^m (Rk_h Rk_x)^n

with x the other bit, and the very last tag missing when h is 0. Only the tags
at even positions are ever read, so the odd ones are filler and the state is
recovered by counting the even positions.

One pass over that queue applies the transition of (k, h). The head tag
writes the dispatchers of the next head and, for a left move writing 1, two
Rk'k' tags; every L and R tag doubles or halves its side by the number of
copies it appends. A second pass over the dispatchers expands each of them
into X1 X0, which puts the bit-tags of the next configuration in place with
the new head bit in front. The bit-tags of the halting state halt.

The left number reads the left side most significant cell farthest from the
head. The right number is kept least significant cell nearest to the head,
while the initial queue reads the written right side most significant first;
the two agree when the initial right side reads the same both ways.
`
