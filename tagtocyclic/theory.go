package tagtocyclic

const Theory = `
Reduction of a 2-tag system to a cyclic tag system

Tag i among N tags is the word of N bits with only bit i set. The table has
2N rows. Row i appends the words of the production of tag i, or nothing for a
halting tag. Rows N to 2N-1 are empty: the second tag of a consumed pair
passes under them without firing. With only N rows the index would wrap to 0 at
the second tag, its set bit would fire its own row, and a step would append
two productions where deletion number 2 allows one.

A full cycle of 2N steps pops the words of the two front tags, fires exactly
the row of the first one, and comes back to index 0, so one tag system step
is always 2N cyclic steps. Halting words are the words of the halting tags and
are only matched at index 0, that is at the front of a tag.
`
