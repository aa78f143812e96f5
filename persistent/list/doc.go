/*
Package list implements an immutable persistent singly-linked list.

The list is the storage substrate of every container in this module: both
deque variants are built from its cells. Lists have copy-on-write
behaviour: every “modification” returns a new list, leaving the original
unmodified. Tails are structurally shared between versions — a cell, once
created, is never written again, so any number of lists may hang on to the
same suffix.

All traversing operations, including the ones that are naturally recursive
(folds, merge, flatten, chunking, splitting), are implemented iteratively.
Their call depth is independent of list length, so they are safe on lists
of hundreds of thousands of elements.

Immutable lists are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcoll.list'.
func tracer() tracing.Trace {
	return tracing.Select("pcoll.list")
}
