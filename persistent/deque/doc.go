/*
Package deque implements an immutable persistent double-ended queue with
amortized O(1) operations.

The deque keeps its elements on two lists, one per end, each in push order.
Pushing either end is a single cons. Popping an end whose list is exhausted
first rebalances: the far list is reversed and split at the midpoint — an
O(n) rebuild, paid at most once per Θ(n) pushes. If every single call must
stay O(1) regardless of history, use package rtdeque instead, which trades
a larger constant factor for the worst-case bound.

Deques are values: every operation returns a new deque and leaves the old
one valid, with both sharing most of their cells.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package deque

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcoll.deque'.
func tracer() tracing.Trace {
	return tracing.Select("pcoll.deque")
}
