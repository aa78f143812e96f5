/*
Package rtdeque implements an immutable persistent double-ended queue with
worst-case O(1) operations.

The deque has the same contract and logical semantics as package deque, but
no single call ever pays for a full rebalance. Instead, rebalancing is
spread across many operations: as soon as one end's list falls to roughly
half the length of the other, an incremental rotation starts which reverses
the long side and rebuilds the short side a few cells at a time, carried
along inside the deque value. Every push or pop advances the rotation by at
most a fixed number of cell moves — a constant independent of deque size —
so by the time an imbalance would force an immediate rebuild, the rebuilt
lists are already complete. This is the scheduling idea of Hood-Melville
real-time queues, extended to both ends.

The price is a larger constant factor: a rotation touches every cell a
small number of times, where the amortized deque touches it once. Prefer
package deque when occasional O(n) calls are acceptable.

Deques are values: every operation returns a new deque and leaves the old
one valid. A value handed to a caller is always a complete, consistent
snapshot, rotation state included.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rtdeque

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcoll.rtdeque'.
func tracer() tracing.Trace {
	return tracing.Select("pcoll.rtdeque")
}
