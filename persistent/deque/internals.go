package deque

// cellMoves counts list cells touched by rebalancing. It exists for the
// complexity tests, which compare per-call spikes against the worst-case
// variant in package rtdeque. Like the containers themselves it assumes a
// single-threaded caller.
var cellMoves int

func countCells(n int) {
	cellMoves += n
}

func cellMeter() int {
	return cellMoves
}

func resetCellMeter() {
	cellMoves = 0
}
