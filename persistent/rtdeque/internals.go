package rtdeque

import "fmt"

// cellMoves counts list cells touched by rotation steps and eager
// rebuilds. It exists for the complexity tests, which assert that no
// single call moves more than a fixed number of cells. Like the containers
// themselves it assumes a single-threaded caller.
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

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rtdeque: "+msg, msgargs...)
		panic(msg)
	}
}
