// Package board implements the SameGame rules engine: an immutable grid of
// colored cells, connected-component search, the pop rule, two-phase gravity
// and the win predicate.
//
// Every operation is a pure function. Transforms never write to the Grid they
// receive; they return a new Grid. Coordinates are (x, y) with x growing to the
// right and y growing downward, so row 0 is the top of the board and gravity
// pulls toward row Height()-1.
package board
