// Package kicks resolves piece rotations. A rotation first tries the
// naive rotated position, then an ordered list of kick offsets from a
// static table indexed by piece class and orientation transition.
// Spin classification is capability-driven: eligibility for the
// pivot-corner spin test is per-piece table data, not an identity
// check in the classifier.
package kicks

import "github.com/MochBot/fusion/tiles"

// pieceClass holds the kick candidates for every orientation
// transition.
type pieceClass struct {
	// kicks[from][to] is the ordered candidate list tried after the
	// unkicked position.
	kicks [tiles.NumOrientations][tiles.NumOrientations][]tiles.Offset
}

// cornerSpinCapable marks the pieces whose placements use the
// pivot-corner spin test. Kick classes are shared (T kicks like J, L,
// S, and Z) but the capability is narrower, so it lives in its own
// table.
var cornerSpinCapable = [tiles.PieceL + 1]bool{
	tiles.PieceT: true,
}

func classOf(p tiles.Piece) *pieceClass {
	switch p {
	case tiles.PieceI:
		return &iClass
	case tiles.PieceO:
		return &oClass
	}
	return &jlstzClass
}

// SRS+ tables. Offsets are (dx, dy) with dy positive upward, tried in
// order.
var jlstzClass = pieceClass{
	kicks: [tiles.NumOrientations][tiles.NumOrientations][]tiles.Offset{
		tiles.North: {
			tiles.East:  {{Dx: -1, Dy: 0}, {Dx: -1, Dy: -1}, {Dx: 0, Dy: 2}, {Dx: -1, Dy: 2}},
			tiles.West:  {{Dx: 1, Dy: 0}, {Dx: 1, Dy: -1}, {Dx: 0, Dy: 2}, {Dx: 1, Dy: 2}},
			tiles.South: {{Dx: 0, Dy: -1}, {Dx: 1, Dy: -1}, {Dx: -1, Dy: -1}, {Dx: 1, Dy: 0}, {Dx: -1, Dy: 0}},
		},
		tiles.East: {
			tiles.South: {{Dx: 1, Dy: 0}, {Dx: 1, Dy: 1}, {Dx: 0, Dy: -2}, {Dx: 1, Dy: -2}},
			tiles.North: {{Dx: 1, Dy: 0}, {Dx: 1, Dy: 1}, {Dx: 0, Dy: -2}, {Dx: 1, Dy: -2}},
			tiles.West:  {{Dx: 1, Dy: 0}, {Dx: 1, Dy: -2}, {Dx: 1, Dy: -1}, {Dx: 0, Dy: -2}, {Dx: 0, Dy: -1}},
		},
		tiles.South: {
			tiles.West:  {{Dx: 1, Dy: 0}, {Dx: 1, Dy: -1}, {Dx: 0, Dy: 2}, {Dx: 1, Dy: 2}},
			tiles.East:  {{Dx: -1, Dy: 0}, {Dx: -1, Dy: -1}, {Dx: 0, Dy: 2}, {Dx: -1, Dy: 2}},
			tiles.North: {{Dx: 0, Dy: 1}, {Dx: -1, Dy: 1}, {Dx: 1, Dy: 1}, {Dx: -1, Dy: 0}, {Dx: 1, Dy: 0}},
		},
		tiles.West: {
			tiles.North: {{Dx: -1, Dy: 0}, {Dx: -1, Dy: 1}, {Dx: 0, Dy: -2}, {Dx: -1, Dy: -2}},
			tiles.South: {{Dx: -1, Dy: 0}, {Dx: -1, Dy: 1}, {Dx: 0, Dy: -2}, {Dx: -1, Dy: -2}},
			tiles.East:  {{Dx: -1, Dy: 0}, {Dx: -1, Dy: -2}, {Dx: -1, Dy: -1}, {Dx: 0, Dy: -2}, {Dx: 0, Dy: -1}},
		},
	},
}

var iClass = pieceClass{
	kicks: [tiles.NumOrientations][tiles.NumOrientations][]tiles.Offset{
		tiles.North: {
			tiles.East: {{Dx: -2, Dy: 0}, {Dx: 1, Dy: 0}, {Dx: -2, Dy: 1}, {Dx: 1, Dy: -2}},
			tiles.West: {{Dx: -1, Dy: 0}, {Dx: 2, Dy: 0}, {Dx: -1, Dy: -2}, {Dx: 2, Dy: 1}},
			// no 180 kicks for I in SRS+
		},
		tiles.East: {
			tiles.South: {{Dx: -1, Dy: 0}, {Dx: 2, Dy: 0}, {Dx: -1, Dy: -2}, {Dx: 2, Dy: 1}},
			tiles.North: {{Dx: 2, Dy: 0}, {Dx: -1, Dy: 0}, {Dx: 2, Dy: -1}, {Dx: -1, Dy: 2}},
		},
		tiles.South: {
			tiles.West: {{Dx: 2, Dy: 0}, {Dx: -1, Dy: 0}, {Dx: 2, Dy: -1}, {Dx: -1, Dy: 2}},
			tiles.East: {{Dx: 1, Dy: 0}, {Dx: -2, Dy: 0}, {Dx: 1, Dy: 2}, {Dx: -2, Dy: -1}},
		},
		tiles.West: {
			tiles.North: {{Dx: 1, Dy: 0}, {Dx: -2, Dy: 0}, {Dx: 1, Dy: 2}, {Dx: -2, Dy: -1}},
			tiles.South: {{Dx: -2, Dy: 0}, {Dx: 1, Dy: 0}, {Dx: -2, Dy: 1}, {Dx: 1, Dy: -2}},
		},
	},
}

// O rotates in place and never kicks.
var oClass = pieceClass{}

// Offsets returns the ordered kick candidates for rotating p from one
// orientation to another. The unkicked position is not included.
func Offsets(p tiles.Piece, from, to tiles.Orientation) []tiles.Offset {
	return classOf(p).kicks[from][to]
}

// CanCornerSpin reports whether the piece uses the pivot-corner spin
// test.
func CanCornerSpin(p tiles.Piece) bool {
	return int(p) < len(cornerSpinCapable) && cornerSpinCapable[p]
}
