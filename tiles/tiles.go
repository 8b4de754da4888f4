// Package tiles defines the seven tetromino pieces and their fixed
// orientation data: mino offsets, spawn position, and the cyclic
// orientation transitions used by the rotation resolver.
package tiles

import "fmt"

// Piece is one of the seven tetromino shapes.
type Piece uint8

const (
	PieceI Piece = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// AllPieces lists every piece in canonical order.
var AllPieces = []Piece{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

func (p Piece) String() string {
	switch p {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	}
	return "?"
}

// PieceFromRune parses a piece letter, case-insensitively.
func PieceFromRune(r rune) (Piece, error) {
	switch r {
	case 'I', 'i':
		return PieceI, nil
	case 'O', 'o':
		return PieceO, nil
	case 'T', 't':
		return PieceT, nil
	case 'S', 's':
		return PieceS, nil
	case 'Z', 'z':
		return PieceZ, nil
	case 'J', 'j':
		return PieceJ, nil
	case 'L', 'l':
		return PieceL, nil
	}
	return 0, fmt.Errorf("no piece for rune %q", r)
}

// Orientation is one of the four cardinal piece orientations.
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West
)

// NumOrientations is the number of cardinal orientations.
const NumOrientations = 4

func (o Orientation) String() string {
	switch o {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// CW returns the orientation after a clockwise quarter turn.
func (o Orientation) CW() Orientation {
	return (o + 1) % NumOrientations
}

// CCW returns the orientation after a counter-clockwise quarter turn.
func (o Orientation) CCW() Orientation {
	return (o + 3) % NumOrientations
}

// Flip returns the orientation after a half turn.
func (o Orientation) Flip() Orientation {
	return (o + 2) % NumOrientations
}

// Offset is a cell offset relative to a piece's pivot cell.
// Dx is columns rightward, Dy is rows upward (row 0 is the floor).
type Offset struct {
	Dx, Dy int8
}

// Spawn position for every piece: pivot at the center column, above
// the visible field.
const (
	SpawnCol = 4
	SpawnRow = 20
)

// minoTable holds the four cell offsets for each piece at each
// orientation, indexed [piece][orientation].
var minoTable = [7][NumOrientations][4]Offset{
	PieceI: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		East:  {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		South: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		West:  {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	},
	PieceO: {
		North: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		East:  {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		South: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		West:  {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	PieceT: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		East:  {{0, -1}, {0, 0}, {0, 1}, {1, 0}},
		South: {{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
		West:  {{0, -1}, {0, 0}, {0, 1}, {-1, 0}},
	},
	PieceS: {
		North: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		East:  {{0, 1}, {0, 0}, {1, 0}, {1, -1}},
		South: {{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
		West:  {{-1, 1}, {-1, 0}, {0, 0}, {0, -1}},
	},
	PieceZ: {
		North: {{0, 0}, {1, 0}, {-1, 1}, {0, 1}},
		East:  {{0, -1}, {0, 0}, {1, 0}, {1, 1}},
		South: {{0, -1}, {1, -1}, {-1, 0}, {0, 0}},
		West:  {{-1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	},
	PieceJ: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
		East:  {{0, -1}, {0, 0}, {0, 1}, {1, 1}},
		South: {{1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		West:  {{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
	},
	PieceL: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		East:  {{0, -1}, {0, 0}, {0, 1}, {1, -1}},
		South: {{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		West:  {{-1, 1}, {0, -1}, {0, 0}, {0, 1}},
	},
}

// Minos returns the four cell offsets for p at orientation o,
// relative to the pivot.
func (p Piece) Minos(o Orientation) [4]Offset {
	return minoTable[p][o]
}
