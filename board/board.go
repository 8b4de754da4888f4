// Package board implements the playing field as a bit-packed grid:
// one uint16 mask per row, one bit per cell. Row fullness and
// collision tests are single mask operations.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MochBot/fusion/tiles"
)

const (
	// Width is the number of columns.
	Width = 10
	// Height is the total number of rows, including the hidden rows
	// above the visible field.
	Height = 40
	// VisibleHeight is the number of rows normally shown.
	VisibleHeight = 20

	fullRowMask uint16 = (1 << Width) - 1
)

// ErrCollision is returned when a placement targets an occupied or
// out-of-bounds cell.
var ErrCollision = errors.New("placement collides with occupied cell")

// Board stores one bit per cell, packed per row. Row 0 is the floor.
// The zero value is an empty board.
type Board struct {
	rows [Height]uint16
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// Equals compares cell contents.
func (b *Board) Equals(other *Board) bool {
	return b.rows == other.rows
}

// Get reports whether the cell at (col, row) is occupied.
// Out-of-range coordinates read as empty.
func (b *Board) Get(col, row int) bool {
	if col < 0 || col >= Width || row < 0 || row >= Height {
		return false
	}
	return b.rows[row]>>uint(col)&1 == 1
}

// Set sets or clears a single cell. Out-of-range coordinates are
// ignored.
func (b *Board) Set(col, row int, filled bool) {
	if col < 0 || col >= Width || row < 0 || row >= Height {
		return
	}
	if filled {
		b.rows[row] |= 1 << uint(col)
	} else {
		b.rows[row] &^= 1 << uint(col)
	}
}

// Row returns the raw bit mask for a row.
func (b *Board) Row(row int) uint16 {
	return b.rows[row]
}

// RowFull reports whether every cell in the row is occupied.
func (b *Board) RowFull(row int) bool {
	return b.rows[row]&fullRowMask == fullRowMask
}

// RowEmpty reports whether the row has no occupied cells.
func (b *Board) RowEmpty(row int) bool {
	return b.rows[row] == 0
}

// IsEmpty reports whether the whole board is empty (a perfect clear).
func (b *Board) IsEmpty() bool {
	for row := 0; row < Height; row++ {
		if b.rows[row] != 0 {
			return false
		}
	}
	return true
}

// Fits reports whether the piece's four cells are all in bounds and
// unoccupied with the pivot at (col, row).
func (b *Board) Fits(p tiles.Piece, o tiles.Orientation, col, row int) bool {
	for _, m := range p.Minos(o) {
		x := col + int(m.Dx)
		y := row + int(m.Dy)
		if x < 0 || x >= Width || y < 0 || y >= Height {
			return false
		}
		if b.rows[y]>>uint(x)&1 == 1 {
			return false
		}
	}
	return true
}

// Place writes the piece's four cells onto the board. It fails with
// ErrCollision, leaving the board unchanged, if any target cell is
// occupied or out of bounds.
func (b *Board) Place(p tiles.Piece, o tiles.Orientation, col, row int) error {
	if !b.Fits(p, o, col, row) {
		return fmt.Errorf("placing %v%v at col %d row %d: %w", p, o, col, row, ErrCollision)
	}
	for _, m := range p.Minos(o) {
		b.rows[row+int(m.Dy)] |= 1 << uint(col+int(m.Dx))
	}
	return nil
}

// ClearLines removes every full row, compacting the rows above it
// downward, and returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	writeRow := 0
	for readRow := 0; readRow < Height; readRow++ {
		if b.RowFull(readRow) {
			cleared++
			continue
		}
		b.rows[writeRow] = b.rows[readRow]
		writeRow++
	}
	for row := writeRow; row < Height; row++ {
		b.rows[row] = 0
	}
	return cleared
}

// DropRow returns the resting row for the piece falling straight down
// in the given column, starting from fromRow: the piece descends while
// the row below still fits. The second return is false when the piece
// does not fit at fromRow itself.
func (b *Board) DropRow(p tiles.Piece, o tiles.Orientation, col, fromRow int) (int, bool) {
	if !b.Fits(p, o, col, fromRow) {
		return 0, false
	}
	row := fromRow
	for row > 0 && b.Fits(p, o, col, row-1) {
		row--
	}
	return row, true
}

// ColumnHeights returns the stack height of every column: the row
// index of the topmost occupied cell plus one, or zero for an empty
// column.
func (b *Board) ColumnHeights() [Width]int {
	var heights [Width]int
	for col := 0; col < Width; col++ {
		for row := Height - 1; row >= 0; row-- {
			if b.rows[row]>>uint(col)&1 == 1 {
				heights[col] = row + 1
				break
			}
		}
	}
	return heights
}

// StackHeight returns the tallest column height.
func (b *Board) StackHeight() int {
	for row := Height - 1; row >= 0; row-- {
		if b.rows[row] != 0 {
			return row + 1
		}
	}
	return 0
}

// String renders the visible rows top-down for debugging.
func (b *Board) String() string {
	var sb strings.Builder
	top := b.StackHeight()
	if top < VisibleHeight {
		top = VisibleHeight
	}
	for row := top - 1; row >= 0; row-- {
		for col := 0; col < Width; col++ {
			if b.Get(col, row) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// MakeBoard turns an array of strings into a board. The strings are
// rows from top to bottom; 'X' or 'x' marks an occupied cell, any
// other character an empty one. Rows shorter than the board width are
// padded with empty cells. Rows not described are empty.
func MakeBoard(desc []string) *Board {
	b := New()
	for i, s := range desc {
		row := len(desc) - 1 - i
		for col, c := range s {
			if col >= Width {
				break
			}
			if c == 'X' || c == 'x' {
				b.Set(col, row, true)
			}
		}
	}
	return b
}
