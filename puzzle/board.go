package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinSize and MaxSize bound the board edge length.
	MinSize = 2
	MaxSize = 4
)

var (
	ErrInvalidSize   = errors.New("board size out of range")
	ErrInvalidBoard  = errors.New("invalid board")
	ErrIllegalMove   = errors.New("illegal move")
	ErrUnknownAction = errors.New("unknown action")
	ErrSizeMismatch  = errors.New("start and goal boards differ in size")
)

// Board is an N×N tile arrangement. The zero Board is not valid; build one with
// NewBoard, FromCells or ParseBoard.
type Board struct {
	size  uint8
	blank uint8
	cells [MaxSize * MaxSize]uint8
}

// NewBoard returns the ordered board with the blank in the top-left corner.
func NewBoard(size int) (Board, error) {
	if size < MinSize || size > MaxSize {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	board := Board{size: uint8(size)}
	for i := 0; i < size*size; i++ {
		board.cells[i] = uint8(i)
	}
	return board, nil
}

// FromCells builds a board from row-major cells, which must be a permutation
// of 0..size*size-1.
func FromCells(size int, cells []int) (Board, error) {
	if size < MinSize || size > MaxSize {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if len(cells) != size*size {
		return Board{}, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidBoard, size*size, len(cells))
	}

	board := Board{size: uint8(size)}
	var seen [MaxSize * MaxSize]bool
	for i, tile := range cells {
		if tile < 0 || tile >= len(cells) {
			return Board{}, fmt.Errorf("%w: tile %d out of range", ErrInvalidBoard, tile)
		}
		if seen[tile] {
			return Board{}, fmt.Errorf("%w: tile %d repeated", ErrInvalidBoard, tile)
		}
		seen[tile] = true
		board.cells[i] = uint8(tile)
		if tile == 0 {
			board.blank = uint8(i)
		}
	}
	return board, nil
}

// ParseBoard reads rows separated by '/' or newlines, cells separated by
// spaces or commas. "_" may stand for the blank.
func ParseBoard(text string) (Board, error) {
	rows := strings.FieldsFunc(strings.TrimSpace(text), func(r rune) bool { return r == '/' || r == '\n' })
	var cells []int
	for _, row := range rows {
		fields := strings.FieldsFunc(row, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		if len(fields) != len(rows) {
			return Board{}, fmt.Errorf("%w: row %q has %d cells, want %d", ErrInvalidBoard, row, len(fields), len(rows))
		}
		for _, field := range fields {
			if field == "_" {
				cells = append(cells, 0)
				continue
			}
			tile, err := strconv.Atoi(field)
			if err != nil {
				return Board{}, fmt.Errorf("%w: %q is not a tile", ErrInvalidBoard, field)
			}
			cells = append(cells, tile)
		}
	}
	return FromCells(len(rows), cells)
}

// Size returns the edge length.
func (b Board) Size() int { return int(b.size) }

// Cells returns the tiles in row-major order.
func (b Board) Cells() []int {
	cells := make([]int, b.size*b.size)
	for i := range cells {
		cells[i] = int(b.cells[i])
	}
	return cells
}

// Blank returns the row and column of the blank. The zero Board reports 0, 0.
func (b Board) Blank() (row, col int) {
	if b.size == 0 {
		return 0, 0
	}
	return int(b.blank) / int(b.size), int(b.blank) % int(b.size)
}

// Actions lists the legal moves of the blank. The zero Board has none.
func (b Board) Actions() []Action {
	if b.size == 0 {
		return nil
	}
	row, col := b.Blank()
	actions := make([]Action, 0, len(allActions))
	for _, action := range allActions {
		if b.inside(row+actionDelta[action].row, col+actionDelta[action].col) {
			actions = append(actions, action)
		}
	}
	return actions
}

// Apply slides the tile next to the blank into it.
func (b Board) Apply(action Action) (Board, error) {
	if action > Right {
		return b, fmt.Errorf("%w: %d", ErrUnknownAction, uint8(action))
	}
	row, col := b.Blank()
	row, col = row+actionDelta[action].row, col+actionDelta[action].col
	if !b.inside(row, col) {
		return b, fmt.Errorf("%w: %s from blank at %d", ErrIllegalMove, action, b.blank)
	}
	target := uint8(row*int(b.size) + col)
	b.cells[b.blank], b.cells[target] = b.cells[target], b.cells[b.blank]
	b.blank = target
	return b, nil
}

// Manhattan sums, over every non-blank tile, its grid distance to where goal
// holds it. It never overestimates the number of moves left.
func (b Board) Manhattan(goal Board) int {
	n := int(b.size)
	var home [MaxSize * MaxSize]int
	for i := 0; i < n*n; i++ {
		home[goal.cells[i]] = i
	}
	total := 0
	for i := 0; i < n*n; i++ {
		tile := b.cells[i]
		if tile == 0 {
			continue
		}
		total += abs(i/n-home[tile]/n) + abs(i%n-home[tile]%n)
	}
	return total
}

// Compact renders the board on one line in the form ParseBoard reads.
func (b Board) Compact() string {
	var sb strings.Builder
	n := int(b.size)
	for i := 0; i < n*n; i++ {
		if i > 0 {
			if i%n == 0 {
				sb.WriteByte('/')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(strconv.Itoa(int(b.cells[i])))
	}
	return sb.String()
}

// String renders the board as a grid with '_' for the blank.
func (b Board) String() string {
	var sb strings.Builder
	n := int(b.size)
	width := len(strconv.Itoa(n*n - 1))
	for i := 0; i < n*n; i++ {
		if i > 0 {
			if i%n == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		label := "_"
		if b.cells[i] != 0 {
			label = strconv.Itoa(int(b.cells[i]))
		}
		sb.WriteString(strings.Repeat(" ", width-len(label)))
		sb.WriteString(label)
	}
	return sb.String()
}

// MarshalText encodes the board in compact form.
func (b Board) MarshalText() ([]byte, error) { return []byte(b.Compact()), nil }

// UnmarshalText decodes a compact board.
func (b *Board) UnmarshalText(text []byte) error {
	parsed, err := ParseBoard(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (b Board) inside(row, col int) bool {
	n := int(b.size)
	return row >= 0 && row < n && col >= 0 && col < n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
