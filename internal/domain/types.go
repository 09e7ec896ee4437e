package domain

// Cell is one square of the board. Notes is only meaningful while
// Value is zero. Solution carries the unique correct digit and is
// never shown to the player.
type Cell struct {
	Value    uint8    `json:"value,omitempty"`
	Notes    DigitSet `json:"notes,omitempty"`
	Given    bool     `json:"given,omitempty"`
	Solution uint8    `json:"solution,omitempty"`
}

// Board is a fixed 9x9 grid of cells.
type Board struct {
	Cells [9][9]Cell `json:"cells"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Box returns the 3x3 box index (0..8) containing the cell.
func (c CellCoord) Box() int { return (c.Row/3)*3 + c.Col/3 }

// Sees reports whether the other cell shares a row, column, or box.
// A cell does not see itself.
func (c CellCoord) Sees(o CellCoord) bool {
	if c == o {
		return false
	}
	return c.Row == o.Row || c.Col == o.Col || c.Box() == o.Box()
}

// Clone returns a deep copy; Board is a value type under the hood, so
// this is a plain copy.
func (b *Board) Clone() *Board {
	dup := *b
	return &dup
}

// Values extracts the plain numeric grid (0 = empty).
func (b *Board) Values() [9][9]uint8 {
	var out [9][9]uint8
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			out[r][c] = b.Cells[r][c].Value
		}
	}
	return out
}

// FilledCount reports how many cells hold a value.
func (b *Board) FilledCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Cells[r][c].Value != 0 {
				n++
			}
		}
	}
	return n
}

// Solved reports whether every cell holds a value.
func (b *Board) Solved() bool { return b.FilledCount() == 81 }

// Placement is a single digit placed into a cell.
type Placement struct {
	Cell  CellCoord `json:"cell"`
	Digit uint8     `json:"digit"`
}

// Elimination strikes one candidate from one cell's notes.
type Elimination struct {
	Cell  CellCoord `json:"cell"`
	Digit uint8     `json:"digit"`
}

// TechniqueResult is the outcome of a technique detector. Exactly one
// of Placement or a non-empty Eliminations list is meaningful.
// Primary cells justify the deduction; Secondary cells are extra
// context for display.
type TechniqueResult struct {
	Technique    Technique     `json:"technique"`
	Primary      []CellCoord   `json:"primary,omitempty"`
	Secondary    []CellCoord   `json:"secondary,omitempty"`
	Eliminations []Elimination `json:"eliminations,omitempty"`
	Placement    *Placement    `json:"placement,omitempty"`
}

// Hint describes a suggested next step for the UI.
type Hint struct {
	Message string          `json:"message,omitempty"`
	Result  TechniqueResult `json:"result"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
