package engine

import (
	"github.com/blockfall/blockfall/internal/model"
)

// Intersects reports whether placing the shape at the given offset
// conflicts with the background: any occupied shape cell that maps outside
// the board, or onto an already occupied background cell, is a conflict.
func Intersects(background, shape model.Grid, off model.Offset) bool {
	for i, row := range shape {
		for j, cell := range row {
			if cell == 0 {
				continue
			}
			targetRow := off.Y + i
			targetCol := off.X + j
			if !background.InBounds(targetRow, targetCol) {
				return true
			}
			if background[targetRow][targetCol] != 0 {
				return true
			}
		}
	}
	return false
}

// Merge returns a copy of the background with every occupied shape cell
// written at the given offset. The caller guarantees the placement does
// not intersect.
func Merge(background, shape model.Grid, off model.Offset) model.Grid {
	merged := background.Clone()
	for i, row := range shape {
		for j, cell := range row {
			if cell == 0 {
				continue
			}
			merged[off.Y+i][off.X+j] = cell
		}
	}
	return merged
}

// ClearFullRows removes every fully occupied row, shifts the remaining
// rows down and prepends empty rows at the top. The bonus is quadratic in
// the number of removed rows, so multi-line clears pay disproportionately.
func ClearFullRows(background model.Grid, scorePerLine int) model.ClearResult {
	rows := background.Rows()
	cols := background.Cols()

	kept := make([][]int, 0, rows)
	removed := 0
	for i := 0; i < rows; i++ {
		if background.RowFull(i) {
			removed++
			continue
		}
		kept = append(kept, background[i])
	}

	if removed == 0 {
		return model.ClearResult{Background: background.Clone()}
	}

	result := model.NewGrid(rows, cols)
	for i, row := range kept {
		copy(result[removed+i], row)
	}

	return model.ClearResult{
		Background:   result,
		LinesRemoved: removed,
		ScoreBonus:   scorePerLine * removed * removed,
	}
}
