package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case SessionList:
		o.printSessionList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// ActivePiece response type (matches API)
type ActivePiece struct {
	Kind  string  `json:"kind"`
	Shape [][]int `json:"shape"`
	X     int     `json:"x"`
	Y     int     `json:"y"`
}

// NextPiece response type
type NextPiece struct {
	Kind  string  `json:"kind"`
	Shape [][]int `json:"shape"`
}

// Event response type
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Session response type
type Session struct {
	ID          string      `json:"id"`
	Board       [][]int     `json:"board"`
	HiddenRows  int         `json:"hidden_rows"`
	ActivePiece ActivePiece `json:"active_piece"`
	NextPiece   NextPiece   `json:"next_piece"`
	Score       int         `json:"score"`
	GameOver    bool        `json:"game_over"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Events      []Event     `json:"events,omitempty"`
}

// SessionList response type
type SessionList struct {
	Sessions []string `json:"sessions"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s\n", s.ID)
	fmt.Printf("Score: %d\n", s.Score)
	fmt.Printf("Piece: %s  Next: %s\n", s.ActivePiece.Kind, s.NextPiece.Kind)
	if s.GameOver {
		fmt.Println("GAME OVER")
	}
	fmt.Println()
	fmt.Print(renderBoard(s))
}

// renderBoard draws the board with the active piece overlaid. The top
// HiddenRows rows are spawn buffer and are not drawn.
func renderBoard(s Session) string {
	if len(s.Board) == 0 {
		return ""
	}

	rows := len(s.Board)
	cols := len(s.Board[0])

	// Copy the board and overlay the falling piece
	cells := make([][]int, rows)
	for i, row := range s.Board {
		cells[i] = make([]int, cols)
		copy(cells[i], row)
	}
	for i, row := range s.ActivePiece.Shape {
		for j, v := range row {
			if v == 0 {
				continue
			}
			y := s.ActivePiece.Y + i
			x := s.ActivePiece.X + j
			if y >= 0 && y < rows && x >= 0 && x < cols {
				cells[y][x] = v
			}
		}
	}

	var b strings.Builder

	border := "+" + strings.Repeat("--", cols) + "+\n"
	b.WriteString(border)

	for row := s.HiddenRows; row < rows; row++ {
		b.WriteString("|")
		for col := 0; col < cols; col++ {
			if cells[row][col] == 0 {
				b.WriteString(" .")
			} else {
				fmt.Fprintf(&b, " %d", cells[row][col])
			}
		}
		b.WriteString("|\n")
	}

	b.WriteString(border)
	return b.String()
}

func (o *Output) printSessionList(l SessionList) {
	if len(l.Sessions) == 0 {
		fmt.Println("No sessions")
		return
	}
	fmt.Printf("Sessions (%d):\n", len(l.Sessions))
	for _, id := range l.Sessions {
		fmt.Printf("  - %s\n", id)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
