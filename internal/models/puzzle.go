package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PuzzleType is the closed set of puzzle variants the academy knows how to play.
type PuzzleType string

const (
	TypeMultipleChoice  PuzzleType = "multiple-choice"
	TypeNumberSequence  PuzzleType = "number-sequence"
	TypePatternMatching PuzzleType = "pattern-matching"
	TypeWordPuzzle      PuzzleType = "word-puzzle"
	TypeLogicGrid       PuzzleType = "logic-grid"
	TypeMathProblem     PuzzleType = "math-problem"
	TypeMemoryGame      PuzzleType = "memory-game"
	TypeCrossword       PuzzleType = "crossword"
	TypeWordSearch      PuzzleType = "word-search"
	TypeRiddle          PuzzleType = "riddle"
	TypePatternSequence PuzzleType = "pattern-sequence"
	TypeMemoryCards     PuzzleType = "memory-cards"
	TypeImageScramble   PuzzleType = "image-scramble"
)

// Subject is the closed set of subject tags puzzles are filed under.
type Subject string

const (
	SubjectMathematics Subject = "mathematics"
	SubjectScience     Subject = "science"
	SubjectLanguage    Subject = "language"
	SubjectHistory     Subject = "history"
	SubjectGeography   Subject = "geography"
	SubjectLogic       Subject = "logic"
	SubjectMemory      Subject = "memory"
	SubjectCreativity  Subject = "creativity"
	SubjectCrossword   Subject = "crossword"
	SubjectImagePuzzle Subject = "image-puzzle"
)

// Sentinel answers used by the structural puzzle types. Their views reduce the
// working state to one of these before submitting.
const (
	AnswerComplete   = "complete"
	AnswerIncomplete = "incomplete"
)

// Answer is a puzzle answer that may be a string or a number on the wire.
// Equality is exact: a numeric 10 and the string "10" do not match.
type Answer struct {
	Value    string
	IsNumber bool
}

// StringAnswer builds a string-valued Answer.
func StringAnswer(s string) Answer {
	return Answer{Value: s}
}

// NumberAnswer builds a number-valued Answer from its JSON literal.
func NumberAnswer(literal string) Answer {
	return Answer{Value: literal, IsNumber: true}
}

// Equals reports exact value equality, kind included.
func (a Answer) Equals(other Answer) bool {
	return a.IsNumber == other.IsNumber && a.Value == other.Value
}

// IsZero reports whether the answer is unset.
func (a Answer) IsZero() bool {
	return a.Value == "" && !a.IsNumber
}

func (a Answer) String() string {
	return a.Value
}

// UnmarshalJSON accepts either a JSON string or a JSON number. Numbers keep
// their literal form so 10 and 10.0 stay distinct values.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = Answer{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Answer{Value: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("answer must be a string or number: %w", err)
	}
	*a = Answer{Value: n.String(), IsNumber: true}
	return nil
}

// MarshalJSON writes the answer back in its original JSON kind.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.IsNumber {
		return []byte(a.Value), nil
	}
	return json.Marshal(a.Value)
}

// CrosswordClue describes one answer run in a crossword grid.
type CrosswordClue struct {
	Number    int    `json:"number"`
	Clue      string `json:"clue"`
	Answer    string `json:"answer"`
	Direction string `json:"direction"` // "across" or "down"
	StartRow  int    `json:"start_row"`
	StartCol  int    `json:"start_col"`
}

// CrosswordData is the structural payload of a crossword puzzle.
type CrosswordData struct {
	Rows     int             `json:"rows"`
	Cols     int             `json:"cols"`
	Clues    []CrosswordClue `json:"clues"`
	WordBank []string        `json:"word_bank,omitempty"`
}

// WordSearchData is the structural payload of a word-search puzzle.
type WordSearchData struct {
	Grid  [][]string `json:"grid"`
	Words []string   `json:"words"`
}

// MemoryCard is one face-down card on a memory board.
type MemoryCard struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// MemoryCardsData is the structural payload of a memory-cards puzzle.
type MemoryCardsData struct {
	Cards []MemoryCard `json:"cards"`
}

// ScramblePiece is one tile of a scrambled image.
type ScramblePiece struct {
	ID              string `json:"id"`
	CorrectPosition int    `json:"correct_position"`
	CurrentPosition int    `json:"current_position"`
}

// ImageScrambleData is the structural payload of an image-scramble puzzle.
type ImageScrambleData struct {
	Pieces   []ScramblePiece `json:"pieces"`
	Rows     int             `json:"rows"`
	Cols     int             `json:"cols"`
	ImageURL string          `json:"image_url,omitempty"`
}

// PatternData is the structural payload of a pattern-sequence puzzle.
type PatternData struct {
	Sequence     []string `json:"sequence"`
	MissingIndex int      `json:"missing_index"`
	Options      []string `json:"options"`
}

// RiddleData is the structural payload of a riddle puzzle.
type RiddleData struct {
	Riddle            string   `json:"riddle"`
	AcceptableAnswers []string `json:"acceptable_answers,omitempty"`
}

// Puzzle is one immutable catalog record. The Type tag selects which of the
// structural payload pointers is set; plain question types carry none.
type Puzzle struct {
	ID          string     `json:"id"`
	Type        PuzzleType `json:"type"`
	Subject     Subject    `json:"subject"`
	Difficulty  int        `json:"difficulty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Question    string     `json:"question"`
	Options     []string   `json:"options,omitempty"`
	// CorrectAnswer is compared by exact value equality. Structural types
	// carry the "complete" sentinel instead of a literal answer.
	CorrectAnswer Answer   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
	Hints         []string `json:"hints"`
	TimeLimit     int      `json:"time_limit,omitempty"` // seconds, 0 means untimed
	Points        int      `json:"points"`
	Tags          []string `json:"tags,omitempty"`

	Crossword     *CrosswordData     `json:"crossword,omitempty"`
	WordSearch    *WordSearchData    `json:"word_search,omitempty"`
	MemoryCards   *MemoryCardsData   `json:"memory_cards,omitempty"`
	ImageScramble *ImageScrambleData `json:"image_scramble,omitempty"`
	Pattern       *PatternData       `json:"pattern,omitempty"`
	Riddle        *RiddleData        `json:"riddle,omitempty"`
}

// Timed reports whether the puzzle has a countdown limit.
func (p *Puzzle) Timed() bool {
	return p.TimeLimit > 0
}

// Validate checks structural integrity of a catalog record. Records failing
// validation are dropped at load time, never served.
func (p *Puzzle) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("missing id")
	}
	if p.Type == "" {
		return fmt.Errorf("missing type")
	}
	if p.Subject == "" {
		return fmt.Errorf("missing subject")
	}
	if p.Difficulty < 1 {
		return fmt.Errorf("difficulty %d out of range", p.Difficulty)
	}
	if p.Points < 0 {
		return fmt.Errorf("negative points")
	}

	switch p.Type {
	case TypeMultipleChoice, TypeNumberSequence, TypePatternMatching, TypeWordPuzzle,
		TypeLogicGrid, TypeMathProblem, TypeMemoryGame:
	case TypeCrossword:
		if p.Crossword == nil || len(p.Crossword.Clues) == 0 {
			return fmt.Errorf("crossword payload missing or empty")
		}
		for _, c := range p.Crossword.Clues {
			if c.Answer == "" {
				return fmt.Errorf("clue %d has empty answer", c.Number)
			}
			if c.Direction != "across" && c.Direction != "down" {
				return fmt.Errorf("clue %d has direction %q", c.Number, c.Direction)
			}
		}
	case TypeWordSearch:
		if p.WordSearch == nil || len(p.WordSearch.Grid) == 0 || len(p.WordSearch.Words) == 0 {
			return fmt.Errorf("word search payload missing or empty")
		}
		cols := len(p.WordSearch.Grid[0])
		for i, row := range p.WordSearch.Grid {
			if len(row) != cols {
				return fmt.Errorf("word search grid row %d is ragged", i)
			}
		}
	case TypeMemoryCards:
		if p.MemoryCards == nil || len(p.MemoryCards.Cards) == 0 {
			return fmt.Errorf("memory cards payload missing or empty")
		}
		if len(p.MemoryCards.Cards)%2 != 0 {
			return fmt.Errorf("memory cards count %d is odd", len(p.MemoryCards.Cards))
		}
	case TypeImageScramble:
		if p.ImageScramble == nil || len(p.ImageScramble.Pieces) == 0 {
			return fmt.Errorf("image scramble payload missing or empty")
		}
		n := len(p.ImageScramble.Pieces)
		seen := make(map[int]bool, n)
		for _, piece := range p.ImageScramble.Pieces {
			if piece.CurrentPosition < 0 || piece.CurrentPosition >= n || seen[piece.CurrentPosition] {
				return fmt.Errorf("piece positions are not a permutation of 0..%d", n-1)
			}
			seen[piece.CurrentPosition] = true
		}
	case TypePatternSequence:
		if p.Pattern == nil || len(p.Pattern.Sequence) == 0 {
			return fmt.Errorf("pattern payload missing or empty")
		}
	case TypeRiddle:
		if p.Riddle == nil || p.Riddle.Riddle == "" {
			return fmt.Errorf("riddle payload missing or empty")
		}
	default:
		return fmt.Errorf("unknown puzzle type %q", p.Type)
	}

	// Structural types submit a sentinel; everything else needs a literal answer.
	switch p.Type {
	case TypeCrossword, TypeWordSearch, TypeMemoryCards, TypeImageScramble:
	default:
		if p.CorrectAnswer.IsZero() {
			return fmt.Errorf("missing correct answer")
		}
	}
	return nil
}
