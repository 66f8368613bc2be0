package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/mira/puzzleacademy/internal/logger"
	"github.com/mira/puzzleacademy/internal/models"
)

//go:embed data/puzzles.json
var dataFS embed.FS

// Catalog is the immutable set of all known puzzles, loaded once at startup.
// Callers must treat returned records as read-only; per-play mutable state
// belongs to the session and checker layers.
type Catalog struct {
	puzzles []models.Puzzle
	byID    map[string]int
}

// Load parses the embedded puzzle database.
func Load() (*Catalog, error) {
	data, err := dataFS.ReadFile("data/puzzles.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw JSON. Records that fail validation or carry
// a duplicate id are dropped with a warning; a malformed record must never
// reach selection or rendering.
func Parse(data []byte) (*Catalog, error) {
	log := logger.Default().WithPrefix("catalog")

	var records []models.Puzzle
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]int, len(records))}
	dropped := 0
	for i := range records {
		p := records[i]
		if err := p.Validate(); err != nil {
			log.Warn("dropping invalid puzzle record %q: %v", p.ID, err)
			dropped++
			continue
		}
		if _, ok := c.byID[p.ID]; ok {
			log.Warn("dropping duplicate puzzle id %q", p.ID)
			dropped++
			continue
		}
		c.byID[p.ID] = len(c.puzzles)
		c.puzzles = append(c.puzzles, p)
	}

	if len(c.puzzles) == 0 {
		return nil, fmt.Errorf("catalog is empty after validation (%d records dropped)", dropped)
	}
	log.Info("catalog loaded: %d puzzles (%d dropped)", len(c.puzzles), dropped)
	return c, nil
}

// All returns every puzzle in catalog order.
func (c *Catalog) All() []models.Puzzle {
	return c.puzzles
}

// Size returns the number of valid records.
func (c *Catalog) Size() int {
	return len(c.puzzles)
}

// Get looks a puzzle up by id.
func (c *Catalog) Get(id string) (*models.Puzzle, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.puzzles[i], true
}

// Filter returns puzzles matching the given criteria. Zero values match
// everything: empty subject, zero difficulty and empty type are wildcards.
func (c *Catalog) Filter(subject models.Subject, difficulty int, ptype models.PuzzleType) []models.Puzzle {
	var out []models.Puzzle
	for _, p := range c.puzzles {
		if subject != "" && p.Subject != subject {
			continue
		}
		if difficulty != 0 && p.Difficulty != difficulty {
			continue
		}
		if ptype != "" && p.Type != ptype {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Subjects returns the distinct subjects present, in catalog order.
func (c *Catalog) Subjects() []models.Subject {
	seen := make(map[models.Subject]bool)
	var out []models.Subject
	for _, p := range c.puzzles {
		if !seen[p.Subject] {
			seen[p.Subject] = true
			out = append(out, p.Subject)
		}
	}
	return out
}
