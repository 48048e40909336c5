package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Difficulty classifies how demanding a recipe is
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// DifficultyAll is the filter sentinel that matches every difficulty
const DifficultyAll = "All"

// Difficulties lists the valid values in display order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is one of the three known difficulties
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// TimestampLayout matches the ISO-8601 strings written by browsers (toISOString)
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp formats t in the layout used for createdAt and updatedAt
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ErrMissingID is returned when a stored record has no usable id
var ErrMissingID = errors.New("recipe has no id")

// Recipe is the only entity of the catalog
type Recipe struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Ingredients []string   `json:"ingredients"`
	Steps       []string   `json:"steps"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	PrepTime    *float64   `json:"prepTime"`
	Image       *string    `json:"image"`
	CreatedAt   string     `json:"createdAt,omitempty"`
	UpdatedAt   string     `json:"updatedAt,omitempty"`

	// Extra holds keys this version does not know about. They are written
	// back unchanged so older or newer clients don't lose data.
	Extra map[string]json.RawMessage `json:"-"`
}

// recipeFields has Recipe's layout without its JSON methods
type recipeFields Recipe

var knownKeys = []string{
	"id", "title", "description", "ingredients", "steps", "category",
	"difficulty", "prepTime", "image", "createdAt", "updatedAt",
}

// UnmarshalJSON decodes a stored record strictly: the value must be an
// object with an integer id and every known key must carry its declared
// type. Missing optional fields are filled with their defaults.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode recipe: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("decode recipe: expected object, got null")
	}
	if id, ok := raw["id"]; !ok || bytes.Equal(bytes.TrimSpace(id), []byte("null")) {
		return ErrMissingID
	}

	var fields recipeFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode recipe: %w", err)
	}
	if fields.Ingredients == nil {
		fields.Ingredients = []string{}
	}
	if fields.Steps == nil {
		fields.Steps = []string{}
	}

	for _, k := range knownKeys {
		delete(raw, k)
	}
	fields.Extra = nil
	if len(raw) > 0 {
		fields.Extra = raw
	}

	*r = Recipe(fields)
	return nil
}

// MarshalJSON writes the known fields followed by any preserved extra keys
func (r Recipe) MarshalJSON() ([]byte, error) {
	fields := recipeFields(r)
	if fields.Ingredients == nil {
		fields.Ingredients = []string{}
	}
	if fields.Steps == nil {
		fields.Steps = []string{}
	}
	data, err := json.Marshal(fields)
	if err != nil || len(r.Extra) == 0 {
		return data, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range r.Extra {
		if _, known := merged[k]; !known {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// Overlay returns base with every field the update specifies laid over it.
// The editor always specifies the form fields, so what survives from base
// is createdAt (when the update leaves it empty) and any extra keys the
// update doesn't carry.
func Overlay(base, update Recipe) Recipe {
	out := update
	if out.CreatedAt == "" {
		out.CreatedAt = base.CreatedAt
	}
	if len(base.Extra) > 0 {
		extra := make(map[string]json.RawMessage, len(base.Extra)+len(update.Extra))
		for k, v := range base.Extra {
			extra[k] = v
		}
		for k, v := range update.Extra {
			extra[k] = v
		}
		out.Extra = extra
	}
	return out
}

// Collection is the full ordered list of recipes, newest first
type Collection []Recipe

// Index returns the position of the recipe with the given id, or -1
func (c Collection) Index(id int64) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the recipe with the given id
func (c Collection) Find(id int64) (Recipe, bool) {
	if i := c.Index(id); i >= 0 {
		return c[i], true
	}
	return Recipe{}, false
}

// Contains reports whether a recipe with the given id is present
func (c Collection) Contains(id int64) bool {
	return c.Index(id) >= 0
}
