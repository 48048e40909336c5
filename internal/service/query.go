package service

import (
	"strings"

	"github.com/pageza/cookify/backend/internal/model"
)

// QueryOptions selects recipes for display. Empty fields don't filter.
type QueryOptions struct {
	// Title matches case-insensitively anywhere in the recipe title
	Title string
	// Difficulty must equal the recipe's difficulty exactly; "All" and ""
	// match everything
	Difficulty string
	// Category must equal the recipe's category exactly
	Category string
}

// Query returns the recipes whose title contains title and whose difficulty
// equals difficulty (unless it is "All"), in collection order
func Query(c model.Collection, title, difficulty string) model.Collection {
	return Filter(c, QueryOptions{Title: title, Difficulty: difficulty})
}

// Filter returns the recipes matching every option, in collection order.
// The result is never nil.
func Filter(c model.Collection, opts QueryOptions) model.Collection {
	needle := strings.ToLower(strings.TrimSpace(opts.Title))
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyAll
	}

	out := model.Collection{}
	for _, r := range c {
		if needle != "" && !strings.Contains(strings.ToLower(r.Title), needle) {
			continue
		}
		if difficulty != model.DifficultyAll && string(r.Difficulty) != difficulty {
			continue
		}
		if opts.Category != "" && r.Category != opts.Category {
			continue
		}
		out = append(out, r)
	}
	return out
}
