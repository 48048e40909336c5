package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/pageza/cookify/backend/internal/model"
	"github.com/pageza/cookify/backend/internal/types"
)

// Validation messages, in the order they are reported
const (
	MsgTitleRequired    = "Title required"
	MsgIngredientNeeded = "At least one ingredient"
	MsgStepNeeded       = "At least one step"
	MsgSelectDifficulty = "Select difficulty"
	MsgPrepTimeInvalid  = "Prep time must be a positive number"
)

// DeletePrompt is the question put to the Confirmer before a delete
const DeletePrompt = "Delete this recipe?"

// ErrNotFound is returned when no recipe has the requested id
var ErrNotFound = errors.New("recipe not found")

// ValidationError lists every rule a submitted form broke
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ". ")
}

// Confirmer answers a yes/no question before a destructive action
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(prompt string) bool

// Confirm calls f
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Always is a Confirmer with a fixed answer
type Always bool

// Confirm returns the fixed answer
func (a Always) Confirm(string) bool { return bool(a) }

// SplitLines splits multi-line text into trimmed, non-blank lines
func SplitLines(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// parsePrepTime returns nil for blank input
func parsePrepTime(raw string) (*float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil, false
	}
	return &v, true
}

// Validate checks a submitted form and returns every violated rule, or nil
func Validate(form types.RecipeForm) []string {
	var errs []string
	if strings.TrimSpace(form.Title) == "" {
		errs = append(errs, MsgTitleRequired)
	}
	if len(SplitLines(form.Ingredients)) == 0 {
		errs = append(errs, MsgIngredientNeeded)
	}
	if len(SplitLines(form.Steps)) == 0 {
		errs = append(errs, MsgStepNeeded)
	}
	if !model.Difficulty(form.Difficulty).Valid() {
		errs = append(errs, MsgSelectDifficulty)
	}
	if _, ok := parsePrepTime(form.PrepTime); !ok {
		errs = append(errs, MsgPrepTimeInvalid)
	}
	return errs
}

// Normalize builds the record a valid form describes. createdAt is left
// empty; Upsert fills it on insert and keeps the old one on update.
func Normalize(form types.RecipeForm, id int64, updatedAt string) model.Recipe {
	prep, _ := parsePrepTime(form.PrepTime)

	var image *string
	if preview := strings.TrimSpace(form.ImagePreview); preview != "" {
		image = &preview
	} else if url := strings.TrimSpace(form.ImageURL); url != "" {
		image = &url
	}

	return model.Recipe{
		ID:          id,
		Title:       strings.TrimSpace(form.Title),
		Description: strings.TrimSpace(form.Description),
		Ingredients: SplitLines(form.Ingredients),
		Steps:       SplitLines(form.Steps),
		Category:    strings.TrimSpace(form.Category),
		Difficulty:  model.Difficulty(form.Difficulty),
		PrepTime:    prep,
		Image:       image,
		UpdatedAt:   updatedAt,
	}
}

// Upsert overlays r onto the recipe with the same id, keeping its position,
// or prepends r when no such recipe exists. The input is not modified.
func Upsert(c model.Collection, r model.Recipe) model.Collection {
	if i := c.Index(r.ID); i >= 0 {
		out := make(model.Collection, len(c))
		copy(out, c)
		out[i] = model.Overlay(c[i], r)
		return out
	}
	if r.CreatedAt == "" {
		r.CreatedAt = r.UpdatedAt
	}
	out := make(model.Collection, 0, len(c)+1)
	out = append(out, r)
	return append(out, c...)
}

// DeleteRecipe returns c without the recipe with the given id. A missing id
// leaves the contents unchanged.
func DeleteRecipe(c model.Collection, id int64) model.Collection {
	out := make(model.Collection, 0, len(c))
	for _, r := range c {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

// Editor validates forms and writes the results through the store.
// Mutations are serialized so a load-modify-save cycle never interleaves
// with another.
type Editor struct {
	mu    sync.Mutex
	store *RecipeStore
	clock Clock
	ids   IDAllocator
}

// NewEditor creates an editor writing through store
func NewEditor(store *RecipeStore, clock Clock, ids IDAllocator) *Editor {
	return &Editor{store: store, clock: clock, ids: ids}
}

// Save validates form and upserts the recipe it describes. form.ID selects
// the record to update; zero inserts a new one. A *ValidationError means
// nothing was written.
func (e *Editor) Save(ctx context.Context, form types.RecipeForm) (model.Recipe, error) {
	if errs := Validate(form); len(errs) > 0 {
		return model.Recipe{}, &ValidationError{Messages: errs}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.store.Load(ctx)
	if err != nil {
		return model.Recipe{}, err
	}

	id := form.ID
	if id != 0 {
		if !c.Contains(id) {
			return model.Recipe{}, ErrNotFound
		}
	} else {
		id = e.mintID(c)
	}

	c = Upsert(c, Normalize(form, id, model.Timestamp(e.clock.Now())))
	if err := e.store.Save(ctx, c); err != nil {
		return model.Recipe{}, err
	}

	saved, _ := c.Find(id)
	return saved, nil
}

// Delete removes the recipe with the given id once confirm agrees. It
// reports false, with nothing written, when the confirmation is declined.
// A missing id is not an error.
func (e *Editor) Delete(ctx context.Context, id int64, confirm Confirmer) (bool, error) {
	if confirm == nil || !confirm.Confirm(DeletePrompt) {
		return false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.store.Load(ctx)
	if err != nil {
		return false, err
	}
	if err := e.store.Save(ctx, DeleteRecipe(c, id)); err != nil {
		return false, err
	}
	return true, nil
}

// mintID skips ids already taken by stored recipes
func (e *Editor) mintID(c model.Collection) int64 {
	for {
		id := e.ids.Next()
		if !c.Contains(id) {
			return id
		}
	}
}
