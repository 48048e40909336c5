package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/pageza/cookify/backend/internal/model"
	"github.com/pageza/cookify/backend/internal/types"
)

// Mode is the state of the recipe modal
type Mode int

const (
	ModeClosed Mode = iota
	ModeAdd
	ModeEdit
	ModeView
)

var modeNames = map[Mode]string{
	ModeClosed: "closed",
	ModeAdd:    "add",
	ModeEdit:   "edit",
	ModeView:   "view",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode maps "add", "edit" and "view" to their modes
func ParseMode(s string) (Mode, bool) {
	for m, name := range modeNames {
		if m != ModeClosed && name == strings.ToLower(s) {
			return m, true
		}
	}
	return ModeClosed, false
}

// ErrModalOpen is returned when opening a modal that is already open
var ErrModalOpen = errors.New("modal is already open")

// Modal tracks which of the three form modes is active and what the form
// holds. Add only inserts; Edit updates and can delete; View is read-only
// and can only delete.
type Modal struct {
	mode Mode
	form types.RecipeForm
}

// Mode returns the current mode
func (m *Modal) Mode() Mode { return m.mode }

// Form returns the current form contents
func (m *Modal) Form() types.RecipeForm { return m.form }

// OpenAdd opens an empty form
func (m *Modal) OpenAdd() error {
	return m.open(ModeAdd, types.RecipeForm{})
}

// OpenEdit opens a form prefilled from r
func (m *Modal) OpenEdit(r model.Recipe) error {
	return m.open(ModeEdit, FormFromRecipe(r))
}

// OpenView opens a read-only form prefilled from r
func (m *Modal) OpenView(r model.Recipe) error {
	return m.open(ModeView, FormFromRecipe(r))
}

func (m *Modal) open(mode Mode, form types.RecipeForm) error {
	if m.mode != ModeClosed {
		return ErrModalOpen
	}
	m.mode = mode
	m.form = form
	return nil
}

// Close discards the form; it is valid in every mode
func (m *Modal) Close() {
	m.mode = ModeClosed
	m.form = types.RecipeForm{}
}

// Update replaces the form contents while the form is editable
func (m *Modal) Update(form types.RecipeForm) bool {
	if !m.Editable() {
		return false
	}
	form.ID = m.form.ID
	m.form = form
	return true
}

// Editable reports whether the fields accept input
func (m *Modal) Editable() bool { return m.mode == ModeAdd || m.mode == ModeEdit }

// CanSave reports whether submitting is possible
func (m *Modal) CanSave() bool { return m.mode == ModeAdd || m.mode == ModeEdit }

// CanDelete reports whether deleting is possible
func (m *Modal) CanDelete() bool { return m.mode == ModeEdit || m.mode == ModeView }

// Title returns the heading shown for the current mode
func (m *Modal) Title() string {
	switch m.mode {
	case ModeAdd:
		return "Add Recipe"
	case ModeEdit:
		return "Edit Recipe"
	case ModeView:
		return "View Recipe"
	}
	return ""
}

// View describes the modal for the presentation layer
func (m *Modal) View() types.FormView {
	return types.FormView{
		Mode:      m.mode.String(),
		Title:     m.Title(),
		Editable:  m.Editable(),
		CanSave:   m.CanSave(),
		CanDelete: m.CanDelete(),
		Form:      m.form,
	}
}

// FormFromRecipe renders a stored recipe back into form fields. Inline
// images only appear in the preview; the URL field holds real URLs.
func FormFromRecipe(r model.Recipe) types.RecipeForm {
	form := types.RecipeForm{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Ingredients: strings.Join(r.Ingredients, "\n"),
		Steps:       strings.Join(r.Steps, "\n"),
		Category:    r.Category,
		Difficulty:  string(r.Difficulty),
	}
	if r.PrepTime != nil {
		form.PrepTime = strconv.FormatFloat(*r.PrepTime, 'f', -1, 64)
	}
	if r.Image != nil {
		form.ImagePreview = *r.Image
		if !strings.HasPrefix(*r.Image, "data:") {
			form.ImageURL = *r.Image
		}
	}
	return form
}
