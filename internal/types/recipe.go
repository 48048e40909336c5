package types

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/pageza/cookify/backend/internal/model"
)

var errPrepTimeType = errors.New("prepTime must be a string or a number")

// RecipeForm carries the raw fields of the recipe form as the user typed
// them. Ingredients and Steps are multi-line text, one entry per line.
type RecipeForm struct {
	ID           int64  `json:"id,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	Steps        string `json:"steps"`
	Category     string `json:"category"`
	Difficulty   string `json:"difficulty"`
	PrepTime     string `json:"prepTime"`
	ImageURL     string `json:"imageUrl"`
	ImagePreview string `json:"imagePreview"`
}

// UnmarshalJSON also accepts prepTime as a JSON number, keeping its literal
// text so validation sees what the client sent
func (f *RecipeForm) UnmarshalJSON(data []byte) error {
	type plain RecipeForm
	aux := struct {
		*plain
		PrepTime json.RawMessage `json:"prepTime"`
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.PrepTime)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		f.PrepTime = ""
	case raw[0] == '"':
		return json.Unmarshal(raw, &f.PrepTime)
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return errPrepTimeType
		}
		f.PrepTime = n.String()
	}
	return nil
}

// RecipeListResponse is returned by the list endpoint
type RecipeListResponse struct {
	Recipes model.Collection `json:"recipes"`
	Message string           `json:"message,omitempty"`
}

// FormView describes the recipe modal in one of its modes
type FormView struct {
	Mode      string     `json:"mode"`
	Title     string     `json:"title"`
	Editable  bool       `json:"editable"`
	CanSave   bool       `json:"can_save"`
	CanDelete bool       `json:"can_delete"`
	Form      RecipeForm `json:"form"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

// DeleteResponse reports the outcome of a delete
type DeleteResponse struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// ImageResponse carries an encoded or uploaded image reference
type ImageResponse struct {
	Image string `json:"image"`
}
