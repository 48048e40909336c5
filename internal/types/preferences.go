package types

// ThemeRequest sets the stored theme preference
type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// ThemeResponse reports the stored theme preference
type ThemeResponse struct {
	Theme string `json:"theme"`
}
