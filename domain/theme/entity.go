package theme

// Theme is a site color scheme.
type Theme struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	// UIName is the value of the html data-theme attribute.
	UIName  string   `json:"uiName"`
	Aliases []string `json:"aliases,omitempty"`
}

type ListThemesResponse struct {
	Themes  []Theme `json:"themes"`
	Default string  `json:"default"`
}

type ToggleRequest struct {
	Current string `json:"current"`
}

type ToggleResponse struct {
	Theme Theme `json:"theme"`
}
