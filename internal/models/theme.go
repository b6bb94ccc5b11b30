package models

// ThemeColors names the six semantic color roles the UI maps onto its styles.
type ThemeColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
}

// Theme is a named color palette. Exactly one theme is current at a time;
// applying a new one is a total overwrite, never a merge. Color values are
// passed through without validation.
type Theme struct {
	Name   string      `json:"name"`
	Colors ThemeColors `json:"colors"`
}

// DefaultTheme is the built-in palette used when no theme has been persisted.
func DefaultTheme() Theme {
	return Theme{
		Name: "Default Light",
		Colors: ThemeColors{
			Primary:    "#4F46E5",
			Secondary:  "#818CF8",
			Background: "#F9FAFB",
			Surface:    "#FFFFFF",
			Text:       "#111827",
			Accent:     "#10B981",
		},
	}
}
