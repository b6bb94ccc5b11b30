package models

// HabitDraft holds the in-progress new-habit form fields so an unsaved draft
// survives a restart. It is persisted under its own key, separate from the
// habit collection.
type HabitDraft struct {
	Title    string   `json:"title"`
	Goal     string   `json:"goal"`
	Category Category `json:"category"`
}

// Empty reports whether the draft has no user-entered content worth keeping.
func (d HabitDraft) Empty() bool {
	return d.Title == "" && d.Goal == ""
}
