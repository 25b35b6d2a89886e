package models

// Settings holds the user-tunable dashboard options.
type Settings struct {
	// UserName is the name used in the greeting.
	UserName string `json:"userName"`

	// Theme selects the visual theme ("auto", "light", "dark").
	Theme string `json:"theme"`
}
