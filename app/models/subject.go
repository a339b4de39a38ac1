package models

// Subject is a taught subject with a unique name.
type Subject struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
