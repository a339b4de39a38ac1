package models

// Teacher is a member of the teaching staff.
type Teacher struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Contact    string `json:"contact,omitempty"`
	Gender     Gender `json:"gender"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
	ProfilePic []byte `json:"profile_pic,omitempty"`
}
