package models

// Subject defines the subject model based on the 'subjects' table
type Subject struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"subject_name" db:"subject_name" example:"Math"`
}
