package models

import "time"

// Payment defines the payment model based on the 'payments' table
type Payment struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	StudentID int64     `json:"student_id" db:"student_id" example:"3"`
	Date      time.Time `json:"payment_date" db:"payment_date" example:"2024-03-01T00:00:00Z"`
	Amount    float64   `json:"payment_amount" db:"payment_amount" example:"500000"`

	// Relation (populated when needed)
	Student *Student `json:"student,omitempty"`
}
