package dto

// CreatePaymentRequest represents payment creation data
type CreatePaymentRequest struct {
	StudentID int64   `json:"student_id" binding:"required,min=1"`
	Date      string  `json:"payment_date" binding:"required,datetime=2006-01-02"`
	Amount    float64 `json:"payment_amount" binding:"required,gt=0"`
}

// UpdatePaymentRequest represents payment update data; nil fields are kept
type UpdatePaymentRequest struct {
	Date   *string  `json:"payment_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Amount *float64 `json:"payment_amount,omitempty" binding:"omitempty,gt=0"`
}
