package request

// UpdateUserRequest represents an admin update user request
type UpdateUserRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email" binding:"omitempty,email"`
	Password string  `json:"password" binding:"omitempty,min=8"`
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

// UpdateSettingsRequest represents an update settings request
type UpdateSettingsRequest struct {
	Language           string `json:"language" binding:"required"`
	Timezone           string `json:"timezone" binding:"required"`
	Currency           string `json:"currency" binding:"required"`
	DateFormat         string `json:"date_format" binding:"required"`
	EmailNotifications bool   `json:"email_notifications"`
	InvoiceReminders   bool   `json:"invoice_reminders"`
	PaymentAlerts      bool   `json:"payment_alerts"`
	Theme              string `json:"theme" binding:"required"`
}
