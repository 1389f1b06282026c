// internal/domain/inquiry/dto.go
package inquiry

// CreateInquiryRequest is the contact-form payload. It is also validated
// against the embedded JSON Schema before binding.
type CreateInquiryRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Message   string `json:"message" binding:"required"`
	VehicleID string `json:"vehicle_id"`
}

// ListFilters for the CMS inquiry inbox
type ListFilters struct {
	UnreadOnly bool `form:"unread"`
	Limit      int  `form:"limit"`
	Offset     int  `form:"offset"`
}

// ListResponse is the CMS inquiry inbox payload.
type ListResponse struct {
	Inquiries []Inquiry `json:"inquiries"`
	Total     int       `json:"total"`
	Unread    int       `json:"unread"`
}
