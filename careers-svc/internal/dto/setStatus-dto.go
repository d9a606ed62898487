package dto

type SetStatusRequest struct {
	Status string `json:"status" validate:"required" example:"shortlisted"`
}

type ToggleActiveResponse struct {
	IsActive bool `json:"is_active"`
}
