package dto

type RespondRequest struct {
	Response string `json:"response" validate:"required"`
}
