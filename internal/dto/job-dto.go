package dto

type JobRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Company     string  `json:"company" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Contact     string  `json:"contact" validate:"required"`
	Salary      float64 `json:"salary" validate:"gte=0"`
}

type JobUpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Company     *string  `json:"company,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Contact     *string  `json:"contact,omitempty"`
	Salary      *float64 `json:"salary,omitempty"`
}

// CVUpload carries an applicant's CV file read out of the multipart form.
type CVUpload struct {
	Filename string
	Data     []byte
}
