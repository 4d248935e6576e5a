package dto

type ClassResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	School string `json:"school,omitempty"`
	Grade  string `json:"grade,omitempty"`
	Year   string `json:"year,omitempty"`
}

type ClassCollectionResponse struct {
	Classes []ClassResponse `json:"classes"`
	Total   int             `json:"total"`
}

type CreateClassRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	School string `json:"school" validate:"max=100"`
	Grade  string `json:"grade" validate:"max=50"`
	Year   string `json:"year" validate:"max=20"`
}

func (r CreateClassRequest) Validate() error {
	return validate.Struct(r)
}

type RenameClassRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (r RenameClassRequest) Validate() error {
	return validate.Struct(r)
}

type CurrentClassResponse struct {
	ClassID string `json:"class_id"`
}

type SetCurrentClassRequest struct {
	ClassID string `json:"class_id" validate:"required"`
}

func (r SetCurrentClassRequest) Validate() error {
	return validate.Struct(r)
}
