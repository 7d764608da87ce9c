package announcement

import (
	"github.com/clockport/clockport-backend-go/internal/pkg/validator"
)

type CreateAnnouncementRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAnnouncementRequest struct {
	ID    string `json:"-"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (r *UpdateAnnouncementRequest) Validate() error {
	req := CreateAnnouncementRequest{Title: r.Title, Body: r.Body}
	return req.Validate()
}

type AnnouncementResponse struct {
	ID         string `json:"id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name,omitempty"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	CreatedAt  string `json:"created_at"`
}

func ToResponse(a Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        a.ID,
		AuthorID:  a.AuthorID,
		Title:     a.Title,
		Body:      a.Body,
		CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
