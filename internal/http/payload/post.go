package payload

import (
	"fmt"
	"mime/multipart"

	"blogapi/internal/core"

	"github.com/jellydator/validation"
)

const FileField = "file"

// PostRequest carries the post fields. A nil field was not sent by the client.
type PostRequest struct {
	ExternalID *string `json:"id"`
	Title      *string `json:"title"`
	Summary    *string `json:"summary"`
	Content    *string `json:"content"`
	Image      *string `json:"image"`

	file     multipart.File
	filename string
}

func (p PostRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
	)
}

// BindForm fills the request from multipart form values and opens the
// attached file, if any. Close must be called once the file is consumed.
func (p *PostRequest) BindForm(form *multipart.Form) error {
	p.ExternalID = formValue(form, "id")
	p.Title = formValue(form, "title")
	p.Summary = formValue(form, "summary")
	p.Content = formValue(form, "content")
	if image := formValue(form, "image"); image != nil && *image != "" {
		p.Image = image
	}

	headers := form.File[FileField]
	if len(headers) == 0 {
		return nil
	}

	f, err := headers[0].Open()
	if err != nil {
		return fmt.Errorf("open form file: %w", err)
	}
	p.file = f
	p.filename = headers[0].Filename

	return nil
}

func (p *PostRequest) Close() error {
	if p.file == nil {
		return nil
	}
	return p.file.Close()
}

func (p PostRequest) ToCorePostMessage() core.PostMessage {
	msg := core.PostMessage{
		ExternalID: p.ExternalID,
		Title:      p.Title,
		Summary:    p.Summary,
		Content:    p.Content,
		Image:      p.Image,
	}
	if p.file != nil {
		msg.File = &core.Upload{
			Filename: p.filename,
			Content:  p.file,
		}
	}
	return msg
}

// UpdatePostRequest replaces only the fields it carries.
type UpdatePostRequest struct {
	ID string `json:"_id"`
	PostRequest
}

func (u UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.ID, validation.Required),
		validation.Field(&u.Title, validation.NilOrNotEmpty),
	)
}

func (u *UpdatePostRequest) BindForm(form *multipart.Form) error {
	if id := formValue(form, "_id"); id != nil {
		u.ID = *id
	}
	return u.PostRequest.BindForm(form)
}

func (u UpdatePostRequest) ToCoreUpdatePostMessage() core.UpdatePostMessage {
	return core.UpdatePostMessage{
		ID:          u.ID,
		PostMessage: u.ToCorePostMessage(),
	}
}

// formValue returns the first value of key, or nil when the form has no such field.
func formValue(form *multipart.Form, key string) *string {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
