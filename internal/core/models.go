package core

import (
	"io"
	"time"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type LoginResult struct {
	Token string
	User  UserRecord
}

// Upload is a file attached to a post request.
type Upload struct {
	Filename string
	Content  io.Reader
}

// PostMessage holds the post fields supplied by the client. On update a nil
// field keeps the stored value.
type PostMessage struct {
	ExternalID *string
	Title      *string
	Summary    *string
	Content    *string
	Image      *string
	File       *Upload
}

type UpdatePostMessage struct {
	ID string
	PostMessage
}

type PostRecord struct {
	ID         string    `json:"_id"`
	ExternalID string    `json:"id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Content    string    `json:"content"`
	Image      *string   `json:"image"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
