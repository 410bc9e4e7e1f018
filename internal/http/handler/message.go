package handler

import "blogapi/internal/core"

const oopsErr = "Oops! Something went wrong. Please try again later."

const unexpectedErr = "unexpected error occurred"

type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Error   string `json:"error,omitempty"`   // error detail (if any)
}

type RegisterResponse struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}

// LoginResponse has a null token and user when the credentials are rejected.
type LoginResponse struct {
	Token *string          `json:"token"`
	User  *core.UserRecord `json:"user"`
	OK    bool             `json:"ok,omitempty"`
}

type IdentityResponse struct {
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
	Error  string `json:"error,omitempty"`
}

type UsernameResponse struct {
	Username *string `json:"username"`
	Error    string  `json:"error,omitempty"`
}

type PostedResponse struct {
	Posted bool            `json:"posted"`
	Post   core.PostRecord `json:"post"`
}

type PostListResponse struct {
	Status string            `json:"status"`
	Posts  []core.PostRecord `json:"posts"`
}

// PostResponse has a null post when it does not exist.
type PostResponse struct {
	Post *core.PostRecord `json:"post"`
}
