package handler

import (
	"context"
	"net/http"

	"blogapi/internal/core"
	"blogapi/internal/http/payload"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BlogService . BlogService
type BlogService interface {
	Register(ctx context.Context, msg core.AuthMessage) error
	Login(ctx context.Context, msg core.AuthMessage) (core.LoginResult, error)
	Lookup(ctx context.Context, userID string) (core.UserRecord, error)
	Identify(ctx context.Context, token string) (core.UserRecord, error)
	CreatePost(ctx context.Context, msg core.PostMessage) (core.PostRecord, error)
	GetPost(ctx context.Context, postID string) (core.PostRecord, error)
	ListPosts(ctx context.Context) ([]core.PostRecord, error)
	UpdatePost(ctx context.Context, msg core.UpdatePostMessage) (core.PostRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
	DecodePostPayload(r *http.Request, object payload.FormPayload) error
}
