package core

import (
	"context"
	"io"

	"blogapi/internal/repository"
	tokenIssuer "blogapi/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, userID string) (repository.User, error)
	CreatePost(ctx context.Context, post repository.Post) (repository.Post, error)
	GetPost(ctx context.Context, postID string) (repository.Post, error)
	ListPosts(ctx context.Context) ([]repository.Post, error)
	UpdatePost(ctx context.Context, postID string, update repository.PostUpdate) (repository.Post, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name PasswordHasher . PasswordHasher
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

//counterfeiter:generate -o fake -fake-name MediaStore . MediaStore
type MediaStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Remove(ctx context.Context, reference string) error
}
