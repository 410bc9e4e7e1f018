package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogapi/internal/repository"
	tokenIssuer "blogapi/pkg/jwt"

	"go.uber.org/zap"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already taken")
var ErrPostNotFound error = errors.New("post not found")
var ErrInvalidToken error = errors.New("invalid token")

// Blog implements the account and post operations on top of the repository,
// the password hasher, the token issuer and the media store.
type Blog struct {
	logs      *zap.SugaredLogger
	repo      Repository
	hasher    PasswordHasher
	jwtIssuer JWTIssuer
	media     MediaStore
	tokenTTL  time.Duration
}

// NewBlog is a constructor function for the Blog type.
func NewBlog(logger *zap.SugaredLogger, repo Repository, hasher PasswordHasher, jwt JWTIssuer, media MediaStore, tokenTTL time.Duration) *Blog {
	return &Blog{
		logs:      logger,
		repo:      repo,
		hasher:    hasher,
		jwtIssuer: jwt,
		media:     media,
		tokenTTL:  tokenTTL,
	}
}

// Register hashes the password and stores a new user.
func (b *Blog) Register(ctx context.Context, msg AuthMessage) error {
	digest, err := b.hasher.Hash(msg.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := b.repo.CreateUser(ctx, msg.Username, digest)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	b.logs.Infow("user registered", "userId", user.ID, "username", user.Username)
	return nil
}

// Login checks the provided username and password against the database. If the credentials are valid, it issues a signed token for the user.
func (b *Blog) Login(ctx context.Context, msg AuthMessage) (LoginResult, error) {
	user, err := b.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, ErrUserNotFound
		}
		return LoginResult{}, fmt.Errorf("get user by username: %w", err)
	}

	if !b.hasher.Verify(msg.Password, user.PasswordHash) {
		return LoginResult{}, ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: b.tokenTTL,
	}
	token := b.jwtIssuer.Generate(tokenInfo)
	signed, err := b.jwtIssuer.Sign(token)
	if err != nil {
		return LoginResult{}, fmt.Errorf("signing token: %w", err)
	}

	return LoginResult{
		Token: signed,
		User:  UserRecord{ID: user.ID, Username: user.Username},
	}, nil
}

func (b *Blog) Lookup(ctx context.Context, userID string) (UserRecord, error) {
	user, err := b.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user by id: %w", err)
	}

	return UserRecord{ID: user.ID, Username: user.Username}, nil
}

// Identify resolves a token to the user it was issued for. Every failure is reported as ErrInvalidToken.
func (b *Blog) Identify(ctx context.Context, token string) (UserRecord, error) {
	claims, err := b.jwtIssuer.Validate(token)
	if err != nil {
		return UserRecord{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return UserRecord{}, fmt.Errorf("%w: missing username claim", ErrInvalidToken)
	}

	user, err := b.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return UserRecord{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return UserRecord{ID: user.ID, Username: user.Username}, nil
}

// CreatePost stores the attached file, if any, and inserts the post referencing it.
func (b *Blog) CreatePost(ctx context.Context, msg PostMessage) (PostRecord, error) {
	image, uploaded, err := b.saveUpload(ctx, msg)
	if err != nil {
		return PostRecord{}, err
	}

	post, err := b.repo.CreatePost(ctx, repository.Post{
		ExternalID: valueOf(msg.ExternalID),
		Title:      valueOf(msg.Title),
		Summary:    valueOf(msg.Summary),
		Content:    valueOf(msg.Content),
		Image:      image,
	})
	if err != nil {
		if uploaded {
			b.removeUpload(ctx, *image)
		}
		return PostRecord{}, fmt.Errorf("create post: %w", err)
	}

	b.logs.Infow("post created", "postId", post.ID, "image", post.Image != nil)
	return toPostRecord(post), nil
}

func (b *Blog) GetPost(ctx context.Context, postID string) (PostRecord, error) {
	post, err := b.repo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return PostRecord{}, ErrPostNotFound
		}
		return PostRecord{}, fmt.Errorf("get post: %w", err)
	}

	return toPostRecord(post), nil
}

func (b *Blog) ListPosts(ctx context.Context) ([]PostRecord, error) {
	posts, err := b.repo.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	records := make([]PostRecord, len(posts))
	for i, p := range posts {
		records[i] = toPostRecord(p)
	}
	return records, nil
}

// UpdatePost replaces the supplied post fields. Omitted fields, and the stored
// image unless a new file or image reference is given, keep their values.
func (b *Blog) UpdatePost(ctx context.Context, msg UpdatePostMessage) (PostRecord, error) {
	image, uploaded, err := b.saveUpload(ctx, msg.PostMessage)
	if err != nil {
		return PostRecord{}, err
	}

	post, err := b.repo.UpdatePost(ctx, msg.ID, repository.PostUpdate{
		ExternalID: msg.ExternalID,
		Title:      msg.Title,
		Summary:    msg.Summary,
		Content:    msg.Content,
		Image:      image,
	})
	if err != nil {
		if uploaded {
			b.removeUpload(ctx, *image)
		}
		if errors.Is(err, repository.ErrPostNotFound) {
			return PostRecord{}, ErrPostNotFound
		}
		return PostRecord{}, fmt.Errorf("update post: %w", err)
	}

	b.logs.Infow("post updated", "postId", post.ID, "newImage", image != nil)
	return toPostRecord(post), nil
}

// saveUpload returns the image reference for msg: the saved file's reference
// when a file is attached, otherwise msg.Image.
func (b *Blog) saveUpload(ctx context.Context, msg PostMessage) (*string, bool, error) {
	if msg.File == nil {
		return msg.Image, false, nil
	}

	ref, err := b.media.Save(ctx, msg.File.Filename, msg.File.Content)
	if err != nil {
		return nil, false, fmt.Errorf("save media: %w", err)
	}

	b.logs.Infow("media saved", "filename", msg.File.Filename, "reference", ref)
	return &ref, true, nil
}

func (b *Blog) removeUpload(ctx context.Context, ref string) {
	if err := b.media.Remove(ctx, ref); err != nil {
		b.logs.Errorw("failed to remove orphaned media", "reference", ref, "error", err)
	}
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toPostRecord(p repository.Post) PostRecord {
	return PostRecord{
		ID:         p.ID,
		ExternalID: p.ExternalID,
		Title:      p.Title,
		Summary:    p.Summary,
		Content:    p.Content,
		Image:      p.Image,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
