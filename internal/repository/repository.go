package repository

import (
	"context"
	"errors"
	"fmt"

	"blogapi/internal/db"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already taken")
var ErrPostNotFound error = errors.New("post not found")

type BlogRepository struct {
	db Storage
}

func NewBlogRepository(db Storage) *BlogRepository {
	return &BlogRepository{
		db: db,
	}
}

func (r *BlogRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Post{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateUser inserts a new user. Uniqueness of the username is left to the
// unique index so concurrent registrations cannot both succeed.
func (r *BlogRepository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return User{}, ErrUsernameTaken
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *BlogRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return r.getUserBy(ctx, "username", username)
}

func (r *BlogRepository) GetUserByID(ctx context.Context, userID string) (User, error) {
	return r.getUserBy(ctx, "id", userID)
}

func (r *BlogRepository) getUserBy(ctx context.Context, column, value string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}

func (r *BlogRepository) CreatePost(ctx context.Context, post Post) (Post, error) {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}

	err := r.db.Insert(ctx, &post)
	if err != nil {
		return Post{}, fmt.Errorf("insert post: %w", err)
	}

	return post, nil
}

func (r *BlogRepository) GetPost(ctx context.Context, postID string) (Post, error) {
	var post Post

	err := r.db.GetOneBy(ctx, "id", postID, &post)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Post{}, ErrPostNotFound
		}
		return Post{}, fmt.Errorf("get post by id: %w", err)
	}

	return post, nil
}

func (r *BlogRepository) ListPosts(ctx context.Context) ([]Post, error) {
	posts := []Post{}

	err := r.db.GetAll(ctx, &posts, "created_at asc")
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

// UpdatePost writes the set fields of update in a single statement. Columns
// whose field is nil are left out, so the stored values survive concurrent
// edits that do not touch them.
func (r *BlogRepository) UpdatePost(ctx context.Context, postID string, update PostUpdate) (Post, error) {
	columns := map[string]any{}
	setColumn(columns, "external_id", update.ExternalID)
	setColumn(columns, "title", update.Title)
	setColumn(columns, "summary", update.Summary)
	setColumn(columns, "content", update.Content)
	setColumn(columns, "image", update.Image)

	if len(columns) == 0 {
		return r.GetPost(ctx, postID)
	}

	rows, err := r.db.UpdateColumns(ctx, &Post{}, postID, columns)
	if err != nil {
		return Post{}, fmt.Errorf("update post: %w", err)
	}
	if rows == 0 {
		return Post{}, ErrPostNotFound
	}

	return r.GetPost(ctx, postID)
}

func setColumn(columns map[string]any, name string, value *string) {
	if value != nil {
		columns[name] = *value
	}
}
