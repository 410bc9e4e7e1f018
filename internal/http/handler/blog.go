package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"blogapi/internal/core"
	"blogapi/internal/http/handler/middleware"
	"blogapi/internal/http/payload"
	"blogapi/internal/media"

	"go.uber.org/zap"
)

var (
	Identify   = "GET /{$}"
	Register   = "POST /register"
	Login      = "POST /login"
	LookupUser = "POST /user"
	CreatePost = "POST /post"
	ListPosts  = "GET /post"
	GetPost    = "GET /post/{postId}"
	EditPost   = "POST /edit"
	UpdatePost = "PUT /post"
	Health     = "GET /health"
	Uploads    = "GET /uploads/"
)

type BlogHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	blog             BlogService
}

func NewBlogHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, blogService BlogService) *BlogHandler {
	return &BlogHandler{
		logs:             logger,
		requestValidator: requestValidator,
		blog:             blogService,
	}
}

// HandleRegister always reports success once the payload is valid. A failed
// insert is only logged.
func (h *BlogHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.RegisterRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not register", err, Register, requestId)
		return
	}

	if err := h.blog.Register(r.Context(), payload.ToCoreAuthMessage()); err != nil {
		h.logs.Errorw("registration failed",
			"error", err,
			"username", payload.Username,
			"handler", Register,
			"request_id", requestId)
	}

	h.respond(w, RegisterResponse{IsAuthenticated: true}, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not log in", err, Login, requestId)
		return
	}

	result, err := h.blog.Login(r.Context(), payload.ToCoreAuthMessage())
	if err != nil {
		switch {
		case errors.Is(err, core.ErrUserNotFound):
			h.respond(w, LoginResponse{}, http.StatusNotFound, requestId)
		case errors.Is(err, core.ErrIncorrectPassword):
			h.respond(w, LoginResponse{}, http.StatusOK, requestId)
		default:
			h.unexpected(w, "Login failed", err, Login, requestId)
			return
		}
		h.logs.Infow("login rejected",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, LoginResponse{
		Token: &result.Token,
		User:  &result.User,
		OK:    true,
	}, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleIdentify(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	user, err := h.blog.Identify(r.Context(), r.Header.Get(middleware.AccessTokenHeader))
	if err != nil {
		h.logs.Infow("identity check failed",
			"error", err,
			"handler", Identify,
			"request_id", requestId)
		h.respond(w, IdentityResponse{Status: "error", Error: core.ErrInvalidToken.Error()}, http.StatusOK, requestId)
		return
	}

	h.respond(w, IdentityResponse{Status: "ok", ID: user.ID}, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleLookupUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.IDRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not look up user", err, LookupUser, requestId)
		return
	}

	user, err := h.blog.Lookup(r.Context(), payload.ID)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.respond(w, UsernameResponse{Error: err.Error()}, http.StatusNotFound, requestId)
			return
		}
		h.unexpected(w, "Could not look up user", err, LookupUser, requestId)
		return
	}

	h.respond(w, UsernameResponse{Username: &user.Username}, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.PostRequest
	err := h.requestValidator.DecodePostPayload(r, &payload)
	defer payload.Close()
	if err != nil {
		h.badRequest(w, "Could not create post", err, CreatePost, requestId)
		return
	}

	post, err := h.blog.CreatePost(r.Context(), payload.ToCorePostMessage())
	if err != nil {
		if errors.Is(err, media.ErrEmptyFilename) {
			h.badRequest(w, "Could not create post", err, CreatePost, requestId)
			return
		}
		h.unexpected(w, "Could not create post", err, CreatePost, requestId)
		return
	}

	h.logs.Infow("post created",
		"postId", post.ID,
		"handler", CreatePost,
		"request_id", requestId)

	h.respond(w, PostedResponse{Posted: true, Post: post}, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	posts, err := h.blog.ListPosts(r.Context())
	if err != nil {
		h.unexpected(w, "Could not list posts", err, ListPosts, requestId)
		return
	}

	h.respond(w, PostListResponse{Status: "ok", Posts: posts}, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	h.writePost(w, r, r.PathValue("postId"), GetPost, requestId)
}

func (h *BlogHandler) HandleEditPost(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.IDRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not load post", err, EditPost, requestId)
		return
	}

	h.writePost(w, r, payload.ID, EditPost, requestId)
}

func (h *BlogHandler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.UpdatePostRequest
	err := h.requestValidator.DecodePostPayload(r, &payload)
	defer payload.Close()
	if err != nil {
		h.badRequest(w, "Could not update post", err, UpdatePost, requestId)
		return
	}

	post, err := h.blog.UpdatePost(r.Context(), payload.ToCoreUpdatePostMessage())
	if err != nil {
		switch {
		case errors.Is(err, core.ErrPostNotFound):
			h.respond(w, PostResponse{}, http.StatusOK, requestId)
		case errors.Is(err, media.ErrEmptyFilename):
			h.badRequest(w, "Could not update post", err, UpdatePost, requestId)
		default:
			h.unexpected(w, "Could not update post", err, UpdatePost, requestId)
		}
		return
	}

	h.logs.Infow("post updated",
		"postId", post.ID,
		"handler", UpdatePost,
		"request_id", requestId)

	h.respond(w, PostResponse{Post: &post}, http.StatusOK, requestId)
}

func (h *BlogHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

func (h *BlogHandler) writePost(w http.ResponseWriter, r *http.Request, postID, route, requestId string) {
	post, err := h.blog.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, core.ErrPostNotFound) {
			h.respond(w, PostResponse{}, http.StatusOK, requestId)
			return
		}
		h.unexpected(w, "Could not load post", err, route, requestId)
		return
	}

	h.respond(w, PostResponse{Post: &post}, http.StatusOK, requestId)
}

func (h *BlogHandler) badRequest(w http.ResponseWriter, message string, err error, route, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *BlogHandler) unexpected(w http.ResponseWriter, message string, err error, route, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   unexpectedErr,
	}, http.StatusInternalServerError,
		requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *BlogHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
