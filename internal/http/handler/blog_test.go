package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"blogapi/internal/core"
	"blogapi/internal/http/handler"
	"blogapi/internal/http/handler/fake"
	"blogapi/internal/http/handler/middleware"
	"blogapi/internal/http/payload"
	"blogapi/internal/media"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
	return body
}

var _ = Describe("BlogHandler", func() {
	var (
		bh            *handler.BlogHandler
		fakeService   *fake.BlogService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
		image         string
		storedPost    core.PostRecord
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.BlogService)

		decoder := payload.NewDecoder(1 << 20)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = decoder.DecodeJSONPayload
		fakeValidator.DecodePostPayloadStub = decoder.DecodePostPayload

		image = "uploads/abc.png"
		storedPost = core.PostRecord{
			ID:         "stored-id",
			ExternalID: "p1",
			Title:      "Hi",
			Summary:    "S",
			Content:    "C",
			Image:      &image,
			CreatedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			UpdatedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		}

		w = httptest.NewRecorder()
		bh = handler.NewBlogHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			req = jsonRequest("POST", "/register", `{"username":"alice1","password":"secret1"}`)
		})

		JustBeforeEach(func() {
			bh.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("should report the user as authenticated", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(decodeBody(w)).To(Equal(map[string]any{"isAuthenticated": true}))

				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				_, msg := fakeService.RegisterArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "alice1", Password: "secret1"}))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.ErrUsernameTaken)
			})

			It("should still report success", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(decodeBody(w)).To(HaveKeyWithValue("isAuthenticated", true))
			})
		})

		When("the password is too short", func() {
			BeforeEach(func() {
				req = jsonRequest("POST", "/register", `{"username":"alice1","password":"123"}`)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			req = jsonRequest("POST", "/login", `{"username":"alice1","password":"secret1"}`)
			fakeService.LoginReturns(core.LoginResult{
				Token: "signed.token",
				User:  core.UserRecord{ID: "u1", Username: "alice1"},
			}, nil)
		})

		JustBeforeEach(func() {
			bh.HandleLogin(w, req)
		})

		When("the credentials match", func() {
			It("should return the token and user", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(decodeBody(w)).To(Equal(map[string]any{
					"token": "signed.token",
					"user":  map[string]any{"id": "u1", "username": "alice1"},
					"ok":    true,
				}))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.LoginResult{}, core.ErrIncorrectPassword)
			})

			It("should return a null token and user", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(decodeBody(w)).To(Equal(map[string]any{"token": nil, "user": nil}))
			})
		})

		When("the password is empty", func() {
			BeforeEach(func() {
				req = jsonRequest("POST", "/login", `{"username":"alice1","password":""}`)
				fakeService.LoginReturns(core.LoginResult{}, core.ErrIncorrectPassword)
			})

			It("should check it like any other password", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(decodeBody(w)).To(Equal(map[string]any{"token": nil, "user": nil}))

				_, msg := fakeService.LoginArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "alice1", Password: ""}))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.LoginResult{}, core.ErrUserNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(decodeBody(w)).To(Equal(map[string]any{"token": nil, "user": nil}))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.LoginResult{}, fakeErr)
			})

			It("should hide the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
			})
		})
	})

	Describe("HandleIdentify", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/", nil)
			req.Header.Set(middleware.AccessTokenHeader, "some.token")
			fakeService.IdentifyReturns(core.UserRecord{ID: "u1", Username: "alice1"}, nil)
		})

		JustBeforeEach(func() {
			bh.HandleIdentify(w, req)
		})

		When("the token is valid", func() {
			It("should return the user id", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(decodeBody(w)).To(Equal(map[string]any{"status": "ok", "id": "u1"}))
				_, token := fakeService.IdentifyArgsForCall(0)
				Expect(token).To(Equal("some.token"))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeService.IdentifyReturns(core.UserRecord{}, fmt.Errorf("%w: expired", core.ErrInvalidToken))
			})

			It("should return an error status", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(decodeBody(w)).To(Equal(map[string]any{"status": "error", "error": "invalid token"}))
			})
		})
	})

	Describe("HandleLookupUser", func() {
		BeforeEach(func() {
			req = jsonRequest("POST", "/user", `{"id":"u1"}`)
			fakeService.LookupReturns(core.UserRecord{ID: "u1", Username: "alice1"}, nil)
		})

		JustBeforeEach(func() {
			bh.HandleLookupUser(w, req)
		})

		It("should return the username", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(w)).To(Equal(map[string]any{"username": "alice1"}))
			_, id := fakeService.LookupArgsForCall(0)
			Expect(id).To(Equal("u1"))
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.LookupReturns(core.UserRecord{}, core.ErrUserNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(decodeBody(w)).To(Equal(map[string]any{"username": nil, "error": "user not found"}))
			})
		})
	})

	Describe("HandleCreatePost", func() {
		BeforeEach(func() {
			req = jsonRequest("POST", "/post", `{"id":"p1","title":"Hi","summary":"S","content":"C"}`)
			fakeService.CreatePostReturns(storedPost, nil)
		})

		JustBeforeEach(func() {
			bh.HandleCreatePost(w, req)
		})

		When("the post is sent as JSON", func() {
			It("should create the post", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				body := decodeBody(w)
				Expect(body).To(HaveKeyWithValue("posted", true))
				Expect(body["post"]).To(HaveKeyWithValue("_id", "stored-id"))
				Expect(body["post"]).To(HaveKeyWithValue("id", "p1"))
				Expect(body["post"]).To(HaveKeyWithValue("image", image))
				Expect(body["post"]).To(HaveKeyWithValue("createdAt", "2024-01-02T03:04:05Z"))

				_, msg := fakeService.CreatePostArgsForCall(0)
				Expect(msg.ExternalID).To(HaveValue(Equal("p1")))
				Expect(msg.Title).To(HaveValue(Equal("Hi")))
				Expect(msg.File).To(BeNil())
			})
		})

		When("the post is sent as a multipart form", func() {
			var received string

			BeforeEach(func() {
				body := &bytes.Buffer{}
				mw := multipart.NewWriter(body)
				Expect(mw.WriteField("title", "Hi")).To(Succeed())
				fw, err := mw.CreateFormFile(payload.FileField, "cat.png")
				Expect(err).NotTo(HaveOccurred())
				_, err = fw.Write([]byte("png"))
				Expect(err).NotTo(HaveOccurred())
				Expect(mw.Close()).To(Succeed())

				req = httptest.NewRequest("POST", "/post", body)
				req.Header.Set("Content-Type", mw.FormDataContentType())

				fakeService.CreatePostStub = func(ctx context.Context, msg core.PostMessage) (core.PostRecord, error) {
					Expect(msg.File).NotTo(BeNil())
					Expect(msg.File.Filename).To(Equal("cat.png"))
					data, err := io.ReadAll(msg.File.Content)
					Expect(err).NotTo(HaveOccurred())
					received = string(data)
					return storedPost, nil
				}
			})

			It("should pass the file to the service", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(received).To(Equal("png"))
			})
		})

		When("the title is missing", func() {
			BeforeEach(func() {
				req = jsonRequest("POST", "/post", `{"id":"p1"}`)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.CreatePostCallCount()).To(Equal(0))
			})
		})

		When("the upload has no filename", func() {
			BeforeEach(func() {
				fakeService.CreatePostReturns(core.PostRecord{}, fmt.Errorf("save media: %w", media.ErrEmptyFilename))
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("storing fails", func() {
			BeforeEach(func() {
				fakeService.CreatePostReturns(core.PostRecord{}, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(decodeBody(w)).To(HaveKeyWithValue("error", "unexpected error occurred"))
			})
		})
	})

	Describe("HandleListPosts", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/post", nil)
		})

		JustBeforeEach(func() {
			bh.HandleListPosts(w, req)
		})

		When("posts exist", func() {
			BeforeEach(func() {
				fakeService.ListPostsReturns([]core.PostRecord{storedPost}, nil)
			})

			It("should return every post", func() {
				body := decodeBody(w)
				Expect(body).To(HaveKeyWithValue("status", "ok"))
				Expect(body["posts"]).To(HaveLen(1))
			})
		})

		When("there are no posts", func() {
			BeforeEach(func() {
				fakeService.ListPostsReturns([]core.PostRecord{}, nil)
			})

			It("should return an empty list", func() {
				Expect(decodeBody(w)).To(Equal(map[string]any{"status": "ok", "posts": []any{}}))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.ListPostsReturns(nil, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetPost", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/post/stored-id", nil)
			req.SetPathValue("postId", "stored-id")
			fakeService.GetPostReturns(storedPost, nil)
		})

		JustBeforeEach(func() {
			bh.HandleGetPost(w, req)
		})

		It("should return the post", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(w)["post"]).To(HaveKeyWithValue("title", "Hi"))
			_, id := fakeService.GetPostArgsForCall(0)
			Expect(id).To(Equal("stored-id"))
		})

		When("the post does not exist", func() {
			BeforeEach(func() {
				fakeService.GetPostReturns(core.PostRecord{}, core.ErrPostNotFound)
			})

			It("should return a null post", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(decodeBody(w)).To(Equal(map[string]any{"post": nil}))
			})
		})
	})

	Describe("HandleEditPost", func() {
		BeforeEach(func() {
			req = jsonRequest("POST", "/edit", `{"id":"stored-id"}`)
			fakeService.GetPostReturns(storedPost, nil)
		})

		JustBeforeEach(func() {
			bh.HandleEditPost(w, req)
		})

		It("should return the post for editing", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(w)["post"]).To(HaveKeyWithValue("_id", "stored-id"))
		})

		When("the id is missing", func() {
			BeforeEach(func() {
				req = jsonRequest("POST", "/edit", `{}`)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.GetPostCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleUpdatePost", func() {
		BeforeEach(func() {
			req = jsonRequest("PUT", "/post", `{"_id":"stored-id","id":"p1","title":"New","summary":"S2","content":"C2"}`)
			updated := storedPost
			updated.Title = "New"
			fakeService.UpdatePostReturns(updated, nil)
		})

		JustBeforeEach(func() {
			bh.HandleUpdatePost(w, req)
		})

		It("should update the post", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			post := decodeBody(w)["post"]
			Expect(post).To(HaveKeyWithValue("title", "New"))
			Expect(post).To(HaveKeyWithValue("image", image))

			_, msg := fakeService.UpdatePostArgsForCall(0)
			Expect(msg.ID).To(Equal("stored-id"))
			Expect(msg.Title).To(HaveValue(Equal("New")))
			Expect(msg.Summary).To(HaveValue(Equal("S2")))
			Expect(msg.Content).To(HaveValue(Equal("C2")))
			Expect(msg.Image).To(BeNil())
			Expect(msg.File).To(BeNil())
		})

		When("only the title is sent", func() {
			BeforeEach(func() {
				req = jsonRequest("PUT", "/post", `{"_id":"stored-id","title":"New"}`)
			})

			It("should not pass the missing fields on", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				_, msg := fakeService.UpdatePostArgsForCall(0)
				Expect(msg.ID).To(Equal("stored-id"))
				Expect(msg.Title).To(HaveValue(Equal("New")))
				Expect(msg.ExternalID).To(BeNil())
				Expect(msg.Summary).To(BeNil())
				Expect(msg.Content).To(BeNil())
			})
		})

		When("the post does not exist", func() {
			BeforeEach(func() {
				fakeService.UpdatePostReturns(core.PostRecord{}, core.ErrPostNotFound)
			})

			It("should return a null post", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(decodeBody(w)).To(Equal(map[string]any{"post": nil}))
			})
		})

		When("the storage id is missing", func() {
			BeforeEach(func() {
				req = jsonRequest("PUT", "/post", `{"id":"p1","title":"New"}`)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UpdatePostCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleHealth", func() {
		It("should answer OK", func() {
			bh.HandleHealth(w, httptest.NewRequest("GET", "/health", nil))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("OK"))
		})
	})
})
