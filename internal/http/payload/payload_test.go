package payload_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"blogapi/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func multipartRequest(method, target string, fields map[string]string, filename, content string) *http.Request {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		Expect(mw.WriteField(k, v)).To(Succeed())
	}
	if filename != "" {
		fw, err := mw.CreateFormFile(payload.FileField, filename)
		Expect(err).NotTo(HaveOccurred())
		_, err = fw.Write([]byte(content))
		Expect(err).NotTo(HaveOccurred())
	}
	Expect(mw.Close()).To(Succeed())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func ptr(s string) *string {
	return &s
}

var _ = Describe("Requests", func() {
	DescribeTable("RegisterRequest.Validate",
		func(req payload.RegisterRequest, valid bool) {
			if valid {
				Expect(req.Validate()).To(Succeed())
			} else {
				Expect(req.Validate()).NotTo(Succeed())
			}
		},
		Entry("valid", payload.RegisterRequest{Username: "alice1", Password: "secret1"}, true),
		Entry("short username", payload.RegisterRequest{Username: "bob", Password: "secret1"}, false),
		Entry("short password", payload.RegisterRequest{Username: "alice1", Password: "12345"}, false),
		Entry("password too long", payload.RegisterRequest{Username: "alice1", Password: strings.Repeat("a", 73)}, false),
		Entry("missing fields", payload.RegisterRequest{}, false),
	)

	It("should require a login username but accept any password", func() {
		Expect(payload.LoginRequest{Password: "x"}.Validate()).NotTo(Succeed())
		Expect(payload.LoginRequest{Username: "alice1", Password: "x"}.Validate()).To(Succeed())
		Expect(payload.LoginRequest{Username: "alice1"}.Validate()).To(Succeed())
	})

	It("should require an update target", func() {
		req := payload.UpdatePostRequest{PostRequest: payload.PostRequest{Title: ptr("Hi")}}
		Expect(req.Validate()).NotTo(Succeed())

		req.ID = "stored-id"
		Expect(req.Validate()).To(Succeed())

		req.Title = ptr("")
		Expect(req.Validate()).NotTo(Succeed())

		req.Title = nil
		Expect(req.Validate()).To(Succeed())
	})

	It("should require a title for new posts", func() {
		Expect(payload.PostRequest{}.Validate()).NotTo(Succeed())
		Expect(payload.PostRequest{Title: ptr("")}.Validate()).NotTo(Succeed())
		Expect(payload.PostRequest{Title: ptr("Hi")}.Validate()).To(Succeed())
	})
})

var _ = Describe("Decoder", func() {
	var decoder payload.Decoder

	BeforeEach(func() {
		decoder = payload.NewDecoder(1 << 20)
	})

	Describe("DecodeJSONPayload", func() {
		It("should decode and validate", func() {
			req := httptest.NewRequest("POST", "/register", strings.NewReader(`{"username":"alice1","password":"secret1"}`))

			var p payload.RegisterRequest
			Expect(decoder.DecodeJSONPayload(req, &p)).To(Succeed())
			Expect(p.ToCoreAuthMessage().Username).To(Equal("alice1"))
		})

		It("should reject unknown fields", func() {
			req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"username":"alice1","password":"x","admin":true}`))

			var p payload.LoginRequest
			Expect(decoder.DecodeJSONPayload(req, &p)).To(MatchError(ContainSubstring("decoding json payload")))
		})

		It("should reject invalid payloads", func() {
			req := httptest.NewRequest("POST", "/register", strings.NewReader(`{"username":"al","password":"secret1"}`))

			var p payload.RegisterRequest
			Expect(decoder.DecodeJSONPayload(req, &p)).To(MatchError(ContainSubstring("validating payload")))
		})

		It("should reject an empty body", func() {
			req := httptest.NewRequest("POST", "/user", nil)

			var p payload.IDRequest
			Expect(decoder.DecodeJSONPayload(req, &p)).To(MatchError(payload.ErrEmptyBody))
		})
	})

	Describe("DecodePostPayload", func() {
		It("should decode a JSON post", func() {
			req := httptest.NewRequest("POST", "/post", strings.NewReader(`{"id":"p1","title":"Hi","summary":"S","content":"C"}`))
			req.Header.Set("Content-Type", "application/json")

			var p payload.PostRequest
			Expect(decoder.DecodePostPayload(req, &p)).To(Succeed())

			msg := p.ToCorePostMessage()
			Expect(msg.ExternalID).To(HaveValue(Equal("p1")))
			Expect(msg.Title).To(HaveValue(Equal("Hi")))
			Expect(msg.Image).To(BeNil())
			Expect(msg.File).To(BeNil())
		})

		It("should decode a multipart post with a file", func() {
			req := multipartRequest("POST", "/post", map[string]string{
				"id": "p1", "title": "Hi", "summary": "S", "content": "C",
			}, "cat.png", "png bytes")

			var p payload.PostRequest
			Expect(decoder.DecodePostPayload(req, &p)).To(Succeed())
			DeferCleanup(p.Close)

			msg := p.ToCorePostMessage()
			Expect(msg.Summary).To(HaveValue(Equal("S")))
			Expect(msg.File).NotTo(BeNil())
			Expect(msg.File.Filename).To(Equal("cat.png"))

			data, err := io.ReadAll(msg.File.Content)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("png bytes"))
		})

		It("should decode a multipart update without a file", func() {
			req := multipartRequest("PUT", "/post", map[string]string{
				"_id": "stored-id", "id": "p1", "title": "New",
			}, "", "")

			var p payload.UpdatePostRequest
			Expect(decoder.DecodePostPayload(req, &p)).To(Succeed())

			msg := p.ToCoreUpdatePostMessage()
			Expect(msg.ID).To(Equal("stored-id"))
			Expect(msg.ExternalID).To(HaveValue(Equal("p1")))
			Expect(msg.Title).To(HaveValue(Equal("New")))
			Expect(msg.Summary).To(BeNil())
			Expect(msg.Content).To(BeNil())
			Expect(msg.File).To(BeNil())
			Expect(msg.Image).To(BeNil())
		})

		It("should keep an empty multipart field as a value", func() {
			req := multipartRequest("PUT", "/post", map[string]string{
				"_id": "stored-id", "summary": "",
			}, "", "")

			var p payload.UpdatePostRequest
			Expect(decoder.DecodePostPayload(req, &p)).To(Succeed())
			Expect(p.Summary).To(HaveValue(BeEmpty()))
			Expect(p.Title).To(BeNil())
		})

		It("should leave fields missing from a JSON update unset", func() {
			req := httptest.NewRequest("PUT", "/post", strings.NewReader(`{"_id":"stored-id","title":"New"}`))
			req.Header.Set("Content-Type", "application/json")

			var p payload.UpdatePostRequest
			Expect(decoder.DecodePostPayload(req, &p)).To(Succeed())

			msg := p.ToCoreUpdatePostMessage()
			Expect(msg.Title).To(HaveValue(Equal("New")))
			Expect(msg.ExternalID).To(BeNil())
			Expect(msg.Summary).To(BeNil())
			Expect(msg.Content).To(BeNil())
		})

		It("should decode a JSON update", func() {
			req := httptest.NewRequest("PUT", "/post", strings.NewReader(`{"_id":"stored-id","id":"p1","title":"New","image":"uploads/a.png"}`))
			req.Header.Set("Content-Type", "application/json")

			var p payload.UpdatePostRequest
			Expect(decoder.DecodePostPayload(req, &p)).To(Succeed())
			Expect(p.ID).To(Equal("stored-id"))
			Expect(p.Image).To(HaveValue(Equal("uploads/a.png")))
		})

		It("should reject uploads over the size limit", func() {
			decoder = payload.NewDecoder(64)
			req := multipartRequest("POST", "/post", map[string]string{"title": "Hi"}, "big.bin", strings.Repeat("x", 1024))

			var p payload.PostRequest
			Expect(decoder.DecodePostPayload(req, &p)).To(MatchError(ContainSubstring("parsing multipart form")))
		})

		It("should validate multipart posts", func() {
			req := multipartRequest("POST", "/post", map[string]string{"summary": "S"}, "", "")

			var p payload.PostRequest
			Expect(decoder.DecodePostPayload(req, &p)).To(MatchError(ContainSubstring("validating payload")))
		})
	})
})
