package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/jellydator/validation"
)

// multipart parts above this size are spooled to disk
const maxFormMemory = 8 << 20

var ErrEmptyBody error = errors.New("empty request body")

// FormPayload is a request that can be bound from a multipart form.
type FormPayload interface {
	BindForm(form *multipart.Form) error
}

type Decoder struct {
	maxUploadBytes int64
}

func NewDecoder(maxUploadBytes int64) Decoder {
	return Decoder{
		maxUploadBytes: maxUploadBytes,
	}
}

// DecodeJSONPayload decodes the JSON body into object and validates it.
func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return validatePayload(object)
}

// DecodePostPayload accepts either a multipart form or a JSON body.
func (d Decoder) DecodePostPayload(r *http.Request, object FormPayload) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return d.DecodeJSONPayload(r, object)
	}

	if d.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(nil, r.Body, d.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return fmt.Errorf("parsing multipart form: %w", err)
	}

	if err := object.BindForm(r.MultipartForm); err != nil {
		return fmt.Errorf("binding multipart form: %w", err)
	}

	return validatePayload(object)
}

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
