package validator

import (
	"encoding/json"
	"io"
	"net/http"

	val "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"hotelpos/shared/failure"
)

var validate = val.New(val.WithRequiredStructEnabled())

// Validate decodes the request body into data and validates it against its
// struct tags. Decoding and validation failures both surface as 400s.
func Validate[T any](body io.Reader, data *T) error {
	err := json.NewDecoder(body).Decode(data)
	if err != nil {
		log.Warn().Err(err).Msg("[Validate] failed decoding request body")
		return failure.BadRequestFromString("invalid request body")
	}

	return ValidateStruct(data)
}

func ValidateStruct(data any) error {
	err := validate.Struct(data)
	if err != nil {
		return failure.BadRequestFromString(message(err))
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)
	if err != nil {
		return failure.BadRequestFromString(message(err))
	}

	return nil
}

// ValidateFileSize rejects multipart uploads past maxBytes before any body
// is read into memory.
func ValidateFileSize(r *http.Request, maxBytes int64) error {
	if r.ContentLength > maxBytes {
		return failure.BadRequestFromString("uploaded file is too large")
	}

	return nil
}
