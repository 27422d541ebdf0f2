package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/o-magnata69/back-end-api/internal/domain"
)

// maxBodyBytes bounds the request bodies accepted by DecodePayload.
const maxBodyBytes = 1 << 20

// Global validator instance for reuse. Field errors carry json tag names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodePayload decodes the request body as a single JSON object.
// An empty body decodes to an empty payload. Anything other than one object
// (array, scalar, malformed JSON, trailing data) yields domain.ErrInvalidPayload.
func DecodePayload(w http.ResponseWriter, r *http.Request) (domain.Payload, error) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(body)
	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Payload{}, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", domain.ErrInvalidPayload)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: body must be a JSON object", domain.ErrInvalidPayload)
	}
	return domain.Payload(obj), nil
}

// ValidateRequired checks the required tags of v and reports the failures as a
// domain.MissingFieldsError listing all of required and the fields that were
// missing, in the order required gives them.
func ValidateRequired(v interface{}, required []string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.Field()] = true
	}

	missing := make([]string, 0, len(failed))
	for _, name := range required {
		if failed[name] {
			missing = append(missing, name)
		}
	}
	return domain.NewMissingFieldsError(required, missing)
}
