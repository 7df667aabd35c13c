package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrTaskFieldsRequired is returned when a new task is missing one of
	// its required fields.
	ErrTaskFieldsRequired = errors.New("description, subjectId, and date are required")
	// ErrInvalidSubjectId is returned when a subjectId is present but is not
	// a well-formed identifier.
	ErrInvalidSubjectId = errors.New("subjectId must be a valid identifier")

	validate = newValidator()
)

const identifierTag = "hexadecimal,len=24"

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so that messages match request bodies.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// parseSubjectId converts an optional hex identifier. A nil id yields a nil
// result.
func parseSubjectId(id *string) (*primitive.ObjectID, error) {
	if id == nil {
		return nil, nil
	}
	if err := validate.Var(*id, identifierTag); err != nil {
		return nil, ErrInvalidSubjectId
	}
	oid, err := primitive.ObjectIDFromHex(*id)
	if err != nil {
		return nil, ErrInvalidSubjectId
	}

	return &oid, nil
}
