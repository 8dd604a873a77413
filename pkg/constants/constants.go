package constants

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	AppKey       ContextKey = "app"
	LoggerKey    ContextKey = "logger"
	ParamsKey    ContextKey = "params"
	RequestStart ContextKey = "requestStart"
)

var Validate = newValidator()

var (
	// Letters and spaces only, matching the backend's expectation for names.
	personNameRe = regexp.MustCompile(`^[a-zA-Z ]+$`)
	// Conservative email shape with a 2-4 letter TLD, applied on top of the
	// built-in "email" rule.
	strictEmailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,4}$`)
	tenDigitsRe   = regexp.MustCompile(`^[0-9]{10}$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	must(v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNameRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("strictemail", func(fl validator.FieldLevel) bool {
		return strictEmailRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("mobile10", func(fl validator.FieldLevel) bool {
		return tenDigitsRe.MatchString(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
