package employee

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/hrmkit/employee-console/pkg/constants"
)

const (
	MinAge = 18
	MaxAge = 110
)

type CreateDTO struct {
	FirstName   string `form:"firstName" json:"firstName" validate:"required,min=2,max=50,personname"`
	LastName    string `form:"lastName" json:"lastName" validate:"required,min=2,max=50,personname"`
	DateOfBirth string `form:"dateOfBirth" json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Mobile      string `form:"mobile" json:"mobile" validate:"required,mobile10"`
	Email       string `form:"email" json:"email" validate:"required,email,max=254,strictemail"`
	Address1    string `form:"address1" json:"address1" validate:"required,min=4,max=255"`
	Address2    string `form:"address2" json:"address2" validate:"omitempty,max=255"`
	Gender      string `form:"gender" json:"gender" validate:"required,oneof=Male Female Other"`
}

type UpdateDTO = CreateDTO

func (d *CreateDTO) Normalize() {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.DateOfBirth = strings.TrimSpace(d.DateOfBirth)
	d.Mobile = strings.TrimSpace(d.Mobile)
	d.Email = strings.TrimSpace(d.Email)
	d.Address1 = strings.TrimSpace(d.Address1)
	d.Address2 = strings.TrimSpace(d.Address2)
	d.Gender = strings.TrimSpace(d.Gender)
}

// Ok validates every field-level rule, including the derived age range.
// Rules run against a normalized copy, so in-progress values keep their
// whitespace; callers trim for real via Normalize before persisting.
// It returns per-field messages keyed by form field name.
func (d *CreateDTO) Ok(ctx context.Context) (map[string]string, bool) {
	return d.OkAt(time.Now())
}

// OkAt is Ok with an explicit "today" for the age range rule.
func (d *CreateDTO) OkAt(today time.Time) (map[string]string, bool) {
	c := *d
	c.Normalize()

	validationErrors := map[string]string{}
	if errs := constants.Validate.Struct(&c); errs != nil {
		for _, fe := range errs.(validator.ValidationErrors) {
			field := fieldName(fe.Field())
			validationErrors[field] = fieldMessage(fe)
		}
	}

	if _, dobFailed := validationErrors["dateOfBirth"]; !dobFailed {
		if !ValidAgeRange(c.DateOfBirth, MinAge, MaxAge, today) {
			validationErrors["dateOfBirth"] = "age must be between 18 and 110"
		}
	}

	return validationErrors, len(validationErrors) == 0
}

func (d *CreateDTO) ToEntity() (Employee, error) {
	dob, err := time.Parse(DateLayout, d.DateOfBirth)
	if err != nil {
		return Employee{}, errors.Wrapf(err, "invalid date of birth %q", d.DateOfBirth)
	}
	return New(
		d.FirstName,
		d.LastName,
		dob,
		d.Mobile,
		d.Email,
		d.Address1,
		d.Address2,
		Gender(d.Gender),
	), nil
}

// ValidAgeRange applies the date-of-birth field rule: an empty value passes,
// otherwise the derived age at "today" must fall within [min, max].
func ValidAgeRange(dateOfBirth string, min, max int, today time.Time) bool {
	if dateOfBirth == "" {
		return true
	}
	dob, err := time.Parse(DateLayout, dateOfBirth)
	if err != nil {
		return true // format errors are reported by the datetime rule
	}
	age := AgeAt(dob, today)
	return age >= min && age <= max
}

func fieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "value is too short (minimum " + fe.Param() + ")"
	case "max":
		return "value is too long (maximum " + fe.Param() + ")"
	case "personname":
		return "only letters and spaces are allowed"
	case "mobile10":
		return "mobile must be exactly 10 digits"
	case "email", "strictemail":
		return "invalid email address"
	case "datetime":
		return "invalid date"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "invalid value"
	}
}
