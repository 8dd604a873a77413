package employee

import (
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// DateLayout is the wire format for dates of birth.
const DateLayout = time.DateOnly

type Employee struct {
	id          uint
	firstName   string
	lastName    string
	dateOfBirth time.Time
	mobile      string
	email       string
	address1    string
	address2    string
	gender      Gender
}

func New(
	firstName, lastName string,
	dateOfBirth time.Time,
	mobile, email string,
	address1, address2 string,
	gender Gender,
) Employee {
	return Employee{
		firstName:   strings.TrimSpace(firstName),
		lastName:    strings.TrimSpace(lastName),
		dateOfBirth: dateOfBirth,
		mobile:      strings.TrimSpace(mobile),
		email:       strings.TrimSpace(email),
		address1:    strings.TrimSpace(address1),
		address2:    strings.TrimSpace(address2),
		gender:      gender,
	}
}

func Hydrate(
	id uint,
	firstName, lastName string,
	dateOfBirth time.Time,
	mobile, email string,
	address1, address2 string,
	gender Gender,
) Employee {
	e := New(firstName, lastName, dateOfBirth, mobile, email, address1, address2, gender)
	e.id = id
	return e
}

func (e Employee) ID() uint               { return e.id }
func (e Employee) FirstName() string      { return e.firstName }
func (e Employee) LastName() string       { return e.lastName }
func (e Employee) DateOfBirth() time.Time { return e.dateOfBirth }
func (e Employee) Mobile() string         { return e.mobile }
func (e Employee) Email() string          { return e.email }
func (e Employee) Address1() string       { return e.address1 }
func (e Employee) Address2() string       { return e.address2 }
func (e Employee) Gender() Gender         { return e.gender }
func (e Employee) IsZero() bool           { return e.id == 0 && e.firstName == "" && e.email == "" }

// FullName is the concatenation used by list search and name sorting.
func (e Employee) FullName() string {
	return e.firstName + " " + e.lastName
}

// AgeAt computes age in whole years at the given date. A birthday not yet
// reached this year reduces the age by one.
func (e Employee) AgeAt(today time.Time) int {
	return AgeAt(e.dateOfBirth, today)
}

func (e Employee) Age() int {
	return e.AgeAt(time.Now())
}

func AgeAt(dateOfBirth, today time.Time) int {
	age := today.Year() - dateOfBirth.Year()
	if today.Month() < dateOfBirth.Month() ||
		(today.Month() == dateOfBirth.Month() && today.Day() < dateOfBirth.Day()) {
		age--
	}
	return age
}
