package guest

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidName    = errors.New("first and last name are required (max 100 characters each)")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrRequestTooLong = errors.New("special requests must be at most 1000 characters")
)

const maxRequestLength = 1000

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-]{6,20}$`)
)

// Details identifies the lead guest sent to the reservation system.
type Details struct {
	firstName       string
	lastName        string
	email           string
	phone           string
	country         string
	specialRequests string
}

type Input struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Country         string
	SpecialRequests string
}

func NewDetails(in Input) (Details, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if !validName(first) || !validName(last) {
		return Details{}, ErrInvalidName
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !emailRegex.MatchString(email) {
		return Details{}, ErrInvalidEmail
	}

	phone := strings.TrimSpace(in.Phone)
	if phone != "" && !phoneRegex.MatchString(phone) {
		return Details{}, ErrInvalidPhone
	}

	requests := strings.TrimSpace(in.SpecialRequests)
	if utf8.RuneCountInString(requests) > maxRequestLength {
		return Details{}, ErrRequestTooLong
	}

	return Details{
		firstName:       first,
		lastName:        last,
		email:           email,
		phone:           phone,
		country:         strings.ToUpper(strings.TrimSpace(in.Country)),
		specialRequests: requests,
	}, nil
}

// Reconstruct skips validation; used for rows loaded from storage.
func Reconstruct(in Input) Details {
	return Details{
		firstName:       in.FirstName,
		lastName:        in.LastName,
		email:           in.Email,
		phone:           in.Phone,
		country:         in.Country,
		specialRequests: in.SpecialRequests,
	}
}

func (d Details) FirstName() string       { return d.firstName }
func (d Details) LastName() string        { return d.lastName }
func (d Details) Email() string           { return d.email }
func (d Details) Phone() string           { return d.phone }
func (d Details) Country() string         { return d.country }
func (d Details) SpecialRequests() string { return d.specialRequests }

func (d Details) FullName() string {
	return d.firstName + " " + d.lastName
}

// MatchesEmail compares case-insensitively; guests look up their booking
// with whatever casing they typed.
func (d Details) MatchesEmail(email string) bool {
	return strings.EqualFold(d.email, strings.TrimSpace(email))
}

func validName(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n <= 100
}
