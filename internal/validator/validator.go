package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/moviemate/internal/domain"
)

const (
	ErrRequired       = "is required"
	ErrEmail          = "must be a valid email address"
	ErrMinLength      = "must be at least %s characters long"
	ErrMaxLength      = "must be at most %s characters long"
	ErrMinItems       = "must contain at least %s items"
	ErrMaxItems       = "must contain at most %s items"
	ErrMin            = "must be at least %s"
	ErrMax            = "must be at most %s"
	ErrOneOf          = "must be one of: %s"
	ErrGenre          = "must be a known genre"
	ErrMovieYear      = "must be a release year between %d and %d"
	ErrSortField      = "must be one of: id title year rating popularity"
	ErrIMDbID         = "must be an IMDb id like tt0111161"
	ErrURL            = "must be a valid URL"
	ErrDefaultInvalid = "is invalid"
	ErrPassword       = "must be at least 8 characters long and include at least one uppercase letter, one lowercase letter, " +
		"one number, and one special character (!@#$%^&*)."
)

var (
	hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)
	imdbIDRgx     = regexp.MustCompile(`^tt\d{7,10}$`)
	now           = time.Now
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("genre", validateGenre)
	validator.RegisterValidation("movieyear", validateMovieYear)
	validator.RegisterValidation("sortfield", validateSortField)
	validator.RegisterValidation("imdbid", validateIMDbID)

	return validator
}

// jsonFieldName reports fields by their JSON name so validation errors match
// the request payload.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	default:
		return name
	}
}

func validateGenre(fl validator.FieldLevel) bool {
	return domain.Genre(fl.Field().String()).Valid()
}

func validateMovieYear(fl validator.FieldLevel) bool {
	year := int(fl.Field().Int())

	return year >= domain.MinMovieYear && year <= domain.MaxMovieYear(now())
}

func validateSortField(fl validator.FieldLevel) bool {
	return domain.SortField(fl.Field().String()).Valid()
}

func validateIMDbID(fl validator.FieldLevel) bool {
	return imdbIDRgx.MatchString(fl.Field().String())
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "min":
		return sizeMessage(err, ErrMinLength, ErrMinItems, ErrMin)
	case "max":
		return sizeMessage(err, ErrMaxLength, ErrMaxItems, ErrMax)
	case "gte":
		return fmt.Sprintf(ErrMin, err.Param())
	case "lte":
		return fmt.Sprintf(ErrMax, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "genre":
		return ErrGenre
	case "movieyear":
		return fmt.Sprintf(ErrMovieYear, domain.MinMovieYear, domain.MaxMovieYear(now()))
	case "sortfield":
		return ErrSortField
	case "imdbid":
		return ErrIMDbID
	case "url":
		return ErrURL
	case "password":
		return ErrPassword
	default:
		return ErrDefaultInvalid
	}
}

func sizeMessage(err validator.FieldError, length, items, value string) string {
	switch err.Kind() {
	case reflect.String:
		return fmt.Sprintf(length, err.Param())
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf(items, err.Param())
	default:
		return fmt.Sprintf(value, err.Param())
	}
}
