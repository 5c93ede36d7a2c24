package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/models"
)

// ErrRequiredFields matches any FieldErrors that include a missing required field.
var ErrRequiredFields = errors.New(constants.MsgRequiredFields)

var (
	validate   *validator.Validate
	translator ut.Translator

	// custom validation tags
	notBlankTag = "notblank"
	hhmmTag     = "hhmm"
	subjectTag  = "subject"

	hhmmRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Report json names (classId, dueDate) rather than Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	_ = validate.RegisterValidation(hhmmTag, hhmmValidation)
	_ = validate.RegisterValidation(subjectTag, subjectValidation)

	registerCustomTranslation(notBlankTag, "{0} is required")
	registerCustomTranslation(hhmmTag, "{0} must be a time in HH:MM format")
	registerCustomTranslation(subjectTag, "{0} must be a known subject")
	registerCustomTranslation("required", "{0} is required", true)
}

func registerCustomTranslation(tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// FieldError is a single failed check on a form field.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// FieldErrors lists every failed check of one struct.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, len(fe))
	for i, e := range fe {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// Is lets errors.Is(err, ErrRequiredFields) detect missing fields.
func (fe FieldErrors) Is(target error) bool {
	if target != ErrRequiredFields {
		return false
	}
	return fe.HasRequired()
}

// HasRequired reports whether any failure is a missing required field.
func (fe FieldErrors) HasRequired() bool {
	for _, e := range fe {
		if e.Tag == notBlankTag || e.Tag == "required" {
			return true
		}
	}
	return false
}

// Field returns the message for the named field, or "".
func (fe FieldErrors) Field(name string) string {
	for _, e := range fe {
		if e.Field == name {
			return e.Message
		}
	}
	return ""
}

// Struct validates a model input. It returns nil or FieldErrors.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, v := range verrs {
		out = append(out, FieldError{
			Field:   v.Field(),
			Tag:     v.Tag(),
			Message: v.Translate(translator),
		})
	}
	return out
}

// ValidTime reports whether s is a 24-hour HH:MM time.
func ValidTime(s string) bool {
	return hhmmRegex.MatchString(s)
}

// ParseDueDate turns a YYYY-MM-DD date into the last second of that day in loc.
func ParseDueDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(constants.DateFormat, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", s)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, loc), nil
}

// Custom Validators

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func hhmmValidation(fl validator.FieldLevel) bool {
	return ValidTime(fl.Field().String())
}

func subjectValidation(fl validator.FieldLevel) bool {
	s := models.Subject(fl.Field().String())
	return s == "" || s.Valid()
}
