package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"resumeforge/pkg/models"
)

// PhonePattern matches the accepted phone formats, e.g. "+1 (555) 123-4567"
// or "5551234567".
var PhonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)

// LinkedInPattern restricts the linkedin field to linkedin.com profile URLs.
var LinkedInPattern = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/.*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON field names so errors line up with the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("phone", validatePhone)
	v.RegisterValidation("linkedin_url", validateLinkedInURL)
	return v
}

func validatePhone(fl validator.FieldLevel) bool {
	return PhonePattern.MatchString(fl.Field().String())
}

func validateLinkedInURL(fl validator.FieldLevel) bool {
	return LinkedInPattern.MatchString(fl.Field().String())
}

// Error is a validation failure carrying per-field messages. Section editors
// surface these inline and perform no store mutation.
type Error struct {
	Fields []models.FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
	}
	return fmt.Sprintf("validation failed: %d invalid fields", len(e.Fields))
}

// AsError returns the *Error behind err, if any.
func AsError(err error) (*Error, bool) {
	ve, ok := err.(*Error)
	return ve, ok
}

// messages maps "field.tag" to the user-facing message. Unlisted
// combinations fall back to a generic message.
var messages = map[string]string{
	"full_name.required": "Full name must be at least 2 characters",
	"full_name.min":      "Full name must be at least 2 characters",
	"full_name.max":      "Full name must be less than 100 characters",
	"email.required":     "Invalid email address",
	"email.email":        "Invalid email address",
	"email.min":          "Email must be at least 5 characters",
	"email.max":          "Email must be less than 100 characters",
	"phone.required":     "Phone number must be at least 10 characters",
	"phone.min":          "Phone number must be at least 10 characters",
	"phone.max":          "Phone number must be less than 20 characters",
	"phone.phone":        "Invalid phone number format",
	"location.required":  "Location must be at least 2 characters",
	"location.min":       "Location must be at least 2 characters",
	"location.max":       "Location must be less than 100 characters",
	"website.url":        "Invalid website URL",
	"website.max":        "Website URL must be less than 200 characters",
	"linkedin.url":       "Invalid LinkedIn URL",
	"linkedin.max":       "LinkedIn URL must be less than 200 characters",
	"linkedin.linkedin_url": "Must be a valid LinkedIn URL",

	"company.required":             "Company name must be at least 2 characters",
	"company.min":                  "Company name must be at least 2 characters",
	"position.required":            "Position must be at least 2 characters",
	"position.min":                 "Position must be at least 2 characters",
	"start_date.required":          "Start date is required",
	"end_date.required":            "End date is required",
	"end_date.required_unless":     "End date is required",
	"description.min":              "At least one bullet point is required",
	"description[].required":       "Description cannot be empty",

	"institution.required": "Institution name must be at least 2 characters",
	"institution.min":      "Institution name must be at least 2 characters",
	"degree.required":      "Degree must be at least 2 characters",
	"degree.min":           "Degree must be at least 2 characters",
	"field.required":       "Field of study must be at least 2 characters",
	"field.min":            "Field of study must be at least 2 characters",
	"gpa.gte":              "GPA must be between 0 and 4",
	"gpa.lte":              "GPA must be between 0 and 4",

	"name.required":     "Skill name must be at least 2 characters",
	"name.min":          "Skill name must be at least 2 characters",
	"level.required":    "Please select a skill level",
	"level.oneof":       "Please select a skill level",
	"category.required": "Category must be at least 2 characters",
	"category.min":      "Category must be at least 2 characters",

	"recipient_name.required":  "Recipient name must be at least 2 characters",
	"recipient_name.min":       "Recipient name must be at least 2 characters",
	"recipient_title.required": "Recipient title must be at least 2 characters",
	"recipient_title.min":      "Recipient title must be at least 2 characters",
	"company_name.required":    "Company name must be at least 2 characters",
	"company_name.min":         "Company name must be at least 2 characters",
	"company_address.required": "Company address must be at least 5 characters",
	"company_address.min":      "Company address must be at least 5 characters",
	"job_title.required":       "Job title must be at least 2 characters",
	"job_title.min":            "Job title must be at least 2 characters",
	"resume_id.required":       "Please select a resume",
}

// fieldErrors converts validator errors into per-field messages. The prefix
// addresses entries inside a list draft, e.g. "experiences[0].".
func fieldErrors(err error, prefix string) []models.FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []models.FieldError{{Field: prefix, Message: err.Error()}}
	}

	out := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		key := field + "." + fe.Tag()

		// Collection elements report as description[2]; the message table
		// keys them as description[]
		if i := strings.Index(field, "["); i >= 0 {
			key = field[:i] + "[]." + fe.Tag()
		}

		msg, found := messages[key]
		if !found {
			msg = fmt.Sprintf("Invalid value for %s", field)
		}
		out = append(out, models.FieldError{Field: prefix + field, Message: msg})
	}
	return out
}

// ContactInfo validates a submitted contact section draft.
func ContactInfo(info models.ContactInfo) error {
	if err := validate.Struct(info); err != nil {
		return &Error{Fields: fieldErrors(err, "")}
	}
	return nil
}

// WorkExperiences validates the work experience editor's full draft list.
func WorkExperiences(entries []models.WorkExperience) error {
	var fields []models.FieldError
	for i, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			fields = append(fields, fieldErrors(err, fmt.Sprintf("experiences[%d].", i))...)
		}
	}
	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

// EducationEntries validates the education editor's full draft list.
func EducationEntries(entries []models.Education) error {
	var fields []models.FieldError
	for i, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			fields = append(fields, fieldErrors(err, fmt.Sprintf("education[%d].", i))...)
		}
	}
	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

// Skills validates the skills editor's full draft list.
func Skills(entries []models.Skill) error {
	var fields []models.FieldError
	for i, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			fields = append(fields, fieldErrors(err, fmt.Sprintf("skills[%d].", i))...)
		}
	}
	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

// CoverLetterRequest validates the cover letter generator's input fields.
// Resume existence is checked separately against the store.
func CoverLetterRequest(req models.GenerateCoverLetterRequest) error {
	if err := validate.Struct(req); err != nil {
		return &Error{Fields: fieldErrors(err, "")}
	}
	return nil
}
