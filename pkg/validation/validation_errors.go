package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps struct field names to user-facing labels.
var fieldLabels = map[string]string{
	"FullName":     "Full name",
	"Title":        "Profile title",
	"Bio":          "Bio",
	"Skills":       "Skills",
	"Phone":        "Phone number",
	"PhotoURL":     "Photo URL",
	"CvURL":        "CV URL",
	"CompanyName":  "Company name",
	"LogoURL":      "Logo URL",
	"Website":      "Website",
	"Description":  "Description",
	"Requirements": "Requirements",
	"Location":     "Location",
	"SalaryMin":    "Minimum salary",
	"SalaryMax":    "Maximum salary",
	"ScheduledAt":  "Interview date",
	"MeetingLink":  "Meeting link",
	"Status":       "Status",
	"Email":        "Email",
	"Role":         "Role",
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// Message translates one validator tag failure into a readable sentence.
func Message(fe validator.FieldError) string {
	l := label(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", l)
	case "min":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("%s must have at least %s items", l, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", l, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", l, fe.Param())
	case "url", "https_url":
		return fmt.Sprintf("%s must be a valid URL", l)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", l)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", l, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", l, fe.Param())
	case "valid_name":
		return fmt.Sprintf("%s contains invalid characters", l)
	case "valid_phone":
		return fmt.Sprintf("%s is not a valid phone number", l)
	default:
		return fmt.Sprintf("%s is invalid", l)
	}
}

// FormatErrors flattens a validator error into one user-facing string.
func FormatErrors(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, Message(fe))
	}
	return strings.Join(msgs, "; ")
}
