package submit_lead

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jalelchniti/smarthub-booking/internal/integrations/brevo"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9 ]{8,20}$`)
)

// SubmitLeadRequest HTTP request model. CountryCode and Locale default
// to the center's home market when omitted.
type SubmitLeadRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"countryCode,omitempty"`
	Locale      string `json:"locale,omitempty"`
}

// Validate normalizes and checks the submission.
func (r *SubmitLeadRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)

	if r.FirstName == "" {
		return fmt.Errorf("firstName is required")
	}
	if r.LastName == "" {
		return fmt.Errorf("lastName is required")
	}
	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("invalid email %q", r.Email)
	}
	if !phonePattern.MatchString(r.Phone) {
		return fmt.Errorf("invalid phone %q", r.Phone)
	}

	if r.CountryCode == "" {
		r.CountryCode = "+216"
	}
	if r.Locale != "en" {
		r.Locale = "fr"
	}
	return nil
}

// ToLead converts the request into the relay model.
func (r *SubmitLeadRequest) ToLead() brevo.Lead {
	return brevo.Lead{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		CountryCode: r.CountryCode,
		Locale:      r.Locale,
	}
}
