package brevo

// Lead is a validated lead-capture submission. The field names mirror
// the attributes expected by the mailing provider's form endpoint.
type Lead struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	CountryCode string // dialing code, e.g. "+216"
	Locale      string // "fr" or "en"
}
