package quotes

import (
	"regexp"
	"strings"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern    = regexp.MustCompile(`^(\+44|0)[0-9]{10}$`)
	postcodePattern = regexp.MustCompile(`(?i)^[A-Z]{1,2}[0-9]{1,2}[A-Z]?\s?[0-9][A-Z]{2}$`)
)

var validUrgencies = map[string]bool{
	types.UrgencyEmergency: true,
	types.UrgencyToday:     true,
	types.UrgencyThisWeek:  true,
	types.UrgencyFlexible:  true,
}

var validContactMethods = map[string]bool{
	types.ContactPhone:  true,
	types.ContactEmail:  true,
	types.ContactEither: true,
}

// ValidateCreateRequest checks a quote submission field by field and
// returns a map of field name to human-readable problem. An empty map
// means the request is acceptable.
func ValidateCreateRequest(req types.CreateQuoteRequest) map[string]string {
	errs := make(map[string]string)

	if req.BusinessID == "" {
		errs["business_id"] = "Business is required"
	}
	if len(strings.TrimSpace(req.Name)) < 2 {
		errs["name"] = "Please enter your full name"
	}
	if !emailPattern.MatchString(req.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if !phonePattern.MatchString(strings.ReplaceAll(req.Phone, " ", "")) {
		errs["phone"] = "Please enter a valid UK phone number"
	}
	if !postcodePattern.MatchString(strings.TrimSpace(req.Postcode)) {
		errs["postcode"] = "Please enter a valid UK postcode"
	}
	if !validUrgencies[req.Urgency] {
		errs["urgency"] = "Please select urgency level"
	}
	if len(strings.TrimSpace(req.ServiceType)) < 3 {
		errs["service_type"] = "Please select or describe the service needed"
	}
	if len(strings.TrimSpace(req.Description)) < 20 {
		errs["description"] = "Please provide at least 20 characters describing your issue"
	}
	if !validContactMethods[req.ContactMethod] {
		errs["preferred_contact_method"] = "Please select your preferred contact method"
	}

	return errs
}
