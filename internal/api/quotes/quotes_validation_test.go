package quotes

import (
	"strings"
	"testing"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/stretchr/testify/assert"
)

func validRequest() types.CreateQuoteRequest {
	return types.CreateQuoteRequest{
		BusinessID:    "london-plumb-1",
		Name:          "Sam Taylor",
		Email:         "sam@example.com",
		Phone:         "07700 900123",
		Postcode:      "SW1A 1AA",
		Urgency:       types.UrgencyEmergency,
		ServiceType:   "Burst pipe",
		Description:   "Water is pouring through the kitchen ceiling from the bathroom above.",
		ContactMethod: types.ContactPhone,
	}
}

func TestValidateCreateRequest(t *testing.T) {
	t.Run("valid request has no field errors", func(t *testing.T) {
		assert.Empty(t, ValidateCreateRequest(validRequest()))
	})

	t.Run("missing business id", func(t *testing.T) {
		req := validRequest()
		req.BusinessID = ""
		errs := ValidateCreateRequest(req)
		assert.Contains(t, errs, "business_id")
	})

	t.Run("name must be at least two characters", func(t *testing.T) {
		req := validRequest()
		req.Name = " A "
		errs := ValidateCreateRequest(req)
		assert.Contains(t, errs, "name")
	})

	t.Run("email shapes", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "a@b", "two words@example.com"} {
			req := validRequest()
			req.Email = email
			assert.Contains(t, ValidateCreateRequest(req), "email", "email %q", email)
		}
		req := validRequest()
		req.Email = "name.surname@firm.co.uk"
		assert.NotContains(t, ValidateCreateRequest(req), "email")
	})

	t.Run("phone accepts UK formats with spaces", func(t *testing.T) {
		for _, phone := range []string{"07700900123", "07700 900 123", "+447700900123", "+44 7700 900123"} {
			req := validRequest()
			req.Phone = phone
			assert.NotContains(t, ValidateCreateRequest(req), "phone", "phone %q", phone)
		}
	})

	t.Run("phone rejects non-UK shapes", func(t *testing.T) {
		for _, phone := range []string{"", "12345", "+15551234567", "0770090012", "077009001234"} {
			req := validRequest()
			req.Phone = phone
			assert.Contains(t, ValidateCreateRequest(req), "phone", "phone %q", phone)
		}
	})

	t.Run("postcode accepts common UK shapes", func(t *testing.T) {
		for _, pc := range []string{"SW1A 1AA", "sw1a1aa", "M1 1AE", "LS2 9JT", "EC1A 1BB"} {
			req := validRequest()
			req.Postcode = pc
			assert.NotContains(t, ValidateCreateRequest(req), "postcode", "postcode %q", pc)
		}
	})

	t.Run("postcode rejects junk", func(t *testing.T) {
		for _, pc := range []string{"", "12345", "SW1A 1AAA", "LONDON"} {
			req := validRequest()
			req.Postcode = pc
			assert.Contains(t, ValidateCreateRequest(req), "postcode", "postcode %q", pc)
		}
	})

	t.Run("urgency must be a known level", func(t *testing.T) {
		req := validRequest()
		req.Urgency = "yesterday"
		assert.Contains(t, ValidateCreateRequest(req), "urgency")
	})

	t.Run("description needs at least twenty characters", func(t *testing.T) {
		req := validRequest()
		req.Description = "tap drips"
		assert.Contains(t, ValidateCreateRequest(req), "description")

		req.Description = strings.Repeat("x", 20)
		assert.NotContains(t, ValidateCreateRequest(req), "description")
	})

	t.Run("contact method must be known", func(t *testing.T) {
		req := validRequest()
		req.ContactMethod = "carrier-pigeon"
		assert.Contains(t, ValidateCreateRequest(req), "preferred_contact_method")
	})

	t.Run("every problem is reported at once", func(t *testing.T) {
		errs := ValidateCreateRequest(types.CreateQuoteRequest{})
		assert.Len(t, errs, 9)
	})
}
