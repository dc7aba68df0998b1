package korapay

import (
	"regexp"
	"strings"

	"github.com/piresc/duespay/internal/pkg/models"
)

// DefaultCustomerName replaces names that sanitize to nothing
const DefaultCustomerName = "DuesPay User"

var (
	htmlTags     = regexp.MustCompile(`<[^>]*>`)
	htmlEntities = regexp.MustCompile(`&[A-Za-z]+;`)
	disallowed   = regexp.MustCompile(`[^A-Za-z0-9\s.,'\-]`)
	runsOfSpace  = regexp.MustCompile(`\s+`)
)

// SanitizeCustomerName strips markup and anything outside letters, digits,
// space and . , ' - then collapses whitespace.
func SanitizeCustomerName(name string) string {
	if name == "" {
		return DefaultCustomerName
	}
	name = htmlTags.ReplaceAllString(name, "")
	name = htmlEntities.ReplaceAllString(name, "")
	name = disallowed.ReplaceAllString(name, "")
	name = strings.TrimSpace(runsOfSpace.ReplaceAllString(name, " "))
	if name == "" {
		return DefaultCustomerName
	}
	return name
}

// normalizeCustomer fills in platform defaults for a payer-facing customer
func (c *Client) normalizeCustomer(in models.CustomerInfo) models.CustomerInfo {
	email := strings.TrimSpace(in.Email)
	if !strings.Contains(email, "@") {
		email = c.platform.Email
	}
	name := in.Name
	if name == "" {
		name = c.platform.Name
	}
	return models.CustomerInfo{Name: SanitizeCustomerName(name), Email: email}
}
