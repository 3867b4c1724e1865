package classifier

import (
	"context"

	"github.com/safephone/scamscan/internal/model"
	"github.com/safephone/scamscan/internal/registry"
)

// PhoneClassifier looks phone numbers up against the community report
// store and the official contact registry. There is no scoring: a number
// is either reported, an official bank line, or clean.
type PhoneClassifier struct {
	registry *registry.Registry
	reports  ReportSource
}

// NewPhoneClassifier creates a phone classifier. The report source may be
// nil, in which case every number outside the official registry is clean.
func NewPhoneClassifier(reg *registry.Registry, reports ReportSource) *PhoneClassifier {
	return &PhoneClassifier{registry: reg, reports: reports}
}

// Classify normalizes the raw number and returns its verdict. Community
// reports outrank the official registry: a reported number is flagged even
// if someone registered it as a contact.
func (c *PhoneClassifier) Classify(ctx context.Context, rawNumber string) model.PhoneVerdict {
	number := model.NormalizePhone(rawNumber)

	v := model.PhoneVerdict{
		Number: number,
		Risk:   model.RiskSafe,
	}
	if number == "" {
		return v
	}

	if c.reports != nil {
		if rec, ok := c.reports.LookupPhone(ctx, number); ok {
			v.Reported = true
			v.Count = rec.Count
			v.Risk = model.RiskDanger
			return v
		}
	}

	if contact, ok := c.registry.OfficialContact(number); ok {
		v.OfficialContact = contact.Name
	}
	return v
}
