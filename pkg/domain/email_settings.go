package domain

import "fmt"

// EmailCampaign classifies the marketing content a customer may receive.
type EmailCampaign string

const (
	// EmailCampaignNone means the customer receives no campaign emails.
	EmailCampaignNone EmailCampaign = "NONE"
	// EmailCampaignLatestCarModels targets customers in the car industry.
	EmailCampaignLatestCarModels EmailCampaign = "LATEST_CAR_MODELS"
	// EmailCampaignPharmacyNews targets customers in the pharmacy industry.
	EmailCampaignPharmacyNews EmailCampaign = "PHARMACY_NEWS"
	// EmailCampaignGeneric targets customers in any other industry.
	EmailCampaignGeneric EmailCampaign = "GENERIC"
)

// EmailSettings pairs the customer's industry with the emailing opt-out flag.
// The campaign is derived from both on every read and never stored.
type EmailSettings struct {
	industry Industry
	disabled bool
}

// NewEmailSettings returns settings for the given industry. It panics when the
// industry is outside the catalog.
func NewEmailSettings(industry Industry, disabled bool) EmailSettings {
	industry.mustBeValid()

	return EmailSettings{industry: industry, disabled: disabled}
}

// Industry returns the industry the campaign is derived from.
func (s EmailSettings) Industry() Industry { return s.industry }

// IsDisabled reports whether emailing has been disabled.
func (s EmailSettings) IsDisabled() bool { return s.disabled }

// EmailCampaign derives the campaign from the current industry and opt-out flag.
// A disabled flag always wins.
func (s EmailSettings) EmailCampaign() EmailCampaign {
	if s.disabled {
		return EmailCampaignNone
	}

	switch s.industry {
	case IndustryCars:
		return EmailCampaignLatestCarModels
	case IndustryPharmacy:
		return EmailCampaignPharmacyNews
	case IndustryOther:
		return EmailCampaignGeneric
	default:
		panic(fmt.Sprintf("domain: no email campaign for industry %d", int64(s.industry)))
	}
}

// UpdateIndustry replaces the industry. The disabled flag is left untouched.
func (s *EmailSettings) UpdateIndustry(industry Industry) {
	industry.mustBeValid()
	s.industry = industry
}

// DisableEmailing turns emailing off. There is no way back.
func (s *EmailSettings) DisableEmailing() {
	s.disabled = true
}
