package domain_test

import (
	"customers/pkg/domain"
	"customers/pkg/result"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T, industry domain.Industry) *domain.Customer {
	t.Helper()

	return domain.NewCustomer(
		domain.MustName("Jane Doe"),
		domain.MustEmail("jane@x.com"),
		result.None[domain.Email](),
		industry,
	)
}

func TestNewCustomer(t *testing.T) {
	c := newCustomer(t, domain.IndustryCars)

	require.Zero(t, c.ID())
	require.Equal(t, "Jane Doe", c.Name().String())
	require.Equal(t, "jane@x.com", c.PrimaryEmail().String())
	require.True(t, c.SecondaryEmail().HasNoValue())
	require.Equal(t, domain.IndustryCars, c.Industry())
	require.Equal(t, domain.CustomerStatusRegular, c.Status())
	require.False(t, c.EmailSettings().IsDisabled())
	require.Equal(t, domain.EmailCampaignLatestCarModels, c.EmailSettings().EmailCampaign())
}

func TestNewCustomer_WithSecondaryEmail(t *testing.T) {
	c := domain.NewCustomer(
		domain.MustName("Jane Doe"),
		domain.MustEmail("jane@x.com"),
		result.Some(domain.MustEmail("jane@y.com")),
		domain.IndustryOther,
	)

	require.True(t, c.SecondaryEmail().HasValue())
	require.Equal(t, "jane@y.com", c.SecondaryEmail().Value().String())
	require.Equal(t, domain.EmailCampaignGeneric, c.EmailSettings().EmailCampaign())
}

func TestCustomer_UpdateIndustry(t *testing.T) {
	c := newCustomer(t, domain.IndustryCars)

	c.UpdateIndustry(domain.IndustryPharmacy)
	require.Equal(t, domain.IndustryPharmacy, c.Industry())
	require.Equal(t, domain.IndustryPharmacy, c.EmailSettings().Industry())
	require.Equal(t, domain.EmailCampaignPharmacyNews, c.EmailSettings().EmailCampaign())
}

func TestCustomer_UpdateIndustryAfterDisable(t *testing.T) {
	c := newCustomer(t, domain.IndustryCars)
	c.DisableEmailing()

	c.UpdateIndustry(domain.IndustryPharmacy)
	require.Equal(t, domain.IndustryPharmacy, c.EmailSettings().Industry())
	require.True(t, c.EmailSettings().IsDisabled())
	require.Equal(t, domain.EmailCampaignNone, c.EmailSettings().EmailCampaign())
}

func TestCustomer_DisableEmailingIsIdempotent(t *testing.T) {
	once := newCustomer(t, domain.IndustryOther)
	once.DisableEmailing()

	twice := newCustomer(t, domain.IndustryOther)
	twice.DisableEmailing()
	twice.DisableEmailing()

	require.Equal(t, once.Snapshot(), twice.Snapshot())
	require.True(t, twice.EmailSettings().IsDisabled())
	require.Equal(t, domain.EmailCampaignNone, twice.EmailSettings().EmailCampaign())
}

func TestCustomer_Promote(t *testing.T) {
	c := newCustomer(t, domain.IndustryCars)

	require.True(t, c.CanBePromoted())
	c.Promote()
	require.Equal(t, domain.CustomerStatusPreferred, c.Status())

	require.True(t, c.CanBePromoted())
	c.Promote()
	require.Equal(t, domain.CustomerStatusGold, c.Status())

	require.False(t, c.CanBePromoted())
	require.Panics(t, c.Promote)
	require.Equal(t, domain.CustomerStatusGold, c.Status())
}

func TestRestoreCustomer(t *testing.T) {
	now := time.Now().UTC()
	snapshot := domain.CustomerSnapshot{
		ID:               7,
		Name:             domain.MustName("John"),
		PrimaryEmail:     domain.MustEmail("john@x.com"),
		SecondaryEmail:   result.Some(domain.MustEmail("john@y.com")),
		Industry:         domain.IndustryPharmacy,
		EmailingDisabled: true,
		Status:           domain.CustomerStatusPreferred,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	c := domain.RestoreCustomer(snapshot)
	require.Equal(t, domain.CustomerID(7), c.ID())
	require.Equal(t, domain.EmailCampaignNone, c.EmailSettings().EmailCampaign())
	require.Equal(t, now, c.CreatedAt())
	require.Equal(t, now, c.UpdatedAt())
	require.Equal(t, snapshot, c.Snapshot())
}

func TestRestoreCustomer_RejectsBrokenState(t *testing.T) {
	base := domain.CustomerSnapshot{
		Name:         domain.MustName("John"),
		PrimaryEmail: domain.MustEmail("john@x.com"),
		Industry:     domain.IndustryOther,
		Status:       domain.CustomerStatusRegular,
	}

	unknownStatus := base
	unknownStatus.Status = "PLATINUM"
	require.Panics(t, func() { domain.RestoreCustomer(unknownStatus) })

	unknownIndustry := base
	unknownIndustry.Industry = domain.Industry(9)
	require.Panics(t, func() { domain.RestoreCustomer(unknownIndustry) })
}

func TestCustomerStatus_Valid(t *testing.T) {
	require.True(t, domain.CustomerStatusRegular.Valid())
	require.True(t, domain.CustomerStatusPreferred.Valid())
	require.True(t, domain.CustomerStatusGold.Valid())
	require.False(t, domain.CustomerStatus("").Valid())
}
