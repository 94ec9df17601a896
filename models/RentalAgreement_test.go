package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalRent(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		rent  float64
		want  float64
	}{
		{"full year", "2026-01-01", "2026-12-31", 2000, 22000},
		{"twelve whole months", "2026-01-01", "2027-01-01", 2000, 24000},
		{"rfc3339 dates", "2026-01-01T00:00:00Z", "2026-07-01T00:00:00Z", 1500, 9000},
		{"end before start", "2026-06-01", "2026-01-01", 2000, 0},
		{"unparseable start", "soon", "2026-12-31", 2000, 0},
		{"unparseable end", "2026-01-01", "eventually", 2000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewRentalAgreement("p", "t", "l")
			a.StartDate = tt.start
			a.EndDate = tt.end
			a.MonthlyRent = tt.rent
			assert.Equal(t, tt.want, a.TotalRent())
		})
	}
}

func TestIsFullySigned(t *testing.T) {
	a := NewRentalAgreement("p", "t", "l")
	assert.False(t, a.IsFullySigned())
	a.SignedByTenant = true
	assert.False(t, a.IsFullySigned())
	a.SignedByLandlord = true
	assert.True(t, a.IsFullySigned())
}

func TestHasActiveRental(t *testing.T) {
	tenant := NewTenant("user")
	assert.False(t, tenant.HasActiveRental())

	tenant.SetCurrentRental("prop", "agr")
	assert.True(t, tenant.HasActiveRental())

	tenant.ClearCurrentRental()
	assert.False(t, tenant.HasActiveRental())
	assert.Nil(t, tenant.CurrentPropertyID)
	assert.Nil(t, tenant.CurrentAgreementID)
}
