package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		aIn, aOut, bIn, bOut   time.Time
		want                   bool
	}{
		{
			name: "identical ranges",
			aIn:  day(2025, 6, 10), aOut: day(2025, 6, 13),
			bIn: day(2025, 6, 10), bOut: day(2025, 6, 13),
			want: true,
		},
		{
			name: "partial overlap at tail",
			aIn:  day(2025, 6, 10), aOut: day(2025, 6, 13),
			bIn: day(2025, 6, 12), bOut: day(2025, 6, 14),
			want: true,
		},
		{
			name: "contained range",
			aIn:  day(2025, 6, 10), aOut: day(2025, 6, 20),
			bIn: day(2025, 6, 12), bOut: day(2025, 6, 14),
			want: true,
		},
		{
			name: "single shared night",
			aIn:  day(2025, 6, 10), aOut: day(2025, 6, 13),
			bIn: day(2025, 6, 12), bOut: day(2025, 6, 13),
			want: true,
		},
		{
			name: "back-to-back: b checks in on a's checkout day",
			aIn:  day(2025, 6, 10), aOut: day(2025, 6, 13),
			bIn: day(2025, 6, 13), bOut: day(2025, 6, 15),
			want: false,
		},
		{
			name: "back-to-back reversed",
			aIn:  day(2025, 6, 13), aOut: day(2025, 6, 15),
			bIn: day(2025, 6, 10), bOut: day(2025, 6, 13),
			want: false,
		},
		{
			name: "fully disjoint",
			aIn:  day(2025, 6, 1), aOut: day(2025, 6, 5),
			bIn: day(2025, 6, 20), bOut: day(2025, 6, 22),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aIn, tt.aOut, tt.bIn, tt.bOut))
			// Symmetric by construction; verify to keep the property explicit.
			assert.Equal(t, tt.want, Overlaps(tt.bIn, tt.bOut, tt.aIn, tt.aOut))
		})
	}
}

// Mirrors the royal-suite walkthrough: the suite sleeps 4 and already holds
// a stay 2025-06-10 to 2025-06-13.
func TestRoyalSuiteScenario(t *testing.T) {
	suite := Room{ID: 3, Slug: "royal-suite", Name: "Royal Suite", Capacity: 4}
	existing := Booking{RoomID: suite.ID, CheckIn: day(2025, 6, 10), CheckOut: day(2025, 6, 13)}

	// Back-to-back search with 2 guests fits.
	assert.False(t, existing.OverlapsRange(day(2025, 6, 13), day(2025, 6, 15)))
	assert.True(t, suite.Capacity >= 2)

	// Overlapping search is excluded regardless of guests.
	assert.True(t, existing.OverlapsRange(day(2025, 6, 12), day(2025, 6, 14)))

	// Capacity excludes a party of 5 even on free dates.
	assert.False(t, suite.Capacity >= 5)
}

func TestBookingNights(t *testing.T) {
	b := Booking{CheckIn: day(2025, 6, 10), CheckOut: day(2025, 6, 13)}
	assert.Equal(t, 3, b.Nights())

	one := Booking{CheckIn: day(2025, 6, 10), CheckOut: day(2025, 6, 11)}
	assert.Equal(t, 1, one.Nights())
}
