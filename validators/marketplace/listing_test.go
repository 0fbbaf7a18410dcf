package marketplaceValidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestValidateListing(t *testing.T) {
	tests := []struct {
		name    string
		listing ListingForm
		want    bool
	}{
		{
			"all fields present",
			ListingForm{Image: strPtr("photo.jpg"), Name: "Mehndi cones", Price: "120"},
			true,
		},
		{
			"nil image",
			ListingForm{Image: nil, Name: "Mehndi cones", Price: "120"},
			false,
		},
		{
			"blank image",
			ListingForm{Image: strPtr("   "), Name: "Mehndi cones", Price: "120"},
			false,
		},
		{
			"blank name",
			ListingForm{Image: strPtr("photo.jpg"), Name: "  ", Price: "120"},
			false,
		},
		{
			"blank price",
			ListingForm{Image: strPtr("photo.jpg"), Name: "Mehndi cones", Price: ""},
			false,
		},
		{
			"whitespace price",
			ListingForm{Image: strPtr("photo.jpg"), Name: "Mehndi cones", Price: "  "},
			false,
		},
		{
			"only price present",
			ListingForm{Image: nil, Name: " ", Price: "120"},
			false,
		},
		{
			"only name present",
			ListingForm{Image: strPtr(""), Name: "Mehndi cones", Price: " "},
			false,
		},
		{
			"only image present",
			ListingForm{Image: strPtr("photo.jpg"), Name: "", Price: ""},
			false,
		},
		{
			"everything blank",
			ListingForm{},
			false,
		},
		{
			// Only non-blankness is checked; a non-numeric price passes here
			// and fails later at the decimal column.
			"non numeric price accepted",
			ListingForm{Image: strPtr("photo.jpg"), Name: "Mehndi cones", Price: "cheap"},
			true,
		},
		{
			"description never required",
			ListingForm{Image: strPtr("photo.jpg"), Name: "Mehndi cones", Description: "", Price: "120"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateListing(tt.listing))
		})
	}
}
