package validators

import (
	"testing"

	"github.com/nyaruka/phonenumbers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleNational(t *testing.T, region string) string {
	t.Helper()
	num := phonenumbers.GetExampleNumber(region)
	require.NotNil(t, num, "no example number for %s", region)
	return phonenumbers.GetNationalSignificantNumber(num)
}

func TestPhoneValidator_DefaultRegion(t *testing.T) {
	v := NewPhoneValidator("")
	assert.Equal(t, "IN", v.Region())

	indian := exampleNational(t, "IN")

	tests := []struct {
		name    string
		number  string
		wantErr bool
	}{
		{"national indian number", indian, false},
		{"with country code", "+91" + indian, false},
		{"not a number", "not-a-number", true},
		{"too short", "12345", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.number)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPhoneValidator_ConfigurableRegion(t *testing.T) {
	us := NewPhoneValidator(" us ")
	assert.Equal(t, "US", us.Region())

	usNumber := exampleNational(t, "US")
	assert.NoError(t, us.Validate(usNumber))

	// An explicit country code wins over the default region.
	in := NewPhoneValidator("IN")
	assert.NoError(t, in.Validate("+1"+usNumber))
}
