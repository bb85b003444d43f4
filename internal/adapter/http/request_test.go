package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() SearchHomesRequest {
	return SearchHomesRequest{
		StartDate: "2025-01-10",
		EndDate:   "2025-01-20",
	}
}

func TestSearchHomesRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *SearchHomesRequest)
		wantField string
	}{
		{
			name:   "minimal valid request",
			mutate: func(r *SearchHomesRequest) {},
		},
		{
			name: "fully specified valid request",
			mutate: func(r *SearchHomesRequest) {
				r.Regions = []string{"Rockies"}
				r.MileRange = 20
				r.DateType = "exact"
				r.MinNights = 3
				r.NumberOfPeople = 4
				r.PetsAllowed = true
			},
		},
		{
			name:      "missing start date",
			mutate:    func(r *SearchHomesRequest) { r.StartDate = "" },
			wantField: "startDate",
		},
		{
			name:      "missing end date",
			mutate:    func(r *SearchHomesRequest) { r.EndDate = "" },
			wantField: "endDate",
		},
		{
			name:      "wrong date format",
			mutate:    func(r *SearchHomesRequest) { r.StartDate = "10/01/2025" },
			wantField: "startDate",
		},
		{
			name:      "negative mile range",
			mutate:    func(r *SearchHomesRequest) { r.MileRange = -1 },
			wantField: "mileRange",
		},
		{
			name:      "unknown date type",
			mutate:    func(r *SearchHomesRequest) { r.DateType = "approximate" },
			wantField: "dateType",
		},
		{
			name:      "negative min nights",
			mutate:    func(r *SearchHomesRequest) { r.MinNights = -2 },
			wantField: "minNights",
		},
		{
			name:      "negative guest count",
			mutate:    func(r *SearchHomesRequest) { r.NumberOfPeople = -1 },
			wantField: "numberOfPeople",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestSearchHomesRequestValidateCollectsAllErrors(t *testing.T) {
	req := SearchHomesRequest{
		MileRange: -1,
		MinNights: -1,
	}

	err := req.Validate()

	require.Error(t, err)
	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := verrs.ToMap()
	assert.Contains(t, fields, "startDate")
	assert.Contains(t, fields, "endDate")
	assert.Contains(t, fields, "mileRange")
	assert.Contains(t, fields, "minNights")
}

func TestSendOTPRequestValidate(t *testing.T) {
	assert.NoError(t, (&SendOTPRequest{Email: "user@example.com"}).Validate())
	assert.Error(t, (&SendOTPRequest{}).Validate())
	assert.Error(t, (&SendOTPRequest{Email: "user@nodomain"}).Validate())
}

func TestVerifyOTPRequestValidate(t *testing.T) {
	assert.NoError(t, (&VerifyOTPRequest{Email: "user@example.com", OTP: "123456"}).Validate())
	assert.Error(t, (&VerifyOTPRequest{Email: "user@example.com"}).Validate())
	assert.Error(t, (&VerifyOTPRequest{OTP: "123456"}).Validate())
}

func TestValidationErrorsError(t *testing.T) {
	errs := &ValidationErrors{}
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add("startDate", "startDate is required")
	errs.Add("endDate", "endDate is required")
	assert.Equal(t, "startDate is required", errs.Error(), "first error leads")
	assert.True(t, errs.HasErrors())
}
