package services

import (
	"errors"
	"testing"

	"caseboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClient(t *testing.T) {
	valid := models.Client{
		Name:  "Ann Lee",
		Email: "ann@x.com",
		Phone: "555-0000",
		Type:  models.ClientTypeIndividual,
	}

	tests := []struct {
		name   string
		mutate func(c *models.Client)
		fields map[string]string
	}{
		{"Valid", func(c *models.Client) {}, nil},
		{"Missing name", func(c *models.Client) { c.Name = "" }, map[string]string{"name": "Name is required"}},
		{"Missing email", func(c *models.Client) { c.Email = "" }, map[string]string{"email": "Email is required"}},
		{"Malformed email", func(c *models.Client) { c.Email = "ann.x.com" }, map[string]string{"email": "Invalid email format"}},
		{"Missing phone", func(c *models.Client) { c.Phone = "" }, map[string]string{"phone": "Phone number is required"}},
		{"Bad type", func(c *models.Client) { c.Type = "Trust" }, map[string]string{"type": "Type must be Individual or Company"}},
		{"Bad date", func(c *models.Client) { c.DateAdded = "15/04/2023" }, map[string]string{"date_added": "Date must use the YYYY-MM-DD format"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := ValidateClient(c)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, ValidationErrors(tt.fields), verrs)
		})
	}
}

func TestValidateCase(t *testing.T) {
	err := ValidateCase(models.Case{Status: "Open", HearingDate: "soon"})

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Title is required", verrs["title"])
	assert.Equal(t, "Case number is required", verrs["case_number"])
	assert.Equal(t, "Client is required", verrs["client"])
	assert.Contains(t, verrs, "status")
	assert.Contains(t, verrs, "hearing_date")
	assert.NotContains(t, verrs, "date_opened")

	assert.NoError(t, ValidateCase(models.Case{
		Title:      "Doe v. Roe",
		CaseNumber: "CV-1",
		Client:     "John Doe",
		Status:     models.CaseStatusPending,
		DateOpened: "2024-01-02",
	}))
}

func TestValidationErrorsMessage(t *testing.T) {
	err := ValidationErrors{"phone": "Phone number is required", "email": "Invalid email format"}
	assert.Equal(t, "validation failed: email: Invalid email format; phone: Phone number is required", err.Error())
}

func TestNormalizeClientTrims(t *testing.T) {
	c := NormalizeClient(models.Client{Name: "  Ann  ", Email: " ann@x.com\n"})
	assert.Equal(t, "Ann", c.Name)
	assert.Equal(t, "ann@x.com", c.Email)
}
