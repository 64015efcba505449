package services

import (
	"regexp"
	"strings"

	"caseboard/models"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// NormalizeClient trims every text field
func NormalizeClient(c models.Client) models.Client {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.Type = strings.TrimSpace(c.Type)
	c.DateAdded = strings.TrimSpace(c.DateAdded)
	return c
}

// ValidateClient checks the client form fields
func ValidateClient(c models.Client) error {
	errs := ValidationErrors{}

	if c.Name == "" {
		errs.add("name", "Name is required")
	}
	if c.Email == "" {
		errs.add("email", "Email is required")
	} else if !emailPattern.MatchString(c.Email) {
		errs.add("email", "Invalid email format")
	}
	if c.Phone == "" {
		errs.add("phone", "Phone number is required")
	}
	if !models.IsValidClientType(c.Type) {
		errs.add("type", "Type must be Individual or Company")
	}
	if c.DateAdded != "" && !isDate(c.DateAdded) {
		errs.add("date_added", "Date must use the YYYY-MM-DD format")
	}

	return errs.errOrNil()
}

// NormalizeCase trims every text field
func NormalizeCase(c models.Case) models.Case {
	c.Title = strings.TrimSpace(c.Title)
	c.CaseNumber = strings.TrimSpace(c.CaseNumber)
	c.Client = strings.TrimSpace(c.Client)
	c.Status = strings.TrimSpace(c.Status)
	c.Type = strings.TrimSpace(c.Type)
	c.DateOpened = strings.TrimSpace(c.DateOpened)
	c.Description = strings.TrimSpace(c.Description)
	c.Judge = strings.TrimSpace(c.Judge)
	c.Court = strings.TrimSpace(c.Court)
	c.FilingDate = strings.TrimSpace(c.FilingDate)
	c.HearingDate = strings.TrimSpace(c.HearingDate)
	c.Attorney = strings.TrimSpace(c.Attorney)
	return c
}

// ValidateCase checks the case form fields
func ValidateCase(c models.Case) error {
	errs := ValidationErrors{}

	if c.Title == "" {
		errs.add("title", "Title is required")
	}
	if c.CaseNumber == "" {
		errs.add("case_number", "Case number is required")
	}
	if c.Client == "" {
		errs.add("client", "Client is required")
	}
	if !models.IsValidCaseStatus(c.Status) {
		errs.add("status", "Status must be Active, Pending or Closed")
	}

	dates := map[string]string{
		"date_opened":  c.DateOpened,
		"filing_date":  c.FilingDate,
		"hearing_date": c.HearingDate,
	}
	for field, value := range dates {
		if value != "" && !isDate(value) {
			errs.add(field, "Date must use the YYYY-MM-DD format")
		}
	}

	return errs.errOrNil()
}

// ValidateDocumentCategory checks the upload category
func ValidateDocumentCategory(category string) error {
	if !models.IsValidDocumentCategory(category) {
		return ValidationErrors{"category": "Unknown document category"}
	}
	return nil
}
