package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// validationFailed collapses field errors into a single DomainError the
// action endpoint can surface as a 400.
func validationFailed(errors []ValidationError) *DomainError {
	parts := make([]string, 0, len(errors))
	for _, e := range errors {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed: " + strings.Join(parts, ", "),
	}
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.RestaurantID) == "" {
		errors = append(errors, ValidationError{"restaurant_id", "is required"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	// Intent is free-form in practice; only reject blatant garbage length-wise.
	if len(input.Intent) > 50 {
		errors = append(errors, ValidationError{"intent", "must not exceed 50 characters"})
	}

	return errors
}

func ValidateCreateReservationInput(input CreateReservationInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.RestaurantID) == "" {
		errors = append(errors, ValidationError{"restaurant_id", "is required"})
	}
	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	}

	if strings.TrimSpace(input.Date) == "" {
		errors = append(errors, ValidationError{"date", "is required"})
	} else if !isValidDate(input.Date) {
		errors = append(errors, ValidationError{"date", "must be a valid date (YYYY-MM-DD)"})
	}

	if strings.TrimSpace(input.Time) == "" {
		errors = append(errors, ValidationError{"time", "is required"})
	} else if !isValidTimeSlot(input.Time) {
		errors = append(errors, ValidationError{"time", "must be HH:MM"})
	}

	if input.Guests <= 0 {
		errors = append(errors, ValidationError{"guests", "must be positive"})
	}

	return errors
}

func ValidateConvertLeadInput(input ConvertLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.LeadID) == "" {
		errors = append(errors, ValidationError{"lead_id", "is required"})
	}
	if strings.TrimSpace(input.RestaurantID) == "" {
		errors = append(errors, ValidationError{"restaurant_id", "is required"})
	}

	if input.Date != "" && !isValidDate(input.Date) {
		errors = append(errors, ValidationError{"date", "must be a valid date (YYYY-MM-DD)"})
	}
	if input.Time != "" && !isValidTimeSlot(input.Time) {
		errors = append(errors, ValidationError{"time", "must be HH:MM"})
	}
	if input.Guests < 0 {
		errors = append(errors, ValidationError{"guests", "must be positive"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")

	return len(cleaned) >= 8 && len(cleaned) <= 15
}

func isValidDate(dateStr string) bool {
	if _, err := time.Parse("2006-01-02", dateStr); err == nil {
		return true
	}

	if _, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return true
	}

	return false
}

func isValidTimeSlot(timeStr string) bool {
	return regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`).MatchString(timeStr)
}
