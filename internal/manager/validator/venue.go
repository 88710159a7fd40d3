package validator

import (
	"errors"
	"fmt"
	"regexp"

	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/model"

	"github.com/go-playground/validator/v10"
)

var hhmmRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type VenueValidator struct {
	validate *validator.Validate
}

func NewVenueValidator() *VenueValidator {
	return &VenueValidator{validate: validator.New()}
}

func (v *VenueValidator) Validate(venue *model.Venue) error {
	details := make(map[string]any)

	if venue.Name == "" {
		details["Name"] = "this field is required"
	}
	if venue.Address == "" {
		details["Address"] = "this field is required"
	}
	if venue.City == "" {
		details["City"] = "this field is required"
	}
	if venue.PricePerHour <= 0 {
		details["PricePerHour"] = "must be a positive amount"
	}
	if venue.Capacity <= 0 {
		details["Capacity"] = "must be a positive number"
	}
	if err := validateSchedules(venue.Schedules); err != nil {
		details["Schedules"] = err.Error()
	}

	if len(details) > 0 {
		return apperrors.Validation("venue is invalid", details)
	}
	return nil
}

func (v *VenueValidator) ValidateUpdate(updates *model.VenueUpdate) error {
	if err := v.validate.Struct(updates); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make(map[string]any, len(verrs))
			for _, fe := range verrs {
				details[fe.Field()] = fmt.Sprintf("failed validation on '%s'", fe.Tag())
			}
			return apperrors.Validation("venue update is invalid", details)
		}
		return err
	}
	if err := validateSchedules(updates.Schedules); err != nil {
		return apperrors.Validation("venue update is invalid", map[string]any{"Schedules": err.Error()})
	}
	return nil
}

func validateSchedules(schedules []model.VenueSchedule) error {
	for i, sched := range schedules {
		if sched.DayOfWeek < 0 || sched.DayOfWeek > 6 {
			return fmt.Errorf("schedule %d: day_of_week must be 0-6", i)
		}
		if !hhmmRegex.MatchString(sched.OpenTime) || !hhmmRegex.MatchString(sched.CloseTime) {
			return fmt.Errorf("schedule %d: open_time and close_time must be HH:MM", i)
		}
		if sched.IsAvailable && sched.CloseTime <= sched.OpenTime {
			return fmt.Errorf("schedule %d: close_time must be after open_time", i)
		}
	}
	return nil
}
