package validate

import (
	"fmt"
	"strings"
	"time"

	"homeroster/internal/model"
)

const maxNameLength = 100

// FieldErrors maps an offending field name to a human-readable message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IncomeSourceInput is one unvalidated income source entry. Source is a
// pointer so a missing key can be told apart from an empty string.
type IncomeSourceInput struct {
	Source    *string  `json:"source"`
	Amount    *float64 `json:"amount"`
	Frequency string   `json:"frequency"`
}

// MemberInput is the raw request body for create and update. Height may
// arrive either as feet+inches (form entry units) or as a precomputed
// total in inches.
type MemberInput struct {
	Name          string              `json:"name"`
	Role          string              `json:"role"`
	Photo         string              `json:"photo"`
	DateOfBirth   string              `json:"dateOfBirth"`
	Sex           string              `json:"sex"`
	HeightFeet    *float64            `json:"heightFeet"`
	HeightInches  *float64            `json:"heightInches"`
	Height        *float64            `json:"height"`
	Weight        *float64            `json:"weight"`
	ActivityLevel string              `json:"activityLevel"`
	Allergens     []string            `json:"allergens"`
	Exclusions    []string            `json:"exclusions"`
	Likes         []string            `json:"likes"`
	Dislikes      []string            `json:"dislikes"`
	Medications   []string            `json:"medications"`
	IncomeSources []IncomeSourceInput `json:"incomeSources"`
	MedicalNotes  string              `json:"medicalNotes"`
}

// Member validates and normalizes input into a payload ready for the
// store. On failure it returns FieldErrors and an empty payload; a
// mutation is never partially applied.
func Member(in MemberInput) (model.Payload, error) {
	errs := FieldErrors{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs["name"] = "Name is required"
	} else if len(name) > maxNameLength {
		errs["name"] = "Name must be less than 100 characters"
	}

	if in.Role == "" {
		errs["role"] = "Role is required"
	} else if !model.ValidRole(in.Role) {
		errs["role"] = "Role must be one of: " + strings.Join(model.Roles, ", ")
	}

	if in.Sex == "" {
		errs["sex"] = "Sex is required"
	} else if !model.ValidSex(in.Sex) {
		errs["sex"] = "Sex must be one of: " + strings.Join(model.Sexes, ", ")
	}

	if in.ActivityLevel == "" {
		errs["activityLevel"] = "Activity level is required"
	} else if !model.ValidActivityLevel(in.ActivityLevel) {
		errs["activityLevel"] = "Activity level must be one of: " + strings.Join(model.ActivityLevels, ", ")
	}

	if in.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", in.DateOfBirth); err != nil {
			errs["dateOfBirth"] = "Date of birth must be an ISO date (YYYY-MM-DD)"
		}
	}

	height := resolveHeight(in, errs)

	var weight *float64
	if in.Weight != nil && *in.Weight != 0 {
		if *in.Weight < 1 || *in.Weight > 2000 {
			errs["weight"] = "Weight must be between 1 and 2000 pounds"
		} else {
			w := *in.Weight
			weight = &w
		}
	}

	sources := make([]model.IncomeSource, 0, len(in.IncomeSources))
	for i, src := range in.IncomeSources {
		field := fmt.Sprintf("incomeSources[%d]", i)
		if src.Source == nil {
			errs[field+".source"] = "Source is required"
			continue
		}
		if src.Amount != nil && *src.Amount < 0 {
			errs[field+".amount"] = "Amount must be 0 or greater"
		}
		if src.Frequency != "" && !model.ValidFrequency(src.Frequency) {
			errs[field+".frequency"] = "Frequency must be one of: " + strings.Join(model.Frequencies, ", ")
		}
		sources = append(sources, model.IncomeSource{
			Source:    *src.Source,
			Amount:    src.Amount,
			Frequency: src.Frequency,
		})
	}

	if len(errs) > 0 {
		return model.Payload{}, errs
	}

	return model.Payload{
		Name:          name,
		Role:          in.Role,
		Photo:         in.Photo,
		DateOfBirth:   in.DateOfBirth,
		Sex:           in.Sex,
		Height:        height,
		Weight:        weight,
		ActivityLevel: in.ActivityLevel,
		Allergens:     orEmpty(in.Allergens),
		Exclusions:    orEmpty(in.Exclusions),
		Likes:         orEmpty(in.Likes),
		Dislikes:      orEmpty(in.Dislikes),
		Medications:   orEmpty(in.Medications),
		IncomeSources: sources,
		MedicalNotes:  in.MedicalNotes,
	}, nil
}

// resolveHeight turns whichever height representation was supplied into a
// total-inches value. A total of 0 means "not specified", not a height.
func resolveHeight(in MemberInput, errs FieldErrors) *float64 {
	if in.Height != nil {
		total := *in.Height
		if total == 0 {
			return nil
		}
		if total < 12 || total > 120 {
			errs["height"] = "Height must be between 12 and 120 inches"
			return nil
		}
		return &total
	}

	if in.HeightFeet == nil && in.HeightInches == nil {
		return nil
	}

	var feet, inches float64
	if in.HeightFeet != nil {
		feet = *in.HeightFeet
	}
	if in.HeightInches != nil {
		inches = *in.HeightInches
	}
	if feet == 0 && inches == 0 {
		return nil
	}
	if feet < 1 || feet > 10 {
		errs["heightFeet"] = "Feet must be between 1 and 10"
	}
	if inches < 0 || inches > 11 {
		errs["heightInches"] = "Inches must be between 0 and 11"
	}
	if len(errs) > 0 {
		return nil
	}

	total := TotalInches(feet, inches)
	if total < 12 || total > 120 {
		errs["height"] = "Height must be between 12 and 120 inches"
		return nil
	}
	return &total
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
