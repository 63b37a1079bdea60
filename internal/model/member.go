package model

import "time"

// Enum value sets shared by validation, storage, and the form UI.
var (
	Roles          = []string{"dad", "mom", "child", "grandparent", "family_member", "roommate", "other"}
	Sexes          = []string{"male", "female", "other"}
	ActivityLevels = []string{"sedentary", "light", "moderate", "active", "very_active"}
	Frequencies    = []string{"daily", "weekly", "bi-weekly", "bi-monthly", "monthly", "quarterly", "semi-annually", "annually"}
)

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func ValidRole(v string) bool          { return contains(Roles, v) }
func ValidSex(v string) bool           { return contains(Sexes, v) }
func ValidActivityLevel(v string) bool { return contains(ActivityLevels, v) }
func ValidFrequency(v string) bool     { return contains(Frequencies, v) }

// IncomeSource is one entry in a member's income_sources column.
type IncomeSource struct {
	Source    string   `json:"source"`
	Amount    *float64 `json:"amount,omitempty"`
	Frequency string   `json:"frequency,omitempty"`
}

// Payload holds the validated, normalized mutable fields of a member.
// Sequence fields are never nil after validation. Empty strings mean
// "not provided" for the optional text fields.
type Payload struct {
	Name          string
	Role          string
	Photo         string
	DateOfBirth   string
	Sex           string
	Height        *float64
	Weight        *float64
	ActivityLevel string
	Allergens     []string
	Exclusions    []string
	Likes         []string
	Dislikes      []string
	Medications   []string
	IncomeSources []IncomeSource
	MedicalNotes  string
}

// Member is a stored household member with structured sequence fields.
type Member struct {
	ID            int64
	Name          string
	Role          string
	Photo         string
	DateOfBirth   string
	Sex           string
	Height        *float64
	Weight        *float64
	ActivityLevel string
	Allergens     []string
	Exclusions    []string
	Likes         []string
	Dislikes      []string
	Medications   []string
	IncomeSources []IncomeSource
	MedicalNotes  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MemberRow is the wire shape of a stored row. Sequence fields stay
// JSON-encoded text, exactly as persisted; clients decode them. Changing
// this would break existing consumers.
type MemberRow struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	Photo         *string   `json:"photo"`
	DateOfBirth   *string   `json:"dateOfBirth"`
	Sex           string    `json:"sex"`
	Height        *float64  `json:"height"`
	Weight        *float64  `json:"weight"`
	ActivityLevel string    `json:"activityLevel"`
	Allergens     string    `json:"allergens"`
	Exclusions    string    `json:"exclusions"`
	Likes         string    `json:"likes"`
	Dislikes      string    `json:"dislikes"`
	Medications   string    `json:"medications"`
	IncomeSources string    `json:"incomeSources"`
	MedicalNotes  *string   `json:"medicalNotes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RowFromMember builds the wire row for a member, JSON-encoding the
// sequence fields and mapping absent optionals to null.
func RowFromMember(m Member) MemberRow {
	return MemberRow{
		ID:            m.ID,
		Name:          m.Name,
		Role:          m.Role,
		Photo:         optString(m.Photo),
		DateOfBirth:   optString(m.DateOfBirth),
		Sex:           m.Sex,
		Height:        m.Height,
		Weight:        m.Weight,
		ActivityLevel: m.ActivityLevel,
		Allergens:     EncodeStrings(m.Allergens),
		Exclusions:    EncodeStrings(m.Exclusions),
		Likes:         EncodeStrings(m.Likes),
		Dislikes:      EncodeStrings(m.Dislikes),
		Medications:   EncodeStrings(m.Medications),
		IncomeSources: EncodeIncomeSources(m.IncomeSources),
		MedicalNotes:  optString(m.MedicalNotes),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
