package validate

import (
	"errors"
	"strings"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func validInput() MemberInput {
	return MemberInput{
		Name:          "Ana",
		Role:          "mom",
		Sex:           "female",
		ActivityLevel: "sedentary",
	}
}

func TestMemberMinimalValid(t *testing.T) {
	p, err := Member(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Ana" {
		t.Errorf("name = %q, want %q", p.Name, "Ana")
	}
	if p.Height != nil || p.Weight != nil {
		t.Error("expected height and weight to be absent")
	}
	for field, seq := range map[string][]string{
		"allergens":   p.Allergens,
		"exclusions":  p.Exclusions,
		"likes":       p.Likes,
		"dislikes":    p.Dislikes,
		"medications": p.Medications,
	} {
		if seq == nil || len(seq) != 0 {
			t.Errorf("%s = %v, want empty slice", field, seq)
		}
	}
	if p.IncomeSources == nil || len(p.IncomeSources) != 0 {
		t.Errorf("incomeSources = %v, want empty slice", p.IncomeSources)
	}
}

func TestMemberRequiredFields(t *testing.T) {
	_, err := Member(MemberInput{})
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	for _, field := range []string{"name", "role", "sex", "activityLevel"} {
		if _, ok := fe[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, fe)
		}
	}
}

func TestMemberNameRules(t *testing.T) {
	in := validInput()
	in.Name = "   "
	if _, err := Member(in); err == nil {
		t.Error("whitespace-only name should fail")
	}

	in.Name = strings.Repeat("a", 101)
	_, err := Member(in)
	var fe FieldErrors
	if !errors.As(err, &fe) || fe["name"] == "" {
		t.Errorf("over-long name should fail on name, got %v", err)
	}

	in.Name = "  Ana  "
	p, err := Member(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Ana" {
		t.Errorf("name not trimmed: %q", p.Name)
	}
}

func TestMemberEnumRules(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*MemberInput)
	}{
		{"role", func(in *MemberInput) { in.Role = "uncle" }},
		{"sex", func(in *MemberInput) { in.Sex = "unknown" }},
		{"activityLevel", func(in *MemberInput) { in.ActivityLevel = "lightly-active" }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		_, err := Member(in)
		var fe FieldErrors
		if !errors.As(err, &fe) || fe[tc.field] == "" {
			t.Errorf("%s: expected field error, got %v", tc.field, err)
		}
	}
}

func TestMemberHeightFromFeetInches(t *testing.T) {
	in := validInput()
	in.HeightFeet = ptr(5.0)
	in.HeightInches = ptr(6.0)
	p, err := Member(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Height == nil || *p.Height != 66 {
		t.Errorf("height = %v, want 66", p.Height)
	}
}

func TestMemberHeightZeroIsAbsent(t *testing.T) {
	in := validInput()
	in.Height = ptr(0.0)
	p, err := Member(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Height != nil {
		t.Errorf("height = %v, want nil", p.Height)
	}

	in = validInput()
	in.HeightFeet = ptr(0.0)
	in.HeightInches = ptr(0.0)
	p, err = Member(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Height != nil {
		t.Errorf("height from 0'0\" = %v, want nil", p.Height)
	}
}

func TestMemberHeightRange(t *testing.T) {
	in := validInput()
	in.Height = ptr(200.0)
	_, err := Member(in)
	var fe FieldErrors
	if !errors.As(err, &fe) || fe["height"] == "" {
		t.Errorf("expected height error, got %v", err)
	}

	in = validInput()
	in.HeightFeet = ptr(12.0)
	_, err = Member(in)
	if !errors.As(err, &fe) || fe["heightFeet"] == "" {
		t.Errorf("expected heightFeet error, got %v", err)
	}
}

func TestMemberWeightRange(t *testing.T) {
	in := validInput()
	in.Weight = ptr(3000.0)
	_, err := Member(in)
	var fe FieldErrors
	if !errors.As(err, &fe) || fe["weight"] == "" {
		t.Errorf("expected weight error, got %v", err)
	}

	// Zero means not specified, same as the height rule.
	in.Weight = ptr(0.0)
	p, err := Member(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Weight != nil {
		t.Errorf("weight = %v, want nil", p.Weight)
	}
}

func TestMemberDateOfBirth(t *testing.T) {
	in := validInput()
	in.DateOfBirth = "not-a-date"
	_, err := Member(in)
	var fe FieldErrors
	if !errors.As(err, &fe) || fe["dateOfBirth"] == "" {
		t.Errorf("expected dateOfBirth error, got %v", err)
	}

	in.DateOfBirth = "1990-04-01"
	p, err := Member(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.DateOfBirth != "1990-04-01" {
		t.Errorf("dateOfBirth = %q", p.DateOfBirth)
	}
}

func TestMemberIncomeSources(t *testing.T) {
	in := validInput()
	in.IncomeSources = []IncomeSourceInput{
		{Source: ptr("salary"), Amount: ptr(1000.0), Frequency: "monthly"},
		{Source: nil},
		{Source: ptr("tips"), Amount: ptr(-5.0)},
		{Source: ptr("bonus"), Frequency: "sometimes"},
	}
	_, err := Member(in)
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	for _, field := range []string{"incomeSources[1].source", "incomeSources[2].amount", "incomeSources[3].frequency"} {
		if fe[field] == "" {
			t.Errorf("expected error for %s, got %v", field, fe)
		}
	}

	in.IncomeSources = in.IncomeSources[:1]
	p, err := Member(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.IncomeSources) != 1 || p.IncomeSources[0].Source != "salary" {
		t.Errorf("incomeSources = %+v", p.IncomeSources)
	}
}
