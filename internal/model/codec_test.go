package model

import (
	"reflect"
	"testing"
)

func TestStringsRoundTrip(t *testing.T) {
	cases := [][]string{
		{},
		{"peanuts"},
		{"peanuts", "shellfish", "tree nuts"},
		{"comma, inside", `quote " inside`},
	}
	for _, seq := range cases {
		got := DecodeStrings(EncodeStrings(seq))
		if !reflect.DeepEqual(got, seq) {
			t.Errorf("round trip of %v = %v", seq, got)
		}
	}
}

func TestEncodeStringsNil(t *testing.T) {
	if got := EncodeStrings(nil); got != "[]" {
		t.Errorf("EncodeStrings(nil) = %q, want %q", got, "[]")
	}
}

func TestDecodeStringsCorruptInput(t *testing.T) {
	for _, s := range []string{"", "null", "not json", `{"a":1}`, `[1,2,3]`, `["ok",`} {
		got := DecodeStrings(s)
		if got == nil || len(got) != 0 {
			t.Errorf("DecodeStrings(%q) = %v, want empty slice", s, got)
		}
	}
}

func TestIncomeSourcesRoundTrip(t *testing.T) {
	amount := 250.0
	seq := []IncomeSource{
		{Source: "salary", Amount: &amount, Frequency: "monthly"},
		{Source: "gifts"},
	}
	got := DecodeIncomeSources(EncodeIncomeSources(seq))
	if !reflect.DeepEqual(got, seq) {
		t.Errorf("round trip = %+v, want %+v", got, seq)
	}
}

func TestDecodeIncomeSourcesCorruptInput(t *testing.T) {
	for _, s := range []string{"", "null", "oops", `{"source":"x"}`} {
		got := DecodeIncomeSources(s)
		if got == nil || len(got) != 0 {
			t.Errorf("DecodeIncomeSources(%q) = %v, want empty slice", s, got)
		}
	}
}

func TestRowFromMemberOptionals(t *testing.T) {
	row := RowFromMember(Member{Name: "Ana"})
	if row.Photo != nil || row.DateOfBirth != nil || row.MedicalNotes != nil {
		t.Error("absent optionals should map to null")
	}
	if row.Allergens != "[]" || row.IncomeSources != "[]" {
		t.Errorf("empty sequences should encode as [], got %q / %q", row.Allergens, row.IncomeSources)
	}

	notes := "peanut allergy"
	row = RowFromMember(Member{Name: "Ana", MedicalNotes: notes})
	if row.MedicalNotes == nil || *row.MedicalNotes != notes {
		t.Errorf("medicalNotes = %v", row.MedicalNotes)
	}
}
