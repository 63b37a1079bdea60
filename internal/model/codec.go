package model

import "encoding/json"

// The sequence-valued columns are stored as JSON-encoded text. Encoding
// always produces a valid array ("[]" for nil); decoding anything that is
// not a valid array yields an empty slice so a corrupted column can never
// break the read path.

func EncodeStrings(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func DecodeStrings(s string) []string {
	var v []string
	if err := json.Unmarshal([]byte(s), &v); err != nil || v == nil {
		return []string{}
	}
	return v
}

func EncodeIncomeSources(v []IncomeSource) string {
	if v == nil {
		v = []IncomeSource{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func DecodeIncomeSources(s string) []IncomeSource {
	var v []IncomeSource
	if err := json.Unmarshal([]byte(s), &v); err != nil || v == nil {
		return []IncomeSource{}
	}
	return v
}
