package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
	}
	invalid := []string{
		"123e4567e89b12d3a456426614174000",     // missing dashes
		"g23e4567-e89b-12d3-a456-426614174000", // invalid hex
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-03-15"); !ok {
		t.Error("IsValidDate(2024-03-15) = false, want true")
	}
	for _, bad := range []string{"2024-13-01", "15-03-2024", "2024-03-32", "yesterday", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "08:30", "9:05", "23:59"}
	invalid := []string{"24:00", "12:60", "8:5", "08-30", "noon", ""}
	for _, clock := range valid {
		if !IsValidClockTime(clock) {
			t.Errorf("IsValidClockTime(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClockTime(clock) {
			t.Errorf("IsValidClockTime(%q) = true, want false", clock)
		}
	}
}

func TestIsValidOrgCode(t *testing.T) {
	valid := []string{"ABC123", "ZZZZZZ", "000000"}
	invalid := []string{"abc123", "ABC12", "ABC1234", "ABC-12", ""}
	for _, code := range valid {
		if !IsValidOrgCode(code) {
			t.Errorf("IsValidOrgCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidOrgCode(code) {
			t.Errorf("IsValidOrgCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidMonthYear(t *testing.T) {
	if !IsValidMonth(0) || !IsValidMonth(11) {
		t.Error("months 0 and 11 should be valid")
	}
	if IsValidMonth(-1) || IsValidMonth(12) {
		t.Error("months -1 and 12 should be invalid")
	}
	if !IsValidYear(2024) {
		t.Error("year 2024 should be valid")
	}
	if IsValidYear(1999) || IsValidYear(2101) {
		t.Error("years 1999 and 2101 should be invalid")
	}
}
