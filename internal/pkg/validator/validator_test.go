package validator

import (
	"testing"
	"time"
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

func TestIsValidRFC(t *testing.T) {
	valid := []string{"ABC010203XY1", "GODE561231GR8", "abc010203xy1"}
	invalid := []string{"", "AB010203XY1", "ABC0102XY1", "ABC010203XY12"}
	for _, rfc := range valid {
		if !IsValidRFC(rfc) {
			t.Errorf("IsValidRFC(%q) = false, want true", rfc)
		}
	}
	for _, rfc := range invalid {
		if IsValidRFC(rfc) {
			t.Errorf("IsValidRFC(%q) = true, want false", rfc)
		}
	}
}

func TestTooLong(t *testing.T) {
	if TooLong("ñandú", 5) {
		t.Error("TooLong counts bytes instead of runes")
	}
	if !TooLong("abcdef", 5) {
		t.Error("TooLong(abcdef, 5) = false, want true")
	}
}

func TestParseDay(t *testing.T) {
	mx, err := time.LoadLocation("America/Mexico_City")
	if err != nil {
		t.Skip("tzdata not available")
	}
	cases := []struct {
		input string
		loc   *time.Location
		want  time.Time
		ok    bool
	}{
		{"2024-03-15", time.UTC, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024-03-15T23:30:00Z", time.UTC, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024-03-16T02:00:00Z", mx, time.Date(2024, 3, 15, 0, 0, 0, 0, mx), true},
		{"15/03/2024", time.UTC, time.Time{}, false},
		{"", time.UTC, time.Time{}, false},
	}
	for _, c := range cases {
		got, err := ParseDay(c.input, c.loc)
		if (err == nil) != c.ok {
			t.Errorf("ParseDay(%q) err = %v, want ok=%v", c.input, err, c.ok)
			continue
		}
		if c.ok && !got.Equal(c.want) {
			t.Errorf("ParseDay(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input string
		want  time.Duration
		ok    bool
	}{
		{"08:00", 8 * time.Hour, true},
		{"08:15:30", 8*time.Hour + 15*time.Minute + 30*time.Second, true},
		{"23:59:59", 23*time.Hour + 59*time.Minute + 59*time.Second, true},
		{"24:00", 0, false},
		{"8am", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseClock(c.input)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseClock(%q) = %v, %v; want %v, %v", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	single := New("employeeId", "employee not found or inactive")
	if single.Message() != "employee not found or inactive" {
		t.Errorf("Message() = %q", single.Message())
	}

	multi := ValidationErrors{{"a", "x"}, {"b", "y"}}
	if multi.Message() != "validation failed" {
		t.Errorf("Message() = %q", multi.Message())
	}
	if multi.Error() != "a: x; b: y" {
		t.Errorf("Error() = %q", multi.Error())
	}
	if m := multi.ToMap(); m["a"] != "x" || m["b"] != "y" {
		t.Errorf("ToMap() = %v", m)
	}
}
