package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	def := 30 * time.Minute

	if got := ParseDuration("2h", def); got != 2*time.Hour {
		t.Errorf("ParseDuration(\"2h\") = %v, want 2h", got)
	}
	if got := ParseDuration("not-a-duration", def); got != def {
		t.Errorf("ParseDuration(invalid) = %v, want default %v", got, def)
	}
}

func TestDateRoundTrip(t *testing.T) {
	date, err := ParseDate("2024-03-01")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got := FormatDate(date); got != "2024-03-01" {
		t.Errorf("FormatDate(ParseDate()) = %q, want %q", got, "2024-03-01")
	}

	if _, err := ParseDate("01-03-2024"); err == nil {
		t.Error("ParseDate() accepted a date in the wrong layout")
	}
}

func TestToday(t *testing.T) {
	today := Today()
	if today.Location() != time.UTC {
		t.Errorf("Today() location = %v, want UTC", today.Location())
	}
	h, m, s := today.Clock()
	if h != 0 || m != 0 || s != 0 {
		t.Errorf("Today() = %v, want midnight", today)
	}
}

func TestGetNullString(t *testing.T) {
	if ns := GetNullString(nil); ns.Valid {
		t.Error("GetNullString(nil).Valid = true, want false")
	}
	v := "token"
	ns := GetNullString(&v)
	if !ns.Valid || ns.String != "token" {
		t.Errorf("GetNullString(&v) = %+v, want valid %q", ns, v)
	}
}

func TestGetNullInt64(t *testing.T) {
	if ni := GetNullInt64(nil); ni.Valid {
		t.Error("GetNullInt64(nil).Valid = true, want false")
	}
	v := int64(42)
	ni := GetNullInt64(&v)
	if !ni.Valid || ni.Int64 != 42 {
		t.Errorf("GetNullInt64(&v) = %+v, want valid 42", ni)
	}
}
