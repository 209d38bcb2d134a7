package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{format: "YYYY-M-D", want: "2006-1-2"},
		{format: "YYYY-MM-DD", want: "2006-01-02"},
		{format: "MMM D, YYYY", want: "Jan 2, 2006"},
		{format: "D MMMM YYYY", want: "2 January 2006"},
		{format: "DD/MM/YY", want: "02/01/06"},
		{format: "[YYYY]-MM", want: "YYYY-01"},
		{format: "[Date]: [", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := Layout(tt.format)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("Layout(%q) error = %v, want ErrInvalidDateFormat", tt.format, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Layout(%q) unexpected error: %v", tt.format, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Layout(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Gregorian parsing
// ---------------------------------------------------------------------------

func TestParseGregorian(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "ISO", input: "2024-01-15", want: want},
		{name: "ISO unpadded", input: "2024-1-5", want: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{name: "ISO with surrounding spaces", input: "  2024-01-15\n", want: want},
		{name: "short month name", input: "Jan 15, 2024", want: want},
		{name: "full month name", input: "January 15, 2024", want: want},
		{name: "day first short month", input: "15 Jan 2024", want: want},
		{name: "day first full month", input: "15 January 2024", want: want},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "US numeric is not accepted", input: "01/15/2024", wantErr: true},
		{name: "invalid day", input: "2024-02-31", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseGregorian(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnparsableDate) {
					t.Errorf("ParseGregorian(%q) error = %v, want ErrUnparsableDate", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGregorian(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseGregorian(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestToJalali(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want JalaliDate
	}{
		{
			name: "mid Dey",
			in:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			want: JalaliDate{Year: 1402, Month: 10, Day: 25},
		},
		{
			name: "Nowruz 1403",
			in:   time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			want: JalaliDate{Year: 1403, Month: 1, Day: 1},
		},
		{
			name: "first of Dey 1404",
			in:   time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC),
			want: JalaliDate{Year: 1404, Month: 10, Day: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ToJalali(tt.in); got != tt.want {
				t.Errorf("ToJalali(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestJalaliDate_MonthName(t *testing.T) {
	t.Parallel()

	if got := (JalaliDate{Month: 1}).MonthName(); got != "فروردین" {
		t.Errorf("month 1 = %q, want فروردین", got)
	}
	if got := (JalaliDate{Month: 12}).MonthName(); got != "اسفند" {
		t.Errorf("month 12 = %q, want اسفند", got)
	}
	if got := (JalaliDate{Month: 13}).MonthName(); got != "" {
		t.Errorf("month 13 = %q, want empty", got)
	}
}

func TestPersianDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"0123456789", "۰۱۲۳۴۵۶۷۸۹"},
		{"25 دی 1402", "۲۵ دی ۱۴۰۲"},
		{"no digits", "no digits"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := PersianDigits(tt.in); got != tt.want {
			t.Errorf("PersianDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatJalali(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "two digit day",
			in:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			want: "۲۵ دی ۱۴۰۲",
		},
		{
			name: "single digit day is zero padded",
			in:   time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC),
			want: "۰۹ مهر ۱۴۰۲",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatJalali(tt.in); got != tt.want {
				t.Errorf("FormatJalali(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLocalizeGregorian(t *testing.T) {
	t.Parallel()

	got, ok := LocalizeGregorian("2024-01-15")
	if !ok {
		t.Fatal("LocalizeGregorian(2024-01-15) ok = false, want true")
	}
	if got != "۲۵ دی ۱۴۰۲" {
		t.Errorf("LocalizeGregorian(2024-01-15) = %q, want %q", got, "۲۵ دی ۱۴۰۲")
	}

	if got, ok := LocalizeGregorian("not a date"); ok || got != "" {
		t.Errorf("LocalizeGregorian(not a date) = (%q, %v), want (\"\", false)", got, ok)
	}
}
