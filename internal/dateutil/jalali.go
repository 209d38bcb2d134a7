package dateutil

import (
	"fmt"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// JalaliMonthNames are the Persian month names, Farvardin first.
var JalaliMonthNames = [12]string{
	"فروردین",
	"اردیبهشت",
	"خرداد",
	"تیر",
	"مرداد",
	"شهریور",
	"مهر",
	"آبان",
	"آذر",
	"دی",
	"بهمن",
	"اسفند",
}

// JalaliDate is a calendar date in the Jalali calendar.
type JalaliDate struct {
	Year  int
	Month int // 1-12
	Day   int
}

// MonthName returns the Persian name of the month, or "" if out of range.
func (d JalaliDate) MonthName() string {
	if d.Month < 1 || d.Month > 12 {
		return ""
	}
	return JalaliMonthNames[d.Month-1]
}

// String renders the date as "DD <month> YYYY" with ASCII digits.
func (d JalaliDate) String() string {
	return fmt.Sprintf("%02d %s %d", d.Day, d.MonthName(), d.Year)
}

// ToJalali converts the calendar day of t to the Jalali calendar.
func ToJalali(t time.Time) JalaliDate {
	pt := ptime.New(t)
	return JalaliDate{
		Year:  pt.Year(),
		Month: int(pt.Month()),
		Day:   pt.Day(),
	}
}

var persianDigits = strings.NewReplacer(
	"0", "۰", "1", "۱", "2", "۲", "3", "۳", "4", "۴",
	"5", "۵", "6", "۶", "7", "۷", "8", "۸", "9", "۹",
)

// PersianDigits replaces ASCII digits with Extended Arabic-Indic digits.
func PersianDigits(s string) string {
	return persianDigits.Replace(s)
}

// FormatJalali renders t as "DD <month> YYYY" in Persian digits,
// e.g. 2024-01-15 becomes "۲۵ دی ۱۴۰۲".
func FormatJalali(t time.Time) string {
	return PersianDigits(ToJalali(t).String())
}

// LocalizeGregorian parses a Gregorian date string and formats it with
// FormatJalali. The boolean is false when the value cannot be parsed.
func LocalizeGregorian(s string) (string, bool) {
	t, err := ParseGregorian(s)
	if err != nil {
		return "", false
	}
	return FormatJalali(t), true
}
