package codec

import (
	"fmt"
	"strconv"
	"time"

	"github.com/iac-appeals/aip-sync/internal/model"
)

// dayMonthYearFormat is the display format for deadlines ("22 February 2020").
const dayMonthYearFormat = "02 January 2006"

// isoDateFormat is the CCD date format for date-only fields.
const isoDateFormat = "2006-01-02"

// ccdTimestampFormat is the millisecond timestamp CCD uses on history events
// and audit dates. No zone suffix.
const ccdTimestampFormat = "2006-01-02T15:04:05.000"

// ToIsoDate normalizes a journey date to YYYY-MM-DD, zero-padding single
// digit day and month components. Normalization is idempotent: a triple whose
// components are already padded encodes to the same string.
//
// Non-numeric components indicate upstream corruption and surface as an
// error; this layer never silently defaults a date.
func ToIsoDate(d model.AppealDate) (string, error) {
	year, err := strconv.Atoi(d.Year)
	if err != nil {
		return "", fmt.Errorf("malformed date year %q: %w", d.Year, err)
	}
	month, err := strconv.Atoi(d.Month)
	if err != nil {
		return "", fmt.Errorf("malformed date month %q: %w", d.Month, err)
	}
	day, err := strconv.Atoi(d.Day)
	if err != nil {
		return "", fmt.Errorf("malformed date day %q: %w", d.Day, err)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("date out of range: %04d-%02d-%02d", year, month, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}

// FromCcdDate splits a CCD date (date-only or timestamped) back into the
// journey triple. Components are unpadded, matching what the forms post. A
// missing value maps to nil rather than a zero triple.
func FromCcdDate(ccdDate string) (*model.AppealDate, error) {
	if ccdDate == "" {
		return nil, nil
	}
	t, err := parseCcdTime(ccdDate)
	if err != nil {
		return nil, fmt.Errorf("malformed ccd date %q: %w", ccdDate, err)
	}
	return &model.AppealDate{
		Year:  strconv.Itoa(t.Year()),
		Month: strconv.Itoa(int(t.Month())),
		Day:   strconv.Itoa(t.Day()),
	}, nil
}

// FormatDayMonthYear renders a CCD date or timestamp for display, e.g.
// "07 May 2020".
func FormatDayMonthYear(ccdDate string) (string, error) {
	t, err := parseCcdTime(ccdDate)
	if err != nil {
		return "", fmt.Errorf("malformed ccd date %q: %w", ccdDate, err)
	}
	return t.Format(dayMonthYearFormat), nil
}

func parseCcdTime(s string) (time.Time, error) {
	for _, layout := range []string{isoDateFormat, ccdTimestampFormat, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date layout")
}
