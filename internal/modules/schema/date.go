package schema

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var errInvalidDate = errors.New("invalid date")

// Date accepts the date shapes produced by the admin forms and spreadsheet
// imports: ISO strings, plain calendar dates and millisecond epochs.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return errInvalidDate
	}
	if s[0] != '"' {
		ms, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errInvalidDate
		}
		d.Time = time.UnixMilli(int64(ms)).UTC()
		return nil
	}
	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return errInvalidDate
	}
	t, err := ParseDate(unquoted)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ParseDate parses s with the accepted layouts. Times without a zone are UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	return time.Time{}, errInvalidDate
}
