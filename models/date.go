package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// dateLayouts are the accepted wire formats for transaction dates,
// tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// Date is a transaction date. On the wire it accepts both RFC 3339
// timestamps and plain "YYYY-MM-DD" values; it always marshals as RFC 3339.
type Date struct {
	time.Time
}

// NewDate wraps t in a Date.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("unsupported date format: %q", s)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// Value implements driver.Valuer so a Date can be passed as a query argument.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
