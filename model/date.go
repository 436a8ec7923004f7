package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayoutISO = "2006-01-02"
	// Brazilian day-month-year, accepted only by the birth date filter.
	dateLayoutBR = "02-01-2006"
)

// Date is a calendar date exchanged as a "YYYY-MM-DD" JSON string. The store
// keeps dates as time.Time; Date normalizes away the clock part so equality
// means same calendar day.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses the ISO "YYYY-MM-DD" exchange format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayoutISO, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// ParseDateBR parses "DD-MM-YYYY", the format of the data_nascimento filter.
func ParseDateBR(s string) (Date, error) {
	t, err := time.Parse(dateLayoutBR, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayoutISO)
}

func (d Date) Equal(other Date) bool {
	return d.String() == other.String()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
