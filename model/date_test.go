package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(1980, time.January, 1)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"1980-01-01"` {
		t.Fatalf(`Unexpected JSON form: %s`, b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Fatalf(`Round trip changed the date: %s`, back)
	}
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"01/02/1980"`), &d); err == nil {
		t.Fatal("expected an error for a non-ISO date")
	}
}

func TestParseDateBR(t *testing.T) {
	d, err := ParseDateBR("31-12-1999")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "1999-12-31" {
		t.Fatalf(`Unexpected date: %s`, d)
	}

	if _, err := ParseDateBR("1999-12-31"); err == nil {
		t.Fatal("expected an error for the ISO form")
	}
}

func TestDateEqualIgnoresClock(t *testing.T) {
	a := DateOf(time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC))
	b := NewDate(2024, time.March, 10)
	if !a.Equal(b) {
		t.Fatal("same calendar day should compare equal")
	}
}
