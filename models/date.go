package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// NullDate - необязательная дата (колонка DATE), в JSON как "YYYY-MM-DD" или null.
type NullDate struct {
	Time  time.Time
	Valid bool
}

func NewDate(t time.Time) NullDate {
	return NullDate{Time: t, Valid: true}
}

// Month возвращает ключ месяца YYYY-MM или пустую строку, если даты нет.
func (d NullDate) Month() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("2006-01")
}

func (d *NullDate) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = NullDate{}
	case time.Time:
		*d = NewDate(v)
	case []byte:
		return d.parse(trimTimestamp(string(v)))
	case string:
		return d.parse(trimTimestamp(v))
	default:
		return fmt.Errorf("cannot scan %T into NullDate", value)
	}
	return nil
}

func (d NullDate) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time.Format(DateLayout), nil
}

func (d NullDate) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(DateLayout))
}

func (d *NullDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = NullDate{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("available_date must be a string: %w", err)
	}
	return d.parse(s)
}

func (d *NullDate) parse(s string) error {
	if s == "" {
		*d = NullDate{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = NewDate(t)
	return nil
}

// trimTimestamp отрезает время, если драйвер вернул полный timestamp.
func trimTimestamp(s string) string {
	if len(s) > len(DateLayout) && s[len(DateLayout)] == 'T' {
		return s[:len(DateLayout)]
	}
	return s
}
