package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LocalDateTime renders timestamps in campus-local time without an offset
// and accepts either that form or RFC 3339 on input.
type LocalDateTime struct {
	time.Time
}

const layout = "2006-01-02T15:04:05"

var campusLocation *time.Location

func init() {
	var err error
	campusLocation, err = time.LoadLocation("Asia/Jakarta")
	if err != nil {
		campusLocation = time.FixedZone("WIB", 7*60*60)
	}
}

func parse(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(layout, s, campusLocation)
}

func (ldt *LocalDateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := parse(s)
	if err != nil {
		return err
	}
	ldt.Time = t
	return nil
}

func (ldt LocalDateTime) MarshalJSON() ([]byte, error) {
	if ldt.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ldt.In(campusLocation).Format(layout) + `"`), nil
}

func (ldt LocalDateTime) Value() (driver.Value, error) {
	if ldt.IsZero() {
		return nil, nil
	}
	return ldt.Time, nil
}

func (ldt *LocalDateTime) Scan(value interface{}) error {
	if value == nil {
		ldt.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		ldt.Time = v
		return nil
	case []byte:
		return ldt.scanString(string(v))
	case string:
		return ldt.scanString(v)
	default:
		return fmt.Errorf("cannot scan type %T into LocalDateTime", value)
	}
}

func (ldt *LocalDateTime) scanString(s string) error {
	t, err := parse(s)
	if err != nil {
		return err
	}
	ldt.Time = t
	return nil
}
