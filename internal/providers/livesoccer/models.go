package livesoccer

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt decodes a JSON number or a numeric string. The API is not
// consistent about which one it sends. Valid is false for null, empty or
// non-numeric values.
type FlexInt struct {
	Value int64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = FlexInt{}

	s := strings.TrimSpace(string(bytes.Trim(b, `"`)))
	if s == "" || s == "null" {
		return nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = FlexInt{Value: n, Valid: true}
		return nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt{Value: int64(n), Valid: true}
	}

	return nil
}

// Int64Ptr returns nil when the value is absent
func (f FlexInt) Int64Ptr() *int64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// IntPtr returns nil when the value is absent
func (f FlexInt) IntPtr() *int {
	if !f.Valid {
		return nil
	}
	v := int(f.Value)
	return &v
}

// Side is one team in a match record
type Side struct {
	ID    FlexInt `json:"id"`
	Name  string  `json:"name"`
	Goals FlexInt `json:"goals"`
}

// Location is the country a competition belongs to
type Location struct {
	ID   FlexInt `json:"id"`
	Name string  `json:"name"`
}

// Competition is a league as returned by the API
type Competition struct {
	ID       FlexInt   `json:"id"`
	Name     string    `json:"name"`
	Logo     string    `json:"logo"`
	Location *Location `json:"location"`
}

// Match is a live or historical match record
type Match struct {
	ID          FlexInt      `json:"id"`
	Home        *Side        `json:"home"`
	Away        *Side        `json:"away"`
	Status      string       `json:"status"`
	Time        string       `json:"time"`
	Date        string       `json:"date"`
	Competition *Competition `json:"competition"`
}

// Team is a team search hit
type Team struct {
	ID      FlexInt `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Logo    string  `json:"logo"`
}

// envelope wraps every API response
type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// empty reports whether data carries nothing, including the falsy
// placeholders ([], false, "", 0) the API sends instead of null.
func (e envelope) empty() bool {
	switch string(bytes.TrimSpace(e.Data)) {
	case "", "null", "{}", "[]", "false", `""`, "0":
		return true
	}
	return false
}

type matchList struct {
	Match []Match `json:"match"`
}

type competitionList struct {
	Competition []Competition `json:"competition"`
}

type teamList struct {
	Team []Team `json:"team"`
}
