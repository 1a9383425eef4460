package model

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidID    = errors.New("invalid location id")
)

// LocationID keeps an identifier exactly as the upstream API encoded it,
// either a JSON string ("01") or a JSON number (1).
type LocationID struct {
	raw []byte
}

func NewLocationID(id string) LocationID {
	raw, _ := json.Marshal(id)
	return LocationID{raw: raw}
}

func (id LocationID) IsZero() bool {
	return len(id.raw) == 0
}

// String returns the id without JSON quoting, suitable for URL paths.
func (id LocationID) String() string {
	if len(id.raw) > 0 && id.raw[0] == '"' {
		s, err := strconv.Unquote(string(id.raw))
		if err == nil {
			return s
		}
	}
	return string(id.raw)
}

func (id LocationID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	return id.raw, nil
}

func (id *LocationID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		id.raw = nil
		return nil
	}
	if len(data) == 0 {
		return ErrInvalidID
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidID, err.Error())
		}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidID, string(data))
		}
	}
	id.raw = append([]byte(nil), data...)
	return nil
}

type Province struct {
	Id   LocationID `json:"province_id"`
	Name *string    `json:"province_name"`
}

type District struct {
	Id   LocationID `json:"district_id"`
	Name *string    `json:"district_name"`
}

// ListResponse is the envelope returned by both endpoints. A missing or
// null results member decodes to an empty list.
type ListResponse[T any] struct {
	Results []T `json:"results"`
}

func (p Province) Validate() error {
	if p.Id.IsZero() {
		return fmt.Errorf("%w: province_id", ErrMissingField)
	}
	if p.Name == nil {
		return fmt.Errorf("%w: province_name (province_id %s)", ErrMissingField, p.Id)
	}
	return nil
}

func (d District) Validate() error {
	if d.Name == nil {
		return fmt.Errorf("%w: district_name", ErrMissingField)
	}
	return nil
}
