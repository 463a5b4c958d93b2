// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package models

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Layouts the backend has been observed to emit for created_at fields.
// The primary one is the MySQL DATETIME format without a zone.
var apiTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// APITime wraps time.Time so that timestamps arriving from the backend can be
// decoded regardless of which of its known layouts a given endpoint uses.
type APITime struct {
	time.Time
}

// NewAPITime wraps t for use in request bodies and tests.
func NewAPITime(t time.Time) APITime {
	return APITime{Time: t}
}

func (t *APITime) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range apiTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unsupported time value %q", s)
}

func (t APITime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(apiTimeLayouts[0]) + `"`), nil
}

// APIInt decodes integers that the backend emits inconsistently: some
// endpoints send JSON numbers, others send the same values as quoted strings.
type APIInt int64

func (n *APIInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	parsed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("unsupported integer value %q: %w", s, err)
	}

	*n = APIInt(parsed)
	return nil
}

func (n APIInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(n), 10)), nil
}

// Int64 returns the plain integer value.
func (n APIInt) Int64() int64 {
	return int64(n)
}
