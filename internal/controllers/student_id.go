package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// StudentID accepts ids sent as JSON strings or integers, since the demo
// roster uses numeric-looking ids such as 4311.
type StudentID string

func (id *StudentID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		*id = StudentID(strings.TrimSpace(s))
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(trimmed, &num); err == nil {
		if _, err := num.Int64(); err != nil {
			return fmt.Errorf("student id must be a string or integer, got %s", num)
		}
		*id = StudentID(num.String())
		return nil
	}

	return fmt.Errorf("student id must be a string or integer, got %s", string(data))
}

func (id StudentID) String() string {
	return string(id)
}
