package types

import (
	"fmt"
	"strings"
)

// ValidateID checks a TMDb resource ID before it is put on the wire.
func ValidateID(id int, fieldName string) error {
	if id <= 0 {
		return fmt.Errorf("%s must be a positive integer", fieldName)
	}
	return nil
}

// ValidateQuery checks a search query string.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}
	return nil
}
