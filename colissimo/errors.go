package colissimo

import (
	"fmt"
	"strings"
)

// ConfigError reports missing or malformed credentials.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Reason
}

// ValidationError reports caller fields that do not validate
// against the web service schema.
type ValidationError struct {
	Schema string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Schema %s did not validate: %s", e.Schema, strings.Join(e.Fields, "; "))
}

// ServiceError carries the remote error or SOAP fault detail.
type ServiceError struct {
	ErrorID int
	Message string
}

func (e *ServiceError) Error() string {
	if e.ErrorID != 0 {
		return fmt.Sprintf("Error %d : %s", e.ErrorID, e.Message)
	}
	return e.Message
}
