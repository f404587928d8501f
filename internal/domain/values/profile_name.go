package values

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ProfileName uniquely identifies a profile within a catalog.
// Enforces non-empty, trimmed names.
type ProfileName struct {
	value string
}

// NewProfileName creates a new ProfileName with validation
func NewProfileName(name string) (ProfileName, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ProfileName{}, fmt.Errorf("profile name cannot be empty")
	}
	return ProfileName{value: name}, nil
}

// MustNewProfileName creates a ProfileName or panics (for tests/constants)
func MustNewProfileName(name string) ProfileName {
	n, err := NewProfileName(name)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the string representation
func (n ProfileName) String() string {
	return n.value
}

// IsEmpty returns true if this is the zero value
func (n ProfileName) IsEmpty() bool {
	return n.value == ""
}

// Equals checks if two ProfileNames are equal
func (n ProfileName) Equals(other ProfileName) bool {
	return n.value == other.value
}

// MarshalJSON implements json.Marshaler
func (n ProfileName) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

// MarshalYAML implements yaml.InterfaceMarshaler
func (n ProfileName) MarshalYAML() (interface{}, error) {
	return n.value, nil
}
