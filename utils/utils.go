package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a compact unique id for user and post documents.
func GenerateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Contains reports membership of value in slice.
func Contains(slice []string, value string) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}

// Without returns slice with every occurrence of value removed.
func Without(slice []string, value string) []string {
	out := make([]string, 0, len(slice))
	for _, v := range slice {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
