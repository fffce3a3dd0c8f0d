package utils

import "strings"

func Ptr[T any](v T) *T {
	return &v
}

// StrPtr returns nil for blank strings.
func StrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
