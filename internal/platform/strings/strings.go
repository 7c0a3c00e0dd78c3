// Package strings provides small string helpers shared by the boundary and the Factory client
package strings

import std "strings"

// Deref returns "" if ps is nil, else *ps
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}

// Ptr returns a pointer to s, or nil if s is empty
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StripNUL removes every NUL byte from s. Fast path returns s unchanged
func StripNUL(s string) string {
	if std.IndexByte(s, 0) < 0 {
		return s
	}
	return std.ReplaceAll(s, "\x00", "")
}

// SplitCSV splits a comma separated list, trimming blanks and dropping empty items
func SplitCSV(s string) []string {
	if std.TrimSpace(s) == "" {
		return nil
	}
	parts := std.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := std.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// IsIntCSV reports whether s is a comma separated list of (optionally signed) base 10 integers
// with no spaces. The empty string is accepted
func IsIntCSV(s string) bool {
	if s == "" {
		return true
	}
	for item := range std.SplitSeq(s, ",") {
		if item == "" {
			return false
		}
		if item[0] == '-' || item[0] == '+' {
			item = item[1:]
		}
		if item == "" {
			return false
		}
		for i := 0; i < len(item); i++ {
			if item[i] < '0' || item[i] > '9' {
				return false
			}
		}
	}
	return true
}
