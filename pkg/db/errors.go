package db

import "strings"

// IsUniqueViolation reports whether the provided error references a unique
// violation. When constraintName is provided, the helper looks for the
// constraint text in the error message; sqlite reports the violated columns
// as "table.column" instead of the postgres constraint name, so that form is
// matched too.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if constraintName == "" {
		return strings.Contains(msg, "duplicate key value") ||
			strings.Contains(msg, "UNIQUE constraint failed")
	}
	if strings.Contains(msg, constraintName) {
		return true
	}
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}
	normalized := strings.ReplaceAll(msg, ".", "_")
	return strings.Contains(normalized, strings.TrimSuffix(constraintName, "_key"))
}
