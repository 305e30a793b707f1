package failure

import (
	"regexp"
	"strings"
)

// Client-facing messages.
const (
	MsgAccountNotFound = "account not found"
	MsgPasswordError   = "password error"
	MsgAccountLocked   = "account locked"
	MsgUnauthorized    = "unauthorized"
	MsgAlreadyExists   = " already exists"
	MsgUnknownError    = "unknown error"
)

// duplicateEntryMarker is the MySQL wording: Duplicate entry 'zhangsan' for key 'employee.idx_username'.
const duplicateEntryMarker = "Duplicate entry"

// pgDuplicateKey matches the PostgreSQL detail: Key (username)=(zhangsan) already exists.
var pgDuplicateKey = regexp.MustCompile(`Key \((?:[^)]*)\)=\((.*)\) already exists`)

// DuplicateValue extracts the conflicting value from a duplicate-key detail.
// ok is false when the detail carries no recognised marker.
func DuplicateValue(detail string) (value string, ok bool) {
	if m := pgDuplicateKey.FindStringSubmatch(detail); m != nil {
		return m[1], true
	}

	idx := strings.Index(detail, duplicateEntryMarker)
	if idx < 0 {
		return "", false
	}

	// third space-separated token after the marker start: Duplicate entry 'value'
	fields := strings.Fields(detail[idx:])
	if len(fields) < 3 {
		return "", false
	}
	return strings.Trim(fields[2], "'"), true
}
