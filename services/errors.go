package services

import "errors"

// ErrPermissionDenied is returned when the acting user is neither the
// resource owner nor staff.
var ErrPermissionDenied = errors.New("permission denied")
