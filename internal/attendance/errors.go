package attendance

import "github.com/pkg/errors"

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidStudent  = errors.New("student name is required")
	ErrInvalidMethod   = errors.New("invalid attendance method")
)
