package errors

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedLine    = errors.New("malformed log line")
	ErrInvalidTimestamp = errors.New("invalid log timestamp")
	ErrFileNotFound     = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrInvalidFilter    = errors.New("invalid filter expression")
	ErrInvalidResume    = errors.New("invalid resume list")
)

// NewLineError reports a line the field extractor could not understand.
// NewLineError 报告字段提取器无法理解的日志行。
func NewLineError(line string, reason string) error {
	return fmt.Errorf("%w: %s: %q", ErrMalformedLine, reason, line)
}

// NewTimestampError reports a line whose leading timestamp is not a number.
// NewTimestampError 报告时间戳不是数字的日志行。
func NewTimestampError(line string, err error) error {
	return fmt.Errorf("%w: %q: %v", ErrInvalidTimestamp, line, err)
}

func NewFileError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, reason)
}

func NewPermissionError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrPermissionDenied, path, reason)
}

func NewConfigError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}

func NewFilterError(expression string, reason error) error {
	return fmt.Errorf("%w: %q: %v", ErrInvalidFilter, expression, reason)
}

func NewResumeError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidResume, path, reason)
}
