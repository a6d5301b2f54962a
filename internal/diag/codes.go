package diag

import (
	"fmt"
)

// Code identifies a diagnostic class. Codes are stable: tooling keys on
// them, so values are never reused.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical errors
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexBadBool            Code = 1004
	LexIdentTooLong       Code = 1005
	LexNumberTooLong      Code = 1006
	LexStringTooLong      Code = 1007

	// Source/file layer (never produced by the scanner itself)
	IOFileUnavailable Code = 9001
)

var codeNames = map[Code]string{
	UnknownCode:           "Unknown",
	LexInfo:               "LexInfo",
	LexUnknownChar:        "LexUnknownChar",
	LexUnterminatedString: "LexUnterminatedString",
	LexBadNumber:          "LexBadNumber",
	LexBadBool:            "LexBadBool",
	LexIdentTooLong:       "LexIdentTooLong",
	LexNumberTooLong:      "LexNumberTooLong",
	LexStringTooLong:      "LexStringTooLong",
	IOFileUnavailable:     "IOFileUnavailable",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}

// ID returns the display form used in CLI output, e.g. "LEX1002".
func (c Code) ID() string {
	switch {
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	case c >= 9000:
		return fmt.Sprintf("IO%04d", uint16(c))
	default:
		return fmt.Sprintf("E%04d", uint16(c))
	}
}
