/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is a validated domain error code of the form "<identifier>.<sub-code>".
//
// It is a separate type so that APIs can state that they expect a code that
// already passed Validate, as opposed to arbitrary caller input.
type Code string

// Delimiter separates the identifier from the sub-code.
const Delimiter = "."

// MaxLength is the maximum length of a valid code in bytes.
const MaxLength = 128

const (
	// segmentFmt matches one half of a code.
	segmentFmt = `[A-Za-z0-9_\-]+`

	// codeFmt is the strict pattern: exactly two segments.
	codeFmt = `^` + segmentFmt + `\.` + segmentFmt + `$`
)

var (
	codeRe    = regexp.MustCompile(codeFmt)
	segmentRe = regexp.MustCompile(`^` + segmentFmt + `$`)
)

var (
	// ErrCodeInvalid is returned when a value cannot be split, parsed or
	// validated as a domain error code.
	ErrCodeInvalid = errors.New("dresult: invalid code")
)

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It is never valid.
var Empty Code = ""

// Split breaks s on Delimiter and returns the first two parts.
//
// It fails with ErrCodeInvalid when s has no delimiter or when either of the
// first two parts is empty. Parts after the second are ignored, so
// "A.B.C" yields ("A", "B").
func Split(s string) (identifier, subCode string, err error) {
	parts := strings.Split(s, Delimiter)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrCodeInvalid
	}
	return parts[0], parts[1], nil
}

// Join builds "<identifier>.<sub-code>" without any validation.
func Join(identifier, subCode string) string {
	return identifier + Delimiter + subCode
}

// Parse trims surrounding spaces from s and validates it strictly.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse, meant for package-level
// declarations.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks c against the strict two-segment form.
func Validate(c Code) error {
	return validate(string(c))
}

// ValidSegment reports whether seg could be one half of a code.
func ValidSegment(seg string) bool {
	return segmentRe.MatchString(seg)
}

// Identifier returns the part before the delimiter.
func (c Code) Identifier() string {
	id, _, _ := Split(string(c))
	return id
}

// SubCode returns the part after the delimiter.
func (c Code) SubCode() string {
	_, sub, _ := Split(string(c))
	return sub
}

// String returns the code as a plain string.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler. Invalid codes fail.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if len(s) > MaxLength || !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
