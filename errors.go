// SPDX-License-Identifier: Apache-2.0

package secrettunnel

import (
	"errors"
	"fmt"
)

// Sentinel errors for simple error checking with [errors.Is].
// For detailed error information, use [errors.As] with the typed errors below.
var (
	// ErrRead indicates an input file could not be opened or read.
	ErrRead = errors.New("read error")
	// ErrParse indicates an input file is not well-formed in its serialization format.
	ErrParse = errors.New("parse error")
	// ErrField indicates a required field is missing or has an unusable value.
	ErrField = errors.New("field error")
	// ErrEncode indicates the kvpairs or the output document could not be serialized.
	ErrEncode = errors.New("encode error")
)

// ReadError is returned when an input path does not exist, is not readable,
// or reading it fails part way.
type ReadError struct {
	// Path is the input path as given on the command line.
	Path string
	// Err is the underlying error from the file system.
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func (e *ReadError) Is(target error) bool {
	return target == ErrRead
}

// ParseError is returned when the contents of an input file cannot be decoded.
type ParseError struct {
	// Path is the input path as given on the command line.
	Path string
	// Format is the serialization format the file was decoded as.
	Format Format
	// Err is the underlying decoder error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot decode %s as %s: %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// FieldError is returned when a decoded document lacks a required field or
// holds a value that cannot be carried into kvpairs.
type FieldError struct {
	// Path is the input path as given on the command line.
	Path string
	// Field is the dotted location inside the document, e.g. "secret.data".
	Field string
	// Reason describes what is wrong with the field.
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %s: %s", e.Path, e.Field, e.Reason)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrField
}

// EncodeError is returned when serializing kvpairs or the output document fails.
type EncodeError struct {
	// What names the value being encoded.
	What string
	// Err is the underlying encoder error.
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cannot encode %s: %v", e.What, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

func (e *EncodeError) Is(target error) bool {
	return target == ErrEncode
}
