package codec

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the on-disk date format (yyMMdd)
const DateLayout = "060102"

// Field describes one byte range within a record.
// Divisor is zero for unscaled fields, otherwise a positive multiple of ten
// that turns a stored integer into its fixed-point value.
type Field struct {
	Offset  int
	Length  int
	Divisor int
}

// NewField creates an unscaled field. It panics if the range does not fit in a record.
func NewField(offset, length int) Field {
	if offset < 0 || length < 1 || offset+length > RecordLength {
		panic(fmt.Sprintf("codec: invalid field range [%d,+%d)", offset, length))
	}
	return Field{Offset: offset, Length: length}
}

// ScaledField creates a field with an implied decimal point
func ScaledField(offset, length, divisor int) Field {
	f := NewField(offset, length)
	if divisor <= 0 || divisor%10 != 0 {
		panic(fmt.Sprintf("codec: invalid divisor %d for field [%d,+%d)", divisor, offset, length))
	}
	f.Divisor = divisor
	return f
}

func (f Field) String() string {
	if f.Divisor != 0 {
		return fmt.Sprintf("[%d,+%d)/%d", f.Offset, f.Length, f.Divisor)
	}
	return fmt.Sprintf("[%d,+%d)", f.Offset, f.Length)
}

// Raw returns the untrimmed content of the field
func (f Field) Raw(line string) string {
	start := min(f.Offset, len(line))
	end := min(f.Offset+f.Length, len(line))
	return line[start:end]
}

// Text returns the trimmed content of the field, which may be empty
func (f Field) Text(line string) string {
	return strings.TrimSpace(f.Raw(line))
}

// Char returns the single character held in the field
func (f Field) Char(line string) (byte, error) {
	text := f.Text(line)
	if len(text) != 1 {
		return 0, f.contentError(text, "expected a single character")
	}
	return text[0], nil
}

// Int parses the field as a base-10 integer, applying integer division by the divisor
func (f Field) Int(line string) (int, error) {
	text := f.Text(line)
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, f.contentError(text, "expected an integer")
	}
	if f.Divisor != 0 {
		value /= f.Divisor
	}
	return value, nil
}

// Float parses the field as a decimal, dividing by the divisor when set
func (f Field) Float(line string) (float64, error) {
	text := f.Text(line)
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, f.contentError(text, "expected a number")
	}
	if f.Divisor != 0 {
		value /= float64(f.Divisor)
	}
	return value, nil
}

// Flag decodes a one character flag. Empty, "0" and "N" are false.
func (f Field) Flag(line string) (bool, error) {
	text := f.Text(line)
	switch text {
	case "", "0", "N":
		return false, nil
	}
	if len(text) != 1 {
		return false, f.contentError(text, "expected a single character flag")
	}
	return true, nil
}

// Date parses the field as yyMMdd
func (f Field) Date(line string) (time.Time, error) {
	text := f.Text(line)
	value, err := time.Parse(DateLayout, text)
	if err != nil {
		return time.Time{}, f.contentError(text, "expected a yyMMdd date")
	}
	return value, nil
}

// OptionalDate parses the field as yyMMdd, returning nil when blank or invalid
func (f Field) OptionalDate(line string) *time.Time {
	value, err := f.Date(line)
	if err != nil {
		return nil
	}
	return &value
}

func (f Field) contentError(text, message string) *Error {
	return NewError(CodeInvalidContentType, text, "field %s: %s", f, message)
}

// Enumerations are closed sets of raw values. Valid reports membership.
type (
	intEnum interface {
		~int
		Valid() bool
	}
	charEnum interface {
		~byte
		Valid() bool
	}
	stringEnum interface {
		~string
		Valid() bool
	}
)

// IntEnum decodes an enumeration stored as an integer
func IntEnum[T intEnum](f Field, line string) (T, error) {
	raw, err := f.Int(line)
	if err != nil {
		return 0, err
	}
	value := T(raw)
	if !value.Valid() {
		return 0, f.contentError(f.Text(line), fmt.Sprintf("%d is not a valid %T", raw, value))
	}
	return value, nil
}

// CharEnum decodes an enumeration stored as a single character
func CharEnum[T charEnum](f Field, line string) (T, error) {
	raw, err := f.Char(line)
	if err != nil {
		return 0, err
	}
	value := T(raw)
	if !value.Valid() {
		return 0, f.contentError(f.Text(line), fmt.Sprintf("%q is not a valid %T", raw, value))
	}
	return value, nil
}

// StringEnum decodes an enumeration stored as text
func StringEnum[T stringEnum](f Field, line string) (T, error) {
	value := T(f.Text(line))
	if !value.Valid() {
		return value, f.contentError(f.Text(line), fmt.Sprintf("%q is not a valid %T", string(value), value))
	}
	return value, nil
}

// fieldReader decodes a sequence of fields from one line and keeps the first error
type fieldReader struct {
	line string
	err  error
}

func newFieldReader(line string) *fieldReader {
	return &fieldReader{line: line}
}

func (r *fieldReader) keep(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

func (r *fieldReader) text(f Field) string {
	return f.Text(r.line)
}

func (r *fieldReader) char(f Field) byte {
	v, err := f.Char(r.line)
	r.keep(err)
	return v
}

func (r *fieldReader) int(f Field) int {
	v, err := f.Int(r.line)
	r.keep(err)
	return v
}

func (r *fieldReader) float(f Field) float64 {
	v, err := f.Float(r.line)
	r.keep(err)
	return v
}

func (r *fieldReader) flag(f Field) bool {
	v, err := f.Flag(r.line)
	r.keep(err)
	return v
}

func (r *fieldReader) date(f Field) time.Time {
	v, err := f.Date(r.line)
	r.keep(err)
	return v
}

func (r *fieldReader) optionalDate(f Field) *time.Time {
	return f.OptionalDate(r.line)
}

func readIntEnum[T intEnum](r *fieldReader, f Field) T {
	v, err := IntEnum[T](f, r.line)
	r.keep(err)
	return v
}

// readOptionalIntEnum returns nil for a blank field
func readOptionalIntEnum[T intEnum](r *fieldReader, f Field) *T {
	if f.Text(r.line) == "" {
		return nil
	}
	v := readIntEnum[T](r, f)
	return &v
}

func readCharEnum[T charEnum](r *fieldReader, f Field) T {
	v, err := CharEnum[T](f, r.line)
	r.keep(err)
	return v
}

// readOptionalCharEnum returns nil for a blank or unmapped value
func readOptionalCharEnum[T charEnum](r *fieldReader, f Field) *T {
	v, err := CharEnum[T](f, r.line)
	if err != nil {
		return nil
	}
	return &v
}

func readStringEnum[T stringEnum](r *fieldReader, f Field) T {
	v, err := StringEnum[T](f, r.line)
	r.keep(err)
	return v
}
