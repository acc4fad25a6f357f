package codec

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// RecordLength is the exact length of every record in characters
	RecordLength = 76
	// ChecksumOffset is where the 5-digit checksum field starts
	ChecksumOffset = 71
	// ChecksumLength is the width of the checksum field
	ChecksumLength = 5
	// IdentifierLength is the width of the identifier field
	IdentifierLength = 2
)

// ValidateLength reports whether line is exactly 76 ASCII characters
func ValidateLength(line string) bool {
	if len(line) != RecordLength {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] > 0x7f {
			return false
		}
	}
	return true
}

// ComputeChecksum sums the character codes of everything before the checksum field.
// Lines shorter than the checksum offset are summed in full.
func ComputeChecksum(line string) int {
	end := min(len(line), ChecksumOffset)
	sum := 0
	for i := 0; i < end; i++ {
		sum += int(line[i])
	}
	return sum
}

// ParseChecksum returns the integer value stored in the checksum field
func ParseChecksum(line string) (int, error) {
	if len(line) != RecordLength {
		return 0, NewError(CodeInvalidLength, line, "expected %d characters, found %d", RecordLength, len(line))
	}
	raw := line[ChecksumOffset:]
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return 0, NewError(CodeInvalidContentType, raw, "checksum is not a number")
	}
	return value, nil
}

// ValidateChecksum reports whether the stored checksum equals the computed one.
// The comparison is exact, not modular.
func ValidateChecksum(line string) bool {
	stored, err := ParseChecksum(line)
	if err != nil {
		return false
	}
	return stored == ComputeChecksum(line)
}

// FormatChecksum renders a checksum the way it is stored on disk
func FormatChecksum(sum int) string {
	return fmt.Sprintf("%0*d", ChecksumLength, sum)
}
