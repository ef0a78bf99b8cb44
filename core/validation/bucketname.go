package validation

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"storage-gateway/core/apperr"
)

const (
	// MinBucketNameLength is the shortest accepted bucket name.
	MinBucketNameLength = 3
	// MaxBucketNameLength is the longest accepted bucket name.
	MaxBucketNameLength = 63
)

var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNameLength      = errors.New("length must be between 3 and 63")
	ErrNameEdges       = errors.New("must start and end with a letter or digit")
	ErrNameCharset     = errors.New("only lowercase letters, digits, '.', '-' allowed")
	ErrConsecutiveDots = errors.New("must not contain consecutive dots")
	ErrIPAddress       = errors.New("must not be an IP address")
)

// ValidateBucketName returns nil when name is a valid bucket name, otherwise
// a KindValidation error wrapping the sentinel of the first broken rule.
func ValidateBucketName(name string) error {
	if reason := bucketNameViolation(name); reason != nil {
		return apperr.Wrap(apperr.KindValidation, "invalid bucket name", reason)
	}
	return nil
}

func bucketNameViolation(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	n := utf8.RuneCountInString(name)
	if n < MinBucketNameLength || n > MaxBucketNameLength {
		return ErrNameLength
	}

	first, _ := utf8.DecodeRuneInString(name)
	last, _ := utf8.DecodeLastRuneInString(name)
	if !isLetterOrDigit(first) || !isLetterOrDigit(last) {
		return ErrNameEdges
	}

	for _, r := range name {
		if !isBucketNameRune(r) {
			return ErrNameCharset
		}
	}

	if strings.Contains(name, "..") {
		return ErrConsecutiveDots
	}

	if isIPv4(name) {
		return ErrIPAddress
	}

	return nil
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isBucketNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '-'
}

// isIPv4 reports whether s is a dotted quad of decimal octets.
func isIPv4(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if len(p) == 0 || len(p) > 3 {
			return false
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return false
			}
		}
		v, err := strconv.Atoi(p)
		if err != nil || v > 255 {
			return false
		}
	}
	return true
}
