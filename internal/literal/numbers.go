// Package literal parses lexer-validated numeric tokens into bit-exact
// values, grounded on WAVM's Lib/WASTParse/ParseNumbers.cpp. Unlike the
// original, which advances a shared lexer cursor, these functions take an
// already-delimited token string: the front end that would supply the
// cursor is out of scope for this core (spec.md §1, Non-goals).
package literal

import (
	"fmt"
	"math"
	"strings"
)

// Error reports a malformed literal. Parsing still yields a best-effort
// value (see each function's docs) so a caller that only logs the error and
// presses on ends up with the same "integer literal is too large" /
// substitute-and-continue behavior as the original.
type Error struct {
	Token string
	Msg   string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Msg, e.Token) }

func newError(token, msg string) *Error { return &Error{Token: token, Msg: msg} }

// stripUnderscores removes '_' digit separators from s. WAVM only makes a
// copy when an underscore is actually present; we mirror that to avoid an
// allocation on the common case.
func stripUnderscores(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// parseUnsignedMagnitude parses the unsigned digits of s (no sign, no
// underscores) in the given base, saturating to maxValue and reporting an
// error on overflow rather than wrapping.
func parseUnsignedMagnitude(digits string, base int, maxValue uint64) (uint64, error) {
	var result uint64
	for i := 0; i < len(digits); i++ {
		d, ok := digitValue(digits[i], base)
		if !ok {
			return 0, newError(digits, "invalid digit")
		}
		if result > (maxValue-uint64(d))/uint64(base) {
			return maxValue, newError(digits, "integer literal is too large")
		}
		result = result*uint64(base) + uint64(d)
	}
	return result, nil
}

func digitValue(c byte, base int) (int, bool) {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'f':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

// ParseUnsigned parses a decimal or "0x"-prefixed hexadecimal unsigned
// integer literal, with '_' as a digit separator, saturating to maxValue on
// overflow and reporting an error for the caller to surface.
func ParseUnsigned(token string, maxValue uint64) (uint64, error) {
	s := stripUnderscores(token)
	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	return parseUnsignedMagnitude(s, base, maxValue)
}

// ParseSigned parses an optionally-signed decimal or hexadecimal integer
// literal into the two's-complement bit pattern of a signed integer bounded
// by [minSigned, maxUnsigned-complement]. minSignedMagnitude is -minSigned
// as an unsigned magnitude (i.e. the bound when the literal is negative);
// maxUnsignedMagnitude bounds it when positive.
func ParseSigned(token string, minSignedMagnitude, maxUnsignedMagnitude uint64) (value uint64, negative bool, err error) {
	s := token
	negative = false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	bound := maxUnsignedMagnitude
	if negative {
		bound = minSignedMagnitude
	}
	u, err := ParseUnsigned(s, bound)
	if negative {
		return uint64(-int64(u)), true, err
	}
	return u, false, err
}

// ParseU32 parses an unsigned 32-bit integer literal.
func ParseU32(token string) (uint32, error) {
	v, err := ParseUnsigned(token, math.MaxUint32)
	return uint32(v), err
}

// ParseU64 parses an unsigned 64-bit integer literal.
func ParseU64(token string) (uint64, error) {
	return ParseUnsigned(token, math.MaxUint64)
}

// ParseI32 parses a signed 32-bit integer literal into its bit pattern.
func ParseI32(token string) (int32, error) {
	v, _, err := ParseSigned(token, uint64(1)<<31, math.MaxUint32>>1)
	return int32(v), err
}

// ParseI64 parses a signed 64-bit integer literal into its bit pattern.
func ParseI64(token string) (int64, error) {
	v, _, err := ParseSigned(token, uint64(1)<<63, math.MaxInt64)
	return int64(v), err
}
