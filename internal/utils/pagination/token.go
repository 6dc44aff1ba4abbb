package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeOffsetToken creates an opaque token pointing at offset within scope.
// The scope (e.g. an account ID) stops a token from one listing being replayed on another.
func EncodeOffsetToken(scope string, offset int) string {
	return EncodeMultiFieldToken(scope, strconv.Itoa(offset))
}

// DecodeOffsetToken parses a token produced by EncodeOffsetToken for the same scope.
func DecodeOffsetToken(token string, scope string) (int, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	if parts[0] != scope {
		return 0, fmt.Errorf("invalid pagination token (scope mismatch)")
	}
	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (offset parse): %q", parts[1])
	}
	return offset, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}

// Page returns the window [offset, offset+limit) of n items and the offset of
// the next page, or -1 when the window reaches the end.
func Page(n, offset, limit int) (start, end, next int) {
	start = min(offset, n)
	end = min(start+limit, n)
	next = -1
	if end < n {
		next = end
	}
	return start, end, next
}
