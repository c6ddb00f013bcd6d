package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeToken creates a base64 encoded cursor from an entry date and creation
// time, both as Unix epoch seconds. This is used for consistent pagination
// across different repositories.
func EncodeToken(entryDate int64, createdAt int64) string {
	tokenStr := fmt.Sprintf("%d|%d", entryDate, createdAt)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a base64 encoded cursor back into entry date and
// creation time epoch seconds.
func DecodeToken(token string) (int64, int64, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid pagination token format (split)")
	}

	entryDate, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pagination token format (entry date parse): %w", err)
	}

	createdAt, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return entryDate, createdAt, nil
}
