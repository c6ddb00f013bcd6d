package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Test case 1: Standard epoch values
	entryDate := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC).Unix()
	createdAt := time.Date(2023, 5, 15, 14, 30, 45, 0, time.UTC).Unix()

	token := EncodeToken(entryDate, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedEntryDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, entryDate, decodedEntryDate, "Entry date should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at should match after decode")

	// Test case 2: Zero values
	zeroToken := EncodeToken(0, 0)
	decodedZeroDate, decodedZeroCreated, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero values should not return an error")
	assert.Equal(t, int64(0), decodedZeroDate, "Zero date should match after decode")
	assert.Equal(t, int64(0), decodedZeroCreated, "Zero created at should match after decode")

	// Test case 3: Negative epochs (dates before 1970)
	negToken := EncodeToken(-86400, -1)
	decodedNegDate, decodedNegCreated, err := DecodeToken(negToken)
	assert.NoError(t, err, "Decoding negative epochs should not return an error")
	assert.Equal(t, int64(-86400), decodedNegDate)
	assert.Equal(t, int64(-1), decodedNegCreated)
}

func TestDecodeTokenError(t *testing.T) {
	// Test invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	invalidToken := base64.StdEncoding.EncodeToString([]byte("1684108800"))
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Test non-numeric entry date
	invalidDateToken := base64.StdEncoding.EncodeToString([]byte("notanumber|1684108800"))
	_, _, err = DecodeToken(invalidDateToken)
	assert.Error(t, err, "Should return an error for non-numeric entry date")
	assert.Contains(t, err.Error(), "entry date parse", "Error should mention date parsing issue")

	// Test non-numeric created at
	invalidCreatedToken := base64.StdEncoding.EncodeToString([]byte("1684108800|notanumber"))
	_, _, err = DecodeToken(invalidCreatedToken)
	assert.Error(t, err, "Should return an error for non-numeric created at")
	assert.Contains(t, err.Error(), "created_at parse", "Error should mention created_at parsing issue")
}
