package util

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
)

// Md5Hex returns the hex md5 digest of raw, the form sample and matrix files
// are usually checksummed with outside this tool.
func Md5Hex(raw []byte) string {
	sum := md5.Sum(raw)
	return hex.EncodeToString(sum[:])
}

// HashUUID fingerprints any JSON serializable value as a UUID string.
func HashUUID(value any) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return BytesUUID(raw)
}

// BytesUUID fingerprints raw bytes, e.g. a transform matrix blob, so the
// same coefficients always log under the same id.
func BytesUUID(raw []byte) string {
	hash := md5.Sum(raw)
	id, err := uuid.FromBytes(hash[:])
	if err != nil {
		return ""
	}
	return id.String()
}

// NewRunID returns a random id to tag the log lines of one invocation.
func NewRunID() string {
	return uuid.NewString()
}
