package utils

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
)

// MD5Hex returns the lowercase hex MD5 digest of data.
//
// It exists only to verify passwords stored by the legacy back office, which
// kept md5(password) in the employee table. New deployments should configure
// the bcrypt digest instead.
func MD5Hex(data string) string {
	sum := md5.Sum([]byte(data))
	return hex.EncodeToString(sum[:])
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// A new HMAC instance is created on each call.
//
// Example usage:
//
//	digest := utils.HashString("123456", "pepper")
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// EqualDigests compares two hex digests in constant time.
func EqualDigests(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
