package tokencache

import "errors"

// Common token cache errors
var (
	// ErrTokenNotFound indicates that no cached token exists
	ErrTokenNotFound = errors.New("cached token not found")

	// ErrTokenCorrupted indicates that a cached token exists but could not
	// be read back (empty file, undecodable entry, failed decryption)
	ErrTokenCorrupted = errors.New("cached token is corrupted")
)
