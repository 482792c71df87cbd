package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// MaxImageBytes caps the decoded size of a product image
const MaxImageBytes = 2_000_000

var (
	ErrImageTooLarge   = errors.New("image is too large, please pick one under 2MB")
	ErrInvalidImageURI = errors.New("image must be a base64 data URI")
)

// EncodeImageDataURI converts raw image bytes into the inline data URI the
// product row stores. Oversized files are rejected before encoding.
func EncodeImageDataURI(mimeType string, data []byte) (string, error) {
	if len(data) > MaxImageBytes {
		return "", ErrImageTooLarge
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}

// ValidateImageDataURI checks an inline image sent with a product payload:
// it must be a data URI and its decoded payload must fit the size cap.
func ValidateImageDataURI(uri string) error {
	if !strings.HasPrefix(uri, "data:") {
		return ErrInvalidImageURI
	}
	idx := strings.Index(uri, ";base64,")
	if idx < 0 {
		return ErrInvalidImageURI
	}
	encoded := uri[idx+len(";base64,"):]

	decoded := base64.StdEncoding.DecodedLen(len(encoded))
	// DecodedLen overestimates by up to two padding bytes
	if pad := strings.Count(encoded[max(0, len(encoded)-2):], "="); pad > 0 {
		decoded -= pad
	}
	if decoded > MaxImageBytes {
		return ErrImageTooLarge
	}
	return nil
}
