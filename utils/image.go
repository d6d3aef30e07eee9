package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeBase64Image decodes an uploaded image, accepting both a bare base64
// string and a "data:<mime>;base64,<data>" URI. It returns the raw bytes and
// the declared content type (empty for bare base64).
func DecodeBase64Image(input string) ([]byte, string, error) {
	contentType := ""
	data := input

	if strings.HasPrefix(input, "data:") {
		parts := strings.SplitN(input, ",", 2)
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("invalid data URI")
		}
		meta := strings.TrimPrefix(parts[0], "data:") // "image/jpeg;base64"
		contentType = strings.SplitN(meta, ";", 2)[0] // "image/jpeg"
		data = parts[1]
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return decoded, contentType, nil
}
