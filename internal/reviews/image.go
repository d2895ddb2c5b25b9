package reviews

import (
	"encoding/base64"
	"fmt"
	"strings"

	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
)

// validateImage accepts a base64 image data URL whose decoded payload is at most
// maxBytes. The data URL is stored as given.
func validateImage(dataURL string, maxBytes int) error {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return pkgerrors.Validation("image must be a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return pkgerrors.Validation("image must be a data URL")
	}
	mime, encoding, _ := strings.Cut(meta, ";")
	if !strings.HasPrefix(mime, "image/") {
		return pkgerrors.Validation("only image uploads are supported")
	}
	if encoding != "base64" {
		return pkgerrors.Validation("image must be base64 encoded")
	}

	// Reject before decoding anything far larger than the limit.
	if base64.StdEncoding.DecodedLen(len(payload)) > maxBytes+3 {
		return imageTooLarge(maxBytes)
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "image is not valid base64")
	}
	if len(decoded) > maxBytes {
		return imageTooLarge(maxBytes)
	}
	return nil
}

func imageTooLarge(maxBytes int) error {
	return pkgerrors.Validation(fmt.Sprintf("Image must be under %dMB", maxBytes/(1024*1024))).
		WithDetails(map[string]any{"max_bytes": maxBytes})
}
