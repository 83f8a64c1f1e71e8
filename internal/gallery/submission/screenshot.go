package submission

import (
	"net/http"
	"strings"

	"github.com/styleatlas/api/internal/platform/apperr"
	"github.com/styleatlas/api/internal/platform/constants"
	"github.com/styleatlas/api/pkg/datauri"
)

const invalidScreenshotMsg = "Screenshot must be a base64 data URL (PNG, JPEG, or WebP image)"

// decodeScreenshot validates and decodes an inlined screenshot payload.
//
// Three gates, all before any upload attempt:
//  1. The payload must be an image data URI with decodable base64.
//  2. The decoded size must stay under the ingestion cap.
//  3. The leading bytes must sniff as the declared image family, so a data
//     URI that merely claims "image/png" around arbitrary bytes is rejected.
func decodeScreenshot(raw string) (mime string, data []byte, err error) {
	mime, data, err = datauri.ParseImage(raw)
	if err != nil {
		return "", nil, apperr.InvalidScreenshot(invalidScreenshotMsg)
	}

	if len(data) > constants.MaxScreenshotBytes {
		return "", nil, apperr.InvalidScreenshot("Screenshot exceeds the maximum allowed size")
	}

	if !matchesDeclaredType(mime, http.DetectContentType(data)) {
		return "", nil, apperr.InvalidScreenshot(invalidScreenshotMsg)
	}

	return mime, data, nil
}

// matchesDeclaredType compares the declared MIME type against the sniffed
// one, treating "image/jpg" as an alias of "image/jpeg".
func matchesDeclaredType(declared, sniffed string) bool {
	normalize := func(m string) string {
		if strings.EqualFold(m, "image/jpg") {
			return "image/jpeg"
		}
		return strings.ToLower(m)
	}
	return normalize(declared) == normalize(sniffed)
}
