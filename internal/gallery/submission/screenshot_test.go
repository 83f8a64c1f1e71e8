package submission

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styleatlas/api/internal/platform/apperr"
)

func encodeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

/*
TestDecodeScreenshot_Accepted covers the supported formats, including the
minimal PNG payload the web client sends in its smoke test.
*/
func TestDecodeScreenshot_Accepted(t *testing.T) {
	pngSig := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegSig := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}
	webpSig := append([]byte("RIFF\x24\x00\x00\x00WEBP"), []byte("VP8 ")...)

	tests := []struct {
		name     string
		raw      string
		wantMime string
	}{
		{"minimal_png", "data:image/png;base64,iVBORw0KGgo=", "image/png"},
		{"png", encodeDataURI("image/png", pngSig), "image/png"},
		{"jpeg", encodeDataURI("image/jpeg", jpegSig), "image/jpeg"},
		{"jpg_alias", encodeDataURI("image/jpg", jpegSig), "image/jpg"},
		{"webp", encodeDataURI("image/webp", webpSig), "image/webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, data, err := decodeScreenshot(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMime, mime)
			assert.NotEmpty(t, data)
		})
	}
}

/*
TestDecodeScreenshot_Rejected covers malformed payloads and declared-type
mismatches. All failures must map to INVALID_SCREENSHOT_FORMAT.
*/
func TestDecodeScreenshot_Rejected(t *testing.T) {
	jpegSig := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"plain_url", "https://example.com/shot.png"},
		{"unsupported_gif", "data:image/gif;base64,R0lGODlh"},
		{"undecodable_base64", "data:image/png;base64,@@@@"},
		{"declared_png_actual_jpeg", encodeDataURI("image/png", jpegSig)},
		{"declared_png_arbitrary_bytes", encodeDataURI("image/png", []byte("just some text"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decodeScreenshot(tt.raw)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "INVALID_SCREENSHOT_FORMAT", ae.Code)
			assert.Equal(t, 400, ae.HTTPStatus)
		})
	}
}
