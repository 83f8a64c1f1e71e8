// Copyright (c) 2026 StyleAtlas. All rights reserved.
// Author: engineering@styleatlas.dev

// Package datauri parses base64-encoded image data URIs.
//
// # Usage
//
// Gallery submissions inline their screenshot as a data URI
// ("data:image/png;base64,…"). This package extracts the MIME type and the
// decoded binary payload, accepting only the image formats the gallery
// supports (PNG, JPEG, WebP).
package datauri

import (
	"encoding/base64"
	"errors"
	"regexp"
)

// ErrNotImageDataURI is returned when the input does not match the expected
// "data:image/<type>;base64,<payload>" shape or uses an unsupported type.
var ErrNotImageDataURI = errors.New("datauri: not a base64 image data URI")

// imagePattern accepts the gallery's supported screenshot formats.
// "jpg" is tolerated as an alias even though the registered type is "jpeg".
var imagePattern = regexp.MustCompile(`^data:(image/(png|jpeg|jpg|webp));base64,(.+)$`)

// ParseImage extracts the MIME type and decoded bytes from an image data URI.
//
// # Returns
//   - mime: The declared MIME type (e.g. "image/png").
//   - data: The decoded binary payload.
//   - err: [ErrNotImageDataURI] on shape/type mismatch or undecodable base64.
func ParseImage(s string) (mime string, data []byte, err error) {
	match := imagePattern.FindStringSubmatch(s)
	if match == nil {
		return "", nil, ErrNotImageDataURI
	}

	decoded, err := base64.StdEncoding.DecodeString(match[3])
	if err != nil {
		return "", nil, ErrNotImageDataURI
	}

	return match[1], decoded, nil
}
