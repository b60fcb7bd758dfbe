package mediastore

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
)

const maxImageBytes = 10 << 20

var errEmptyPayload = errors.New("payload is empty")

var payloadEncodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.URLEncoding,
	base64.RawStdEncoding,
	base64.RawURLEncoding,
}

// DecodePayload accepts raw base64 (standard or url alphabet, padded or not)
// or a base64 data URI and returns the decoded bytes.
func DecodePayload(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, errEmptyPayload
	}
	if strings.HasPrefix(payload, "data:") {
		comma := strings.Index(payload, ",")
		if comma < 0 {
			return nil, errors.New("malformed data uri")
		}
		if !strings.HasSuffix(payload[len("data:"):comma], ";base64") {
			return nil, errors.New("data uri is not base64 encoded")
		}
		payload = payload[comma+1:]
	}
	for _, enc := range payloadEncodings {
		if data, err := enc.DecodeString(payload); err == nil && len(data) > 0 {
			return data, nil
		}
	}
	return nil, errors.New("payload is not valid base64")
}

// DataURI normalizes a payload into a base64 data URI.
func DataURI(payload string) (string, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		return payload, nil
	}
	data, err := DecodePayload(payload)
	if err != nil {
		return "", err
	}
	return "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// prepareImage decodes an uploaded image and renders it for the preset:
// author photos become a square thumbnail, captions are bounded.
func prepareImage(data []byte, preset Preset) ([]byte, error) {
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %dMB", maxImageBytes>>20)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("not an image: %w", err)
	}

	switch preset {
	case PresetAuthorPhoto:
		img = imaging.Fill(img, 400, 400, imaging.Center, imaging.Lanczos)
	default:
		img = imaging.Fit(img, 1600, 1600, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("encode %s: %w", preset, err)
	}
	return buf.Bytes(), nil
}

// decodeAndPrepare is the shared front half of every byte-oriented backend.
func decodeAndPrepare(payload string, preset Preset) ([]byte, error) {
	data, err := DecodePayload(payload)
	if err != nil {
		return nil, newUploadError("Invalid media payload", err)
	}
	rendered, err := prepareImage(data, preset)
	if err != nil {
		return nil, newUploadError("Invalid image", err)
	}
	return rendered, nil
}

func objectKey(preset Preset, id string) string {
	return fmt.Sprintf("%s/%s.jpg", preset, id)
}
