// Package photo turns an uploaded image into a data URL that can be stored on a product.
package photo

import (
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxSize is the largest accepted source file (2 MB)
const MaxSize = 2 * 1024 * 1024

var (
	ErrTooLarge = errors.New("image must be 2MB or smaller")
	ErrNotImage = errors.New("file is not an image")
	ErrEmpty    = errors.New("image file is empty")
	ErrDataURL  = errors.New("photo must be a base64 data URL")
)

// Encode reads at most MaxSize bytes and returns data:<mime>;base64,<payload>
func Encode(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return "", err
	}
	if len(data) > MaxSize {
		return "", ErrTooLarge
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", ErrNotImage
	}

	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// FromFileHeader checks the declared size before reading the upload
func FromFileHeader(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxSize {
		return "", ErrTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Encode(f)
}

// FromDataURL runs an already encoded photo through the same checks as an upload.
// The declared media type is ignored; the payload is sniffed again.
func FromDataURL(dataURL string) (string, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", ErrDataURL
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return "", ErrDataURL
	}
	return Encode(base64.NewDecoder(base64.StdEncoding, strings.NewReader(payload)))
}
