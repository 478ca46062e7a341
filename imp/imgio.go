package imp

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ReadFile reads an image from a file.
func ReadFile(filename string) (image.Image, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Path: filename, Err: err}
	}
	return img, nil
}

// ReadBytes reads an image from raw bytes.
func ReadBytes(data []byte) (image.Image, error) {
	b := bytes.NewBuffer(data)
	return Read(b)
}

// Read reads an image from a io.Reader.
func Read(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return img, nil
}

// Save creates a file and writes an image to it. Image format is decided
// based upon its extension: anything imaging can encode (jpg, png, gif,
// tif, bmp) or pdf.
func Save(filename string, img image.Image) error {
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		err = SavePDF(filename, img)
	case ".jpg", ".jpeg":
		err = imaging.Save(img, filename, imaging.JPEGQuality(100))
	default:
		err = imaging.Save(img, filename)
	}
	if err != nil {
		return &EncodeError{Path: filename, Err: err}
	}
	return nil
}

// Formats lists the extensions accepted by Save.
func Formats() []string {
	return []string{".bmp", ".gif", ".jpeg", ".jpg", ".pdf", ".png", ".tif", ".tiff"}
}

// CheckFormat returns an error if Save can't encode to filename.
func CheckFormat(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range Formats() {
		if ext == f {
			return nil
		}
	}
	return &EncodeError{Path: filename, Err: fmt.Errorf("unknown extension %q", ext)}
}
