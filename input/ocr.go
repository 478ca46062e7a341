package input

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"unicode/utf8"

	"github.com/otiai10/gosseract/v2"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Text recognizes the text of a (binarized) page with tesseract.
func Text(img image.Image, langs ...string) (string, error) {
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return "", err
	}

	ocr := gosseract.NewClient()
	defer ocr.Close()
	if len(langs) > 0 {
		if err := ocr.SetLanguage(langs...); err != nil {
			return "", err
		}
	}
	if err := ocr.SetImageFromBytes(b.Bytes()); err != nil {
		return "", err
	}
	return ocr.Text()
}

// A Score compares recognized text to a reference transcription.
type Score struct {
	Distance int     // levenshtein distance, substitutions counting twice
	Accuracy float64 // 1 - Distance/len(want), floored at 0
}

// Compare scores got against want. Whitespace runs are collapsed first so
// that line breaks introduced by the OCR engine don't count as errors.
func Compare(got, want string) Score {
	got, want = squash(got), squash(want)
	d := levenshtein.DistanceForStrings([]rune(got), []rune(want), levenshtein.DefaultOptions)

	n := utf8.RuneCountInString(want)
	if n == 0 {
		if d == 0 {
			return Score{Accuracy: 1}
		}
		return Score{Distance: d}
	}
	acc := 1 - float64(d)/float64(n)
	if acc < 0 {
		acc = 0
	}
	return Score{Distance: d, Accuracy: acc}
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
