package document

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrPasswordProtected reports that a document could not be decoded without
// a (correct) passphrase. Callers are expected to prompt and retry; it is
// never produced by a parsing problem.
var ErrPasswordProtected = errors.New("statement is password protected")

// ExtractPages reads a PDF file and returns the reconstructed text of each
// page in reading order. An empty password opens unprotected documents only.
func ExtractPages(path, password string) (pages []string, err error) {
	// The PDF library panics on some malformed files; convert to an error
	// so a corrupt document stays a recoverable condition for the caller.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf decode failed: %v", r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}

	r, err := pdf.NewReaderEncrypted(f, st.Size(), func() string { return password })
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, ErrPasswordProtected
		}
		return nil, fmt.Errorf("pdf open failed: %w", err)
	}

	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		content := page.Content()
		frags := make([]Fragment, 0, len(content.Text))
		for _, t := range content.Text {
			frags = append(frags, Fragment{Text: t.S, X: t.X, Y: t.Y})
		}
		pages = append(pages, strings.Join(ReconstructLines(frags), "\n"))
	}
	return pages, nil
}

// ExtractText reads a PDF file and returns the whole document as one text
// blob, pages separated by a blank line.
func ExtractText(path, password string) (string, error) {
	pages, err := ExtractPages(path, password)
	if err != nil {
		return "", err
	}
	return strings.Join(pages, "\n\n"), nil
}
