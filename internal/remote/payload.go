package remote

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"
)

// Field is one scalar form field. A nil Value encodes as the literal string
// "null"; that is what the previous client put on the wire for cleared
// fields, and the API depends on it.
type Field struct {
	Name  string
	Value *string
}

// FilePart is one binary part of a multipart payload.
type FilePart struct {
	Filename string
	Data     []byte
}

// Payload is the explicit serialization of an asset form. Scalar fields keep
// their declaration order, binary parts are positional (images[0], files[0],
// ...), and FileCategories aligns index-for-index with Files.
type Payload struct {
	Fields []Field

	Images []FilePart
	Files  []FilePart

	// one category per entry in Files, comma-joined on the wire
	FileCategories []string

	ReplaceImages      bool
	KeepExistingImages bool
	ReplaceFiles       bool
	KeepExistingFiles  bool
}

// StringValue returns a Field value for a present scalar.
func StringValue(s string) *string { return &s }

// Encode writes the payload as multipart/form-data and returns the content
// type, boundary included.
func (p *Payload) Encode(w io.Writer) (string, error) {
	mw := multipart.NewWriter(w)

	for _, f := range p.Fields {
		value := "null"
		if f.Value != nil {
			value = *f.Value
		}
		if err := mw.WriteField(f.Name, value); err != nil {
			return "", fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}

	for i, img := range p.Images {
		if err := writeFilePart(mw, fmt.Sprintf("images[%d]", i), img); err != nil {
			return "", err
		}
	}
	for i, f := range p.Files {
		if err := writeFilePart(mw, fmt.Sprintf("files[%d]", i), f); err != nil {
			return "", err
		}
	}

	// nil omits the field entirely (keep-existing submissions); a non-nil
	// empty slice still writes fileCategories="" like the previous client
	if p.FileCategories != nil {
		if err := mw.WriteField("fileCategories", strings.Join(p.FileCategories, ",")); err != nil {
			return "", fmt.Errorf("write fileCategories: %w", err)
		}
	}

	flags := []struct {
		name string
		set  bool
	}{
		{"replaceImages", p.ReplaceImages},
		{"keepExistingImages", p.KeepExistingImages},
		{"replaceFiles", p.ReplaceFiles},
		{"keepExistingFiles", p.KeepExistingFiles},
	}
	for _, f := range flags {
		if !f.set {
			continue
		}
		if err := mw.WriteField(f.name, "true"); err != nil {
			return "", fmt.Errorf("write flag %s: %w", f.name, err)
		}
	}

	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}
	return mw.FormDataContentType(), nil
}

func writeFilePart(mw *multipart.Writer, name string, part FilePart) error {
	fw, err := mw.CreateFormFile(name, part.Filename)
	if err != nil {
		return fmt.Errorf("create part %s: %w", name, err)
	}
	if _, err := fw.Write(part.Data); err != nil {
		return fmt.Errorf("write part %s: %w", name, err)
	}
	return nil
}
