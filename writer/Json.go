package writer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"province-exporter/model"

	"github.com/goccy/go-json"
)

// Encode renders records as an indented JSON array. Non-ASCII and HTML
// characters are written literally and no trailing newline is added.
func Encode(records []model.Record, indent int) ([]byte, error) {
	if records == nil {
		records = []model.Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func Decode(data []byte) ([]model.Record, error) {
	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Districts == nil {
			records[i].Districts = []string{}
		}
	}
	return records, nil
}

type JSONFile struct {
	Path   string
	Indent int
	Perm   os.FileMode
}

func NewJSONFile(path string, indent int) *JSONFile {
	return &JSONFile{Path: path, Indent: indent, Perm: 0o644}
}

func (w *JSONFile) Name() string {
	return "json"
}

func (w *JSONFile) Target() string {
	return w.Path
}

// Write replaces the file at Path with the encoded records.
func (w *JSONFile) Write(ctx context.Context, records []model.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(records, w.Indent)
	if err != nil {
		return fmt.Errorf("unable to encode records: %w", err)
	}
	return replaceFile(w.Path, w.Perm, func(out io.Writer) error {
		_, err := out.Write(data)
		return err
	})
}
