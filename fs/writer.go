// Package fs provides output writers for the descriptor document.
package fs

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/fwojciec/trellodoc"
)

// Ensure Writer implements trellodoc.ConfigWriter at compile time.
var _ trellodoc.ConfigWriter = (*Writer)(nil)

// Writer writes the descriptor document to a file as indented JSON.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteConfig serializes the document and writes it to the configured path.
// Returns EINVALID naming the path and the underlying cause when the file
// cannot be opened for writing.
func (w *Writer) WriteConfig(ctx context.Context, cfg *trellodoc.Config) error {
	f, err := os.Create(w.path)
	if err != nil {
		return trellodoc.Errorf(trellodoc.EINVALID, "cannot open output file %s: %v", w.path, err)
	}

	if err := writeJSON(f, cfg); err != nil {
		_ = f.Close()
		return trellodoc.Errorf(trellodoc.EINTERNAL, "failed to write %s: %v", w.path, err)
	}

	return f.Close()
}

// Ensure StreamWriter implements trellodoc.ConfigWriter at compile time.
var _ trellodoc.ConfigWriter = (*StreamWriter)(nil)

// StreamWriter writes the descriptor document to an io.Writer. Used for
// stdout output.
type StreamWriter struct {
	w io.Writer
}

// NewStreamWriter creates a new StreamWriter that writes to w.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// WriteConfig serializes the document and writes it to the stream.
func (s *StreamWriter) WriteConfig(ctx context.Context, cfg *trellodoc.Config) error {
	return writeJSON(s.w, cfg)
}

func writeJSON(w io.Writer, cfg *trellodoc.Config) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
