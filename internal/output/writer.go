package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/playchess-go/internal/config"
	"github.com/lgbarn/playchess-go/internal/processing"
)

// ReportWriter is the interface for writing replay reports to output.
// Different implementations handle different output formats.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(report *processing.Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewReportWriter returns the writer for the configured output format.
func NewReportWriter(w io.Writer, cfg *config.Config) ReportWriter {
	switch cfg.Output.Format {
	case config.JSONFormat:
		return NewJSONWriter(w)
	case config.FENFormat:
		return NewFENWriter(w)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes reports in the plain text format.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteReport writes a report immediately.
func (tw *TextWriter) WriteReport(report *processing.Report) error {
	OutputReport(report, tw.cfg, tw.w)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// FENWriter writes one line per report: the final FEN followed by the
// script name.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WriteReport writes the final position of a report.
func (fw *FENWriter) WriteReport(report *processing.Report) error {
	_, err := fmt.Fprintf(fw.w, "%s ; %s\n", report.FinalFEN, report.Name)
	return err
}

// Flush is a no-op for FEN output.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as one document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*processing.Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches reports until Close.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each report
// immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(report *processing.Report) error {
	if jw.single {
		return encodeJSON(jw.w, ReportToJSON(report))
	}
	jw.reports = append(jw.reports, report)
	return nil
}

// Flush writes all buffered reports as one JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}
	err := OutputReportsJSON(jw.reports, jw.w)
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
