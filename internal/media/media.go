package media

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF for DecodeConfig.
	_ "image/jpeg" // Register JPEG for DecodeConfig.
	_ "image/png"  // Register PNG for DecodeConfig.
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	_ "golang.org/x/image/webp" // Register WebP for DecodeConfig.

	"imagevault/internal/model"
)

// ImageTypes are the extensions served as images.
var ImageTypes = []string{"png", "jpg", "jpeg", "gif", "webp"}

// PDFType is the only document type accepted.
const PDFType = "pdf"

// FileType returns the lower-cased extension of name without the dot.
func FileType(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// IsImage reports whether fileType is one of ImageTypes.
func IsImage(fileType string) bool {
	fileType = strings.ToLower(fileType)
	for _, t := range ImageTypes {
		if t == fileType {
			return true
		}
	}
	return false
}

// IsPDF reports whether fileType is a PDF.
func IsPDF(fileType string) bool {
	return strings.ToLower(fileType) == PDFType
}

// Allowed reports whether uploads of fileType are accepted.
func Allowed(fileType string) bool {
	return IsImage(fileType) || IsPDF(fileType)
}

// HumanSize formats a byte count as 512B, 1.50KB or 2.00MB.
func HumanSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%dB", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.2fKB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.2fMB", float64(n)/(1024*1024))
	}
}

// ImageDimensions reads only the image header and returns "WxH", or "N/A"
// when the format is unknown or the header is corrupt.
func ImageDimensions(r io.Reader) string {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		slog.Debug("Could not decode image header", "error", err)
		return "N/A"
	}
	return fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)
}

// PDFPageCount returns the number of pages, or 0 if the document cannot be parsed.
func PDFPageCount(ra io.ReaderAt, size int64) (count int) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("PDF reader panicked while counting pages", "panic", r)
			count = 0
		}
	}()

	reader, err := pdf.NewReader(ra, size)
	if err != nil {
		slog.Debug("Could not open PDF", "error", err)
		return 0
	}
	return reader.NumPage()
}

// PDFText returns the plain text of every page, or "" if the document cannot be parsed.
func PDFText(ra io.ReaderAt, size int64) (text string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("PDF reader panicked while extracting text", "panic", r)
			text = ""
		}
	}()

	reader, err := pdf.NewReader(ra, size)
	if err != nil {
		slog.Debug("Could not open PDF", "error", err)
		return ""
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		slog.Debug("Could not extract PDF text", "error", err)
		return ""
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return ""
	}
	return string(b)
}

// Source is what Extract needs from a stored blob.
type Source interface {
	io.Reader
	io.ReaderAt
	io.Seeker
}

// Extract builds the metadata recorded with an upload: file_size and
// uploaded_at always, plus dimensions for images or page_count for PDFs.
func Extract(src Source, size int64, fileType string, uploadedAt time.Time) map[string]any {
	meta := map[string]any{
		"file_size":   HumanSize(size),
		"uploaded_at": uploadedAt.UTC().Format(model.TimeLayout),
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		slog.Warn("Could not rewind upload for metadata extraction", "error", err)
		return meta
	}

	switch {
	case IsImage(fileType):
		meta["dimensions"] = ImageDimensions(src)
	case IsPDF(fileType):
		meta["page_count"] = PDFPageCount(src, size)
	}
	return meta
}
