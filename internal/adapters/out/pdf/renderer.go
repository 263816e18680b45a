// Package pdf renders the checkout report document emailed to the admin
// after a shift is checked out.
package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"staffing/internal/core/domain/model/jobpost"
)

// Letterhead printed at the top of every checkout report.
const (
	letterheadOrg     = "Elite Care Management, INC (HC)"
	letterheadStreet  = "568 S. Washington St."
	letterheadCity    = "Naperville, IL, 60540-6042"
	letterheadContact = "Phone: (630) 548-9500 | Fax: (630) 548-0541"

	reportTitle = "Registered Nurse"
)

// signaturePattern matches the embedded image payload submitted from the
// mobile client: "data:image/<format>;base64,<data>".
var signaturePattern = regexp.MustCompile(`^data:image/(\w+);base64,(.+)$`)

// supported signature image formats, keyed by the payload's format token.
var signatureFormats = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// Renderer produces checkout report PDFs in the given directory.
// It implements ports.CheckoutRenderer.
type Renderer struct {
	tempDir string
	logger  *slog.Logger
}

// NewRenderer creates a renderer writing into tempDir.
func NewRenderer(tempDir string, logger *slog.Logger) *Renderer {
	return &Renderer{tempDir: tempDir, logger: logger}
}

// RenderCheckoutReport writes the report for a checked-out post and returns
// the file path. The caller owns the file and removes it after use.
func (r *Renderer) RenderCheckoutReport(ctx context.Context, post *jobpost.JobPost) (string, error) {
	if err := post.Validate(); err != nil {
		return "", err
	}

	details := post.Details()
	checkout := post.Checkout()

	doc := fpdf.New("P", "pt", "A4", "")
	// Compression stays off so the report text remains searchable.
	doc.SetCompression(false)
	doc.SetMargins(25, 25, 25)
	doc.AddPage()

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 14, letterheadOrg, "", 1, "C", false, 0, "")
	doc.CellFormat(0, 14, letterheadStreet, "", 1, "C", false, 0, "")
	doc.CellFormat(0, 14, letterheadCity, "", 1, "C", false, 0, "")
	doc.CellFormat(0, 14, letterheadContact, "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "U", 14)
	doc.CellFormat(0, 20, reportTitle, "", 1, "R", false, 0, "")

	r.visitPanel(doc, post, details, checkout)
	r.vitalsPanel(doc, checkout)
	r.signaturePanel(ctx, doc, checkout.Signature)

	path := filepath.Join(r.tempDir, fmt.Sprintf("JobCheckout_%s.pdf", post.ID()))
	if err := doc.OutputFileAndClose(path); err != nil {
		return "", err
	}

	return path, nil
}

func (r *Renderer) visitPanel(doc *fpdf.Fpdf, post *jobpost.JobPost, details jobpost.Details, checkout jobpost.CheckoutDetails) {
	doc.Ln(10)
	top := doc.GetY()
	doc.Rect(25, top, 545, 150, "D")
	doc.SetY(top + 10)

	doc.SetFont("Helvetica", "", 12)
	r.row(doc, "CRID: "+post.CRID(), "Visit Date: "+details.Date)
	r.row(doc, "Location: "+details.Location, "Time In: "+formatTime(post.CheckInTime()))
	r.row(doc, "Shift: "+details.Shift, "Time Out: "+formatTime(post.CheckedOutTime()))
	r.row(doc, "Performed By: "+orNA(checkout.PerformedBy), "Contact Number: "+orNA(checkout.ContactNumber))

	doc.SetY(top + 150)
}

func (r *Renderer) vitalsPanel(doc *fpdf.Fpdf, checkout jobpost.CheckoutDetails) {
	doc.Ln(10)
	top := doc.GetY()
	doc.Rect(25, top, 545, 130, "D")
	doc.SetY(top + 10)

	doc.SetFont("Helvetica", "U", 14)
	doc.CellFormat(0, 18, "Vital Signs", "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 16, "Weight: "+orNA(checkout.PatientWeight), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 16, "Temperature: "+orNA(checkout.Temperature), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 16, "Blood Pressure: "+orNA(checkout.BloodPressure), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 16, "Comments: "+orNA(checkout.Notes), "", 1, "L", false, 0, "")

	doc.SetY(top + 130)
}

func (r *Renderer) signaturePanel(ctx context.Context, doc *fpdf.Fpdf, signature string) {
	doc.Ln(10)
	top := doc.GetY()
	doc.Rect(25, top, 545, 100, "D")
	doc.SetY(top + 10)

	doc.SetFont("Helvetica", "U", 12)
	doc.CellFormat(0, 16, "Signature:", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 12)

	if signature == "" {
		doc.CellFormat(0, 16, "No signature provided.", "", 1, "L", false, 0, "")
		return
	}

	if err := r.embedSignature(doc, signature); err != nil {
		r.logger.WarnContext(ctx, "failed to embed signature image", slog.Any("error", err))
		doc.ClearError()
		doc.CellFormat(0, 16, "Signature image could not be added.", "", 1, "L", false, 0, "")
	}
}

// errInvalidSignatureFormat marks payloads that do not carry a usable image.
var errInvalidSignatureFormat = fmt.Errorf("invalid signature image format")

// embedSignature decodes the payload into a per-request temp file, draws it
// and removes the file. Unparseable payloads degrade to a placeholder; the
// report itself always renders.
func (r *Renderer) embedSignature(doc *fpdf.Fpdf, signature string) error {
	match := signaturePattern.FindStringSubmatch(signature)
	if match == nil || !signatureFormats[match[1]] {
		doc.CellFormat(0, 16, "Invalid image format.", "", 1, "L", false, 0, "")
		return nil
	}

	raw, err := base64.StdEncoding.DecodeString(match[2])
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidSignatureFormat, err)
	}

	// Unique name per request so concurrent checkouts never clobber each
	// other's temp files.
	tempPath := filepath.Join(r.tempDir, fmt.Sprintf("signature_%s.%s", uuid.NewString(), match[1]))
	if err = os.WriteFile(tempPath, raw, 0o600); err != nil {
		return err
	}
	defer os.Remove(tempPath)

	doc.ImageOptions(tempPath, 35, doc.GetY(), 200, 50, false, fpdf.ImageOptions{}, 0, "")
	if doc.Err() {
		return doc.Error()
	}

	return nil
}

func (r *Renderer) row(doc *fpdf.Fpdf, left, right string) {
	doc.CellFormat(272, 16, left, "", 0, "L", false, 0, "")
	doc.CellFormat(0, 16, right, "", 1, "R", false, 0, "")
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.UTC().Format(time.RFC3339)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
