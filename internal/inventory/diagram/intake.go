package diagram

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/domain"
)

// DefaultMaxBytes caps an uploaded diagram at 5 MiB.
const DefaultMaxBytes int64 = 5 << 20

// Intake turns an uploaded image into a data URI usable as a project's diagramUrl.
type Intake struct {
	maxBytes int64
}

func NewIntake(maxBytes int64) *Intake {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Intake{maxBytes: maxBytes}
}

func (in *Intake) MaxBytes() int64 { return in.maxBytes }

// Encode reads r fully and returns "data:<mime>;base64,<payload>".
// Non-image content yields domain.ErrUnsupportedImage; oversize input yields domain.ErrImageTooLarge.
func (in *Intake) Encode(r io.Reader) (string, error) {
	b, err := io.ReadAll(io.LimitReader(r, in.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read diagram: %w", err)
	}
	if int64(len(b)) > in.maxBytes {
		return "", domain.ErrImageTooLarge
	}
	if len(b) == 0 {
		return "", fmt.Errorf("empty diagram: %w", domain.ErrUnsupportedImage)
	}

	mt := mimetype.Detect(b)
	if !isImage(mt) {
		return "", fmt.Errorf("%s: %w", mt.String(), domain.ErrUnsupportedImage)
	}

	var sb strings.Builder
	sb.WriteString("data:")
	sb.WriteString(baseMIME(mt.String()))
	sb.WriteString(";base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString(b))
	return sb.String(), nil
}

func isImage(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return true
		}
	}
	return false
}

// baseMIME strips parameters such as "; charset=utf-8".
func baseMIME(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
