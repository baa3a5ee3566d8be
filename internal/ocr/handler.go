package ocr

import (
	"errors"
	"io"
	"net/http"

	"github.com/studycoach/backend/internal/config"
)

// maxUploadBytes caps scanned image uploads at 20 MiB.
const maxUploadBytes = 20 << 20

type Handler struct {
	client Client
}

func NewHandler(c Client) *Handler {
	return &Handler{client: c}
}

// ScanImage handles POST /api/scan: it forwards the uploaded image to the OCR
// service and relays the extracted text.
func (h *Handler) ScanImage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded image")
		http.Error(w, "failed to read uploaded file", http.StatusBadRequest)
		return
	}

	log.WithField("filename", header.Filename).WithField("bytes", len(data)).Info("Forwarding image to OCR service")

	text, err := h.client.ExtractText(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		log.WithError(err).Error("OCR extraction failed")
		if errors.Is(err, ErrUnavailable) {
			http.Error(w, "ocr service unavailable", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "ocr extraction failed", http.StatusBadGateway)
		return
	}

	log.WithField("text_chars", len(text)).Info("OCR extraction succeeded")

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"text":    text,
		"message": "Text extracted successfully",
	})
}
