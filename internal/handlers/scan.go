package handlers

import (
	"net/http"

	"github.com/takakun00-maker/op-inventory-app/internal/models"
	"github.com/takakun00-maker/op-inventory-app/internal/scan"
	"github.com/takakun00-maker/op-inventory-app/internal/service"
)

// maxImageBytes caps uploaded camera frames.
const maxImageBytes = 10 << 20

type ScanHandler struct {
	Decoder scan.Decoder // nil when the decoder is unavailable
	Service *service.InventoryService
}

// Available reports whether scanning can be offered to the caller.
func (h *ScanHandler) Available() bool {
	return h.Decoder != nil
}

type scanResponse struct {
	Codes   []string        `json:"codes"`
	Product *models.Product `json:"product"`
}

// Scan decodes barcodes from an uploaded image and resolves the first
// code that matches a product. With no decoder wired in, the endpoint
// reports the degraded mode and callers must use manual search.
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	if h.Decoder == nil {
		writeError(w, http.StatusServiceUnavailable, scan.ErrDecoderUnavailable.Error())
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxImageBytes)
	codes, err := h.Decoder.Decode(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not decode image")
		return
	}

	resp := scanResponse{Codes: codes}
	if resp.Codes == nil {
		resp.Codes = []string{}
	}
	for _, code := range codes {
		p, err := h.Service.Lookup(code)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if p != nil {
			resp.Product = p
			break
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
