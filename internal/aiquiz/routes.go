package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post(VariantPDF.Path, h.GenerateFromPDF)
	r.Post(VariantTopic.Path, h.GenerateFromTopic)
	r.Post(VariantOCR.Path, h.GenerateFromOCR)
	return r
}
