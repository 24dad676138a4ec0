package server

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/ChrisEOlsen/resume-site/internal/screen"
)

// handleIndex renders the resume page. The download link appears only once the flag is set.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	tree := screen.Render(s.store.Profile(), screen.Options{
		DownloadReady: s.ready.Ready(),
		DownloadURL:   PDFPath,
	})

	var buf bytes.Buffer
	if err := screen.WriteHTML(&buf, tree); err != nil {
		log.Printf("[server] Failed to render page (id=%s): %v", RequestID(r.Context()), err)
		s.errorResponse(w, r, http.StatusInternalServerError, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handlePDF renders the document layout and streams it as an attachment
func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	if !s.ready.Ready() {
		w.Header().Set("Retry-After", "5")
		s.errorResponse(w, r, HTTPStatus(ErrNotReady), ErrNotReady.Error())
		return
	}

	res, err := s.generator.Generate(r.Context(), s.store.Profile())
	if err != nil {
		log.Printf("[pdf] Generation failed (id=%s): %v", RequestID(r.Context()), err)
		s.errorResponse(w, r, HTTPStatus(err), "failed to generate PDF")
		return
	}

	if s.verbose {
		log.Printf("[pdf] Served %s: %d bytes, %d page(s)", res.FileName, len(res.Data), res.Pages)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Data)))
	w.Header().Set("X-Page-Count", strconv.Itoa(res.Pages))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Data)
}

// handleProfile returns the profile record as JSON
func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Profile())
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady reports the readiness flag: 200 once PDF generation is available, 503 before
func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if !s.ready.Ready() {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]any{"status": "not_ready", "pdf": false})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"status": "ready", "pdf": true})
}
