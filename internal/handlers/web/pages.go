package web

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/KirkDiggler/drinkwheel/internal/services/game"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const qrSize = 320

func (s *Server) servePage(assets fs.FS) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		page, err := fs.ReadFile(assets, "index.html")
		if err != nil {
			s.logger.Error("failed to read page", zap.Error(err))
			http.Error(w, "page unavailable", http.StatusInternalServerError)
			return
		}

		// asset and API paths in the page are relative to the prefix
		page = []byte(strings.ReplaceAll(string(page), "{{PREFIX}}", s.prefix))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(page); err != nil {
			s.logger.Debug("failed to write page", zap.Error(err))
		}
	}
}

func (s *Server) serveHealthCheck(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Ok\n"))
}

func (s *Server) serveVersion(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("drinkwheel v" + s.version + "\n"))
}

// serveQRCode encodes the page URL so phones can join the same screen's controls
func (s *Server) serveQRCode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	url := s.publicURL
	if url == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		url = scheme + "://" + r.Host + s.prefix + "/"
	}

	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		s.logger.Error("qr generation failed", zap.String("url", url), zap.Error(err))
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// serveEvents upgrades to a websocket and streams every event, starting with a snapshot
func (s *Server) serveEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	state, err := s.game.GetState(r.Context(), &game.GetStateInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	first, err := encode(MessageTypeState, state)
	if err != nil {
		s.logger.Error("failed to marshal state", zap.Error(err))
		first = nil
	}

	if err := s.hub.serve(w, r, first); err != nil {
		// the upgrader has already written the HTTP error
		s.logger.Debug("websocket upgrade failed", zap.Error(err))
	}
}
