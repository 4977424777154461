package server

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

var contentTypes = map[string]string{
	loaders.FormatPNG:  "image/png",
	loaders.FormatPPM:  "image/x-portable-pixmap",
	loaders.FormatBMP:  "image/bmp",
	loaders.FormatTIFF: "image/tiff",
}

// handleRender renders one frame and responds with the encoded image.
// Render statistics are reported in X-Render-* headers.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	req.Format = strings.ToLower(req.Format)
	contentType, ok := contentTypes[req.Format]
	if !ok {
		writeError(w, http.StatusBadRequest, "Unsupported format: "+req.Format)
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := renderer.DefaultConfig()
	config.MaxDepth = req.MaxDepth
	logger := s.logger.With("remote", r.RemoteAddr)
	raytracer, err := renderer.NewRaytracer(sceneObj, config, logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// the request context is cancelled when the client disconnects
	canvas, stats, err := raytracer.Render(r.Context())
	if err != nil {
		if errors.Is(err, r.Context().Err()) {
			logger.Info("client went away during render", "scene", req.Scene)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := loaders.EncodeImage(&buf, canvas.ToImage(), req.Format); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode image: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Render-Pixels", strconv.Itoa(stats.Pixels))
	w.Header().Set("X-Render-Rays", strconv.FormatInt(stats.Rays, 10))
	w.Header().Set("X-Render-Hits", strconv.FormatInt(stats.Hits, 10))
	w.Header().Set("X-Render-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
