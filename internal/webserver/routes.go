package webserver

import (
	"encoding/json"
	"net/http"
)

// classifyRequest mirrors the wire contract of the inference client.
type classifyRequest struct {
	Features any `json:"features"`
}

// classifyResponse is what a well-behaved classifier endpoint returns.
type classifyResponse struct {
	Inference int    `json:"inference"`
	Features  any    `json:"features"`
	Note      string `json:"note,omitempty"`
}

// registerRoutes sets up the demo classifier endpoints on the given mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /", s.handleInfo)
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("POST /classify", s.handleClassifyRandom)
	mux.HandleFunc("POST /classify/random", s.handleClassifyRandom)
	mux.HandleFunc("POST /classify/biased", s.handleClassifyBiased)
}

// handleInfo describes the available endpoints.
func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "faircheck demo classifier",
		"endpoints": map[string]string{
			"/classify":        "POST - random binary prediction",
			"/classify/random": "POST - random binary prediction",
			"/classify/biased": "POST - always predicts 1 (intentionally unfair)",
			"/health":          "GET - health check",
		},
	})
}

// handleHealth returns a simple health check response.
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleClassifyRandom returns a random binary prediction.
func (s *Server) handleClassifyRandom(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClassifyRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, classifyResponse{
		Inference: s.randomLabel(),
		Features:  req.Features,
	})
}

// handleClassifyBiased always predicts the positive class, so fairness
// checks against it fail by construction.
func (s *Server) handleClassifyBiased(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClassifyRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, classifyResponse{
		Inference: 1,
		Features:  req.Features,
		Note:      "this endpoint is intentionally biased for testing",
	})
}

func decodeClassifyRequest(w http.ResponseWriter, r *http.Request) (*classifyRequest, bool) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "body must be a JSON object with a features field"})
		return nil, false
	}
	return &req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
