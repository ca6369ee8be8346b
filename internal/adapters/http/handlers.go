package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"svw.info/kudoku/internal/domain"
	"svw.info/kudoku/internal/solver"
	"svw.info/kudoku/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/health", h.handleHealth)
}

// ---- Solve ----

type solveReq struct {
	Grid     string `json:"grid"`
	Diagonal bool   `json:"diagonal,omitempty"`
}

type solveResp struct {
	Solved     bool   `json:"solved"`
	Grid       string `json:"grid,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Nodes      int    `json:"nodes,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	in, err := domain.Parse(req.Grid, domain.NewTopology(req.Diagonal))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	out, st, err := h.UC.Solve(r.Context(), in)
	switch {
	case errors.Is(err, solver.ErrUnsolvable):
		// Not an error: a proper answer about the puzzle.
		_ = json.NewEncoder(w).Encode(solveResp{
			Error:      err.Error(),
			DurationMs: st.Duration.Milliseconds(),
			Nodes:      st.Nodes,
		})
	case err != nil:
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
	default:
		_ = json.NewEncoder(w).Encode(solveResp{
			Solved:     true,
			Grid:       domain.GridString(out),
			DurationMs: st.Duration.Milliseconds(),
			Nodes:      st.Nodes,
		})
	}
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
	Diagonal   bool   `json:"diagonal,omitempty"`
}

type generateResp struct {
	Grid       string `json:"grid,omitempty"`
	Solution   string `json:"solution,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Diagonal   bool   `json:"diagonal,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Nodes      int    `json:"nodes,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(r.Context(), seed, diff, req.Diagonal)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(generateResp{
		Grid:       p.Grid,
		Solution:   p.Solution,
		Seed:       seed,
		Difficulty: diff.String(),
		Diagonal:   p.Diagonal,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateReq struct {
	Grid     string `json:"grid"`
	Diagonal bool   `json:"diagonal,omitempty"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	st, err := domain.Parse(req.Grid, domain.NewTopology(req.Diagonal))
	if err != nil {
		// A grid that does not parse is not a valid grid.
		_ = json.NewEncoder(w).Encode(validateResp{OK: false, Error: err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), st)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Grid     string `json:"grid"`
	Diagonal bool   `json:"diagonal,omitempty"`
	MaxTier  string `json:"maxTier,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	st, err := domain.Parse(req.Grid, domain.NewTopology(req.Diagonal))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), st, domain.ParseTier(req.MaxTier))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}

// ---- Health ----

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
