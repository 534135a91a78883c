// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/lvchem/balance"
	"github.com/katalvlaran/lvchem/cache"
	"github.com/katalvlaran/lvchem/formula"
	"github.com/katalvlaran/lvchem/molar"
)

// maxBodyBytes bounds POST bodies.
const maxBodyBytes = 64 << 10

// Error kinds not produced by balance.Kind.
const (
	KindBadRequest     = "bad_request"
	KindUnknownElement = "unknown_element"
)

// BalanceRequest is the POST /v1/balance body. Reaction, when set, takes
// precedence over the explicit lists.
type BalanceRequest struct {
	Reactants []string `json:"reactants,omitempty"`
	Products  []string `json:"products,omitempty"`
	Reaction  string   `json:"reaction,omitempty"`
}

// BalanceResponse is a balanced equation plus its rendering.
type BalanceResponse struct {
	balance.Equation
	Formatted string `json:"formatted"`
	Cached    bool   `json:"cached"`
}

// DecomposeResponse lists element counts for one formula.
type DecomposeResponse struct {
	Formula  string         `json:"formula"`
	Elements map[string]int `json:"elements"`
	Atoms    int            `json:"atoms"`
}

// MassResponse carries a molar mass in g/mol.
type MassResponse struct {
	Formula   string  `json:"formula"`
	MolarMass float64 `json:"molar_mass"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	var req BalanceRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.logger.Warn("balance: invalid request body", "error", err, "request_id", RequestID(r.Context()))
		s.writeError(w, http.StatusBadRequest, KindBadRequest, fmt.Errorf("invalid request body: %w", err))

		return
	}

	if req.Reaction != "" {
		rs, ps, err := balance.ParseReaction(req.Reaction)
		if err != nil {
			s.writeError(w, http.StatusUnprocessableEntity, balance.Kind(err), err)

			return
		}
		req.Reactants, req.Products = rs, ps
	}

	start := time.Now()
	eq, hit, err := cache.Balance(r.Context(), s.cache, req.Reactants, req.Products, s.balOpts...)
	s.metrics.balanceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Debug("balance failed", "error", err, "kind", balance.Kind(err))
		s.writeError(w, http.StatusUnprocessableEntity, balance.Kind(err), err)

		return
	}

	s.writeJSON(w, http.StatusOK, BalanceResponse{
		Equation:  *eq,
		Formatted: balance.Format(eq),
		Cached:    hit,
	})
}

func (s *Server) handleDecompose(w http.ResponseWriter, r *http.Request) {
	f, ok := s.formulaParam(w, r)
	if !ok {
		return
	}
	c, err := formula.Decompose(f)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, balance.KindParse, err)

		return
	}
	s.writeJSON(w, http.StatusOK, DecomposeResponse{Formula: f, Elements: c, Atoms: c.Atoms()})
}

func (s *Server) handleMass(w http.ResponseWriter, r *http.Request) {
	f, ok := s.formulaParam(w, r)
	if !ok {
		return
	}
	m, err := s.table.Mass(f)
	if err != nil {
		kind := balance.KindParse
		if errors.Is(err, molar.ErrUnknownElement) {
			kind = KindUnknownElement
		}
		s.writeError(w, http.StatusUnprocessableEntity, kind, err)

		return
	}
	s.writeJSON(w, http.StatusOK, MassResponse{Formula: f, MolarMass: m})
}

func (s *Server) formulaParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	f, err := url.PathUnescape(chi.URLParam(r, "formula"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, KindBadRequest, err)

		return "", false
	}

	return f, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, kind string, err error) {
	s.writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: kind})
}
