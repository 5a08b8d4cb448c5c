package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/internodyssey/intern-match/internal/recommend"
	"github.com/internodyssey/intern-match/internal/types"
)

// handleMatch runs a full quota-constrained match over the posted pool.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.engine.Match(r.Context(), &req)
	if err != nil {
		log.Printf("Match failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleMatchTop returns the n best candidates by merit alone, ignoring
// quotas. n comes from the query string and defaults to the posting capacity.
func (s *Server) handleMatchTop(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	n := req.Posting.Capacity
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Query parameter n must be a positive integer")
			return
		}
		n = parsed
	}

	resp, err := s.engine.MatchTopN(r.Context(), &req, n)
	if err != nil {
		log.Printf("Top-N match failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleSubmitJob stores a posting and marks it current.
func (s *Server) handleSubmitJob(w http.ResponseWriter, r *http.Request) {
	var req types.SubmitJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	posting := s.jobs.Create(&req)
	log.Printf("Job submitted: %s (%s)", posting.ID, posting.Title)
	s.jsonResponse(w, http.StatusCreated, posting)
}

// handleListJobs returns every stored posting in submission order.
func (s *Server) handleListJobs(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": s.jobs.List()})
}

// handleGetJob returns one stored posting by ID.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	posting, ok := s.jobs.Get(id)
	if !ok {
		err := &ErrJobNotFound{JobID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, posting)
}

// handleCurrentJob returns the most recently submitted posting.
func (s *Server) handleCurrentJob(w http.ResponseWriter, _ *http.Request) {
	posting, ok := s.jobs.Current()
	if !ok {
		err := &ErrNoCurrentJob{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, posting)
}

// handleMatchStoredJob runs a match of a posted candidate pool against a
// stored posting. The body carries only the candidates.
func (s *Server) handleMatchStoredJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	posting, ok := s.jobs.Get(id)
	if !ok {
		err := &ErrJobNotFound{JobID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var body struct {
		Candidates []types.Candidate `json:"candidates"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	req := types.MatchRequest{Posting: posting, Candidates: body.Candidates}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.engine.Match(r.Context(), &req)
	if err != nil {
		log.Printf("Match against job %s failed: %v", id, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleRecommendations ranks the supplied postings for one candidate.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	topK := req.TopK
	if topK == 0 {
		topK = recommend.DefaultTopK
	}

	recs, err := recommend.Jobs(r.Context(), s.provider, &req.Candidate, req.Jobs, topK)
	if err != nil {
		log.Printf("Recommendation failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"recommendations": recs})
}

// handleMatchCandidates ranks the supplied candidates against a free-text
// job description, the reverse direction of /recommendations.
func (s *Server) handleMatchCandidates(w http.ResponseWriter, r *http.Request) {
	var req types.MatchCandidatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	topK := req.TopK
	if topK == 0 {
		topK = recommend.DefaultTopK
	}

	matches, err := recommend.Candidates(r.Context(), s.provider, req.Description, req.Candidates, topK)
	if err != nil {
		log.Printf("Candidate match failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
}

// handleParseResume extracts a structured candidate record from raw resume
// text.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	if s.parser == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Resume parsing is not configured")
		return
	}

	var req types.ParseResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	parsed, err := s.parser.Parse(r.Context(), req.Text)
	if err != nil {
		log.Printf("Resume parse failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, parsed)
}
