package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/voting-agent/server/internal/agent/model"
	errx "github.com/voting-agent/server/internal/core/error"
	logx "github.com/voting-agent/server/pkg/logger"
)

// ApologyText is sent in place of an answer when the pipeline fails.
const ApologyText = "I apologize, but I encountered an error processing your voting question request. Please try again."

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": s.agentName})
}

// query handles POST /query.
func (s *Server) query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequestDTO
	if !decode(w, r, &req) {
		return
	}
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		writeError(w, errx.New(fmt.Errorf("missing query"), http.StatusBadRequest, "query is required"))
		return
	}

	msgID := uuid.NewString()
	logx.Info().Str("message_id", msgID).Str("query", req.Query).Msg("Processing query")

	out, err := s.runner.Invoke(r.Context(), model.QueryInput{Query: req.Query})
	if err != nil {
		logx.Error().Err(err).Str("message_id", msgID).Msg("Query processing failed")
		writeJSON(w, errx.StatusOf(err), QueryResponseDTO{
			MessageID: msgID,
			Text:      ApologyText,
			Timestamp: s.timestamp(),
		})
		return
	}

	writeJSON(w, http.StatusOK, QueryResponseDTO{
		MessageID:        msgID,
		SelectedQuestion: out.SelectedQuestion,
		HumanizedAnswer:  out.HumanizedAnswer,
		Text:             fmt.Sprintf("**%s**\n\n%s", out.SelectedQuestion, out.HumanizedAnswer),
		Timestamp:        s.timestamp(),
	})
}

// voting handles POST /voting.
func (s *Server) voting(w http.ResponseWriter, r *http.Request) {
	var req BrandRequestDTO
	if !decode(w, r, &req) || !requireBrand(w, req.BrandName) {
		return
	}
	logx.Info().Str("brand", req.BrandName).Msg("Received voting question request")

	resp := VotingResponseDTO{
		BrandName:    req.BrandName,
		Timestamp:    s.timestamp(),
		AgentAddress: s.agentName,
	}

	data := s.knowledge.BrandNegativeData(r.Context(), req.BrandName)
	if data.IsEmpty() {
		resp.VotingQuestion = noDataMessage(req.BrandName)
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp.Success = true
	resp.VotingQuestion = s.generator.GenerateOne(r.Context(), req.BrandName, data)
	resp.NegativeDataSummary = summarize(data)
	writeJSON(w, http.StatusOK, resp)
}

// votingBatch handles POST /voting/batch.
func (s *Server) votingBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequestDTO
	if !decode(w, r, &req) || !requireBrand(w, req.BrandName) {
		return
	}
	logx.Info().Str("brand", req.BrandName).Int("count", req.Count).Msg("Received voting batch request")

	resp := BatchResponseDTO{
		BrandName:       req.BrandName,
		VotingQuestions: []string{},
		Timestamp:       s.timestamp(),
		AgentAddress:    s.agentName,
	}

	data := s.knowledge.BrandNegativeData(r.Context(), req.BrandName)
	if data.IsEmpty() {
		resp.Message = noDataMessage(req.BrandName)
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp.Success = true
	resp.VotingQuestions = s.generator.GenerateMany(r.Context(), req.BrandName, data, req.Count)
	resp.NegativeDataSummary = summarize(data)
	writeJSON(w, http.StatusOK, resp)
}

// negativeData handles POST /brand/negative-data.
func (s *Server) negativeData(w http.ResponseWriter, r *http.Request) {
	var req BrandRequestDTO
	if !decode(w, r, &req) || !requireBrand(w, req.BrandName) {
		return
	}
	logx.Info().Str("brand", req.BrandName).Msg("Received negative data request")

	data := s.knowledge.BrandNegativeData(r.Context(), req.BrandName)
	writeJSON(w, http.StatusOK, NegativeDataResponseDTO{
		Success:         data.Status != model.FetchFailed,
		BrandName:       req.BrandName,
		NegativeReviews: nonNil(data.Reviews),
		NegativeReddit:  nonNil(data.Reddit),
		NegativeSocial:  nonNil(data.Social),
		Timestamp:       s.timestamp(),
		AgentAddress:    s.agentName,
	})
}

func noDataMessage(brand string) string {
	return fmt.Sprintf("No negative feedback data found for %s", brand)
}

func summarize(d model.NegativeData) NegativeDataSummaryDTO {
	reviews, reddit, social := len(d.Reviews), len(d.Reddit), len(d.Social)
	return NegativeDataSummaryDTO{
		ReviewsCount: &reviews,
		RedditCount:  &reddit,
		SocialCount:  &social,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, errx.BadRequest(err))
		return false
	}
	return true
}

func requireBrand(w http.ResponseWriter, brand string) bool {
	if strings.TrimSpace(brand) == "" {
		writeError(w, errx.New(fmt.Errorf("missing brand_name"), http.StatusBadRequest, "brand_name is required"))
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	msg := errx.MessageOf(err)
	writeJSON(w, errx.StatusOf(err), ErrorResponseDTO{Error: msg, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logx.Error().Err(err).Msg("Failed to write response")
	}
}
