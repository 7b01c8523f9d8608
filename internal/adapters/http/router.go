package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
	"github.com/mayankdk/portfolio-assistant/internal/core/ports"
	"github.com/mayankdk/portfolio-assistant/internal/observability/metrics"
)

const serviceName = "portfolio-api"

// troubleAnswer is returned when answering fails unexpectedly. The chat
// widget renders this body verbatim, so it stays a complete sentence.
const troubleAnswer = "I apologize, but I'm having trouble accessing the portfolio information. Please try again or ask about specific sections like education, experience, or projects."

type Router struct {
	answerer ports.QuestionAnswerer
	queue    ports.ReindexQueue
	metrics  *metrics.HTTPServerMetrics
}

func NewRouter(answerer ports.QuestionAnswerer, queue ports.ReindexQueue, m *metrics.HTTPServerMetrics) *Router {
	return &Router{
		answerer: answerer,
		queue:    queue,
		metrics:  m,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/chat", rt.chat)
	mux.HandleFunc("/v1/reindex", rt.reindex)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	return requestIDMiddleware(accessLogMiddleware(handler))
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Answer  string `json:"answer"`
	Section string `json:"section"`
	Source  string `json:"source"`
}

func (rt *Router) chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "question is required"})
		return
	}

	start := time.Now()
	answer, err := rt.answerer.Answer(r.Context(), req.Question)
	if err != nil {
		status := mapErrorToHTTPStatus(err)
		if status >= 500 {
			// Never leak internals to the chat widget.
			slog.Error("chat_answer_error", "request_id", requestIDFromContext(r.Context()), "error", err)
			writeJSON(w, status, chatResponse{Answer: troubleAnswer})
			return
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordAnswer(serviceName, string(answer.Section), string(answer.Source), time.Since(start))
		if answer.Source == domain.SourceRefusal && answer.GateOutcome != domain.GateSkipped {
			rt.metrics.RecordGateRejection(serviceName, answer.GateOutcome)
		}
		if answer.GateOutcome == domain.GateGenerationError {
			rt.metrics.RecordGenerationFailure(serviceName)
		}
		if answer.RetrievalFallback {
			rt.metrics.RecordRetrievalFallback(serviceName)
		}
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Answer:  answer.Text,
		Section: string(answer.Section),
		Source:  string(answer.Source),
	})
}

func (rt *Router) reindex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	if rt.queue == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "reindex queue is not configured"})
		return
	}

	requestID, err := rt.queue.PublishReindexRequested(r.Context())
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": "failed to request reindex"})
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{
		"status":     "accepted",
		"request_id": requestID,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
