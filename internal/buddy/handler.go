package buddy

import (
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
)

// Handler serves the chat endpoint from the built-in line pools, so a
// companion can be pointed at a shared lunaris instance instead of a
// language model.
type Handler struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *log.Logger
}

// NewHandler creates a chat handler. A nil logger discards output.
func NewHandler(rng *rand.Rand, logger *log.Logger) *Handler {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handler{rng: rng, logger: logger}
}

// Mux returns a ServeMux with the handler mounted on ChatPath.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(ChatPath, h)
	return mux
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeReply(w, http.StatusMethodNotAllowed, chatReply{Error: "method not allowed"})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Context == nil {
		writeReply(w, http.StatusBadRequest, chatReply{Error: "missing context"})
		return
	}

	in := req.Context
	kind := KindForEvent(in.Event)
	if in.IsStalling {
		kind = KindEncourage
	}

	h.mu.Lock()
	msg := Line(in.Skin, kind, h.rng)
	h.mu.Unlock()

	h.logger.Debug("Buddy chat", "event", in.Event, "mode", in.Mode, "score", in.Score, "message", msg)
	writeReply(w, http.StatusOK, chatReply{Message: msg})
}

func writeReply(w http.ResponseWriter, status int, reply chatReply) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(reply)
}
