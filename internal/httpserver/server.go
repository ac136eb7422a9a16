// internal/httpserver/server.go
//
// HTTP wiring for the Citidle backend. The engine is a pure function of
// (date, guess, dataset); everything session-shaped lives here.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/game/info", "/cities".
//   - Game endpoints: POST /game/guess, POST /game/reveal.
//   - Anonymous signed-cookie sessions (see session.go) and per-day guess
//     history in the in-memory store.
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled (so cookies work).
//   - The reveal endpoint never discloses the target before a win unless
//     the player explicitly gives up.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/citidle/go-server/internal/daily"
	"github.com/citidle/go-server/internal/game"
	"github.com/citidle/go-server/internal/store"
)

// Server bundles router, evaluator, and session store.
type Server struct {
	r     *chi.Mux
	eval  *game.Evaluator
	store store.Store
}

// New constructs a Server, installs middleware, and registers routes.
func New(eval *game.Evaluator, st store.Store) *Server {
	s := &Server{r: chi.NewRouter(), eval: eval, store: st}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"citidle-go","endpoints":["/health","/game/info","POST /game/guess","POST /game/reveal","/cities"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Game endpoints
	s.r.Get("/game/info", s.handleInfo)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Post("/game/reveal", s.handleReveal)

	// Autocomplete source
	s.r.Get("/cities", s.handleCities)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	// Debug: dataset size
	s.r.Get("/debug/cities", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"cities": s.eval.Dataset().Len()})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := getEnv("CLIENT_ORIGIN", "http://localhost:5173")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ sessions -----------------------------------

// ensureSession returns today's session for the caller, minting a fresh
// session (and cookie) when there is none or when the cookie references a
// previous day.
func (s *Server) ensureSession(w http.ResponseWriter, r *http.Request) (*store.Session, error) {
	today := daily.Today()

	if tok := bearerOrCookie(r); tok != "" {
		if sid, date, err := parseSessionToken(tok); err == nil && date == today {
			if sess, err := s.store.Get(r.Context(), sid); err == nil && sess.Date == today {
				return sess, nil
			}
			// Store was restarted since the cookie was minted; fall through
			// and start a fresh session under a new ID.
		}
	}

	sess := &store.Session{ID: genID(), Date: today}
	if err := s.store.Save(r.Context(), sess); err != nil {
		return nil, err
	}
	tok, err := signSessionToken(sess.ID, today)
	if err != nil {
		return nil, err
	}
	setSessionCookie(w, tok)
	return sess, nil
}

// ------------------------------- INFO --------------------------------------

// handleInfo reports game metadata: dataset size, current Central-zone
// date, and the time remaining until the next daily reset.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	left := daily.NextReset(daily.Now())
	total := int(left.Seconds())
	_ = json.NewEncoder(w).Encode(map[string]any{
		"totalCities": s.eval.Dataset().Len(),
		"date":        daily.Today(),
		"timeUntilReset": map[string]int{
			"hours":        total / 3600,
			"minutes":      (total % 3600) / 60,
			"seconds":      total % 60,
			"totalSeconds": total,
		},
	})
}

// ------------------------------- GUESS -------------------------------------

// guessReq is the payload for POST /game/guess.
type guessReq struct {
	Guess string `json:"guess"`
}

// guessRes is the response for POST /game/guess.
// State is one of: "playing", "won", "locked", "unrecognized", "ambiguous".
type guessRes struct {
	State      string              `json:"state"`
	Error      string              `json:"error,omitempty"`
	Candidates []string            `json:"candidates,omitempty"`
	Result     *guessResult        `json:"result,omitempty"`
	Target     *game.Summary       `json:"target,omitempty"` // only on win
	Guesses    int                 `json:"guesses"`
	History    []store.GuessRecord `json:"history"`
}

// guessResult mirrors game.Result for the wire.
type guessResult struct {
	City          string  `json:"city"`
	DistanceMiles float64 `json:"distanceMiles"`
	Direction     string  `json:"direction"`
	Tier          string  `json:"tier"`
	Correct       bool    `json:"correct"`
}

// handleGuess evaluates one guess against today's target and records it in
// the caller's session. No-match and ambiguity are ordinary responses, not
// HTTP errors.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	guess := strings.TrimSpace(req.Guess)
	if guess == "" {
		http.Error(w, `{"error":"empty_guess"}`, http.StatusBadRequest)
		return
	}

	sess, err := s.ensureSession(w, r)
	if err != nil {
		log.Error().Err(err).Msg("create session")
		http.Error(w, `{"error":"session_failed"}`, http.StatusInternalServerError)
		return
	}
	if sess.Finished() {
		_ = json.NewEncoder(w).Encode(guessRes{State: "locked", Guesses: len(sess.Guesses), History: sess.Guesses})
		return
	}

	res := s.eval.Evaluate(guess, daily.Now())

	if res.Ambiguous() {
		names := make([]string, 0, len(res.Candidates))
		for _, c := range res.Candidates {
			names = append(names, c.Display())
		}
		_ = json.NewEncoder(w).Encode(guessRes{
			State:      "ambiguous",
			Error:      "More than one city matches — add a state, e.g. \"" + names[0] + "\".",
			Candidates: names,
			Guesses:    len(sess.Guesses),
			History:    sess.Guesses,
		})
		return
	}
	if !res.Resolved() {
		_ = json.NewEncoder(w).Encode(guessRes{
			State:   "unrecognized",
			Error:   "City not recognized. Make sure it's a US city with 300k+ population.",
			Guesses: len(sess.Guesses),
			History: sess.Guesses,
		})
		return
	}

	rec := store.GuessRecord{
		City:          res.City.Display(),
		DistanceMiles: res.DistanceMiles,
		Direction:     string(res.Direction),
		Tier:          string(res.Tier),
		Correct:       res.Correct,
	}
	sess.Guesses = append(sess.Guesses, rec)
	state := "playing"
	if res.Correct {
		sess.Won = true
		state = "won"
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Warn().Err(err).Str("session", sess.ID).Msg("save session")
	}

	out := guessRes{
		State: state,
		Result: &guessResult{
			City:          rec.City,
			DistanceMiles: rec.DistanceMiles,
			Direction:     rec.Direction,
			Tier:          rec.Tier,
			Correct:       rec.Correct,
		},
		Guesses: len(sess.Guesses),
		History: sess.Guesses,
	}
	if res.Correct {
		summary := s.eval.TargetSummary(daily.Now())
		out.Target = &summary
	}
	_ = json.NewEncoder(w).Encode(out)
}

// ------------------------------- REVEAL ------------------------------------

// revealReq is the payload for POST /game/reveal.
type revealReq struct {
	Confirm bool `json:"confirm"`
}

// handleReveal returns today's target. Allowed after a win; before a win
// it requires an explicit confirmed give-up, which locks the session.
func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	var req revealReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	sess, err := s.ensureSession(w, r)
	if err != nil {
		log.Error().Err(err).Msg("create session")
		http.Error(w, `{"error":"session_failed"}`, http.StatusInternalServerError)
		return
	}

	if !sess.Won {
		if !req.Confirm {
			http.Error(w, `{"error":"must_confirm_reveal"}`, http.StatusBadRequest)
			return
		}
		sess.GaveUp = true
		if err := s.store.Save(r.Context(), sess); err != nil {
			log.Warn().Err(err).Str("session", sess.ID).Msg("save session")
		}
	}

	summary := s.eval.TargetSummary(daily.Now())
	_ = json.NewEncoder(w).Encode(map[string]any{"target": summary, "won": sess.Won})
}

// ------------------------------- CITIES ------------------------------------

// handleCities returns the "Name, ST" list for client-side autocomplete.
func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	all := s.eval.Dataset().All()
	names := make([]string, 0, len(all))
	for i := range all {
		names = append(names, all[i].Display())
	}
	_ = json.NewEncoder(w).Encode(map[string][]string{"cities": names})
}
