package handler

import (
	"log/slog"
	"net/http"

	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/prompt"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/session"
)

type statusResponse struct {
	Status string `json:"status"`
}

type challengesResponse struct {
	Challenges []string `json:"challenges"`
}

type planResponse struct {
	Plan string `json:"plan"`
}

type answerResponse struct {
	Answer string `json:"answer"`
}

// SetModel stores the chosen provider and API key in the caller's session.
func SetModel(sessions *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		if sessions == nil {
			writeError(w, http.StatusServiceUnavailable, "sessions disabled")
			return
		}

		f, err := readFields(r)
		if err != nil {
			badBody(w, err)
			return
		}

		id := sessions.Ensure(w, r)
		sessions.Save(id, session.Data{Provider: f.get("model"), APIKey: f.get("api_key")})

		writeJSON(w, http.StatusOK, statusResponse{Status: "Model updated"})
	}
}

// GenerateChallenges lists obstacles for the submitted goal.
func GenerateChallenges(res *Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		f, err := readFields(r)
		if err != nil {
			badBody(w, err)
			return
		}

		rt := res.routerFor(r, f)
		result := rt.GenerateText(r.Context(), prompt.ChallengeMessages(f.get("goal")))
		slog.Debug("llm response", "provider", rt.Provider(), "chars", len(result))

		writeJSON(w, http.StatusOK, challengesResponse{Challenges: prompt.ParseList(result)})
	}
}

// GeneratePlan builds an action plan for the submitted challenges.
func GeneratePlan(res *Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		f, err := readFields(r)
		if err != nil {
			badBody(w, err)
			return
		}

		rt := res.routerFor(r, f)
		plan := rt.GenerateText(r.Context(), prompt.PlanMessages(f.list("challenges")))

		writeJSON(w, http.StatusOK, planResponse{Plan: plan})
	}
}

// Chat answers a single question through the chat template.
func Chat(res *Resolver, tmpl *prompt.ChatTemplate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		f, err := readFields(r)
		if err != nil {
			badBody(w, err)
			return
		}

		text, err := tmpl.Render(prompt.ChatInput{Question: f.get("msg")})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		answer := res.routerFor(r, f).GenerateText(r.Context(), text)
		writeJSON(w, http.StatusOK, answerResponse{Answer: answer})
	}
}
