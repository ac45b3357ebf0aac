package adapthttp

import (
	"net/http"

	"companion/internal/domain"
)

func (s *Server) handleCreateMood(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req struct {
		Mood string `json:"mood"`
		Note string `json:"note"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := s.moods.Record(r.Context(), user.ID, domain.Mood(req.Mood), req.Note)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMoodResponse(e))
}

func (s *Server) handleListMoods(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	from, err := timeQuery(r, "start_date")
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	to, err := timeQuery(r, "end_date")
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	entries, err := s.moods.List(r.Context(), user.ID, from, to)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	out := make([]moodResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toMoodResponse(&entries[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetMood(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	id, err := domain.ParseID(r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	e, err := s.moods.Get(r.Context(), user.ID, id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMoodResponse(e))
}
