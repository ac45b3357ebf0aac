package adapthttp

import (
	"net/http"

	"companion/internal/domain"
)

func (s *Server) handleCreateChat(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	sess, err := s.chats.CreateSession(r.Context(), user.ID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toChatResponse(sess))
}

func (s *Server) handleListChats(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	sessions, err := s.chats.ListSessions(r.Context(), user.ID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	out := make([]chatResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, toChatResponse(&sessions[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetChat(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	id, err := domain.ParseID(r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	sess, err := s.chats.GetSession(r.Context(), user.ID, id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toChatResponse(sess))
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	id, err := domain.ParseID(r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bot, err := s.chats.SendMessage(r.Context(), user.ID, id, req.Content)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMessageResponse(bot))
}
