package http

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"activity-board/internal/board"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type pageData struct {
	Snapshot
	LoadingText     string
	UnavailableText string
	NoParticipants  string
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	const handlerName = "index"

	s, release := h.viewSession(r)
	defer release()

	h.logBoardErr(handlerName, s.Board.LoadActivities(r.Context()))
	h.renderPage(w, handlerName, s)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "signup"

	form, err := readSignupForm(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	s, _ := h.session(w, r)
	s.View.SetForm(form.Email, form.Activity)
	h.logBoardErr(handlerName, s.Board.Submit(r.Context(), form.Email, form.Activity))
	h.renderPage(w, handlerName, s)
}

// handleUnregister запускает отписку в фоне сессии и отвечает, как только доска
// задала вопрос подтверждения (или отписка завершилась без него).
func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "unregister"

	form, err := readParticipantForm(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	s, created := h.session(w, r)
	if created {
		// страницу рисовала временная сессия, новой нужна доска под диалогом
		h.logBoardErr(handlerName, s.Board.LoadActivities(r.Context()))
	}

	asked := s.Prompts.Asked()
	done := s.Go(func(ctx context.Context) {
		h.logBoardErr(handlerName, s.Board.Unregister(ctx, form.Activity, form.Email))
	})

	select {
	case <-asked:
	case <-done:
	case <-r.Context().Done():
		return
	}
	h.renderPage(w, handlerName, s)
}

// handleConfirm отвечает на вопрос и ждёт, пока отписка доработает.
func (h *Handler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	const handlerName = "confirm"

	form, err := readConfirmForm(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	// без живой сессии отвечать не на что
	s, ok := h.lookup(r)
	if !ok {
		h.writeError(w, handlerName, ErrConflict("PROMPT_EXPIRED", "confirmation is no longer pending"))
		return
	}
	if err := s.Prompts.Resolve(form.PromptID, form.Accept); err != nil {
		h.writeError(w, handlerName, ErrConflict("PROMPT_EXPIRED", "confirmation is no longer pending"))
		return
	}

	if done := s.Pending(); done != nil {
		select {
		case <-done:
		case <-r.Context().Done():
			return
		}
	}
	h.renderPage(w, handlerName, s)
}

func (h *Handler) handleBoard(w http.ResponseWriter, r *http.Request) {
	const handlerName = "board"

	s, release := h.viewSession(r)
	defer release()

	h.logBoardErr(handlerName, s.Board.LoadActivities(r.Context()))

	snap := s.Snapshot()
	resp := boardResponse{
		Status:  snap.Status,
		Board:   snap.Board,
		Message: snap.Message,
		Prompt:  snap.Prompt,
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) renderPage(w http.ResponseWriter, handlerName string, s *Session) {
	data := pageData{
		Snapshot:        s.Snapshot(),
		LoadingText:     board.LoadingText,
		UnavailableText: board.UnavailableText,
		NoParticipants:  board.NoParticipantsText,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.writeError(w, handlerName, ErrInternal("render page", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// logBoardErr пишет в лог только неожиданные ошибки: остальные пользователь уже видит в баннере.
func (h *Handler) logBoardErr(handlerName string, err error) {
	switch {
	case err == nil,
		errors.Is(err, board.ErrMissingFields),
		errors.Is(err, board.ErrDeclined),
		errors.Is(err, board.ErrSuperseded),
		errors.Is(err, context.Canceled):
		return
	}
	h.Log.Warn("board action failed",
		slog.String("handler", handlerName),
		slog.Any("err", err),
	)
}
