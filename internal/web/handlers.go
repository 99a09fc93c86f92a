package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"kingdomsperil/internal/chronicle"
	"kingdomsperil/internal/game"
)

const maxNameLen = 64

// GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	vm := MenuView{}
	if sess, _, ok := s.session(r); ok {
		vm.Player = sess.PlayerName
	}
	s.render(w, "menu.html", vm)
}

// POST /start
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}

	id := s.sessionID(r)
	if id == "" {
		id = s.Sessions.NewID()
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	s.Sessions.Put(id, s.Engine.NewSession(name))
	http.Redirect(w, r, "/play", http.StatusFound)
}

// GET /play renders the current scene; POST /play applies a choice.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	sess, id, ok := s.session(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if r.Method != http.MethodPost {
		s.renderScene(w, sess, "", "")
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	res, err := s.Engine.ApplyChoice(sess, r.FormValue("choice"))
	if err != nil {
		var invalid *game.InvalidChoiceError
		if errors.As(err, &invalid) {
			// Options are buttons, so this only happens on a forged form.
			s.renderScene(w, sess, fmt.Sprintf("Invalid choice. Valid: %s.", strings.Join(invalid.Valid, ", ")), "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.renderResult(w, sess, id, res)
}

// POST /answer applies a free-text answer to an input scene.
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	sess, id, ok := s.session(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/play", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	res, err := s.Engine.ApplyInput(sess, r.FormValue("answer"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.renderResult(w, sess, id, res)
}

// GET /outcomes
func (s *Server) handleOutcomes(w http.ResponseWriter, r *http.Request) {
	report, err := s.Engine.ReadOutcomes()
	if err != nil {
		http.Error(w, "failed to read outcomes", http.StatusInternalServerError)
		return
	}
	s.render(w, "outcomes.html", OutcomesView{Report: report})
}

// GET /chronicle downloads the outcomes report as a parchment PDF.
func (s *Server) handleChronicle(w http.ResponseWriter, r *http.Request) {
	lines, err := s.Engine.Log.ReadAll()
	if err != nil {
		http.Error(w, "failed to read outcomes", http.StatusInternalServerError)
		return
	}
	pdf, err := chronicle.Generate(s.Engine.Story.Title, lines)
	if err != nil {
		http.Error(w, "failed to render chronicle", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="chronicle.pdf"`)
	_, _ = w.Write(pdf)
}

func (s *Server) renderScene(w http.ResponseWriter, sess *game.Session, message, warning string) {
	text, err := s.Engine.RenderText(sess)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sc, err := s.Engine.CurrentScene(sess)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "game.html", GameView{
		Player:    sess.PlayerName,
		Text:      text,
		Scene:     sc,
		IsInput:   sc.Kind == game.KindInput,
		Message:   message,
		Warning:   warning,
		Inventory: sess.DescribeInventory(),
	})
}

func (s *Server) renderResult(w http.ResponseWriter, sess *game.Session, id string, res game.StepResult) {
	warning := ""
	if res.LogErr != nil {
		warning = fmt.Sprintf("Warning: outcome could not be saved: %v", res.LogErr)
	}
	if !res.Terminal {
		s.renderScene(w, sess, res.Message, warning)
		return
	}
	// Playthrough over: the session has no further transitions.
	s.Sessions.Delete(id)
	s.render(w, "game.html", GameView{
		Player:    sess.PlayerName,
		Message:   res.Message,
		Warning:   warning,
		Ended:     true,
		Fatal:     res.Fatal,
		Inventory: sess.DescribeInventory(),
	})
}

func (s *Server) render(w http.ResponseWriter, name string, vm any) {
	if err := s.Tmpl.ExecuteTemplate(w, name, vm); err != nil {
		http.Error(w, "failed to render template", http.StatusInternalServerError)
	}
}
