// Package web is the browser front-end: scenes rendered as pages with
// clickable option buttons, styled after an old green-phosphor terminal.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"kingdomsperil/internal/game"
)

//go:embed templates/*.html
var templateFS embed.FS

const cookieName = "kingdomsperil_sid"

type Server struct {
	Engine   *game.Engine
	Sessions *SessionStore
	Tmpl     *template.Template
}

func NewServer(engine *game.Engine) *Server {
	return &Server{
		Engine:   engine,
		Sessions: NewSessionStore(),
		Tmpl:     template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/start", s.handleStart)
	mux.HandleFunc("/play", s.handlePlay)
	mux.HandleFunc("/answer", s.handleAnswer)
	mux.HandleFunc("/outcomes", s.handleOutcomes)
	mux.HandleFunc("/chronicle", s.handleChronicle)
	return mux
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func (s *Server) session(r *http.Request) (*game.Session, string, bool) {
	id := s.sessionID(r)
	if id == "" {
		return nil, "", false
	}
	sess, ok := s.Sessions.Get(id)
	return sess, id, ok
}
