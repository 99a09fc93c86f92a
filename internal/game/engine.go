package game

import (
	"fmt"
	"strings"
)

// OutcomeLog is the append-only sink for outcome labels. Appends are
// best-effort from the engine's point of view: a failed write never blocks
// the narrative.
type OutcomeLog interface {
	Append(label string) error
	ReadAll() ([]string, error)
}

// NoOutcomes is returned by ReadOutcomes when nothing has been recorded.
const NoOutcomes = "No outcomes recorded yet."

// Engine is the stateless transition function over a validated story. All
// front-ends drive the game exclusively through it.
type Engine struct {
	Story *Story
	Log   OutcomeLog
}

// StepResult describes what a transition did. LogErr carries a failed
// outcome write as a warning; the transition itself still happened.
type StepResult struct {
	Message  string
	Fatal    bool
	Terminal bool
	LogErr   error
}

// NewSession starts a playthrough of the engine's story.
func (e *Engine) NewSession(playerName string) *Session {
	return NewSession(e.Story, playerName)
}

// CurrentScene returns the scene the session is at.
func (e *Engine) CurrentScene(sess *Session) (*Scene, error) {
	if sess.Ended() {
		return nil, ErrSessionEnded
	}
	return e.Story.Scene(sess.SceneID)
}

// RenderText returns the current scene's narrative text with the player's
// name substituted in.
func (e *Engine) RenderText(sess *Session) (string, error) {
	sc, err := e.CurrentScene(sess)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(sc.Text, "{player}", sess.PlayerName), nil
}

// ApplyChoice advances a choice scene by option key (case-insensitive). An
// unknown key fails with *InvalidChoiceError and leaves the session and the
// log untouched, so front-ends can re-prompt.
func (e *Engine) ApplyChoice(sess *Session, key string) (StepResult, error) {
	sc, err := e.CurrentScene(sess)
	if err != nil {
		return StepResult{}, err
	}
	if sc.Kind != KindChoice {
		return StepResult{}, &WrongSceneKindError{SceneID: sc.ID, Want: KindChoice, Got: sc.Kind}
	}

	norm := Normalize(key)
	var opt *Option
	for i := range sc.Options {
		if Normalize(sc.Options[i].Key) == norm {
			opt = &sc.Options[i]
			break
		}
	}
	if opt == nil {
		return StepResult{}, &InvalidChoiceError{SceneID: sc.ID, Key: key, Valid: sc.Keys()}
	}

	var logErr error
	if opt.Outcome != "" {
		logErr = e.Log.Append(opt.Outcome)
	}
	sess.Grant(opt.Grants...)

	next := opt.Next
	if opt.Fatal {
		next = SceneFatal
	}
	res := e.move(sess, next)
	res.Message = opt.Outcome
	res.LogErr = logErr
	return res, nil
}

// ApplyInput advances an input scene by free-text answer. A wrong answer is
// not a retryable error: it records the scene's wrong-answer outcome and
// ends the session fatally.
func (e *Engine) ApplyInput(sess *Session, raw string) (StepResult, error) {
	sc, err := e.CurrentScene(sess)
	if err != nil {
		return StepResult{}, err
	}
	if sc.Kind != KindInput {
		return StepResult{}, &WrongSceneKindError{SceneID: sc.ID, Want: KindInput, Got: sc.Kind}
	}

	ans, ok := sc.Answers[Normalize(raw)]
	if !ok {
		wrong := ""
		if sc.WrongOutcome != nil {
			wrong = *sc.WrongOutcome
		}
		var logErr error
		if wrong != "" {
			logErr = e.Log.Append(wrong)
		}
		res := e.move(sess, SceneFatal)
		res.Message = wrong
		res.LogErr = logErr
		return res, nil
	}

	var logErr error
	if ans.Outcome != "" {
		logErr = e.Log.Append(ans.Outcome)
	}
	res := e.move(sess, ans.Next)
	res.Message = ans.Outcome
	res.LogErr = logErr
	return res, nil
}

// move points the session at next, ending it when next is a terminal
// marker. Entering a scene applies its grants.
func (e *Engine) move(sess *Session, next string) StepResult {
	switch next {
	case SceneFatal:
		sess.Status = StatusFatal
		sess.SceneID = SceneFatal
		return StepResult{Fatal: true, Terminal: true}
	case "", SceneVictory:
		sess.Status = StatusVictory
		sess.SceneID = SceneVictory
		return StepResult{Terminal: true}
	}
	sess.SceneID = next
	if sc := e.Story.Scenes[next]; sc != nil {
		sess.Grant(sc.Grants...)
		if sc.Kind == KindTerminal {
			sess.Status = StatusVictory
			return StepResult{Terminal: true}
		}
	}
	return StepResult{}
}

// ReadOutcomes formats the outcome log as a numbered report, or the
// NoOutcomes sentinel when the log is absent or empty.
func (e *Engine) ReadOutcomes() (string, error) {
	lines, err := e.Log.ReadAll()
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return NoOutcomes, nil
	}
	var b strings.Builder
	b.WriteString("Past Adventure Outcomes:")
	for i, line := range lines {
		fmt.Fprintf(&b, "\n%d. %s", i+1, line)
	}
	return b.String(), nil
}
