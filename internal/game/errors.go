package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSessionEnded reports a transition attempted on a session that already
// reached a terminal. Front-ends stop looping once StepResult.Terminal is
// set, so hitting this is a caller bug.
var ErrSessionEnded = errors.New("session already ended")

// InvalidGraphError reports authoring bugs found while validating a story.
// It is only produced at construction time.
type InvalidGraphError struct {
	Problems []string
}

func (e *InvalidGraphError) Error() string {
	return fmt.Sprintf("invalid story graph: %s", strings.Join(e.Problems, "; "))
}

// UnknownSceneError reports a session cursor pointing at no scene. A
// validated graph never produces this at runtime.
type UnknownSceneError struct {
	ID string
}

func (e *UnknownSceneError) Error() string {
	return fmt.Sprintf("unknown scene %q", e.ID)
}

// WrongSceneKindError reports ApplyChoice called on an input scene or
// ApplyInput on a choice scene.
type WrongSceneKindError struct {
	SceneID string
	Want    Kind
	Got     Kind
}

func (e *WrongSceneKindError) Error() string {
	return fmt.Sprintf("scene %q is a %s scene, not %s", e.SceneID, e.Got, e.Want)
}

// InvalidChoiceError is the one user-facing, recoverable failure: the key
// matched no option. Valid carries the keys to re-prompt with.
type InvalidChoiceError struct {
	SceneID string
	Key     string
	Valid   []string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice %q for scene %q (valid: %s)", e.Key, e.SceneID, strings.Join(e.Valid, ", "))
}
