package game

// Kind distinguishes how a scene is advanced.
type Kind string

const (
	// KindChoice scenes offer discrete keyed options.
	KindChoice Kind = "choice"
	// KindInput scenes validate a free-text answer.
	KindInput Kind = "input"
	// KindTerminal scenes have no outgoing transitions.
	KindTerminal Kind = "terminal"
)

// Reserved next-ids. An option or answer may target one of these instead of
// a scene to end the session immediately.
const (
	SceneVictory = "victory"
	SceneFatal   = "fatal"
)

// Story is an immutable directed graph of scenes. Built once at startup and
// validated before any session starts.
type Story struct {
	Title  string            `yaml:"title"`
	Start  string            `yaml:"start"`
	Scenes map[string]*Scene `yaml:"scenes"`
}

// Scene is a single narrative node.
type Scene struct {
	ID      string            `yaml:"-"`
	Text    string            `yaml:"text"`
	Kind    Kind              `yaml:"kind"`
	Options []Option          `yaml:"options"`
	Answers map[string]Answer `yaml:"answers"`
	// WrongOutcome is recorded when an input scene's answer misses. It must
	// be set explicitly (may be empty) so a wrong answer is never silently
	// survivable.
	WrongOutcome *string  `yaml:"wrongOutcome"`
	Grants       []string `yaml:"grants"`
}

// Option is one keyed choice at a choice scene. An empty Next ends the
// session in victory unless Fatal is set.
type Option struct {
	Key     string   `yaml:"key"`
	Label   string   `yaml:"label"`
	Next    string   `yaml:"next"`
	Outcome string   `yaml:"outcome"`
	Fatal   bool     `yaml:"fatal"`
	Grants  []string `yaml:"grants"`
}

// Answer is the transition taken when an input scene's answer matches.
type Answer struct {
	Next    string `yaml:"next"`
	Outcome string `yaml:"outcome"`
}

// Scene returns the scene for id, guarding against a corrupted cursor.
func (s *Story) Scene(id string) (*Scene, error) {
	sc := s.Scenes[id]
	if sc == nil {
		return nil, &UnknownSceneError{ID: id}
	}
	return sc, nil
}

// Keys lists the scene's option keys in declaration order.
func (sc *Scene) Keys() []string {
	keys := make([]string, 0, len(sc.Options))
	for i := range sc.Options {
		keys = append(keys, sc.Options[i].Key)
	}
	return keys
}

func isSentinel(id string) bool {
	return id == SceneVictory || id == SceneFatal
}
