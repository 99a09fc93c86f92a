package game

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed stories/kingdoms_peril.yaml
var kingdomsPerilYAML []byte

// DefaultStory returns the built-in Kingdom's Peril story. The embedded
// content is authored alongside the code, so a parse or validation failure
// here is a build defect.
func DefaultStory() (*Story, error) {
	return parseStory(kingdomsPerilYAML)
}

// LoadStory loads and validates a story from a YAML file.
func LoadStory(path string) (*Story, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, err
	}
	return parseStory(b)
}

func parseStory(b []byte) (*Story, error) {
	var s Story
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	s.normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// normalize fills in scene IDs from map keys, defaults the kind, and lowers
// answer keys so lookups are a single map access.
func (s *Story) normalize() {
	for id, sc := range s.Scenes {
		if sc == nil {
			continue
		}
		sc.ID = id
		if sc.Kind == "" {
			if len(sc.Answers) > 0 {
				sc.Kind = KindInput
			} else {
				sc.Kind = KindChoice
			}
		}
		if len(sc.Answers) == 0 {
			continue
		}
		normalized := make(map[string]Answer, len(sc.Answers))
		for ans, tr := range sc.Answers {
			normalized[Normalize(ans)] = tr
		}
		sc.Answers = normalized
	}
}

// Validate checks the whole graph up front so traversal never has to: every
// referenced id resolves, choice scenes have options with unique keys, input
// scenes have answers and an explicit wrong-answer outcome. It reports all
// problems at once as an *InvalidGraphError.
func (s *Story) Validate() error {
	var problems []string
	bad := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if s.Start == "" {
		bad("story has no start scene")
	} else if s.Scenes[s.Start] == nil {
		bad("start scene %q does not exist", s.Start)
	}

	for id, sc := range s.Scenes {
		if sc == nil {
			bad("scene %q is empty", id)
			continue
		}
		if isSentinel(id) {
			bad("scene id %q is a reserved terminal marker", id)
		}
		switch sc.Kind {
		case KindChoice:
			s.validateChoice(sc, bad)
		case KindInput:
			s.validateInput(sc, bad)
		case KindTerminal:
			if len(sc.Options) > 0 || len(sc.Answers) > 0 {
				bad("terminal scene %q must not have options or answers", id)
			}
		default:
			bad("scene %q has unknown kind %q", id, sc.Kind)
		}
	}

	if len(problems) > 0 {
		return &InvalidGraphError{Problems: problems}
	}
	return nil
}

func (s *Story) validateChoice(sc *Scene, bad func(string, ...any)) {
	if len(sc.Options) == 0 {
		bad("choice scene %q has no options", sc.ID)
	}
	if len(sc.Answers) > 0 {
		bad("choice scene %q must not have answers", sc.ID)
	}
	seen := make(map[string]bool, len(sc.Options))
	for i := range sc.Options {
		opt := &sc.Options[i]
		key := Normalize(opt.Key)
		if key == "" {
			bad("scene %q option %d has no key", sc.ID, i)
			continue
		}
		if seen[key] {
			bad("scene %q has duplicate option key %q", sc.ID, key)
		}
		seen[key] = true
		if opt.Next != "" && !isSentinel(opt.Next) && s.Scenes[opt.Next] == nil {
			bad("scene %q option %q references unknown scene %q", sc.ID, opt.Key, opt.Next)
		}
	}
}

func (s *Story) validateInput(sc *Scene, bad func(string, ...any)) {
	if len(sc.Options) > 0 {
		bad("input scene %q must not have options", sc.ID)
	}
	if len(sc.Answers) == 0 {
		bad("input scene %q has no accepted answers", sc.ID)
	}
	if sc.WrongOutcome == nil {
		bad("input scene %q has no wrongOutcome", sc.ID)
	}
	for ans, tr := range sc.Answers {
		if tr.Next == "" {
			bad("scene %q answer %q has no destination", sc.ID, ans)
			continue
		}
		if !isSentinel(tr.Next) && s.Scenes[tr.Next] == nil {
			bad("scene %q answer %q references unknown scene %q", sc.ID, ans, tr.Next)
		}
	}
}

// Normalize is the canonical form for option keys and free-text answers.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
