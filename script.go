package animate

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// scriptAnimation is one entry in a step's animation list.
type scriptAnimation struct {
	Type     string   `yaml:"type"`
	Duration *float32 `yaml:"duration"`
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
	Width    float64  `yaml:"width"`
	Height   float64  `yaml:"height"`
	Color    string   `yaml:"color"`
}

// scriptStep is one token: a view name, a mode, and its animations.
type scriptStep struct {
	View       string            `yaml:"view"`
	Mode       string            `yaml:"mode"`
	Animations []scriptAnimation `yaml:"animations"`
}

// scriptFile is the top-level document.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// scriptToken is a validated step with its animations built.
type scriptToken struct {
	view  string
	mode  Mode
	anims []Animation
}

// Script is a parsed animation chain. Each step becomes one token; Tokens
// resolves view names against a view tree.
type Script struct {
	steps []scriptToken
}

// LoadScript parses a YAML (or JSON) script:
//
//	steps:
//	  - view: box
//	    mode: parallel
//	    animations:
//	      - {type: fadeIn, duration: 0.5}
//	      - {type: move, x: 40, y: 0}
//	  - view: box
//	    animations:
//	      - {type: resize, width: 80, height: 80}
//	      - {type: tint, color: "#ff8800"}
//
// mode defaults to sequential and duration to DefaultDuration. Recognised
// types are fadeIn, fadeOut, resize, move, moveTo and tint.
func LoadScript(data []byte) (*Script, error) {
	var file scriptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}

	s := &Script{steps: make([]scriptToken, 0, len(file.Steps))}
	for i, st := range file.Steps {
		if st.View == "" {
			return nil, fmt.Errorf("parse script: step %d: missing view", i)
		}
		mode, err := parseMode(st.Mode)
		if err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
		tok := scriptToken{view: st.View, mode: mode}
		for j, sa := range st.Animations {
			a, err := sa.build()
			if err != nil {
				return nil, fmt.Errorf("parse script: step %d animation %d: %w", i, j, err)
			}
			tok.anims = append(tok.anims, a)
		}
		s.steps = append(s.steps, tok)
	}
	return s, nil
}

func parseMode(name string) (Mode, error) {
	switch name {
	case "", "sequential", "sequence":
		return Sequential, nil
	case "parallel":
		return Parallel, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", name)
	}
}

func (sa scriptAnimation) build() (Animation, error) {
	d := DefaultDuration
	if sa.Duration != nil {
		d = *sa.Duration
	}
	if err := validDuration(d); err != nil {
		return nil, err
	}
	switch sa.Type {
	case "fadeIn":
		return FadeIn(d), nil
	case "fadeOut":
		return FadeOut(d), nil
	case "resize":
		return Resize(Size{Width: sa.Width, Height: sa.Height}, d), nil
	case "move":
		return Move(sa.X, sa.Y, d), nil
	case "moveTo":
		return MoveTo(sa.X, sa.Y, d), nil
	case "tint":
		return TintHex(sa.Color, d)
	default:
		return nil, fmt.Errorf("unknown animation type %q", sa.Type)
	}
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// Tokens creates one token per step on a, looking each view up by name under
// root. No token is created if any view is missing.
func (s *Script) Tokens(a *Animator, root *View) ([]*Token, error) {
	views := make([]*View, len(s.steps))
	for i, st := range s.steps {
		v := root.Find(st.view)
		if v == nil {
			return nil, fmt.Errorf("script step %d: view %q not found", i, st.view)
		}
		views[i] = v
	}
	tokens := make([]*Token, len(s.steps))
	for i, st := range s.steps {
		tokens[i] = a.NewToken(views[i], st.mode, st.anims...)
	}
	return tokens, nil
}
