package domain

// StateInfo is the serializable view of a declared state.
type StateInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Initial     bool   `json:"initial,omitempty" yaml:"initial,omitempty"`
	Final       bool   `json:"final,omitempty" yaml:"final,omitempty"`
}

// TransitionInfo is the serializable view of a declared transition.
type TransitionInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	From        string `json:"from" yaml:"from"`
	To          string `json:"to" yaml:"to"`
	Condition   string `json:"condition" yaml:"condition"`
}

// Graph is the read-only inspection view of a machine, consumed by
// diagram renderers and the HTTP adapter. States and Transitions keep
// declaration order; Transitions from one state appear in the order
// the runtime tries them.
type Graph struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Initial     string           `json:"initial" yaml:"initial"`
	Finals      []string         `json:"finals" yaml:"finals"`
	States      []StateInfo      `json:"states" yaml:"states"`
	Transitions []TransitionInfo `json:"transitions" yaml:"transitions"`
}

// NewGraph derives the inspection view from a raw Definition. It does
// not validate: a Graph can be produced for a malformed machine so
// tooling (diagrams, validators) can show what was declared.
func NewGraph(def *Definition) *Graph {
	g := &Graph{
		Name:        def.Name,
		Description: def.Description,
	}
	for _, s := range def.States {
		if s.Initial() {
			g.Initial = s.Name()
		}
		if s.Final() {
			g.Finals = append(g.Finals, s.Name())
		}
		g.States = append(g.States, StateInfo{
			Name:        s.Name(),
			Description: s.Description(),
			Initial:     s.Initial(),
			Final:       s.Final(),
		})
	}
	for _, t := range def.Transitions {
		info := TransitionInfo{
			Name:        t.Name(),
			Description: t.Description(),
			Condition:   t.Condition(),
		}
		if t.Source() != nil {
			info.From = t.Source().Name()
		}
		if t.Target() != nil {
			info.To = t.Target().Name()
		}
		g.Transitions = append(g.Transitions, info)
	}
	return g
}

// Outgoing returns the transitions leaving the named state, in
// declaration order.
func (g *Graph) Outgoing(state string) []TransitionInfo {
	var out []TransitionInfo
	for _, t := range g.Transitions {
		if t.From == state {
			out = append(out, t)
		}
	}
	return out
}
