package yaml

// machineDoc is the on-disk shape of a machine definition document.
// It uses "mapstructure" tags so decoding can reject unknown keys,
// which catches typos like "intial" before they silently produce a
// malformed machine.
type machineDoc struct {
	Name        string          `mapstructure:"name"`
	Description string          `mapstructure:"description"`
	States      []stateDoc      `mapstructure:"states"`
	Transitions []transitionDoc `mapstructure:"transitions"`
}

type stateDoc struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Initial     bool   `mapstructure:"initial"`
	Final       bool   `mapstructure:"final"`
}

type transitionDoc struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	From        string `mapstructure:"from"`
	To          string `mapstructure:"to"`
	Condition   string `mapstructure:"condition"`
}
