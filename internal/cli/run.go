// Package cli implements the interactive machine simulation behind the
// run command.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/aretw0/ratchet"
	"github.com/aretw0/ratchet/internal/presentation/tui"
	yamladapter "github.com/aretw0/ratchet/pkg/adapters/yaml"
	"github.com/aretw0/ratchet/pkg/domain"
	"github.com/aretw0/ratchet/pkg/registry"
)

// RunOptions configures the run command.
type RunOptions struct {
	MachinePath string
	MaxCycles   int
	Logger      *slog.Logger
	In          io.Reader
	Out         io.Writer
}

// Run simulates a YAML-defined machine interactively. Every condition
// identifier in the document is bound to a y/n prompt, so the user
// plays the role of the hardware: each cycle asks, in declaration
// order, whether the next candidate condition holds.
func Run(opts RunOptions) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.MaxCycles <= 0 {
		opts.MaxCycles = 100
	}

	// First pass: structure only, to learn the condition identifiers.
	def, err := yamladapter.Load(opts.MachinePath, nil)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(opts.In)
	interactive := isTerminal(opts.In)

	reg := registry.New()
	for _, t := range def.Transitions {
		cond := t.Condition()
		if cond == "" {
			continue
		}
		reg.Condition(cond, promptCondition(cond, reader, opts.Out, interactive))
	}
	reg.Bind(def)

	machine := ratchet.New(def, ratchet.WithLogger(opts.Logger))
	inst, err := machine.Construct("simulation")
	if err != nil {
		return err
	}

	fmt.Fprintf(opts.Out, "machine %s starting at %s\n",
		def.Name, tui.StateLabel(inst.State().Name(), inst.State().Final()))

	ctx := context.Background()
	for i := 0; i < opts.MaxCycles && !inst.Done(); i++ {
		fired, err := inst.Cycle(ctx)
		if err != nil {
			return err
		}
		if fired {
			fmt.Fprintf(opts.Out, "-> %s\n",
				tui.StateLabel(inst.State().Name(), inst.State().Final()))
			continue
		}
		fmt.Fprintf(opts.Out, "no transition fired; still at %s\n",
			tui.StateLabel(inst.State().Name(), inst.State().Final()))
		if !interactive {
			// A scripted session that stalls has run out of answers.
			break
		}
	}

	if inst.Done() {
		fmt.Fprintf(opts.Out, "reached final state %s\n",
			tui.StateLabel(inst.State().Name(), true))
	}
	return nil
}

// promptCondition builds a condition that asks the user whether the
// named guard currently holds. Non-interactive input reads one answer
// line per prompt, so sessions can be piped in.
func promptCondition(name string, reader *bufio.Reader, out io.Writer, interactive bool) domain.Condition {
	return func(m domain.Instance, t *domain.Transition) bool {
		if interactive {
			fmt.Fprintf(out, "%s: does %q hold? [y/N] ",
				tui.TransitionLabel(t.Name()), name)
		}
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes" || answer == "true" || answer == "1"
	}
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
