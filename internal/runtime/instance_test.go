package runtime_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/ratchet/internal/model"
	"github.com/aretw0/ratchet/internal/runtime"
	"github.com/aretw0/ratchet/pkg/domain"
)

// flags is a tiny collaborator object tests flip to steer conditions.
type flags struct {
	go1, go2 bool
}

func buildModel(t *testing.T, def *domain.Definition) *model.Model {
	t.Helper()
	m, err := model.Build(def)
	require.NoError(t, err)
	return m
}

func flag(pick func(*flags) bool) domain.Condition {
	return func(m domain.Instance, t *domain.Transition) bool {
		return pick(m.Context().(*flags))
	}
}

func TestCycle_FiresWhenConditionHolds(t *testing.T) {
	a := domain.NewState("a", domain.Initial())
	b := domain.NewState("b", domain.Final())
	mdl := buildModel(t, &domain.Definition{
		Name:        "simple",
		States:      []*domain.State{a, b},
		Transitions: []*domain.Transition{a.To(b, "go", domain.Named("crossing"))},
		Conditions:  map[string]domain.Condition{"go": flag(func(f *flags) bool { return f.go1 })},
	})

	f := &flags{}
	inst := runtime.New(mdl, "inst-1", runtime.WithContext(f))

	assert.True(t, inst.Is("a"))
	assert.False(t, inst.Done())

	fired, err := inst.Cycle(context.Background())
	require.NoError(t, err)
	assert.False(t, fired, "no condition holds yet")
	assert.True(t, inst.Is("a"))

	f.go1 = true
	fired, err = inst.Cycle(context.Background())
	require.NoError(t, err)
	assert.True(t, fired)
	assert.True(t, inst.Is("b"))
	assert.True(t, inst.Done())
}

func TestCycle_TerminalIsIdempotent(t *testing.T) {
	a := domain.NewState("a", domain.Initial())
	b := domain.NewState("b", domain.Final())
	mdl := buildModel(t, &domain.Definition{
		Name:        "simple",
		States:      []*domain.State{a, b},
		Transitions: []*domain.Transition{a.To(b, "go", domain.Named("crossing"))},
		Conditions: map[string]domain.Condition{
			"go": func(m domain.Instance, t *domain.Transition) bool { return true },
		},
	})

	inst := runtime.New(mdl, "inst-1")
	fired, err := inst.Cycle(context.Background())
	require.NoError(t, err)
	require.True(t, fired)
	require.True(t, inst.Done())

	for i := 0; i < 3; i++ {
		fired, err = inst.Cycle(context.Background())
		require.NoError(t, err)
		assert.False(t, fired)
		assert.True(t, inst.Is("b"))
	}
}

func TestCycle_DeclarationOrderWins(t *testing.T) {
	a := domain.NewState("a", domain.Initial())
	b := domain.NewState("b", domain.Final())
	c := domain.NewState("c", domain.Final())

	always := func(m domain.Instance, t *domain.Transition) bool { return true }
	var evaluated []string
	spy := func(m domain.Instance, t *domain.Transition) bool {
		evaluated = append(evaluated, t.Name())
		return true
	}

	mdl := buildModel(t, &domain.Definition{
		Name:   "race",
		States: []*domain.State{a, b, c},
		Transitions: []*domain.Transition{
			a.To(b, "spy", domain.Named("first")),
			a.To(c, "spy", domain.Named("second")),
		},
		Conditions: map[string]domain.Condition{"spy": spy, "always": always},
	})

	inst := runtime.New(mdl, "inst-1")
	fired, err := inst.Cycle(context.Background())
	require.NoError(t, err)
	assert.True(t, fired)
	assert.True(t, inst.Is("b"), "the first declared transition must win")
	assert.Equal(t, []string{"first"}, evaluated, "later candidates are never evaluated")
}

func TestCycle_CallbackOrdering(t *testing.T) {
	a := domain.NewState("a", domain.Initial())
	b := domain.NewState("b", domain.Final())

	var trace []string
	record := func(label string) domain.Callback {
		return func(m domain.Instance, e domain.Event) {
			trace = append(trace, label)
		}
	}

	mdl := buildModel(t, &domain.Definition{
		Name:        "hooks",
		States:      []*domain.State{a, b},
		Transitions: []*domain.Transition{a.To(b, "go", domain.Named("crossing"))},
		Conditions: map[string]domain.Condition{
			"go": func(m domain.Instance, t *domain.Transition) bool { return true },
		},
		Callbacks: map[string]domain.Callback{
			"before_crossing": record("before"),
			"on_exit_a":       record("exit"),
			"on_crossing":     record("on"),
			"after_crossing":  record("after"),
			"on_enter_b":      record("enter"),
		},
	})

	inst := runtime.New(mdl, "inst-1")
	fired, err := inst.Cycle(context.Background())
	require.NoError(t, err)
	require.True(t, fired)
	assert.Equal(t, []string{"before", "exit", "on", "after", "enter"}, trace)
}

func TestCycle_StateCommitsAfterPipeline(t *testing.T) {
	a := domain.NewState("a", domain.Initial())
	b := domain.NewState("b", domain.Final())

	var observed []string
	observe := func(m domain.Instance, e domain.Event) {
		observed = append(observed, m.State().Name())
	}

	mdl := buildModel(t, &domain.Definition{
		Name:        "commit",
		States:      []*domain.State{a, b},
		Transitions: []*domain.Transition{a.To(b, "go", domain.Named("crossing"))},
		Conditions: map[string]domain.Condition{
			"go": func(m domain.Instance, t *domain.Transition) bool { return true },
		},
		Callbacks: map[string]domain.Callback{
			"before_crossing": observe,
			"on_enter_b":      observe,
		},
	})

	inst := runtime.New(mdl, "inst-1")
	fired, err := inst.Cycle(context.Background())
	require.NoError(t, err)
	require.True(t, fired)

	// Every callback, including on_enter for the target, still observes
	// the source state: the commit happens after the whole pipeline.
	assert.Equal(t, []string{"a", "a"}, observed)
	assert.True(t, inst.Is("b"))
}

func TestCycle_PanickingCallbackDoesNotCommit(t *testing.T) {
	a := domain.NewState("a", domain.Initial())
	b := domain.NewState("b", domain.Final())

	mdl := buildModel(t, &domain.Definition{
		Name:        "panic",
		States:      []*domain.State{a, b},
		Transitions: []*domain.Transition{a.To(b, "go", domain.Named("crossing"))},
		Conditions: map[string]domain.Condition{
			"go": func(m domain.Instance, t *domain.Transition) bool { return true },
		},
		Callbacks: map[string]domain.Callback{
			"on_crossing": func(m domain.Instance, e domain.Event) { panic("boom") },
		},
	})

	inst := runtime.New(mdl, "inst-1")
	assert.PanicsWithValue(t, "boom", func() {
		_, _ = inst.Cycle(context.Background())
	})
	assert.True(t, inst.Is("a"), "a failed pipeline must leave the state untouched")
}

func TestCycle_DeadEndStateErrors(t *testing.T) {
	a := domain.NewState("a", domain.Initial())
	b := domain.NewState("b")
	c := domain.NewState("c", domain.Final())

	mdl := buildModel(t, &domain.Definition{
		Name:   "deadend",
		States: []*domain.State{a, b, c},
		Transitions: []*domain.Transition{
			// b has no way out and is not final.
			a.To(b, "go", domain.Named("in")),
			a.To(c, "never", domain.Named("bypass")),
		},
		Conditions: map[string]domain.Condition{
			"go":    func(m domain.Instance, t *domain.Transition) bool { return true },
			"never": func(m domain.Instance, t *domain.Transition) bool { return false },
		},
	})

	inst := runtime.New(mdl, "inst-1")
	fired, err := inst.Cycle(context.Background())
	require.NoError(t, err)
	require.True(t, fired)
	require.True(t, inst.Is("b"))

	_, err = inst.Cycle(context.Background())
	var rsErr *domain.RuntimeStateError
	require.ErrorAs(t, err, &rsErr)
	assert.ErrorIs(t, err, domain.ErrNoOutgoingTransitions)
	assert.Equal(t, "b", rsErr.State)
	assert.Equal(t, "inst-1", rsErr.Instance)
}

func TestCycle_LifecycleHooks(t *testing.T) {
	a := domain.NewState("a", domain.Initial())
	b := domain.NewState("b", domain.Final())

	f := &flags{}
	mdl := buildModel(t, &domain.Definition{
		Name:        "observed",
		States:      []*domain.State{a, b},
		Transitions: []*domain.Transition{a.To(b, "go", domain.Named("crossing"))},
		Conditions:  map[string]domain.Condition{"go": flag(func(f *flags) bool { return f.go1 })},
	})

	var transitions []*domain.TransitionEvent
	var cycles []*domain.CycleEvent
	inst := runtime.New(mdl, "inst-1",
		runtime.WithContext(f),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{
			OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
				transitions = append(transitions, e)
			},
			OnCycle: func(ctx context.Context, e *domain.CycleEvent) {
				cycles = append(cycles, e)
			},
		}),
	)

	ctx := context.Background()

	_, err := inst.Cycle(ctx) // idle
	require.NoError(t, err)
	f.go1 = true
	_, err = inst.Cycle(ctx) // fires
	require.NoError(t, err)
	_, err = inst.Cycle(ctx) // terminal
	require.NoError(t, err)

	require.Len(t, transitions, 1)
	assert.Equal(t, "crossing", transitions[0].Transition)
	assert.Equal(t, "a", transitions[0].From)
	assert.Equal(t, "b", transitions[0].To)
	assert.Equal(t, "observed", transitions[0].Machine)

	require.Len(t, cycles, 3)
	assert.False(t, cycles[0].Fired)
	assert.False(t, cycles[0].Terminal)
	assert.True(t, cycles[1].Fired)
	assert.True(t, cycles[2].Terminal)
}

func TestInstance_Accessors(t *testing.T) {
	a := domain.NewState("a", domain.Initial())
	b := domain.NewState("b", domain.Final())
	mdl := buildModel(t, &domain.Definition{
		Name:        "simple",
		States:      []*domain.State{a, b},
		Transitions: []*domain.Transition{a.To(b, "go", domain.Named("crossing"))},
		Conditions: map[string]domain.Condition{
			"go": func(m domain.Instance, t *domain.Transition) bool { return true },
		},
	})

	f := &flags{}
	inst := runtime.New(mdl, "inst-1",
		runtime.WithDescription("a throwaway"),
		runtime.WithContext(f),
	)

	assert.Equal(t, "inst-1", inst.Name())
	assert.Equal(t, "a throwaway", inst.Description())
	assert.Same(t, a, inst.State())
	assert.Same(t, f, inst.Context())
	assert.False(t, inst.Is("b"))
}
