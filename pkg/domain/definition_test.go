package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/ratchet/pkg/domain"
)

func TestDefinition_Lookups(t *testing.T) {
	open := domain.NewState("open", domain.Initial(), domain.WithDescription("anyone may pass"))
	closed := domain.NewState("closed", domain.Final())
	closing := open.To(closed, "is_shut", domain.Named("closing"))

	def := &domain.Definition{
		Name:        "door",
		States:      []*domain.State{open, closed},
		Transitions: []*domain.Transition{closing},
	}

	assert.Same(t, open, def.StateByName("open"))
	assert.Nil(t, def.StateByName("ajar"))
	assert.Same(t, closing, def.TransitionByName("closing"))
	assert.Nil(t, def.TransitionByName("opening"))
}

func TestTransition_Renamed(t *testing.T) {
	open := domain.NewState("open")
	closed := domain.NewState("closed")
	orig := open.To(closed, "is_shut")
	require.Empty(t, orig.Name())

	named := orig.Renamed("closing")
	assert.Equal(t, "closing", named.Name())
	assert.Empty(t, orig.Name(), "the receiver must stay untouched")
	assert.Same(t, orig.Source(), named.Source())
	assert.Same(t, orig.Target(), named.Target())
	assert.Equal(t, orig.Condition(), named.Condition())
}

func TestState_Options(t *testing.T) {
	s := domain.NewState("locked", domain.Final(), domain.WithDescription("bolted shut"))
	assert.Equal(t, "locked", s.Name())
	assert.Equal(t, "bolted shut", s.Description())
	assert.False(t, s.Initial())
	assert.True(t, s.Final())
}
