package notify

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/hrmkit/employee-console/pkg/eventbus"
)

func newTestBus(t *testing.T) (*Bus, *clockwork.FakeClock) {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	clock := clockwork.NewFakeClock()
	return NewBus(eventbus.NewEventPublisher(log), 3*time.Second, clock), clock
}

func TestBus_ShowAndAutoClear(t *testing.T) {
	bus, clock := newTestBus(t)

	bus.Show("Employee saved successfully", KindSuccess)
	st := bus.Current()
	require.True(t, st.Visible)
	require.Equal(t, "Employee saved successfully", st.Message)
	require.Equal(t, KindSuccess, st.Kind)

	clock.Advance(3 * time.Second)
	st = bus.Current()
	require.False(t, st.Visible)
	require.Empty(t, st.Message)
}

func TestBus_ShowReplacesAndInvalidatesOldTimer(t *testing.T) {
	bus, clock := newTestBus(t)

	bus.Show("Saved", KindSuccess)
	clock.Advance(2 * time.Second)
	bus.Show("Deleted", KindSuccess)

	// The first message's timer fires now; it must not clear the newer toast.
	clock.Advance(time.Second)
	st := bus.Current()
	require.True(t, st.Visible)
	require.Equal(t, "Deleted", st.Message)

	// The newer message clears a full delay after its own Show.
	clock.Advance(2 * time.Second)
	require.False(t, bus.Current().Visible)
}

func TestBus_Hide(t *testing.T) {
	bus, clock := newTestBus(t)

	bus.Show("Failed to load employees.", KindError)
	bus.Hide()
	require.False(t, bus.Current().Visible)

	// Hide bumps the generation, so the pending timer stays inert even if a
	// new message is shown before it fires.
	bus.Show("Employee updated successfully", KindSuccess)
	clock.Advance(2 * time.Second)
	require.True(t, bus.Current().Visible)
}

func TestBus_SubscribersObserveTransitions(t *testing.T) {
	bus, clock := newTestBus(t)

	var states []State
	bus.Subscribe(func(st State) {
		states = append(states, st)
	})

	bus.Show("Saved", KindSuccess)
	clock.Advance(3 * time.Second)

	require.Len(t, states, 2)
	require.True(t, states[0].Visible)
	require.False(t, states[1].Visible)
}
