package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tipsplitter/internal/models"
)

func TestStoreStartsWithDefaults(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()

	assert.Equal(t, Default(), snap.State)
	assert.Equal(t, models.Split{}, snap.Split)
}

func TestStoreRecomputesOnDispatch(t *testing.T) {
	s := NewStore()

	s.Dispatch(AmountEdited{Text: "100"})
	s.Dispatch(PartySizeSelected{Size: 4})
	snap := s.Dispatch(Dismissed{})

	assert.InDelta(t, 20.0, snap.Split.TipValue, 1e-9)
	assert.InDelta(t, 120.0, snap.Split.GrandTotal, 1e-9)
	assert.InDelta(t, 30.0, snap.Split.PerPersonAmount, 1e-9)
	assert.Equal(t, snap, s.Snapshot())

	snap = s.Dispatch(TipRateSelected{Rate: 0})
	assert.InDelta(t, 0.0, snap.Split.TipValue, 1e-9)
	assert.InDelta(t, 100.0, snap.Split.GrandTotal, 1e-9)
	assert.InDelta(t, 25.0, snap.Split.PerPersonAmount, 1e-9)
}

func TestStoreNotifiesSubscribers(t *testing.T) {
	s := NewStore()

	var first, second []Snapshot
	unsubFirst := s.Subscribe(func(snap Snapshot) { first = append(first, snap) })
	s.Subscribe(func(snap Snapshot) { second = append(second, snap) })

	s.Dispatch(AmountEdited{Text: "50"})
	s.Dispatch(TipRateSelected{Rate: 15})

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.InDelta(t, 28.75, first[1].Split.PerPersonAmount, 1e-9)
	assert.Equal(t, first, second)

	unsubFirst()
	unsubFirst()
	s.Dispatch(Dismissed{})

	assert.Len(t, first, 2)
	assert.Len(t, second, 3)
}

func TestStoreUnsubscribeDuringDispatch(t *testing.T) {
	s := NewStore()

	var calls int
	var unsub func()
	unsub = s.Subscribe(func(Snapshot) {
		calls++
		unsub()
	})
	var later int
	s.Subscribe(func(Snapshot) { later++ })

	s.Dispatch(AmountFocused{})
	s.Dispatch(Dismissed{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, later)
}

func TestStoreMiddlewareOrder(t *testing.T) {
	var trace []string
	tag := func(name string) Middleware {
		return func(next Reducer) Reducer {
			return func(st State, e Event) State {
				trace = append(trace, name+":"+e.Name())
				return next(st, e)
			}
		}
	}

	s := NewStore(WithMiddleware(tag("outer"), tag("inner")))
	s.Dispatch(AmountFocused{})

	assert.Equal(t, []string{"outer:amount_focused", "inner:amount_focused"}, trace)
	assert.True(t, s.Snapshot().State.AmountFocused)
}

func TestStoreWithState(t *testing.T) {
	start := State{AmountText: "50", Amount: 50, PartySize: 2, TipRate: 15}
	s := NewStore(WithState(start))

	assert.Equal(t, start, s.Snapshot().State)
	assert.InDelta(t, 57.5, s.Snapshot().Split.GrandTotal, 1e-9)
}
