package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_PublishReachesAllSubscribers(t *testing.T) {
	n := NewNotifier()

	var got []string
	n.Subscribe(func(u *Identity) { got = append(got, "a:"+u.ID) })
	n.Subscribe(func(u *Identity) { got = append(got, "b:"+u.ID) })

	n.Publish(&Identity{ID: "alice"})

	assert.ElementsMatch(t, []string{"a:alice", "b:alice"}, got)
}

func TestNotifier_PublishNilMeansSignedOut(t *testing.T) {
	n := NewNotifier()

	var last *Identity = &Identity{ID: "alice"}
	n.Subscribe(func(u *Identity) { last = u })

	n.Publish(nil)

	assert.Nil(t, last)
}

func TestNotifier_UnsubscribeStopsDelivery(t *testing.T) {
	n := NewNotifier()

	calls := 0
	unsubscribe := n.Subscribe(func(*Identity) { calls++ })

	n.Publish(&Identity{ID: "alice"})
	unsubscribe()
	n.Publish(&Identity{ID: "bob"})

	assert.Equal(t, 1, calls)
}

func TestNotifier_UnsubscribeIsIdempotent(t *testing.T) {
	n := NewNotifier()

	unsubscribe := n.Subscribe(func(*Identity) {})
	unsubscribe()
	unsubscribe()

	assert.NotPanics(t, func() { n.Publish(nil) })
}
