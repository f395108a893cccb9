package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishSubscribe(t *testing.T) {
	b := New()

	var got []Event
	sub := b.Subscribe("keyframe.recorded", func(e Event) {
		got = append(got, e)
	})
	require.NotEmpty(t, sub.ID())

	b.Publish(NewEvent("keyframe.recorded", "p_1", 48))
	b.Publish(NewEvent("entity.placed", "p_1", nil)) // different type, not delivered

	require.Len(t, got, 1)
	assert.Equal(t, "p_1", got[0].Source)
	assert.Equal(t, 48, got[0].Data)
	assert.False(t, got[0].Timestamp.IsZero())
}

func TestBus_Cancel(t *testing.T) {
	b := New()

	count := 0
	sub := b.Subscribe("entity.placed", func(Event) { count++ })

	b.Publish(NewEvent("entity.placed", "p_1", nil))
	sub.Cancel()
	b.Publish(NewEvent("entity.placed", "p_2", nil))

	assert.Equal(t, 1, count)
}

func TestBus_MultipleSubscribers(t *testing.T) {
	b := New()

	first, second := 0, 0
	b.Subscribe("entity.placed", func(Event) { first++ })
	b.Subscribe("entity.placed", func(Event) { second++ })

	b.Publish(NewEvent("entity.placed", "p_1", nil))

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
