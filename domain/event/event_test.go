package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderPlaced struct {
	Base
	Total int64
}

func (e orderPlaced) EventName() string {
	return "order.placed"
}

func TestNewBase(t *testing.T) {
	b := NewBase("order-42")

	assert.NotEmpty(t, b.EventID())
	assert.Equal(t, "order-42", b.AggregateID())
	assert.False(t, b.OccurredAt().IsZero())
	assert.Equal(t, "UTC", b.OccurredAt().Location().String())
}

func TestNewBaseUniqueEventIDs(t *testing.T) {
	a := NewBase("agg")
	b := NewBase("agg")

	require.NotEqual(t, a.EventID(), b.EventID())
}

func TestConcreteEventEmbedsBase(t *testing.T) {
	var e Event = orderPlaced{Base: NewBase("order-42"), Total: 100}

	assert.Equal(t, "order.placed", e.EventName())
	assert.Equal(t, "order-42", e.AggregateID())
}
