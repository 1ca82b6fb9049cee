package shipments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusUnclosed.CanTransitionTo(StatusClosed))
	assert.True(t, StatusClosed.CanTransitionTo(StatusClosed))
	assert.False(t, StatusClosed.CanTransitionTo(StatusUnclosed))
	assert.True(t, StatusUnclosed.CanEdit())
	assert.False(t, StatusClosed.CanEdit())
	assert.False(t, Status("paid").IsValid())
}

func TestBuildWherePlaceholders(t *testing.T) {
	where, args := BuildWhere(ListFilter{})
	assert.Empty(t, where)
	assert.Nil(t, args)

	id := int64(7)
	status := StatusUnclosed
	where, args = BuildWhere(ListFilter{CustomerID: &id, Status: &status})
	assert.Equal(t, " WHERE s.customer_id = $1 AND s.status = $2", where)
	assert.Equal(t, []any{int64(7), "unclosed"}, args)
}
