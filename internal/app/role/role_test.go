package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid(Admin))
	assert.True(t, Valid(Staff))
	assert.True(t, Valid(Customer))

	assert.False(t, Valid(Role("")))
	assert.False(t, Valid(Role("MANAGER")))
	assert.False(t, Valid(Role("admin")), "roles are stored uppercase")
}
