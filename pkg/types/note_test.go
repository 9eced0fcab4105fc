package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteIsNew(t *testing.T) {
	assert.True(t, (&Note{}).IsNew())
	assert.True(t, (&Note{ID: NewNoteID}).IsNew())
	assert.False(t, (&Note{ID: 7}).IsNew())
}
