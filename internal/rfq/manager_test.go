package rfq

import (
	"testing"

	"petro-catalog/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Sessions(t *testing.T) {
	manager := NewManager(zerolog.Nop())

	first := manager.NewSession()
	second := manager.NewSession()

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, manager.SessionCount())

	// Each session holds an independent list.
	firstList, err := manager.Session(first)
	require.NoError(t, err)
	secondList, err := manager.Session(second)
	require.NoError(t, err)

	firstList.Add(model.RFQItem{ID: "P001"})
	assert.Equal(t, 1, firstList.Count())
	assert.Equal(t, 0, secondList.Count())
}

func TestManager_UnknownSession(t *testing.T) {
	manager := NewManager(zerolog.Nop())

	list, err := manager.Session("nope")
	require.Error(t, err)
	assert.Nil(t, list)
	assert.Equal(t, model.ErrSessionNotFound, err)
}
