package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/puckdata/internal/upstream"
)

func TestRosterFlattensGroupsInOrder(t *testing.T) {
	resp := &upstream.RosterResponse{
		Forwards: []upstream.RosterPlayer{
			{ID: 1, FirstName: upstream.LocalizedString{Default: "David"}, LastName: upstream.LocalizedString{Default: "Pastrnak"}, SweaterNumber: 88, PositionCode: "R"},
		},
		Defensemen: []upstream.RosterPlayer{
			{ID: 2, FirstName: upstream.LocalizedString{Default: "Charlie"}, LastName: upstream.LocalizedString{Default: "McAvoy"}, SweaterNumber: 73, PositionCode: "D"},
		},
		Goalies: []upstream.RosterPlayer{
			{ID: 3, FirstName: upstream.LocalizedString{Default: "Jeremy"}, LastName: upstream.LocalizedString{Default: "Swayman"}, SweaterNumber: 1},
		},
	}

	payload := Roster("BOS", resp)
	assert.Equal(t, "BOS", payload.Team)
	require.Len(t, payload.Players, 3)

	assert.Equal(t, "David Pastrnak", payload.Players[0].Name)
	assert.Equal(t, "R", payload.Players[0].Position)
	assert.Equal(t, "Charlie McAvoy", payload.Players[1].Name)
	// Missing position code falls back to the group's code.
	assert.Equal(t, "G", payload.Players[2].Position)
}

func TestRosterNilResponse(t *testing.T) {
	payload := Roster("BOS", nil)
	assert.Equal(t, "BOS", payload.Team)
	assert.NotNil(t, payload.Players)
	assert.Empty(t, payload.Players)
}
