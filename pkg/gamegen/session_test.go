package gamegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionDefaults(t *testing.T) {
	session := NewSession()

	assert.Equal(t, 1, session.Courts)
	assert.Equal(t, 2, session.TeamSize)
	assert.IsType(t, Normal{}, session.Strategy)
	assert.Empty(t, session.Players)
	assert.Empty(t, session.Games)
}

func TestRemovePlayerClearsGames(t *testing.T) {
	session := testSession(5)
	playGames(t, session, 3)
	require.NotEmpty(t, session.Games)

	assert.True(t, session.RemovePlayer("Player 3"))
	assert.Equal(t, []string{"Player 1", "Player 2", "Player 4", "Player 5"}, session.Players)
	assert.Empty(t, session.Games, "removal shifts player indices, so the log must be reset")
}

func TestRemoveUnknownPlayerIsANoop(t *testing.T) {
	session := testSession(5)
	playGames(t, session, 3)

	games := len(session.Games)
	assert.False(t, session.RemovePlayer("Nobody"))
	assert.Len(t, session.Games, games)
	assert.Len(t, session.Players, 5)
}

func TestConfigurationClamping(t *testing.T) {
	session := NewSession()

	session.SetCourts(0)
	assert.Equal(t, 1, session.Courts)

	session.SetTeamSize(-3)
	assert.Equal(t, 1, session.TeamSize)

	session.SetCourts(3)
	session.SetTeamSize(2)
	assert.Equal(t, 3, session.Courts)
	assert.Equal(t, 2, session.TeamSize)
}

func TestNormalize(t *testing.T) {
	session := &Session{}
	session.Normalize()

	assert.Equal(t, 1, session.Courts)
	assert.Equal(t, 1, session.TeamSize)
	assert.NotNil(t, session.Strategy)
}

func TestFormatGame(t *testing.T) {
	session := NewSession()
	session.Players = []string{"Alice", "Bob", "Carol", "Dan"}

	tests := []struct {
		name string
		game Game
		want string
	}{
		{
			name: "doubles",
			game: Game{TeamA: Team{0, 1}, TeamB: Team{2, 3}},
			want: "Alice and Bob vs. Carol and Dan",
		},
		{
			name: "singles",
			game: Game{TeamA: Team{3}, TeamB: Team{1}},
			want: "Dan vs. Bob",
		},
		{
			name: "stale index gets a placeholder",
			game: Game{TeamA: Team{0, 7}, TeamB: Team{2, 3}},
			want: "Alice and ? vs. Carol and Dan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, session.FormatGame(tt.game))

			// Rendering has no side effects on the roster.
			assert.Equal(t, tt.want, session.FormatGame(tt.game))
		})
	}
}

func TestTeamKey(t *testing.T) {
	assert.Equal(t, Team{2, 1}.Key(), Team{1, 2}.Key(),
		"teams are unordered, so ordering must not change the key")
	assert.NotEqual(t, Team{1, 2}.Key(), Team{1, 3}.Key())
	assert.NotEqual(t, Team{1, 12}.Key(), Team{11, 2}.Key())
}
