package gamegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerGameCounts(t *testing.T) {
	session := testSession(5)
	session.AddGame(Game{TeamA: Team{0, 1}, TeamB: Team{2, 3}})
	session.AddGame(Game{TeamA: Team{0, 2}, TeamB: Team{1, 4}})
	session.AddGame(Game{TeamA: Team{0, 4}, TeamB: Team{2, 3}})

	counts := session.PlayerGameCounts()
	assert.Equal(t, map[int]int{0: 3, 1: 2, 2: 3, 3: 2, 4: 2}, counts)
}

func TestTeamGameCounts(t *testing.T) {
	session := testSession(4)
	session.AddGame(Game{TeamA: Team{0, 1}, TeamB: Team{2, 3}})
	session.AddGame(Game{TeamA: Team{2, 3}, TeamB: Team{0, 1}})
	session.AddGame(Game{TeamA: Team{3, 2}, TeamB: Team{0, 1}})
	session.AddGame(Game{TeamA: Team{0, 2}, TeamB: Team{1, 3}})

	counts := session.TeamGameCounts()

	// Sides and orderings of the same composition count together.
	assert.Equal(t, 3, counts[Team{0, 1}.Key()])
	assert.Equal(t, 3, counts[Team{2, 3}.Key()])
	assert.Equal(t, 1, counts[Team{0, 2}.Key()])
	assert.Equal(t, 1, counts[Team{1, 3}.Key()])
}

func TestCountsAreDerivedFresh(t *testing.T) {
	session := testSession(4)
	assert.Empty(t, session.PlayerGameCounts())
	assert.Empty(t, session.TeamGameCounts())

	session.AddGame(Game{TeamA: Team{0, 1}, TeamB: Team{2, 3}})
	assert.Len(t, session.PlayerGameCounts(), 4)

	// Clearing the log clears the counts with it; nothing is cached.
	session.RemovePlayer("Player 1")
	assert.Empty(t, session.PlayerGameCounts())
	assert.Empty(t, session.TeamGameCounts())
}
