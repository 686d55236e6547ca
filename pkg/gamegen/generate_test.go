package gamegen

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(players int) *Session {
	session := NewSession()
	for i := 0; i < players; i++ {
		session.AddPlayer(fmt.Sprintf("Player %d", i+1))
	}

	return session
}

func playGames(t *testing.T, session *Session, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		game, ok := session.NextGame()
		require.True(t, ok, "expected a candidate for game %d", i+1)
		session.AddGame(game)
	}
}

func TestNextGameUsesEveryPlayerWhenForced(t *testing.T) {
	// With four players and doubles there is only one way to fill the
	// court, up to side assignment and ordering.
	session := testSession(4)

	game, ok := session.NextGame()
	require.True(t, ok)

	players := game.Players()
	sort.Ints(players)
	assert.Equal(t, []int{0, 1, 2, 3}, players)
	assert.Len(t, game.TeamA, 2)
	assert.Len(t, game.TeamB, 2)
}

func TestNextGameTeamsAreDisjoint(t *testing.T) {
	session := testSession(7)
	playGames(t, session, 25)

	for _, game := range session.Games {
		assert.Len(t, game.TeamA, session.TeamSize)
		assert.Len(t, game.TeamB, session.TeamSize)

		for _, player := range game.TeamA {
			assert.False(t, game.TeamB.Contains(player),
				"player %d is on both sides of %v", player, game)
		}
	}
}

func TestNextGameInsufficientPlayers(t *testing.T) {
	tests := []struct {
		name     string
		players  int
		teamSize int
	}{
		{"empty roster", 0, 2},
		{"one short of a doubles court", 3, 2},
		{"one short of a singles court", 1, 1},
		{"team larger than roster", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := testSession(tt.players)
			session.SetTeamSize(tt.teamSize)

			_, ok := session.NextGame()
			assert.False(t, ok, "expected no candidate")
		})
	}
}

func TestNextGameBoundedImbalance(t *testing.T) {
	session := testSession(6)
	playGames(t, session, 20)

	counts := session.PlayerGameCounts()
	min, max := counts[0], counts[0]
	for i := range session.Players {
		if counts[i] < min {
			min = counts[i]
		}

		if counts[i] > max {
			max = counts[i]
		}
	}

	assert.LessOrEqual(t, max-min, 2,
		"play counts %v spread too far apart", counts)
}

func TestNextGameRotatesTeamCompositions(t *testing.T) {
	// 20 doubles games have 40 team slots; with nine players there are
	// only 36 possible pairings, so every single one must come up
	// before any repeats enough to crowd another out.
	session := testSession(9)
	playGames(t, session, 20)

	compositions := make(map[string]bool)
	for _, game := range session.Games {
		for _, team := range game.Teams() {
			compositions[team.Key()] = true
		}
	}

	assert.Len(t, compositions, 36)
}

func TestNextGameDeterministicWithNormalStrategy(t *testing.T) {
	first, second := testSession(6), testSession(6)
	playGames(t, first, 10)
	playGames(t, second, 10)

	assert.Equal(t, first.Games, second.Games)
}

func TestNextGameReproducibleWithSeededShuffle(t *testing.T) {
	first, second := testSession(6), testSession(6)
	first.Strategy = NewShuffled(rand.New(rand.NewSource(42)))
	second.Strategy = NewShuffled(rand.New(rand.NewSource(42)))

	playGames(t, first, 10)
	playGames(t, second, 10)

	assert.Equal(t, first.Games, second.Games)
}

func TestExcludedSecondCourt(t *testing.T) {
	session := testSession(8)
	session.SetCourts(2)

	first, ok := session.NextGame()
	require.True(t, ok)
	session.AddGame(first)

	// The second court of the round can't reuse anyone from the first.
	excluded := session.Excluded()
	assert.ElementsMatch(t, first.Players(), excluded)

	second, ok := session.NextGame()
	require.True(t, ok)

	for _, player := range second.Players() {
		assert.NotContains(t, first.Players(), player)
	}

	// Committing the second game completes the round, freeing everyone.
	session.AddGame(second)
	assert.Empty(t, session.Excluded())
}

func TestExcludedSingleCourt(t *testing.T) {
	session := testSession(8)
	playGames(t, session, 3)

	assert.Empty(t, session.Excluded())
}

func TestCombinations(t *testing.T) {
	tests := []struct {
		name string
		pool []int
		k    int
		want []Team
	}{
		{"choose pairs", []int{1, 2, 3}, 2, []Team{{1, 2}, {1, 3}, {2, 3}}},
		{"choose singles", []int{4, 7}, 1, []Team{{4}, {7}}},
		{"choose everything", []int{1, 2}, 2, []Team{{1, 2}}},
		{"k too large", []int{1, 2}, 3, nil},
		{"empty pool", nil, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, combinations(tt.pool, tt.k))
		})
	}
}
