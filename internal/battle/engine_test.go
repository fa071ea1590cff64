package battle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"meal_max/internal/domain"
	"meal_max/internal/utils"
)

// statsCall is one recorded outcome
type statsCall struct {
	id     uint
	result domain.BattleResult
}

// mockRecorder records outcomes and fails on demand
type mockRecorder struct {
	calls []statsCall
	err   error
}

func (m *mockRecorder) UpdateMealStats(id uint, result domain.BattleResult) error {
	m.calls = append(m.calls, statsCall{id: id, result: result})
	return m.err
}

// stubSource returns a fixed fraction or a fixed error
type stubSource struct {
	value float64
	err   error
}

func (s *stubSource) Float() (float64, error) {
	return s.value, s.err
}

// prepPair stages two meals with known scores, weaker first
func prepPair(t *testing.T, engine *Engine) (domain.Meal, domain.Meal) {
	t.Helper()
	first := domain.Meal{ID: 1, Name: "Ramen", Cuisine: "Japanese", Price: 10, Difficulty: domain.DifficultyMed}    // score 78
	second := domain.Meal{ID: 2, Name: "Ceviche", Cuisine: "Peruvian", Price: 15, Difficulty: domain.DifficultyLow} // score 117
	require.NoError(t, engine.PrepCombatant(first))
	require.NoError(t, engine.PrepCombatant(second))
	return first, second
}

// TestEngine_PrepCombatant_Capacity rejects a third combatant and keeps the lineup intact
func TestEngine_PrepCombatant_Capacity(t *testing.T) {
	engine := NewEngine(&mockRecorder{}, &stubSource{value: 0.5})
	first, second := prepPair(t, engine)

	err := engine.PrepCombatant(domain.Meal{ID: 3, Name: "Tacos", Cuisine: "Mexican", Price: 8, Difficulty: domain.DifficultyLow})
	var capacityErr *CapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, "Combatant list is full, cannot add more combatants.", err.Error())

	// The staged pair is unchanged
	combatants := engine.Combatants()
	require.Len(t, combatants, 2)
	assert.Equal(t, first.Name, combatants[0].Name)
	assert.Equal(t, second.Name, combatants[1].Name)
}

// TestEngine_Combatants_Order returns staged meals in arrival order
func TestEngine_Combatants_Order(t *testing.T) {
	engine := NewEngine(&mockRecorder{}, &stubSource{value: 0.5})
	assert.Empty(t, engine.Combatants())

	first, second := prepPair(t, engine)
	combatants := engine.Combatants()
	require.Len(t, combatants, 2)
	assert.Equal(t, first.ID, combatants[0].ID)
	assert.Equal(t, second.ID, combatants[1].ID)
}

// TestEngine_ClearCombatants empties the staging area
func TestEngine_ClearCombatants(t *testing.T) {
	engine := NewEngine(&mockRecorder{}, &stubSource{value: 0.5})
	engine.ClearCombatants() // Clearing an empty list is fine

	prepPair(t, engine)
	engine.ClearCombatants()
	assert.Empty(t, engine.Combatants())
}

// TestEngine_BattleScore computes price * cuisine length - difficulty modifier
func TestEngine_BattleScore(t *testing.T) {
	engine := NewEngine(&mockRecorder{}, &stubSource{value: 0.5})

	med := domain.Meal{Name: "Special", Cuisine: "Cuisine A", Price: 10.0, Difficulty: domain.DifficultyMed}
	assert.Equal(t, 10.0*9-2, engine.BattleScore(med))

	high := domain.Meal{Name: "Sushi", Cuisine: "Japanese", Price: 20, Difficulty: domain.DifficultyHigh}
	assert.Equal(t, 20.0*8-1, engine.BattleScore(high))

	low := domain.Meal{Name: "Tacos", Cuisine: "Mexican", Price: 8, Difficulty: domain.DifficultyLow}
	assert.Equal(t, 8.0*7-3, engine.BattleScore(low))
}

// TestEngine_Battle_RequiresTwoCombatants refuses to fight short-handed
func TestEngine_Battle_RequiresTwoCombatants(t *testing.T) {
	recorder := &mockRecorder{}
	engine := NewEngine(recorder, &stubSource{value: 0.5})

	// Empty staging area
	_, err := engine.Battle()
	var insufficientErr *InsufficientCombatantsError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, "Two combatants must be prepped for a battle.", err.Error())

	// One staged meal is still not enough
	require.NoError(t, engine.PrepCombatant(domain.Meal{ID: 1, Name: "Ramen", Cuisine: "Japanese", Price: 10, Difficulty: domain.DifficultyMed}))
	_, err = engine.Battle()
	require.ErrorAs(t, err, &insufficientErr)

	// Nothing was recorded and the staged meal stays put
	assert.Empty(t, recorder.calls)
	assert.Len(t, engine.Combatants(), 1)
}

// TestEngine_Battle_FirstWinsOnLowDraw hands the win to the first combatant when the draw undercuts its probability
func TestEngine_Battle_FirstWinsOnLowDraw(t *testing.T) {
	recorder := &mockRecorder{}
	engine := NewEngine(recorder, &stubSource{value: 0.1}) // Below p ~ 0.404 for scores 78 vs 117
	first, second := prepPair(t, engine)

	winner, err := engine.Battle()
	require.NoError(t, err)
	assert.Equal(t, first.Name, winner)

	// Winner recorded a win, loser a loss
	require.Len(t, recorder.calls, 2)
	assert.Equal(t, statsCall{id: first.ID, result: domain.ResultWin}, recorder.calls[0])
	assert.Equal(t, statsCall{id: second.ID, result: domain.ResultLoss}, recorder.calls[1])

	// Only the winner stays staged
	combatants := engine.Combatants()
	require.Len(t, combatants, 1)
	assert.Equal(t, first.ID, combatants[0].ID)
}

// TestEngine_Battle_SecondWinsOnHighDraw hands the win to the second combatant when the draw clears the probability
func TestEngine_Battle_SecondWinsOnHighDraw(t *testing.T) {
	recorder := &mockRecorder{}
	engine := NewEngine(recorder, &stubSource{value: 0.9}) // Above p ~ 0.404 for scores 78 vs 117
	first, second := prepPair(t, engine)

	winner, err := engine.Battle()
	require.NoError(t, err)
	assert.Equal(t, second.Name, winner)

	require.Len(t, recorder.calls, 2)
	assert.Equal(t, statsCall{id: second.ID, result: domain.ResultWin}, recorder.calls[0])
	assert.Equal(t, statsCall{id: first.ID, result: domain.ResultLoss}, recorder.calls[1])

	combatants := engine.Combatants()
	require.Len(t, combatants, 1)
	assert.Equal(t, second.ID, combatants[0].ID)
}

// TestEngine_Battle_TieGoesToSecond resolves a draw equal to the probability against the first combatant
func TestEngine_Battle_TieGoesToSecond(t *testing.T) {
	recorder := &mockRecorder{}
	engine := NewEngine(recorder, &stubSource{value: 0.5}) // Equal scores make p exactly 0.5

	// Identical attributes give identical scores
	first := domain.Meal{ID: 1, Name: "Ramen", Cuisine: "Japanese", Price: 10, Difficulty: domain.DifficultyMed}
	second := domain.Meal{ID: 2, Name: "Gyoza", Cuisine: "Japanese", Price: 10, Difficulty: domain.DifficultyMed}
	require.NoError(t, engine.PrepCombatant(first))
	require.NoError(t, engine.PrepCombatant(second))

	winner, err := engine.Battle()
	require.NoError(t, err)
	assert.Equal(t, second.Name, winner)
}

// TestEngine_Battle_SourceFailurePropagates aborts the battle without touching stats or staging
func TestEngine_Battle_SourceFailurePropagates(t *testing.T) {
	recorder := &mockRecorder{}
	sourceErr := &utils.RequestError{Message: "Request to random.org timed out."}
	engine := NewEngine(recorder, &stubSource{err: sourceErr})
	first, second := prepPair(t, engine)

	_, err := engine.Battle()
	var requestErr *utils.RequestError
	require.ErrorAs(t, err, &requestErr)
	assert.Equal(t, sourceErr.Message, err.Error())

	// No outcome was recorded and both combatants stay staged
	assert.Empty(t, recorder.calls)
	combatants := engine.Combatants()
	require.Len(t, combatants, 2)
	assert.Equal(t, first.ID, combatants[0].ID)
	assert.Equal(t, second.ID, combatants[1].ID)
}

// TestEngine_Battle_RecorderFailureKeepsStaging aborts the battle without unstaging anyone
func TestEngine_Battle_RecorderFailureKeepsStaging(t *testing.T) {
	recorder := &mockRecorder{err: errors.New("stats unavailable")}
	engine := NewEngine(recorder, &stubSource{value: 0.1})
	prepPair(t, engine)

	_, err := engine.Battle()
	require.Error(t, err)
	assert.Len(t, engine.Combatants(), 2)
}
