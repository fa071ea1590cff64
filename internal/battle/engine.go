package battle

import (
	"math"                     // Logistic curve
	"meal_max/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
)

// NumberSource yields a random fraction in [0, 1] for deciding battles
type NumberSource interface {
	Float() (float64, error) // One random decimal fraction
}

// StatsRecorder persists battle outcomes against meals
type StatsRecorder interface {
	UpdateMealStats(id uint, result domain.BattleResult) error // Record one outcome
}

// difficultyModifiers maps difficulty to its score penalty; harder prep costs less
var difficultyModifiers = map[domain.Difficulty]float64{
	domain.DifficultyHigh: 1, // Smallest penalty
	domain.DifficultyMed:  2,
	domain.DifficultyLow:  3, // Largest penalty
}

// Engine stages combatants and resolves battles between them
type Engine struct {
	combatants *CombatantList // Staged meals, at most two
	stats      StatsRecorder  // Outcome sink
	source     NumberSource   // Random fraction provider
}

// NewEngine creates an Engine with an empty combatant list
func NewEngine(stats StatsRecorder, source NumberSource) *Engine {
	return &Engine{
		combatants: NewCombatantList(), // Fresh staging area
		stats:      stats,              // Injected persistence
		source:     source,             // Injected randomness
	}
}

// PrepCombatant stages a meal for the next battle
func (e *Engine) PrepCombatant(meal domain.Meal) error {
	if err := e.combatants.Add(meal); err != nil {
		return err
	}
	// Log successful staging
	logrus.WithFields(logrus.Fields{
		"meal_id": meal.ID,   // Staged meal id
		"meal":    meal.Name, // Staged meal name
	}).Info("Combatant prepped")
	return nil
}

// ClearCombatants empties the staging area
func (e *Engine) ClearCombatants() {
	e.combatants.Clear()
	logrus.Info("Combatants cleared.") // Log successful reset
}

// Combatants returns the staged meals in staging order
func (e *Engine) Combatants() []domain.Meal {
	return e.combatants.Meals()
}

// BattleScore computes a meal's strength from price, cuisine and difficulty
func (e *Engine) BattleScore(meal domain.Meal) float64 {
	modifier := difficultyModifiers[meal.Difficulty]
	return meal.Price*float64(len(meal.Cuisine)) - modifier
}

// Battle resolves a fight between the two staged meals and returns the winner's name.
// The score gap sets the first combatant's win probability on a logistic curve;
// a random fraction below that probability hands the first combatant the win.
// The winner stays staged for the next battle and both outcomes are persisted.
func (e *Engine) Battle() (string, error) {
	// Both slots must be filled
	first, second, err := e.combatants.Pair()
	if err != nil {
		return "", err
	}
	// Score both combatants
	scoreFirst := e.BattleScore(first)
	scoreSecond := e.BattleScore(second)
	// The signed score gap, damped, feeds the logistic curve
	delta := (scoreFirst - scoreSecond) / 100
	probability := 1 / (1 + math.Exp(-delta))
	// Draw the deciding fraction; a failed draw leaves everything untouched
	fraction, err := e.source.Float()
	if err != nil {
		return "", err
	}
	// Strictly below the threshold favors the first combatant; ties favor the second
	winner, loser := second, first
	if fraction < probability {
		winner, loser = first, second
	}
	// Log the resolution before persisting
	logrus.WithFields(logrus.Fields{
		"first":        first.Name,  // First staged combatant
		"second":       second.Name, // Second staged combatant
		"score_first":  scoreFirst,  // First combatant's score
		"score_second": scoreSecond, // Second combatant's score
		"probability":  probability, // First combatant's win probability
		"fraction":     fraction,    // Drawn random fraction
		"winner":       winner.Name, // Resolved winner
	}).Info("Battle resolved")
	// Persist both outcomes; a failure aborts without touching the staging area
	if err := e.stats.UpdateMealStats(winner.ID, domain.ResultWin); err != nil {
		return "", err
	}
	if err := e.stats.UpdateMealStats(loser.ID, domain.ResultLoss); err != nil {
		return "", err
	}
	// The loser leaves; the winner awaits the next challenger
	e.combatants.Retain(winner)
	return winner.Name, nil
}
