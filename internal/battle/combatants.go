package battle

import (
	"meal_max/internal/domain" // Importing domain models
)

// maxCombatants is the fixed staging capacity
const maxCombatants = 2

// CombatantList holds at most two meals staged for a battle, in arrival order
type CombatantList struct {
	meals []domain.Meal // Staged meals, oldest first
}

// NewCombatantList creates an empty combatant list
func NewCombatantList() *CombatantList {
	return &CombatantList{meals: make([]domain.Meal, 0, maxCombatants)}
}

// Add stages a meal; fails once the list is full
func (c *CombatantList) Add(meal domain.Meal) error {
	if len(c.meals) >= maxCombatants {
		return errListFull()
	}
	c.meals = append(c.meals, meal)
	return nil
}

// Pair returns the two staged meals in staging order
func (c *CombatantList) Pair() (domain.Meal, domain.Meal, error) {
	if len(c.meals) < maxCombatants {
		return domain.Meal{}, domain.Meal{}, errNotEnoughCombatants()
	}
	return c.meals[0], c.meals[1], nil
}

// Meals returns a copy of the staged meals in staging order
func (c *CombatantList) Meals() []domain.Meal {
	out := make([]domain.Meal, len(c.meals))
	copy(out, c.meals)
	return out
}

// Len reports how many meals are staged
func (c *CombatantList) Len() int {
	return len(c.meals)
}

// Clear empties the list
func (c *CombatantList) Clear() {
	c.meals = c.meals[:0]
}

// Retain keeps only the given meal staged, dropping the other
func (c *CombatantList) Retain(meal domain.Meal) {
	c.meals = c.meals[:0]
	c.meals = append(c.meals, meal)
}
