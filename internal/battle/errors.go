package battle

// CapacityError means the combatant list already holds two meals
type CapacityError struct {
	Message string // Human-readable description
}

// Error returns the capacity message
func (e *CapacityError) Error() string {
	return e.Message
}

// errListFull builds the error for staging beyond capacity
func errListFull() *CapacityError {
	return &CapacityError{Message: "Combatant list is full, cannot add more combatants."}
}

// InsufficientCombatantsError means a battle was started without two meals staged
type InsufficientCombatantsError struct {
	Message string // Human-readable description
}

// Error returns the insufficiency message
func (e *InsufficientCombatantsError) Error() string {
	return e.Message
}

// errNotEnoughCombatants builds the error for battling short-handed
func errNotEnoughCombatants() *InsufficientCombatantsError {
	return &InsufficientCombatantsError{Message: "Two combatants must be prepped for a battle."}
}
