package domain

// Difficulty is the preparation difficulty tag carried by a meal
type Difficulty string

// Difficulty levels
const (
	DifficultyLow  Difficulty = "LOW"  // Lowest preparation difficulty
	DifficultyMed  Difficulty = "MED"  // Medium preparation difficulty
	DifficultyHigh Difficulty = "HIGH" // Highest preparation difficulty
)

// IsValid reports whether the difficulty is one of LOW, MED or HIGH
func (d Difficulty) IsValid() bool {
	return d == DifficultyLow || d == DifficultyMed || d == DifficultyHigh
}

// MealStatus is the lifecycle tag of a meal row
type MealStatus string

// Meal lifecycle states
const (
	StatusActive  MealStatus = "active"  // Visible to reads and updates
	StatusDeleted MealStatus = "deleted" // Tombstoned, excluded from reads and updates
)

// BattleResult is the outcome recorded against a meal after a battle
type BattleResult string

// Battle outcomes
const (
	ResultWin  BattleResult = "win"  // The meal won its battle
	ResultLoss BattleResult = "loss" // The meal lost its battle
)

// IsValid reports whether the result is exactly "win" or "loss"
func (r BattleResult) IsValid() bool {
	return r == ResultWin || r == ResultLoss
}

// Meal Model
type Meal struct {
	ID         uint       `gorm:"primaryKey" json:"id"`                               // Primary key
	Name       string     `gorm:"column:meal;not null" json:"meal"`                   // Meal name, unique among active rows
	Cuisine    string     `gorm:"not null" json:"cuisine"`                            // Cuisine label
	Price      float64    `gorm:"not null" json:"price"`                              // Price, always positive
	Difficulty Difficulty `gorm:"type:varchar(8);not null" json:"difficulty"`         // LOW, MED or HIGH
	Status     MealStatus `gorm:"type:varchar(16);not null;default:active" json:"-"`  // Lifecycle tag (active/deleted)
	Battles    int        `gorm:"not null;default:0" json:"battles"`                  // Total battles fought
	Wins       int        `gorm:"not null;default:0" json:"wins"`                     // Battles won, never exceeds Battles
}

// Deleted reports whether the meal has been soft deleted
func (m *Meal) Deleted() bool {
	return m.Status == StatusDeleted
}
