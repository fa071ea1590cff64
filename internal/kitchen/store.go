package kitchen

import (
	"errors"                   // Error kind matching
	"math"                     // Percentage rounding
	"meal_max/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Leaderboard sort keys accepted by Leaderboard
const (
	SortByWins   = "wins"    // Rank by total wins
	SortByWinPct = "win_pct" // Rank by win percentage
)

// winPctExpr computes the win percentage in SQL; battles = 0 ranks as 0
const winPctExpr = "CASE WHEN battles = 0 THEN 0 ELSE wins * 100.0 / battles END"

// Store provides persistence for meal records
type Store struct {
	db *gorm.DB // Database handle shared by all operations
}

// NewStore creates a Store backed by the given database
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// LeaderboardEntry is one ranked row of the leaderboard
type LeaderboardEntry struct {
	ID         uint              `gorm:"column:id" json:"id"`                 // Meal primary key
	Name       string            `gorm:"column:meal" json:"meal"`             // Meal name
	Cuisine    string            `gorm:"column:cuisine" json:"cuisine"`       // Cuisine label
	Price      float64           `gorm:"column:price" json:"price"`           // Meal price
	Difficulty domain.Difficulty `gorm:"column:difficulty" json:"difficulty"` // LOW, MED or HIGH
	Battles    int               `gorm:"column:battles" json:"battles"`       // Total battles fought
	Wins       int               `gorm:"column:wins" json:"wins"`             // Battles won
	WinPct     float64           `gorm:"column:win_pct" json:"win_pct"`       // Win percentage, one decimal
}

// CreateMeal validates and persists a new meal with zeroed battle stats
func (s *Store) CreateMeal(name, cuisine string, price float64, difficulty domain.Difficulty) (*domain.Meal, error) {
	// Validate the price range
	if price <= 0 {
		return nil, errInvalidPrice(price)
	}
	// Validate the difficulty enum
	if !difficulty.IsValid() {
		return nil, errInvalidDifficulty(string(difficulty))
	}
	// Reject a name already held by an active meal; deleted rows free their name
	var existing domain.Meal
	err := s.db.Where("meal = ? AND status = ?", name, domain.StatusActive).First(&existing).Error
	if err == nil {
		return nil, errDuplicateName(name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err // Unexpected database failure
	}
	// Persist the new meal; battles and wins start at zero
	meal := domain.Meal{
		Name:       name,       // Meal name
		Cuisine:    cuisine,    // Cuisine label
		Price:      price,      // Validated positive price
		Difficulty: difficulty, // Validated difficulty
		Status:     domain.StatusActive,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	// Log successful creation
	logrus.WithFields(logrus.Fields{
		"meal_id":    meal.ID,    // Assigned primary key
		"meal":       name,       // Meal name
		"cuisine":    cuisine,    // Cuisine label
		"difficulty": difficulty, // Difficulty level
	}).Info("Meal created")
	return &meal, nil
}

// DeleteMeal tombstones a meal; deletion is irreversible
func (s *Store) DeleteMeal(id uint) error {
	// Fetch the row regardless of status
	var meal domain.Meal
	err := s.db.First(&meal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errIDNotFound(id)
	}
	if err != nil {
		return err
	}
	// A second delete on the same row is an error
	if meal.Deleted() {
		return errIDDeleted(id)
	}
	// Mark the row deleted instead of removing it
	if err := s.db.Model(&meal).Update("status", domain.StatusDeleted).Error; err != nil {
		return err
	}
	// Log successful deletion
	logrus.WithFields(logrus.Fields{
		"meal_id": id,        // Deleted meal id
		"meal":    meal.Name, // Deleted meal name
	}).Info("Meal deleted")
	return nil
}

// GetMealByID returns an active meal by primary key
func (s *Store) GetMealByID(id uint) (*domain.Meal, error) {
	var meal domain.Meal
	err := s.db.First(&meal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errIDNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	// Deleted rows are absent for retrieval purposes
	if meal.Deleted() {
		return nil, errIDDeleted(id)
	}
	return &meal, nil
}

// GetMealByName returns an active meal by name
func (s *Store) GetMealByName(name string) (*domain.Meal, error) {
	// Look for an active holder first; a tombstoned row may share the name
	var meal domain.Meal
	err := s.db.Where("meal = ? AND status = ?", name, domain.StatusActive).First(&meal).Error
	if err == nil {
		return &meal, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	// No active holder; a tombstoned row reads as deleted, none at all as missing
	err = s.db.Where("meal = ?", name).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errNameNotFound(name)
	}
	if err != nil {
		return nil, err
	}
	return nil, errNameDeleted(name)
}

// UpdateMealStats records one battle outcome against a meal
func (s *Store) UpdateMealStats(id uint, result domain.BattleResult) error {
	// Validate the outcome before touching any row
	if !result.IsValid() {
		return errInvalidResult(string(result))
	}
	// Fetch the row regardless of status
	var meal domain.Meal
	err := s.db.First(&meal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errIDNotFound(id)
	}
	if err != nil {
		return err
	}
	// Stats never move on a deleted row
	if meal.Deleted() {
		return errIDDeleted(id)
	}
	// Increment battles, and wins only on a win, in a single update
	updates := map[string]interface{}{
		"battles": gorm.Expr("battles + ?", 1), // Every outcome counts one battle
	}
	if result == domain.ResultWin {
		updates["wins"] = gorm.Expr("wins + ?", 1) // Wins move only on a win
	}
	if err := s.db.Model(&meal).Updates(updates).Error; err != nil {
		return err
	}
	// Log the recorded outcome
	logrus.WithFields(logrus.Fields{
		"meal_id": id,        // Updated meal id
		"meal":    meal.Name, // Updated meal name
		"result":  result,    // Recorded outcome
	}).Info("Meal stats updated")
	return nil
}

// Leaderboard returns active meals ranked descending by the requested key
func (s *Store) Leaderboard(sortBy string) ([]LeaderboardEntry, error) {
	// Validate the sort key
	if sortBy != SortByWins && sortBy != SortByWinPct {
		return nil, errInvalidSortBy(sortBy)
	}
	// Rank active meals; the win percentage is computed in SQL
	var entries []LeaderboardEntry
	err := s.db.Model(&domain.Meal{}).
		Select("id, meal, cuisine, price, difficulty, battles, wins, " + winPctExpr + " AS win_pct").
		Where("status = ?", domain.StatusActive).
		Order(sortBy + " DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	// Round the percentage to one decimal place
	for i := range entries {
		entries[i].WinPct = math.Round(entries[i].WinPct*10) / 10
	}
	return entries, nil
}

// ClearMeals irreversibly removes every meal row
func (s *Store) ClearMeals() error {
	// Delete all rows, tombstoned ones included
	if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Meal{}).Error; err != nil {
		return err
	}
	logrus.Info("Meals cleared.") // Log successful reset
	return nil
}
