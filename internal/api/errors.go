package api

import (
	"errors"                    // Error kind matching
	"meal_max/internal/battle"  // Battle engine errors
	"meal_max/internal/kitchen" // Catalog store errors
	"meal_max/internal/utils"   // Random source errors
	"net/http"                  // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// statusForError maps a domain error to its HTTP status code
func statusForError(err error) int {
	var (
		validationErr   *kitchen.ValidationError
		conflictErr     *kitchen.ConflictError
		notFoundErr     *kitchen.NotFoundError
		deletedErr      *kitchen.AlreadyDeletedError
		capacityErr     *battle.CapacityError
		insufficientErr *battle.InsufficientCombatantsError
		requestErr      *utils.RequestError
		formatErr       *utils.FormatError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest // Caller sent a bad value
	case errors.As(err, &conflictErr):
		return http.StatusConflict // Name already taken
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound // No such meal
	case errors.As(err, &deletedErr):
		return http.StatusNotFound // Tombstoned meals read as absent
	case errors.As(err, &capacityErr):
		return http.StatusBadRequest // Staging area already full
	case errors.As(err, &insufficientErr):
		return http.StatusBadRequest // Not enough staged combatants
	case errors.As(err, &requestErr):
		return http.StatusBadGateway // Upstream random source failed
	case errors.As(err, &formatErr):
		return http.StatusBadGateway // Upstream random source misbehaved
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error with its mapped status code
func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}
