package services

import (
	"errors"
	"fmt"

	"github.com/JamesPraneeth/fitness-tracker/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound signals an unknown user or entry id.
	ErrNotFound = errors.New("not found")
	// ErrForbidden signals a delete/edit attempted by a non-owner, non-admin.
	ErrForbidden = errors.New("forbidden")
	// ErrUpstream signals that the coach provider is unreachable or errored.
	ErrUpstream = errors.New("coach service unavailable")
)

// ValidationError reports a malformed or out-of-range value on a write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// canModify authorizes requesterID to modify a row owned by ownerID:
// the owner may always modify, anyone else must be an admin.
func canModify(db *gorm.DB, requesterID, ownerID uint) error {
	if requesterID == ownerID {
		return nil
	}
	var requester models.User
	if err := db.First(&requester, requesterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrForbidden
		}
		return err
	}
	if !requester.IsAdmin {
		return ErrForbidden
	}
	return nil
}
