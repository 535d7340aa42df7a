package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
)

// resolveOwned loads an entity of type T by id, scoped to the acting user.
// All entity lookups go through this so cross-user access is uniformly
// rejected with the caller-supplied sentinel rather than leaking another
// user's data.
func resolveOwned[T any](db *gorm.DB, userID, id uint, notFound *apperrors.AppError) (*T, error) {
	var entity T
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entity, nil
}
