package usecases

import (
	"errors"

	"github.com/spacebook/spacebook/internal/domain/space"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// translateRepoError maps repository failures to application errors.
func translateRepoError(log logger.Interface, op string, id uint, err error) error {
	if errors.Is(err, space.ErrSpaceNotFound) {
		return apperrors.NewNotFoundError("space not found")
	}
	log.Errorw("space repository failure", "operation", op, "space_id", id, "error", err)
	return apperrors.NewInternalError("failed to " + op + " space")
}
