package abstraction

import (
	"context"

	"github.com/CSCI4830-UNO/PetChart/internal/domain/entity"
)

// PhotoManager runs the owning-record flows that carry photo reference
// lists: listing, full replacement, and record deletion cleanup.
type PhotoManager interface {
	ListPhotos(ctx context.Context, petID, owner string) ([]string, error)
	ReplacePhotos(ctx context.Context, petID, owner string, refs []string) (entity.ReplaceResult, error)
	DeletePet(ctx context.Context, petID, owner string) (entity.ReplaceResult, error)
}
