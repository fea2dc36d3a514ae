package database

import (
	"context"

	"github.com/CSCI4830-UNO/PetChart/internal/domain/model"
)

// PetStore is the owning-record collaborator: it reads and writes the photo
// reference list on pet records, always scoped to the record's owner.
type PetStore interface {
	GetByID(ctx context.Context, id, owner string) (*model.Pet, error)

	// ReplacePhotoRefs swaps the full reference list and returns the record
	// as it was before the update, so callers can reconcile the store
	// against the previous list.
	ReplacePhotoRefs(ctx context.Context, id, owner string, photos []string) (*model.Pet, error)

	// Delete removes the record and returns it as deleted.
	Delete(ctx context.Context, id, owner string) (*model.Pet, error)
}
