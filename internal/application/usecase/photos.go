package usecase

import (
	"context"
	"errors"

	"github.com/CSCI4830-UNO/PetChart/internal/domain/entity"
	"github.com/CSCI4830-UNO/PetChart/internal/domain/refid"
	"github.com/CSCI4830-UNO/PetChart/internal/domain/repository/blobstore"
	"github.com/CSCI4830-UNO/PetChart/internal/domain/repository/database"
	"github.com/CSCI4830-UNO/PetChart/pkg/logger"
)

// PhotoManager runs the owning-record flows. Record and store updates are
// two separate operations with an eventual-consistency window; the store is
// reconciled best-effort after the record write lands.
type PhotoManager struct {
	pets    database.PetStore
	remover blobstore.Remover
}

func NewPhotoManager(pets database.PetStore, remover blobstore.Remover) *PhotoManager {
	return &PhotoManager{
		pets:    pets,
		remover: remover,
	}
}

func (m *PhotoManager) ListPhotos(ctx context.Context, petID, owner string) ([]string, error) {
	pet, err := m.pets.GetByID(ctx, petID, owner)
	if err != nil {
		return nil, err
	}

	return pet.Photos, nil
}

// ReplacePhotos accepts a full replacement of a pet's reference list. The
// incoming list is de-duplicated by normalized id (first occurrence wins,
// order preserved, first element stays primary), written to the record, and
// the store is then reconciled against the record's previous list.
func (m *PhotoManager) ReplacePhotos(ctx context.Context, petID, owner string, refs []string) (entity.ReplaceResult, error) {
	cleaned := dedupeRefs(refs)

	previous, err := m.pets.ReplacePhotoRefs(ctx, petID, owner, cleaned)
	if err != nil {
		return entity.ReplaceResult{}, err
	}

	orphans, deleted := m.ReconcileRefs(ctx, previous.Photos, cleaned)

	return entity.ReplaceResult{
		Photos:         cleaned,
		Orphans:        orphans,
		OrphansDeleted: deleted,
	}, nil
}

// DeletePet removes the record, then reconciles every reference it held
// away from the store.
func (m *PhotoManager) DeletePet(ctx context.Context, petID, owner string) (entity.ReplaceResult, error) {
	pet, err := m.pets.Delete(ctx, petID, owner)
	if err != nil {
		return entity.ReplaceResult{}, err
	}

	orphans, deleted := m.ReconcileRefs(ctx, pet.Photos, nil)

	return entity.ReplaceResult{
		Photos:         nil,
		Orphans:        orphans,
		OrphansDeleted: deleted,
	}, nil
}

// ReconcileRefs computes the normalized set difference oldRefs minus
// newRefs and deletes each orphan best-effort. A failed delete is logged
// per id and never aborts the rest of the batch.
func (m *PhotoManager) ReconcileRefs(ctx context.Context, oldRefs, newRefs []string) ([]string, int) {
	keep := make(map[string]struct{}, len(newRefs))
	for _, ref := range newRefs {
		if id := refid.Normalize(ref); id != "" {
			keep[id] = struct{}{}
		}
	}

	var orphans []string
	seen := make(map[string]struct{}, len(oldRefs))
	for _, ref := range oldRefs {
		id := refid.Normalize(ref)
		if id == "" {
			continue
		}
		if _, ok := keep[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		orphans = append(orphans, id)
	}

	deleted := 0
	for _, id := range orphans {
		switch err := m.remover.Remove(ctx, id); {
		case err == nil:
			deleted++
		case errors.Is(err, blobstore.ErrBlobNotFound):
			deleted++ // already gone
		default:
			logger.Warn("could not delete orphaned blob", "id", id, "err", err.Error())
		}
	}

	return orphans, deleted
}

// dedupeRefs drops entries whose normalized id repeats an earlier entry.
func dedupeRefs(refs []string) []string {
	cleaned := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		id := refid.Normalize(ref)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		cleaned = append(cleaned, ref)
	}

	return cleaned
}
