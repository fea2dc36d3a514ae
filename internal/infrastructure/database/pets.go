package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CSCI4830-UNO/PetChart/internal/domain/model"
	petsRepository "github.com/CSCI4830-UNO/PetChart/internal/domain/repository/database"
)

// PetRepo reads and writes the photo reference list on pet records. Every
// query is scoped to the record's owner.
type PetRepo struct {
	db *Database
}

func NewPetRepo(db *Database) *PetRepo {
	return &PetRepo{db: db}
}

func (r *PetRepo) GetByID(ctx context.Context, id, owner string) (*model.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, petsRepository.ErrPetNotFound
	}

	coll := r.db.Client.Database(r.db.DBName).Collection(PetCollection)

	var pet model.Pet
	err = coll.FindOne(ctx, bson.M{"_id": oid, "owner": owner}).Decode(&pet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, petsRepository.ErrPetNotFound
		}

		return nil, err
	}

	return &pet, nil
}

// ReplacePhotoRefs swaps the full reference list and returns the record as
// it was before the update. The pre-image is what callers reconcile the
// blob store against.
func (r *PetRepo) ReplacePhotoRefs(ctx context.Context, id, owner string, photos []string) (*model.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, petsRepository.ErrPetNotFound
	}

	coll := r.db.Client.Database(r.db.DBName).Collection(PetCollection)

	var previous model.Pet
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "owner": owner},
		bson.M{"$set": bson.M{"photos": photos, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&previous)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, petsRepository.ErrPetNotFound
		}

		return nil, err
	}

	return &previous, nil
}

// Delete removes the record and returns it as deleted.
func (r *PetRepo) Delete(ctx context.Context, id, owner string) (*model.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, petsRepository.ErrPetNotFound
	}

	coll := r.db.Client.Database(r.db.DBName).Collection(PetCollection)

	var deleted model.Pet
	err = coll.FindOneAndDelete(ctx, bson.M{"_id": oid, "owner": owner}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, petsRepository.ErrPetNotFound
		}

		return nil, err
	}

	return &deleted, nil
}
