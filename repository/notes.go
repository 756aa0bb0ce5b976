package repository

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client, dbName string) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(dbName).Collection("notes"),
	}
}

// ownerFilter is the predicate applied to every note query. All reads and
// writes go through it so ownership scoping cannot be forgotten per call.
func ownerFilter(userID string) bson.M {
	return bson.M{"user_id": userID}
}

func ownedNoteFilter(noteID primitive.ObjectID, userID string) bson.M {
	filter := ownerFilter(userID)
	filter["_id"] = noteID
	return filter
}

func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.UserID == "" {
		return errors.New("user ID is required")
	}

	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now
	if note.ID.IsZero() {
		note.ID = primitive.NewObjectID()
	}

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database")
	}
	return err
}

// GetUserNotes returns all notes owned by userID, newest first. An empty
// slice is a valid result.
func (r *NotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, ownerFilter(userID), opts)
	if err != nil {
		utils.TrackError("database")
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		utils.TrackError("database")
		return nil, err
	}
	return notes, nil
}

func (r *NotesRepo) GetNote(ctx context.Context, noteID primitive.ObjectID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, ownedNoteFilter(noteID, userID)).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database")
		return nil, err
	}
	return &note, nil
}

func (r *NotesRepo) GetNotesByCategory(ctx context.Context, categoryID primitive.ObjectID, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := ownerFilter(userID)
	filter["category_id"] = categoryID

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database")
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		utils.TrackError("database")
		return nil, err
	}
	return notes, nil
}

// UpdateNote overwrites only the fields supplied in updates and bumps
// updated_at. ErrNotFound covers both a missing note and a note owned by
// a different user.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID primitive.ObjectID, userID string, updates *model.NoteUpdate) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	set := bson.M{"updated_at": time.Now()}
	if updates.Title != nil {
		set["title"] = *updates.Title
	}
	if updates.Content != nil {
		set["content"] = *updates.Content
	}
	if updates.CategoryID != nil {
		set["category_id"] = *updates.CategoryID
	}

	result, err := r.MongoCollection.UpdateOne(ctx,
		ownedNoteFilter(noteID, userID), bson.M{"$set": set})
	if err != nil {
		utils.TrackError("database")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NotesRepo) DeleteNote(ctx context.Context, noteID primitive.ObjectID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, ownedNoteFilter(noteID, userID))
	if err != nil {
		utils.TrackError("database")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
