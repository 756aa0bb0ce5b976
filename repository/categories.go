package repository

import (
	"context"
	"errors"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoriesRepo struct {
	MongoCollection *mongo.Collection
}

func GetCategoriesRepo(client *mongo.Client, dbName string) *CategoriesRepo {
	return &CategoriesRepo{
		MongoCollection: client.Database(dbName).Collection("categories"),
	}
}

func (r *CategoriesRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	timer := utils.TrackDBOperation("insert", "categories")
	defer timer.ObserveDuration()

	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}

	if _, err := r.MongoCollection.InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		utils.TrackError("database")
		return err
	}
	return nil
}

func (r *CategoriesRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	var category model.Category
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database")
		return nil, err
	}
	return &category, nil
}

func (r *CategoriesRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		utils.TrackError("database")
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []*model.Category{}
	if err = cursor.All(ctx, &categories); err != nil {
		utils.TrackError("database")
		return nil, err
	}
	return categories, nil
}

// FindOrCreate resolves a category by its unique name, creating it if
// absent. The upsert is a single atomic operation keyed on the unique name
// index; a duplicate-key error from a concurrent upsert means the category
// exists now, so it is fetched instead of failing.
func (r *CategoriesRepo) FindOrCreate(ctx context.Context, name string) (*model.Category, error) {
	timer := utils.TrackDBOperation("upsert", "categories")
	defer timer.ObserveDuration()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var category model.Category
	err := r.MongoCollection.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$setOnInsert": bson.M{"name": name}},
		opts).Decode(&category)
	if err == nil {
		return &category, nil
	}

	if mongo.IsDuplicateKeyError(err) {
		err = r.MongoCollection.FindOne(ctx, bson.M{"name": name}).Decode(&category)
		if err == nil {
			return &category, nil
		}
	}

	utils.TrackError("database")
	return nil, err
}

func (r *CategoriesRepo) GetAll(ctx context.Context) ([]*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.TrackError("database")
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []*model.Category{}
	if err = cursor.All(ctx, &categories); err != nil {
		utils.TrackError("database")
		return nil, err
	}
	return categories, nil
}
