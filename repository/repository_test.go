package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"main/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testDB connects to the Mongo instance named by TEST_MONGO_URI and hands
// back a throwaway database that is dropped when the test finishes. Tests
// are skipped when no instance is available.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set, skipping database tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("mongo not reachable: %v", err)
	}

	db := client.Database(fmt.Sprintf("gonotes_test_%d", time.Now().UnixNano()))
	if err := SetupIndexes(db); err != nil {
		t.Fatalf("failed to create indexes: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db.Drop(ctx)
		client.Disconnect(ctx)
	})
	return db
}

func TestUserRepoUniqueness(t *testing.T) {
	db := testDB(t)
	repo := &UserRepo{MongoCollection: db.Collection("users")}
	ctx := context.Background()

	user := &model.User{
		UserID:   uuid.NewString(),
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hashed",
	}
	if err := repo.AddUser(ctx, user); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	dup := &model.User{
		UserID:   uuid.NewString(),
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "hashed",
	}
	if err := repo.AddUser(ctx, dup); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate on reused email, got %v", err)
	}

	found, err := repo.FindUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if found.UserID != user.UserID {
		t.Errorf("expected user %s, got %s", user.UserID, found.UserID)
	}

	if _, err := repo.FindUserByEmail(ctx, "ghost@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown email, got %v", err)
	}
}

func TestNotesRepoOwnerScoping(t *testing.T) {
	db := testDB(t)
	repo := &NotesRepo{MongoCollection: db.Collection("notes")}
	ctx := context.Background()

	ownerID := uuid.NewString()
	otherID := uuid.NewString()
	categoryID := primitive.NewObjectID()

	note := &model.Note{
		Title:      "mine",
		Content:    "body",
		CategoryID: categoryID,
		UserID:     ownerID,
	}
	if err := repo.CreateNote(ctx, note); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// The owner sees the note, everyone else gets ErrNotFound.
	if _, err := repo.GetNote(ctx, note.ID, ownerID); err != nil {
		t.Errorf("owner read failed: %v", err)
	}
	if _, err := repo.GetNote(ctx, note.ID, otherID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for non-owner read, got %v", err)
	}

	title := "hijacked"
	err := repo.UpdateNote(ctx, note.ID, otherID, &model.NoteUpdate{Title: &title})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for non-owner update, got %v", err)
	}
	if err := repo.DeleteNote(ctx, note.ID, otherID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for non-owner delete, got %v", err)
	}

	// The note is untouched after the failed writes.
	fetched, err := repo.GetNote(ctx, note.ID, ownerID)
	if err != nil {
		t.Fatalf("re-read failed: %v", err)
	}
	if fetched.Title != "mine" {
		t.Errorf("note was modified by a non-owner: %+v", fetched)
	}

	notes, err := repo.GetNotesByCategory(ctx, categoryID, otherID)
	if err != nil {
		t.Fatalf("category listing failed: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("non-owner category listing returned %d notes", len(notes))
	}
}

func TestNotesRepoPartialUpdate(t *testing.T) {
	db := testDB(t)
	repo := &NotesRepo{MongoCollection: db.Collection("notes")}
	ctx := context.Background()

	ownerID := uuid.NewString()
	note := &model.Note{
		Title:      "before",
		Content:    "body",
		CategoryID: primitive.NewObjectID(),
		UserID:     ownerID,
	}
	if err := repo.CreateNote(ctx, note); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Timestamps are stored at millisecond precision.
	time.Sleep(5 * time.Millisecond)

	title := "after"
	if err := repo.UpdateNote(ctx, note.ID, ownerID, &model.NoteUpdate{Title: &title}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	fetched, err := repo.GetNote(ctx, note.ID, ownerID)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if fetched.Title != "after" {
		t.Errorf("title not updated: %q", fetched.Title)
	}
	if fetched.Content != "body" {
		t.Errorf("content changed on a title-only update: %q", fetched.Content)
	}
	if fetched.CategoryID != note.CategoryID {
		t.Errorf("category changed on a title-only update")
	}
	if !fetched.UpdatedAt.After(fetched.CreatedAt) {
		t.Error("updated_at not bumped")
	}
}

func TestNotesRepoListOrdering(t *testing.T) {
	db := testDB(t)
	repo := &NotesRepo{MongoCollection: db.Collection("notes")}
	ctx := context.Background()

	ownerID := uuid.NewString()
	for i := 0; i < 3; i++ {
		note := &model.Note{
			Title:      fmt.Sprintf("note-%d", i),
			Content:    "body",
			CategoryID: primitive.NewObjectID(),
			UserID:     ownerID,
		}
		if err := repo.CreateNote(ctx, note); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	notes, err := repo.GetUserNotes(ctx, ownerID)
	if err != nil {
		t.Fatalf("listing failed: %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(notes))
	}
	for i := 1; i < len(notes); i++ {
		if notes[i].CreatedAt.After(notes[i-1].CreatedAt) {
			t.Errorf("notes not sorted newest first at position %d", i)
		}
	}
}

func TestCategoriesRepoFindOrCreate(t *testing.T) {
	db := testDB(t)
	repo := &CategoriesRepo{MongoCollection: db.Collection("categories")}
	ctx := context.Background()

	first, err := repo.FindOrCreate(ctx, model.DefaultCategoryName)
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if first.Name != model.DefaultCategoryName {
		t.Errorf("unexpected name %q", first.Name)
	}

	// Repeated resolution returns the same document.
	second, err := repo.FindOrCreate(ctx, model.DefaultCategoryName)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("upsert created a second category: %s vs %s", first.ID.Hex(), second.ID.Hex())
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("listing failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected exactly one category, got %d", len(all))
	}
}

func TestCategoriesRepoFindOrCreateConcurrent(t *testing.T) {
	db := testDB(t)
	repo := &CategoriesRepo{MongoCollection: db.Collection("categories")}
	ctx := context.Background()

	const workers = 8
	ids := make(chan primitive.ObjectID, workers)
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			category, err := repo.FindOrCreate(ctx, model.DefaultCategoryName)
			if err != nil {
				errs <- err
				return
			}
			ids <- category.ID
		}()
	}

	var firstID primitive.ObjectID
	for i := 0; i < workers; i++ {
		select {
		case err := <-errs:
			t.Fatalf("concurrent upsert failed: %v", err)
		case id := <-ids:
			if i == 0 {
				firstID = id
			} else if id != firstID {
				t.Errorf("concurrent upserts resolved different categories")
			}
		}
	}
}

func TestCategoriesRepoUniqueName(t *testing.T) {
	db := testDB(t)
	repo := &CategoriesRepo{MongoCollection: db.Collection("categories")}
	ctx := context.Background()

	if err := repo.CreateCategory(ctx, &model.Category{Name: "Work"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	err := repo.CreateCategory(ctx, &model.Category{Name: "Work"})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}
