package usecase

import (
	"context"
	"sort"
	"time"

	"main/model"
	"main/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stores implementing the same contract as the Mongo repos,
// including owner scoping and unique-name behavior.

type memNoteStore struct {
	notes map[primitive.ObjectID]*model.Note
}

func newMemNoteStore() *memNoteStore {
	return &memNoteStore{notes: make(map[primitive.ObjectID]*model.Note)}
}

func (s *memNoteStore) CreateNote(_ context.Context, note *model.Note) error {
	if note.ID.IsZero() {
		note.ID = primitive.NewObjectID()
	}
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now
	copied := *note
	s.notes[note.ID] = &copied
	return nil
}

func (s *memNoteStore) GetUserNotes(_ context.Context, userID string) ([]*model.Note, error) {
	result := []*model.Note{}
	for _, note := range s.notes {
		if note.UserID == userID {
			copied := *note
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *memNoteStore) GetNote(_ context.Context, noteID primitive.ObjectID, userID string) (*model.Note, error) {
	note, ok := s.notes[noteID]
	if !ok || note.UserID != userID {
		return nil, repository.ErrNotFound
	}
	copied := *note
	return &copied, nil
}

func (s *memNoteStore) GetNotesByCategory(_ context.Context, categoryID primitive.ObjectID, userID string) ([]*model.Note, error) {
	result := []*model.Note{}
	for _, note := range s.notes {
		if note.UserID == userID && note.CategoryID == categoryID {
			copied := *note
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *memNoteStore) UpdateNote(_ context.Context, noteID primitive.ObjectID, userID string, updates *model.NoteUpdate) error {
	note, ok := s.notes[noteID]
	if !ok || note.UserID != userID {
		return repository.ErrNotFound
	}
	if updates.Title != nil {
		note.Title = *updates.Title
	}
	if updates.Content != nil {
		note.Content = *updates.Content
	}
	if updates.CategoryID != nil {
		note.CategoryID = *updates.CategoryID
	}
	note.UpdatedAt = time.Now()
	return nil
}

func (s *memNoteStore) DeleteNote(_ context.Context, noteID primitive.ObjectID, userID string) error {
	note, ok := s.notes[noteID]
	if !ok || note.UserID != userID {
		return repository.ErrNotFound
	}
	delete(s.notes, noteID)
	return nil
}

type memCategoryStore struct {
	categories map[primitive.ObjectID]*model.Category
}

func newMemCategoryStore() *memCategoryStore {
	return &memCategoryStore{categories: make(map[primitive.ObjectID]*model.Category)}
}

func (s *memCategoryStore) findByName(name string) *model.Category {
	for _, category := range s.categories {
		if category.Name == name {
			return category
		}
	}
	return nil
}

func (s *memCategoryStore) CreateCategory(_ context.Context, category *model.Category) error {
	if s.findByName(category.Name) != nil {
		return repository.ErrDuplicate
	}
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	copied := *category
	s.categories[category.ID] = &copied
	return nil
}

func (s *memCategoryStore) FindByID(_ context.Context, id primitive.ObjectID) (*model.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *category
	return &copied, nil
}

func (s *memCategoryStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*model.Category, error) {
	result := []*model.Category{}
	for _, id := range ids {
		if category, ok := s.categories[id]; ok {
			copied := *category
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *memCategoryStore) FindOrCreate(_ context.Context, name string) (*model.Category, error) {
	if existing := s.findByName(name); existing != nil {
		copied := *existing
		return &copied, nil
	}
	category := &model.Category{ID: primitive.NewObjectID(), Name: name}
	s.categories[category.ID] = category
	copied := *category
	return &copied, nil
}

func (s *memCategoryStore) GetAll(_ context.Context) ([]*model.Category, error) {
	result := []*model.Category{}
	for _, category := range s.categories {
		copied := *category
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

type memUserStore struct {
	users map[string]*model.User // keyed by email
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*model.User)}
}

func (s *memUserStore) AddUser(_ context.Context, user *model.User) error {
	if _, exists := s.users[user.Email]; exists {
		return repository.ErrDuplicate
	}
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	copied := *user
	s.users[user.Email] = &copied
	return nil
}

func (s *memUserStore) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}
