package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	maxTitleLength   = 200
	maxContentLength = 50000
)

// NoteStore is the owner-scoped persistence surface for notes. Every
// method that touches an existing note takes the owner's user id; the
// store returns repository.ErrNotFound when no note matches both id and
// owner.
type NoteStore interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error)
	GetNote(ctx context.Context, noteID primitive.ObjectID, userID string) (*model.Note, error)
	GetNotesByCategory(ctx context.Context, categoryID primitive.ObjectID, userID string) ([]*model.Note, error)
	UpdateNote(ctx context.Context, noteID primitive.ObjectID, userID string, updates *model.NoteUpdate) error
	DeleteNote(ctx context.Context, noteID primitive.ObjectID, userID string) error
}

// CategoryStore persists the global category lookup table.
type CategoryStore interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Category, error)
	FindOrCreate(ctx context.Context, name string) (*model.Category, error)
	GetAll(ctx context.Context) ([]*model.Category, error)
}

type NotesService struct {
	Notes      NoteStore
	Categories CategoryStore
	Cache      *services.CategoryCache // nil disables caching
}

// NoteWithCategory pairs a note with its resolved category.
type NoteWithCategory struct {
	Note     *model.Note
	Category *model.Category
}

func validateNoteContent(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(title) > maxTitleLength {
		return "", "", fmt.Errorf("%w: title exceeds maximum length", ErrInvalidInput)
	}
	if strings.TrimSpace(content) == "" {
		return "", "", fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if len(content) > maxContentLength {
		return "", "", fmt.Errorf("%w: content exceeds maximum length", ErrInvalidInput)
	}
	return title, content, nil
}

// attachCategories resolves the category of each note in one $in query.
func (svc *NotesService) attachCategories(ctx context.Context, notes []*model.Note) ([]NoteWithCategory, error) {
	seen := make(map[primitive.ObjectID]bool)
	ids := make([]primitive.ObjectID, 0, len(notes))
	for _, note := range notes {
		if !seen[note.CategoryID] {
			seen[note.CategoryID] = true
			ids = append(ids, note.CategoryID)
		}
	}

	byID := make(map[primitive.ObjectID]*model.Category, len(ids))
	if len(ids) > 0 {
		categories, err := svc.Categories.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, category := range categories {
			byID[category.ID] = category
		}
	}

	result := make([]NoteWithCategory, len(notes))
	for i, note := range notes {
		result[i] = NoteWithCategory{Note: note, Category: byID[note.CategoryID]}
	}
	return result, nil
}

// ListNotes returns all notes owned by userID with categories attached.
// An empty slice is a valid result, not an error.
func (svc *NotesService) ListNotes(ctx context.Context, userID string) ([]NoteWithCategory, error) {
	notes, err := svc.Notes.GetUserNotes(ctx, userID)
	if err != nil {
		return nil, err
	}
	return svc.attachCategories(ctx, notes)
}

func (svc *NotesService) GetNote(ctx context.Context, userID, noteID string) (*NoteWithCategory, error) {
	id, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		// A malformed id cannot match any note; indistinguishable from
		// a nonexistent one.
		return nil, ErrNoteNotFound
	}

	note, err := svc.Notes.GetNote(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	category, err := svc.resolveCategory(ctx, note.CategoryID)
	if err != nil {
		return nil, err
	}
	return &NoteWithCategory{Note: note, Category: category}, nil
}

func (svc *NotesService) ListNotesByCategory(ctx context.Context, userID, categoryID string) ([]NoteWithCategory, error) {
	id, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid category id", ErrInvalidInput)
	}

	notes, err := svc.Notes.GetNotesByCategory(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, ErrNoNotesInCategory
	}
	return svc.attachCategories(ctx, notes)
}

// CreateNote persists a note owned by userID. An omitted category resolves
// the shared "General" category through an atomic find-or-create, so two
// concurrent first-time creations still end up with exactly one General.
func (svc *NotesService) CreateNote(ctx context.Context, userID, title, content, categoryID string) (*NoteWithCategory, error) {
	title, content, err := validateNoteContent(title, content)
	if err != nil {
		return nil, err
	}

	var category *model.Category
	if categoryID == "" {
		category, err = svc.Categories.FindOrCreate(ctx, model.DefaultCategoryName)
		if err != nil {
			return nil, err
		}
	} else {
		id, err := primitive.ObjectIDFromHex(categoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid category id", ErrInvalidInput)
		}
		category, err = svc.Categories.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	note := &model.Note{
		Title:      title,
		Content:    content,
		CategoryID: category.ID,
		UserID:     userID,
	}
	if err := svc.Notes.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("create")
	return &NoteWithCategory{Note: note, Category: category}, nil
}

// UpdateNote overwrites only the supplied fields of an owned note and
// returns the updated note. A well-formed but unknown category id fails
// before the note is touched.
func (svc *NotesService) UpdateNote(ctx context.Context, userID, noteID string, title, content, categoryID *string) (*NoteWithCategory, error) {
	if title == nil && content == nil && categoryID == nil {
		return nil, fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}

	id, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, ErrNoteNotFound
	}

	updates := &model.NoteUpdate{}
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" || len(trimmed) > maxTitleLength {
			return nil, fmt.Errorf("%w: invalid title", ErrInvalidInput)
		}
		updates.Title = &trimmed
	}
	if content != nil {
		if strings.TrimSpace(*content) == "" || len(*content) > maxContentLength {
			return nil, fmt.Errorf("%w: invalid content", ErrInvalidInput)
		}
		updates.Content = content
	}
	if categoryID != nil {
		cid, err := primitive.ObjectIDFromHex(*categoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid category id", ErrInvalidInput)
		}
		if _, err := svc.Categories.FindByID(ctx, cid); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		updates.CategoryID = &cid
	}

	if err := svc.Notes.UpdateNote(ctx, id, userID, updates); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	utils.TrackNoteOperation("update")
	return svc.GetNote(ctx, userID, noteID)
}

func (svc *NotesService) DeleteNote(ctx context.Context, userID, noteID string) error {
	id, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return ErrNoteNotFound
	}

	if err := svc.Notes.DeleteNote(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoteNotFound
		}
		return err
	}

	utils.TrackNoteOperation("delete")
	return nil
}

// CreateCategory adds a global category. Ownership is not tracked;
// categories are shared lookup entities.
func (svc *NotesService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}

	category := &model.Category{Name: name}
	if err := svc.Categories.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCategoryTaken
		}
		return nil, err
	}

	if err := svc.Cache.Invalidate(ctx); err != nil {
		// Stale cache entries expire on their own TTL.
		utils.TrackError("cache")
	}
	return category, nil
}

// ListCategories returns every category, read through the cache when one
// is configured. An empty corpus is surfaced as ErrNoCategories.
func (svc *NotesService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	if cached, err := svc.Cache.Get(ctx); err == nil && len(cached) > 0 {
		return cached, nil
	} else if err != nil {
		utils.TrackError("cache")
	}

	categories, err := svc.Categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	if err := svc.Cache.Set(ctx, categories); err != nil {
		utils.TrackError("cache")
	}
	return categories, nil
}

func (svc *NotesService) resolveCategory(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	category, err := svc.Categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Dangling reference; surface the note without its category
			// rather than failing the read.
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}
