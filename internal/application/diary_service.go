package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-diary-api/internal/domain/entity"
	repo "github.com/oksasatya/go-diary-api/internal/domain/repository"
	"github.com/oksasatya/go-diary-api/pkg/helpers"
	"github.com/oksasatya/go-diary-api/pkg/validation"
)

// EntryIndex is the full-text index kept next to the diary store.
type EntryIndex interface {
	IndexEntry(ctx context.Context, e *entity.DiaryEntry) error
	DeleteEntry(ctx context.Context, id string) error
	SearchEntries(ctx context.Context, userID, q string, size int) ([]string, error)
}

type DiaryService struct {
	Repo   repo.DiaryRepository
	Index  EntryIndex // optional
	Logger *logrus.Logger
}

func NewDiaryService(repo repo.DiaryRepository, index EntryIndex, logger *logrus.Logger) *DiaryService {
	return &DiaryService{Repo: repo, Index: index, Logger: logger}
}

// EntryInput is the body of create and update. Nil fields are left unchanged
// on update and defaulted on create.
type EntryInput struct {
	Title     *string  `json:"title"`
	Content   *string  `json:"content"`
	Mood      *string  `json:"mood"`
	Tags      []string `json:"tags"`
	IsPrivate *bool    `json:"isPrivate"`
}

type entryFields struct {
	Title   string `json:"title" validate:"max=200"`
	Content string `json:"content" validate:"max=5000"`
	Mood    string `json:"mood" validate:"omitempty,mood"`
}

const msgTitleContentRequired = "Title and content are required"

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func checkFields(f entryFields) error {
	if err := validation.Struct(f); err != nil {
		return invalidFields("Invalid diary entry", err)
	}
	return nil
}

func (s *DiaryService) List(ctx context.Context, userID string) ([]entity.DiaryEntry, error) {
	entries, err := s.Repo.ListByUser(ctx, userID, entity.MaxEntriesListed)
	if err != nil {
		return nil, internal("list entries", err)
	}
	return entries, nil
}

func (s *DiaryService) Get(ctx context.Context, userID, id string) (*entity.DiaryEntry, error) {
	e, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, s.notFoundOr("get entry", err)
	}
	return e, nil
}

func (s *DiaryService) Create(ctx context.Context, userID string, in EntryInput) (*entity.DiaryEntry, error) {
	var title, content string
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		content = *in.Content
	}
	if title == "" || strings.TrimSpace(content) == "" {
		return nil, invalid(msgTitleContentRequired)
	}
	mood := entity.MoodContent
	if in.Mood != nil && *in.Mood != "" {
		mood = entity.Mood(*in.Mood)
	}
	if err := checkFields(entryFields{Title: title, Content: content, Mood: string(mood)}); err != nil {
		return nil, err
	}
	private := true
	if in.IsPrivate != nil {
		private = *in.IsPrivate
	}

	now := time.Now().UTC()
	e := &entity.DiaryEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Mood:      mood,
		Tags:      cleanTags(in.Tags),
		IsPrivate: private,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, internal("create entry", err)
	}
	s.index(ctx, e)
	return e, nil
}

func (s *DiaryService) Update(ctx context.Context, userID, id string, in EntryInput) (*entity.DiaryEntry, error) {
	var patch repo.EntryPatch
	var f entryFields
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			return nil, invalid(msgTitleContentRequired)
		}
		patch.Title, f.Title = &t, t
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, invalid(msgTitleContentRequired)
		}
		patch.Content, f.Content = in.Content, *in.Content
	}
	if in.Mood != nil && *in.Mood != "" {
		m := entity.Mood(*in.Mood)
		patch.Mood, f.Mood = &m, *in.Mood
	}
	if err := checkFields(f); err != nil {
		return nil, err
	}
	if in.Tags != nil {
		tags := cleanTags(in.Tags)
		patch.Tags = &tags
	}
	patch.IsPrivate = in.IsPrivate

	e, err := s.Repo.Update(ctx, userID, id, patch)
	if err != nil {
		return nil, s.notFoundOr("update entry", err)
	}
	s.index(ctx, e)
	return e, nil
}

func (s *DiaryService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return s.notFoundOr("delete entry", err)
	}
	if s.Index != nil {
		if err := s.Index.DeleteEntry(ctx, id); err != nil {
			helpers.LogError(s.Logger, "unindex entry", err, logrus.Fields{"entry_id": id})
		}
	}
	return nil
}

// Search returns the caller's entries matching q, best match first. Without an
// index it returns an empty list.
func (s *DiaryService) Search(ctx context.Context, userID, q string) ([]entity.DiaryEntry, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, invalid("Search query required")
	}
	if s.Index == nil {
		return []entity.DiaryEntry{}, nil
	}
	ids, err := s.Index.SearchEntries(ctx, userID, q, entity.MaxEntriesListed)
	if err != nil {
		return nil, internal("search entries", err)
	}
	if len(ids) == 0 {
		return []entity.DiaryEntry{}, nil
	}
	found, err := s.Repo.GetByIDs(ctx, userID, ids)
	if err != nil {
		return nil, internal("load entries", err)
	}
	byID := make(map[string]entity.DiaryEntry, len(found))
	for _, e := range found {
		byID[e.ID] = e
	}
	out := make([]entity.DiaryEntry, 0, len(found))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *DiaryService) index(ctx context.Context, e *entity.DiaryEntry) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexEntry(ctx, e); err != nil {
		helpers.LogError(s.Logger, "index entry", err, logrus.Fields{"entry_id": e.ID})
	}
}

func (s *DiaryService) notFoundOr(op string, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrEntryNotFound
	}
	return internal(op, err)
}
