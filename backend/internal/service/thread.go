package service

import (
	"context"

	"github.com/itchan-dev/agora/backend/internal/ranking"
	"github.com/itchan-dev/agora/shared/domain"
	internal_errors "github.com/itchan-dev/agora/shared/errors"
	"github.com/itchan-dev/agora/shared/utils"
)

type ThreadService interface {
	Create(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error)
	Get(ctx context.Context, id domain.ThreadId) (domain.ThreadPage, error)
	Random(ctx context.Context) (domain.ThreadId, error)
	Delete(ctx context.Context, id domain.ThreadId, user domain.User) error
}

type Thread struct {
	storage   ThreadStorage
	validator ThreadValidator
}

type ThreadStorage interface {
	CreateThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error)
	GetThread(ctx context.Context, id domain.ThreadId) (domain.ThreadPage, error)
	GetThreadAuthor(ctx context.Context, id domain.ThreadId) (domain.UserId, error)
	RandomThreadId(ctx context.Context) (domain.ThreadId, error)
	DeleteThread(ctx context.Context, id domain.ThreadId) error
}

type ThreadValidator interface {
	Title(title domain.ThreadTitle) error
	Description(description string) error
}

func NewThread(storage ThreadStorage, validator ThreadValidator) ThreadService {
	return &Thread{storage, validator}
}

func (b *Thread) Create(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error) {
	creationData.Title = utils.SanitizeText(creationData.Title)
	creationData.Description = utils.SanitizeText(creationData.Description)

	if err := b.validator.Title(creationData.Title); err != nil {
		return -1, err
	}
	if err := b.validator.Description(creationData.Description); err != nil {
		return -1, err
	}

	return b.storage.CreateThread(ctx, creationData)
}

// Get counts a view and returns the thread page with its engagement.
func (b *Thread) Get(ctx context.Context, id domain.ThreadId) (domain.ThreadPage, error) {
	page, err := b.storage.GetThread(ctx, id)
	if err != nil {
		return domain.ThreadPage{}, err
	}
	page.Engagement = ranking.AggregateComments(page.Thread, page.Comments)
	return page, nil
}

func (b *Thread) Random(ctx context.Context) (domain.ThreadId, error) {
	return b.storage.RandomThreadId(ctx)
}

func (b *Thread) Delete(ctx context.Context, id domain.ThreadId, user domain.User) error {
	author, err := b.storage.GetThreadAuthor(ctx, id)
	if err != nil {
		return err
	}
	if author != user.Id {
		return internal_errors.Forbidden("Only the author can delete a thread")
	}
	return b.storage.DeleteThread(ctx, id)
}
