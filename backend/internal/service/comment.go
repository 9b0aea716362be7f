package service

import (
	"context"

	"github.com/itchan-dev/agora/shared/domain"
	internal_errors "github.com/itchan-dev/agora/shared/errors"
	"github.com/itchan-dev/agora/shared/utils"
)

type CommentService interface {
	Create(ctx context.Context, creationData domain.CommentCreationData) (domain.CommentId, error)
	Edit(ctx context.Context, id domain.CommentId, user domain.User, content domain.CommentText) error
	Delete(ctx context.Context, id domain.CommentId, user domain.User) error
}

type Comment struct {
	storage   CommentStorage
	validator CommentValidator
	policy    CommentPolicy
}

type CommentStorage interface {
	CreateComment(ctx context.Context, creationData domain.CommentCreationData) (domain.CommentId, error)
	GetCommentOwnership(ctx context.Context, id domain.CommentId) (domain.CommentOwnership, error)
	EditComment(ctx context.Context, id domain.CommentId, content domain.CommentText) error
	DeleteComment(ctx context.Context, id domain.CommentId) error
}

type CommentValidator interface {
	Comment(content domain.CommentText) error
}

// CommentPolicy decides who may change an existing comment.
type CommentPolicy interface {
	CanEdit(user domain.User, o domain.CommentOwnership) bool
	CanDelete(user domain.User, o domain.CommentOwnership) bool
}

// OwnerPolicy lets authors edit their comments and lets both the comment
// author and the thread author delete them.
type OwnerPolicy struct{}

func (OwnerPolicy) CanEdit(user domain.User, o domain.CommentOwnership) bool {
	return user.Id == o.AuthorId
}

func (OwnerPolicy) CanDelete(user domain.User, o domain.CommentOwnership) bool {
	return user.Id == o.AuthorId || user.Id == o.ThreadOwnerId
}

func NewComment(storage CommentStorage, validator CommentValidator, policy CommentPolicy) CommentService {
	return &Comment{storage, validator, policy}
}

func (b *Comment) Create(ctx context.Context, creationData domain.CommentCreationData) (domain.CommentId, error) {
	creationData.Content = utils.SanitizeText(creationData.Content)
	if err := b.validator.Comment(creationData.Content); err != nil {
		return -1, err
	}

	return b.storage.CreateComment(ctx, creationData)
}

func (b *Comment) Edit(ctx context.Context, id domain.CommentId, user domain.User, content domain.CommentText) error {
	content = utils.SanitizeText(content)
	if err := b.validator.Comment(content); err != nil {
		return err
	}

	o, err := b.storage.GetCommentOwnership(ctx, id)
	if err != nil {
		return err
	}
	if !b.policy.CanEdit(user, o) {
		return internal_errors.Forbidden("Only the author can edit a comment")
	}
	return b.storage.EditComment(ctx, id, content)
}

func (b *Comment) Delete(ctx context.Context, id domain.CommentId, user domain.User) error {
	o, err := b.storage.GetCommentOwnership(ctx, id)
	if err != nil {
		return err
	}
	if !b.policy.CanDelete(user, o) {
		return internal_errors.Forbidden("Not allowed to delete this comment")
	}
	return b.storage.DeleteComment(ctx, id)
}
