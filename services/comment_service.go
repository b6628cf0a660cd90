package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/diegoperpetuo/perpetual-backend/apperrors"
	"github.com/diegoperpetuo/perpetual-backend/models"
)

const maxCommentLength = 500

// CommentService handles user-authored comments on external titles. Reads are
// public; create, update and delete require the caller to be the author,
// checked by fetching the record and comparing ids.
type CommentService struct {
	comments CommentStore
	users    UserStore
}

func NewCommentService(comments CommentStore, users UserStore) *CommentService {
	return &CommentService{comments: comments, users: users}
}

func (s *CommentService) GetByMedia(ctx context.Context, tmdbID int64, mediaType string) ([]models.Comment, error) {
	comments, err := s.comments.FindByMedia(ctx, tmdbID, mediaType)
	if err != nil {
		return nil, apperrors.Infrastructure("listing comments", err)
	}
	return comments, nil
}

func (s *CommentService) GetByUser(ctx context.Context, userID string) ([]models.Comment, error) {
	authorID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Validation("invalid user id")
	}
	comments, err := s.comments.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, apperrors.Infrastructure("listing user comments", err)
	}
	return comments, nil
}

func (s *CommentService) Create(ctx context.Context, userID primitive.ObjectID, req *models.CreateCommentRequest) (*models.Comment, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Infrastructure("looking up account", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	if req.TmdbID == nil || req.MediaType == "" {
		return nil, apperrors.Validation("tmdbId and mediaType are required")
	}
	if req.MediaType != "movie" && req.MediaType != "tv" {
		return nil, apperrors.Validation(`mediaType must be "movie" or "tv"`)
	}
	text, err := validateCommentText(req.Text)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:    userID,
		Username:  user.Name,
		TmdbID:    *req.TmdbID,
		MediaType: req.MediaType,
		Text:      text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.Infrastructure("creating comment", err)
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, commentID string, userID primitive.ObjectID, req *models.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.fetchOwned(ctx, commentID, userID, "edit")
	if err != nil {
		return nil, err
	}

	text, err := validateCommentText(req.Text)
	if err != nil {
		return nil, err
	}

	updated, err := s.comments.UpdateText(ctx, comment.ID, text)
	if err != nil {
		return nil, apperrors.Infrastructure("updating comment", err)
	}
	if updated == nil {
		return nil, apperrors.NotFound("comment not found")
	}
	return updated, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID string, userID primitive.ObjectID) error {
	comment, err := s.fetchOwned(ctx, commentID, userID, "delete")
	if err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		return apperrors.Infrastructure("deleting comment", err)
	}
	return nil
}

// fetchOwned loads a comment and verifies the caller authored it. A foreign
// comment yields a permission failure, distinct from not-found.
func (s *CommentService) fetchOwned(ctx context.Context, commentID string, userID primitive.ObjectID, action string) (*models.Comment, error) {
	id, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, apperrors.NotFound("comment not found")
	}
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Infrastructure("looking up comment", err)
	}
	if comment == nil {
		return nil, apperrors.NotFound("comment not found")
	}
	if comment.UserID != userID {
		return nil, apperrors.Permission("you do not have permission to " + action + " this comment")
	}
	return comment, nil
}

func validateCommentText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", apperrors.Validation("comment text is required")
	}
	if len([]rune(trimmed)) > maxCommentLength {
		return "", apperrors.Validation("comment must be at most 500 characters")
	}
	return trimmed, nil
}
