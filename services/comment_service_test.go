package services

import (
	"context"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/diegoperpetuo/perpetual-backend/apperrors"
	"github.com/diegoperpetuo/perpetual-backend/models"
)

func newCommentFixture(t *testing.T) (*CommentService, *fakeUserStore, primitive.ObjectID) {
	t.Helper()
	users := newFakeUserStore()
	svc := NewCommentService(newFakeCommentStore(), users)
	userID := seedUser(t, users)
	return svc, users, userID
}

func commentReq(tmdbID int64, mediaType, text string) *models.CreateCommentRequest {
	return &models.CreateCommentRequest{TmdbID: &tmdbID, MediaType: mediaType, Text: text}
}

func TestCommentCreateDenormalizesAuthor(t *testing.T) {
	svc, _, userID := newCommentFixture(t)

	comment, err := svc.Create(context.Background(), userID, commentReq(123, "movie", "  great movie  "))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if comment.Username != "Ann" {
		t.Errorf("username = %q, want the author's display name", comment.Username)
	}
	if comment.Text != "great movie" {
		t.Errorf("text = %q, want trimmed", comment.Text)
	}
	if comment.UserID != userID {
		t.Errorf("author id not set from caller")
	}
}

func TestCommentTextBounds(t *testing.T) {
	svc, _, userID := newCommentFixture(t)

	// Exactly 500 characters is accepted.
	if _, err := svc.Create(context.Background(), userID, commentReq(1, "movie", strings.Repeat("a", 500))); err != nil {
		t.Errorf("500 chars rejected: %v", err)
	}

	// 501 characters is a maximum-length validation failure.
	_, err := svc.Create(context.Background(), userID, commentReq(2, "movie", strings.Repeat("a", 501)))
	if apperrors.KindOf(err) != apperrors.KindValidation {
		t.Fatalf("kind = %v, want validation", apperrors.KindOf(err))
	}
	if got := apperrors.Public(err, ""); !strings.Contains(got, "at most 500") {
		t.Errorf("message = %q, want a maximum-length message", got)
	}

	// Whitespace-only text is a required-field failure.
	_, err = svc.Create(context.Background(), userID, commentReq(3, "movie", "   "))
	if got := apperrors.Public(err, ""); !strings.Contains(got, "required") {
		t.Errorf("message = %q, want a required message", got)
	}
}

func TestCommentCreateValidation(t *testing.T) {
	svc, _, userID := newCommentFixture(t)

	_, err := svc.Create(context.Background(), userID, &models.CreateCommentRequest{Text: "hello"})
	if apperrors.KindOf(err) != apperrors.KindValidation {
		t.Errorf("missing refs kind = %v, want validation", apperrors.KindOf(err))
	}

	_, err = svc.Create(context.Background(), userID, commentReq(1, "series", "hello"))
	if apperrors.KindOf(err) != apperrors.KindValidation {
		t.Errorf("bad media kind = %v, want validation", apperrors.KindOf(err))
	}
}

func TestCommentCreateUnknownUser(t *testing.T) {
	svc := NewCommentService(newFakeCommentStore(), newFakeUserStore())

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), commentReq(1, "movie", "hello"))
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("kind = %v, want not found", apperrors.KindOf(err))
	}
}

func TestCommentAuthorOnlyMutation(t *testing.T) {
	users := newFakeUserStore()
	comments := newFakeCommentStore()
	svc := NewCommentService(comments, users)
	author := seedUser(t, users)

	other := &models.User{Name: "Bob", Email: "bob@x.com", Password: "digest"}
	if err := users.Create(context.Background(), other); err != nil {
		t.Fatalf("seeding other user: %v", err)
	}

	comment, err := svc.Create(context.Background(), author, commentReq(1, "movie", "mine"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// A non-author gets a permission failure, distinct from not-found.
	_, err = svc.Update(context.Background(), comment.ID.Hex(), other.ID, &models.UpdateCommentRequest{Text: "stolen"})
	if apperrors.KindOf(err) != apperrors.KindPermission {
		t.Errorf("update as other: kind = %v, want permission", apperrors.KindOf(err))
	}
	if err := svc.Delete(context.Background(), comment.ID.Hex(), other.ID); apperrors.KindOf(err) != apperrors.KindPermission {
		t.Errorf("delete as other: kind = %v, want permission", apperrors.KindOf(err))
	}

	// A missing comment is not-found, not permission.
	_, err = svc.Update(context.Background(), primitive.NewObjectID().Hex(), author, &models.UpdateCommentRequest{Text: "x"})
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("update missing: kind = %v, want not found", apperrors.KindOf(err))
	}

	// The author can mutate and delete.
	updated, err := svc.Update(context.Background(), comment.ID.Hex(), author, &models.UpdateCommentRequest{Text: "edited"})
	if err != nil {
		t.Fatalf("update as author: %v", err)
	}
	if updated.Text != "edited" {
		t.Errorf("text = %q, want edited", updated.Text)
	}
	if err := svc.Delete(context.Background(), comment.ID.Hex(), author); err != nil {
		t.Fatalf("delete as author: %v", err)
	}
}

func TestCommentPublicReads(t *testing.T) {
	users := newFakeUserStore()
	svc := NewCommentService(newFakeCommentStore(), users)
	author := seedUser(t, users)

	if _, err := svc.Create(context.Background(), author, commentReq(123, "movie", "one")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), author, commentReq(123, "tv", "two")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byMedia, err := svc.GetByMedia(context.Background(), 123, "movie")
	if err != nil {
		t.Fatalf("GetByMedia: %v", err)
	}
	if len(byMedia) != 1 {
		t.Errorf("by media len = %d, want 1 (media kind must discriminate)", len(byMedia))
	}

	byUser, err := svc.GetByUser(context.Background(), author.Hex())
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("by user len = %d, want 2", len(byUser))
	}

	if _, err := svc.GetByUser(context.Background(), "nope"); apperrors.KindOf(err) != apperrors.KindValidation {
		t.Errorf("bad user id kind = %v, want validation", apperrors.KindOf(err))
	}
}
