package services

import (
	"testing"

	"github.com/kareemadel/topup-store/internal/dto"
	"github.com/kareemadel/topup-store/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentServiceCreate(t *testing.T) {
	t.Run("new comments start pending", func(t *testing.T) {
		svc := NewCommentService(storage.NewMemory())
		comment, err := svc.Create(&dto.CreateCommentRequest{Name: "Omar", Rating: 5, Comment: "fast delivery"})
		require.NoError(t, err)
		assert.False(t, comment.IsApproved)

		approved, err := svc.Approved()
		require.NoError(t, err)
		assert.Empty(t, approved)
	})

	t.Run("rating bounds enforced", func(t *testing.T) {
		svc := NewCommentService(storage.NewMemory())
		for _, rating := range []int{0, 6, -1} {
			_, err := svc.Create(&dto.CreateCommentRequest{Name: "Omar", Rating: rating, Comment: "x"})
			assert.Error(t, err, "rating %d", rating)
		}
	})

	t.Run("links and junk are rejected", func(t *testing.T) {
		svc := NewCommentService(storage.NewMemory())
		_, err := svc.Create(&dto.CreateCommentRequest{Name: "Omar", Rating: 5, Comment: "visit https://spam.example now"})
		assert.ErrorIs(t, err, ErrCommentRejected)

		_, err = svc.Create(&dto.CreateCommentRequest{Name: "scammer", Rating: 5, Comment: "fine text"})
		assert.ErrorIs(t, err, ErrCommentRejected)
	})
}

func TestCommentServiceModeration(t *testing.T) {
	t.Run("approval makes a comment public and is one-way", func(t *testing.T) {
		svc := NewCommentService(storage.NewMemory())
		comment, err := svc.Create(&dto.CreateCommentRequest{Name: "Omar", Rating: 5, Comment: "fast delivery"})
		require.NoError(t, err)

		approved, err := svc.Approve(comment.ID)
		require.NoError(t, err)
		assert.True(t, approved.IsApproved)

		// Approving again is a no-op, not an error.
		again, err := svc.Approve(comment.ID)
		require.NoError(t, err)
		assert.True(t, again.IsApproved)

		public, err := svc.Approved()
		require.NoError(t, err)
		assert.Len(t, public, 1)
	})

	t.Run("delete works regardless of approval state", func(t *testing.T) {
		svc := NewCommentService(storage.NewMemory())
		pending, err := svc.Create(&dto.CreateCommentRequest{Name: "A", Rating: 3, Comment: "meh"})
		require.NoError(t, err)
		require.NoError(t, svc.Delete(pending.ID))

		assert.ErrorIs(t, svc.Delete(pending.ID), storage.ErrNotFound)
	})
}
