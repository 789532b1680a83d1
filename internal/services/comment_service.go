package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/kareemadel/topup-store/internal/dto"
	"github.com/kareemadel/topup-store/internal/models"
	"github.com/kareemadel/topup-store/internal/storage"
)

var ErrCommentRejected = errors.New("comment rejected by content filter")

var bannedWords = []string{
	"spam", "scam", "scammer", "phishing",
	"fuck", "shit", "bitch", "asshole",
}

// CommentService owns the review moderation queue: publicly submitted
// comments start unapproved and become visible only after an admin approves
// them. Approval is one-way; the only way back is deletion.
type CommentService struct {
	store             storage.Storage
	bannedWordRegexps []*regexp.Regexp
	urlPattern        *regexp.Regexp
}

func NewCommentService(store storage.Storage) *CommentService {
	s := &CommentService{
		store:      store,
		urlPattern: regexp.MustCompile(`(?i)(https?://\S+|www\.\S+\.\S+)`),
	}
	for _, word := range bannedWords {
		s.bannedWordRegexps = append(s.bannedWordRegexps,
			regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(word)+`\b`))
	}
	return s
}

func (s *CommentService) Approved() ([]models.Comment, error) {
	return s.store.GetApprovedComments()
}

func (s *CommentService) All() ([]models.Comment, error) {
	return s.store.GetAllComments()
}

// Create inserts a new pending comment. Link drops and obvious junk are
// rejected up front instead of clogging the moderation queue.
func (s *CommentService) Create(req *dto.CreateCommentRequest) (*models.Comment, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.New("rating out of range")
	}
	if !s.acceptable(req.Name) || !s.acceptable(req.Comment) {
		return nil, ErrCommentRejected
	}

	comment := models.Comment{
		Name:    strings.TrimSpace(req.Name),
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	}
	if err := s.store.CreateComment(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) Approve(id uint) (*models.Comment, error) {
	return s.store.ApproveComment(id)
}

func (s *CommentService) Delete(id uint) error {
	deleted, err := s.store.DeleteComment(id)
	if err != nil {
		return err
	}
	if !deleted {
		return storage.ErrNotFound
	}
	return nil
}

func (s *CommentService) acceptable(text string) bool {
	if s.urlPattern.MatchString(text) {
		return false
	}
	for _, re := range s.bannedWordRegexps {
		if re.MatchString(text) {
			return false
		}
	}
	return true
}
