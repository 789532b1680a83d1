package storage

import (
	"errors"
	"fmt"

	"github.com/kareemadel/topup-store/internal/models"
	"gorm.io/gorm"
)

// DB is the GORM-backed Storage implementation.
type DB struct {
	db *gorm.DB
}

func NewDB(db *gorm.DB) *DB {
	return &DB{db: db}
}

// Users

func (s *DB) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *DB) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *DB) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Games

func (s *DB) GetGames() ([]models.Game, error) {
	games := []models.Game{}
	err := s.db.Where("is_active = ?", true).Order("name ASC").Find(&games).Error
	return games, err
}

func (s *DB) GetAllGames() ([]models.Game, error) {
	games := []models.Game{}
	err := s.db.Order("name ASC").Find(&games).Error
	return games, err
}

func (s *DB) GetGame(id uint) (*models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (s *DB) GetGameBySlug(slug string) (*models.Game, error) {
	var game models.Game
	if err := s.db.Where("slug = ?", slug).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (s *DB) GetGameWithCards(slug string) (*models.GameWithCards, error) {
	game, err := s.GetGameBySlug(slug)
	if err != nil {
		return nil, err
	}
	cards, err := s.GetGameCards(game.ID)
	if err != nil {
		return nil, err
	}
	return &models.GameWithCards{Game: *game, Cards: cards}, nil
}

func (s *DB) CreateGame(game *models.Game) error {
	var existing models.Game
	if err := s.db.Where("slug = ?", game.Slug).First(&existing).Error; err == nil {
		return ErrDuplicateSlug
	}
	if err := s.db.Create(game).Error; err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

func (s *DB) UpdateGame(id uint, fields map[string]interface{}) (*models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if slug, ok := fields["slug"].(string); ok && slug != game.Slug {
		var existing models.Game
		if err := s.db.Where("slug = ? AND id <> ?", slug, id).First(&existing).Error; err == nil {
			return nil, ErrDuplicateSlug
		}
	}
	if len(fields) > 0 {
		if err := s.db.Model(&game).Updates(fields).Error; err != nil {
			return nil, fmt.Errorf("failed to update game: %w", err)
		}
		if err := s.db.First(&game, id).Error; err != nil {
			return nil, err
		}
	}
	return &game, nil
}

func (s *DB) DeleteGame(id uint) (bool, error) {
	result := s.db.Delete(&models.Game{}, id)
	return result.RowsAffected > 0, result.Error
}

// Game cards

func (s *DB) GetGameCards(gameID uint) ([]models.GameCard, error) {
	cards := []models.GameCard{}
	err := s.db.Where("game_id = ? AND is_active = ?", gameID, true).
		Order("price ASC").Find(&cards).Error
	return cards, err
}

func (s *DB) GetAllGameCards(gameID uint) ([]models.GameCard, error) {
	cards := []models.GameCard{}
	err := s.db.Where("game_id = ?", gameID).Order("price ASC").Find(&cards).Error
	return cards, err
}

func (s *DB) CountGameCards(gameID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.GameCard{}).Where("game_id = ?", gameID).Count(&count).Error
	return count, err
}

func (s *DB) CreateGameCard(card *models.GameCard) error {
	if err := s.db.Create(card).Error; err != nil {
		return fmt.Errorf("failed to create game card: %w", err)
	}
	return nil
}

func (s *DB) UpdateGameCard(id uint, fields map[string]interface{}) (*models.GameCard, error) {
	var card models.GameCard
	if err := s.db.First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(fields) > 0 {
		if err := s.db.Model(&card).Updates(fields).Error; err != nil {
			return nil, fmt.Errorf("failed to update game card: %w", err)
		}
		if err := s.db.First(&card, id).Error; err != nil {
			return nil, err
		}
	}
	return &card, nil
}

func (s *DB) DeleteGameCard(id uint) (bool, error) {
	result := s.db.Delete(&models.GameCard{}, id)
	return result.RowsAffected > 0, result.Error
}

// Comments

func (s *DB) GetApprovedComments() ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.db.Where("is_approved = ?", true).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (s *DB) GetAllComments() ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.db.Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (s *DB) CreateComment(comment *models.Comment) error {
	// New comments always enter the moderation queue unapproved.
	comment.IsApproved = false
	if err := s.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (s *DB) ApproveComment(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !comment.IsApproved {
		if err := s.db.Model(&comment).Update("is_approved", true).Error; err != nil {
			return nil, fmt.Errorf("failed to approve comment: %w", err)
		}
		comment.IsApproved = true
	}
	return &comment, nil
}

func (s *DB) DeleteComment(id uint) (bool, error) {
	result := s.db.Delete(&models.Comment{}, id)
	return result.RowsAffected > 0, result.Error
}
