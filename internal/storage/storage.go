package storage

import (
	"errors"

	"github.com/kareemadel/topup-store/internal/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateSlug = errors.New("slug already in use")
)

// Storage is the sole point of contact with the persistent store. Handlers
// and services never build queries themselves, so the engine behind this
// interface (Postgres, in-memory, anything else) can be swapped without
// touching HTTP logic.
type Storage interface {
	// Users
	GetUserByEmail(email string) (*models.User, error)
	GetUser(id uint) (*models.User, error)
	CreateUser(user *models.User) error

	// Games
	GetGames() ([]models.Game, error)    // active only, name asc
	GetAllGames() ([]models.Game, error) // admin: includes inactive
	GetGame(id uint) (*models.Game, error)
	GetGameBySlug(slug string) (*models.Game, error)
	GetGameWithCards(slug string) (*models.GameWithCards, error)
	CreateGame(game *models.Game) error
	UpdateGame(id uint, fields map[string]interface{}) (*models.Game, error)
	DeleteGame(id uint) (bool, error)

	// Game cards
	GetGameCards(gameID uint) ([]models.GameCard, error)    // active only, price asc
	GetAllGameCards(gameID uint) ([]models.GameCard, error) // admin
	CountGameCards(gameID uint) (int64, error)
	CreateGameCard(card *models.GameCard) error
	UpdateGameCard(id uint, fields map[string]interface{}) (*models.GameCard, error)
	DeleteGameCard(id uint) (bool, error)

	// Comments
	GetApprovedComments() ([]models.Comment, error) // newest first
	GetAllComments() ([]models.Comment, error)      // admin, newest first
	CreateComment(comment *models.Comment) error
	ApproveComment(id uint) (*models.Comment, error)
	DeleteComment(id uint) (bool, error)
}
