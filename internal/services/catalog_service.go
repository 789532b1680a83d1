package services

import (
	"errors"
	"strings"

	"github.com/gosimple/slug"
	"github.com/kareemadel/topup-store/internal/dto"
	"github.com/kareemadel/topup-store/internal/models"
	"github.com/kareemadel/topup-store/internal/storage"
)

var ErrGameHasCards = errors.New("game still has cards")

// CatalogService owns games and their card denominations.
type CatalogService struct {
	store storage.Storage
}

func NewCatalogService(store storage.Storage) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ActiveGames() ([]models.Game, error) {
	return s.store.GetGames()
}

func (s *CatalogService) AllGames() ([]models.Game, error) {
	return s.store.GetAllGames()
}

func (s *CatalogService) GameWithCards(gameSlug string) (*models.GameWithCards, error) {
	return s.store.GetGameWithCards(gameSlug)
}

// CreateGame normalizes the slug (deriving one from the name when omitted)
// before insert. Duplicate slugs surface as storage.ErrDuplicateSlug.
func (s *CatalogService) CreateGame(req *dto.CreateGameRequest) (*models.Game, error) {
	gameSlug := strings.TrimSpace(req.Slug)
	if gameSlug == "" {
		gameSlug = req.Name
	}
	gameSlug = slug.Make(gameSlug)

	game := models.Game{
		Name:        strings.TrimSpace(req.Name),
		Slug:        gameSlug,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		game.IsActive = *req.IsActive
	}
	if err := s.store.CreateGame(&game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *CatalogService) UpdateGame(id uint, req *dto.UpdateGameRequest) (*models.Game, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		fields["slug"] = slug.Make(*req.Slug)
	}
	if req.Description != nil {
		fields["description"] = req.Description
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	return s.store.UpdateGame(id, fields)
}

// DeleteGame refuses to remove a game while cards still reference it; the
// admin has to delete the denominations first.
func (s *CatalogService) DeleteGame(id uint) error {
	count, err := s.store.CountGameCards(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrGameHasCards
	}
	deleted, err := s.store.DeleteGame(id)
	if err != nil {
		return err
	}
	if !deleted {
		return storage.ErrNotFound
	}
	return nil
}

func (s *CatalogService) GameCards(gameID uint) ([]models.GameCard, error) {
	if _, err := s.store.GetGame(gameID); err != nil {
		return nil, err
	}
	return s.store.GetAllGameCards(gameID)
}

// CreateCard checks the parent game exists so a card can never reference a
// missing game.
func (s *CatalogService) CreateCard(gameID uint, req *dto.CreateCardRequest) (*models.GameCard, error) {
	if _, err := s.store.GetGame(gameID); err != nil {
		return nil, err
	}

	card := models.GameCard{
		GameID:   gameID,
		Points:   strings.TrimSpace(req.Points),
		Bonus:    req.Bonus,
		Price:    req.Price,
		IsActive: true,
	}
	if req.IsActive != nil {
		card.IsActive = *req.IsActive
	}
	if err := s.store.CreateGameCard(&card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *CatalogService) UpdateCard(id uint, req *dto.UpdateCardRequest) (*models.GameCard, error) {
	fields := map[string]interface{}{}
	if req.Points != nil {
		fields["points"] = strings.TrimSpace(*req.Points)
	}
	if req.Bonus != nil {
		fields["bonus"] = req.Bonus
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	return s.store.UpdateGameCard(id, fields)
}

func (s *CatalogService) DeleteCard(id uint) error {
	deleted, err := s.store.DeleteGameCard(id)
	if err != nil {
		return err
	}
	if !deleted {
		return storage.ErrNotFound
	}
	return nil
}
