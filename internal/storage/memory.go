package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/kareemadel/topup-store/internal/models"
)

// Memory is a mutex-guarded in-memory Storage implementation. It backs the
// handler and service tests and doubles as a stand-in engine for local
// development without Postgres.
type Memory struct {
	mu       sync.RWMutex
	users    map[uint]models.User
	games    map[uint]models.Game
	cards    map[uint]models.GameCard
	comments map[uint]models.Comment

	nextUserID    uint
	nextGameID    uint
	nextCardID    uint
	nextCommentID uint
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[uint]models.User),
		games:    make(map[uint]models.Game),
		cards:    make(map[uint]models.GameCard),
		comments: make(map[uint]models.Comment),
	}
}

// Users

func (s *Memory) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) GetUser(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, ErrNotFound
}

func (s *Memory) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUserID++
	user.ID = s.nextUserID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = *user
	return nil
}

// Games

func (s *Memory) GetGames() ([]models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := []models.Game{}
	for _, g := range s.games {
		if g.IsActive {
			games = append(games, g)
		}
	}
	sortGamesByName(games)
	return games, nil
}

func (s *Memory) GetAllGames() ([]models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]models.Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, g)
	}
	sortGamesByName(games)
	return games, nil
}

func (s *Memory) GetGame(id uint) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if g, ok := s.games[id]; ok {
		return &g, nil
	}
	return nil, ErrNotFound
}

func (s *Memory) GetGameBySlug(slug string) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.games {
		if g.Slug == slug {
			game := g
			return &game, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) GetGameWithCards(slug string) (*models.GameWithCards, error) {
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

func (s *Memory) CreateGame(game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.games {
		if g.Slug == game.Slug {
			return ErrDuplicateSlug
		}
	}
	s.nextGameID++
	game.ID = s.nextGameID
	if game.CreatedAt.IsZero() {
		game.CreatedAt = time.Now()
	}
	s.games[game.ID] = *game
	return nil
}

func (s *Memory) UpdateGame(id uint, fields map[string]interface{}) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	if slug, ok := fields["slug"].(string); ok && slug != game.Slug {
		for _, g := range s.games {
			if g.ID != id && g.Slug == slug {
				return nil, ErrDuplicateSlug
			}
		}
	}
	for key, val := range fields {
		switch key {
		case "name":
			game.Name = val.(string)
		case "slug":
			game.Slug = val.(string)
		case "description":
			desc := val.(*string)
			game.Description = desc
		case "is_active":
			game.IsActive = val.(bool)
		}
	}
	s.games[id] = game
	return &game, nil
}

func (s *Memory) DeleteGame(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return false, nil
	}
	delete(s.games, id)
	return true, nil
}

// Game cards

func (s *Memory) GetGameCards(gameID uint) ([]models.GameCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cards := []models.GameCard{}
	for _, c := range s.cards {
		if c.GameID == gameID && c.IsActive {
			cards = append(cards, c)
		}
	}
	sortCardsByPrice(cards)
	return cards, nil
}

func (s *Memory) GetAllGameCards(gameID uint) ([]models.GameCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cards := []models.GameCard{}
	for _, c := range s.cards {
		if c.GameID == gameID {
			cards = append(cards, c)
		}
	}
	sortCardsByPrice(cards)
	return cards, nil
}

func (s *Memory) CountGameCards(gameID uint) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for _, c := range s.cards {
		if c.GameID == gameID {
			count++
		}
	}
	return count, nil
}

func (s *Memory) CreateGameCard(card *models.GameCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCardID++
	card.ID = s.nextCardID
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now()
	}
	s.cards[card.ID] = *card
	return nil
}

func (s *Memory) UpdateGameCard(id uint, fields map[string]interface{}) (*models.GameCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	card, ok := s.cards[id]
	if !ok {
		return nil, ErrNotFound
	}
	for key, val := range fields {
		switch key {
		case "points":
			card.Points = val.(string)
		case "bonus":
			card.Bonus = val.(*string)
		case "price":
			card.Price = val.(int)
		case "is_active":
			card.IsActive = val.(bool)
		}
	}
	s.cards[id] = card
	return &card, nil
}

func (s *Memory) DeleteGameCard(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cards[id]; !ok {
		return false, nil
	}
	delete(s.cards, id)
	return true, nil
}

// Comments

func (s *Memory) GetApprovedComments() ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comments := []models.Comment{}
	for _, c := range s.comments {
		if c.IsApproved {
			comments = append(comments, c)
		}
	}
	sortCommentsNewestFirst(comments)
	return comments, nil
}

func (s *Memory) GetAllComments() ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comments := make([]models.Comment, 0, len(s.comments))
	for _, c := range s.comments {
		comments = append(comments, c)
	}
	sortCommentsNewestFirst(comments)
	return comments, nil
}

func (s *Memory) CreateComment(comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCommentID++
	comment.ID = s.nextCommentID
	comment.IsApproved = false
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	s.comments[comment.ID] = *comment
	return nil
}

func (s *Memory) ApproveComment(id uint) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment, ok := s.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	comment.IsApproved = true
	s.comments[id] = comment
	return &comment, nil
}

func (s *Memory) DeleteComment(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return false, nil
	}
	delete(s.comments, id)
	return true, nil
}

func sortGamesByName(games []models.Game) {
	sort.Slice(games, func(i, j int) bool { return games[i].Name < games[j].Name })
}

func sortCardsByPrice(cards []models.GameCard) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Price != cards[j].Price {
			return cards[i].Price < cards[j].Price
		}
		return cards[i].ID < cards[j].ID
	})
}

func sortCommentsNewestFirst(comments []models.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}
		return comments[i].ID > comments[j].ID
	})
}
