package store

import (
	"errors"

	"gorm.io/gorm"

	"dia/internal/models"
)

// gormStore is the persistent Store backed by GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by the given GORM database.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *gormStore) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *gormStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *gormStore) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *gormStore) CreateToken(token *models.AuthToken) error {
	return s.db.Create(token).Error
}

func (s *gormStore) GetToken(token string) (*models.AuthToken, error) {
	var t models.AuthToken
	if err := s.db.First(&t, "token = ?", token).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (s *gormStore) CreatePortfolio(p *models.Portfolio) error {
	return s.db.Create(p).Error
}

func (s *gormStore) GetPortfolio(userID string) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := s.db.First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *gormStore) SavePortfolio(p *models.Portfolio) error {
	return s.db.Save(p).Error
}

func (s *gormStore) ListPortfolios() ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	if err := s.db.Find(&portfolios).Error; err != nil {
		return nil, err
	}
	return portfolios, nil
}

func (s *gormStore) AppendTransaction(t *models.Transaction) error {
	return s.db.Create(t).Error
}

func (s *gormStore) ListTransactions(userID string, limit, offset int) ([]models.Transaction, int64, error) {
	var total int64
	if err := s.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Limit(limit).Offset(offset).
		Find(&transactions).Error; err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

func (s *gormStore) Transact(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
