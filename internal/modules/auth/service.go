package auth

import (
	"errors"
	"time"

	"github.com/roar-media/core/internal/models"
	"github.com/roar-media/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 7 * 24 * time.Hour

var (
	errWrongCredentials = errors.New("invalid email or password")
	errEmailTaken       = errors.New("email already registered")
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Login verifies credentials and issues a role-carrying JWT. Failed
// attempts are slowed down to blunt brute forcing.
func (s *Service) Login(email, password, ip string) (string, *models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			time.Sleep(3 * time.Second)
			return "", nil, errWrongCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		time.Sleep(3 * time.Second)
		return "", nil, errWrongCredentials
	}

	now := time.Now()
	s.db.Model(&u).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	})

	token, err := jwt.Sign(u.ID, string(u.Role), tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &u, nil
}

// Signup registers a new member. New accounts start as readers; roles are
// granted out of band.
func (s *Service) Signup(dto *SignupDTO) (*models.UserModel, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("email = ?", dto.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := dto.Name
	if name == "" {
		name = dto.Email
	}
	u := models.UserModel{Name: name, Email: dto.Email, Password: string(hash), Role: models.RoleReader}
	return &u, s.db.Create(&u).Error
}

// GetByID loads a user, nil when missing.
func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
