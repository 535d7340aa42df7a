package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// starterCategory is one entry of the catalog seeded for every new account.
type starterCategory struct {
	Name string
	Type models.CategoryType
}

// starterCategories is the fixed catalog attached to each new user at
// registration: 4 income and 12 expense categories.
var starterCategories = []starterCategory{
	{"Salary", models.CategoryTypeIncome},
	{"Bonus", models.CategoryTypeIncome},
	{"Freelance", models.CategoryTypeIncome},
	{"Other Income", models.CategoryTypeIncome},
	{"Groceries", models.CategoryTypeExpense},
	{"Rent", models.CategoryTypeExpense},
	{"Utilities", models.CategoryTypeExpense},
	{"Transportation", models.CategoryTypeExpense},
	{"Entertainment", models.CategoryTypeExpense},
	{"Dining Out", models.CategoryTypeExpense},
	{"Shopping", models.CategoryTypeExpense},
	{"Healthcare", models.CategoryTypeExpense},
	{"Subscriptions", models.CategoryTypeExpense},
	{"Education", models.CategoryTypeExpense},
	{"Travel", models.CategoryTypeExpense},
	{"Insurance", models.CategoryTypeExpense},
}

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// Register creates a new user account and seeds the starter-category
// catalog for it. The user row and its categories are created in one
// database transaction so an account never exists without its categories.
func (s *userService) Register(username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username, email, and password are required")
	}

	// Uniqueness checks are case-insensitive.
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateUsername
	}

	if err := s.db.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Username: username,
		Email:    strings.ToLower(email),
		Password: string(hashedPassword),
		IsActive: true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		categories := make([]models.Category, 0, len(starterCategories))
		for _, sc := range starterCategories {
			categories = append(categories, models.Category{
				UserID: user.ID,
				Name:   sc.Name,
				Type:   sc.Type,
			})
		}
		if err := tx.Create(&categories).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByUsername retrieves an active user by username
func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ? AND is_active = ?", username, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}
