package services

import (
	"errors"
	"strings"

	"github.com/vidheexx/Nutrimate/models"
	"github.com/vidheexx/Nutrimate/utils"

	"gorm.io/gorm"
)

// Default goal every account starts with.
const (
	DefaultGoalCalories = 2000
	DefaultGoalProtein  = 100.0
	DefaultGoalCarbs    = 250.0
	DefaultGoalFats     = 70.0
)

const minPasswordLen = 4

type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// NormalizeEmail lowercases and trims; the normalized form is the account key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func defaultGoal(userID uint) models.DailyGoal {
	return models.DailyGoal{
		UserID:   userID,
		Calories: DefaultGoalCalories,
		Protein:  DefaultGoalProtein,
		Carbs:    DefaultGoalCarbs,
		Fats:     DefaultGoalFats,
	}
}

func (s *AccountService) Register(name, email, password, bowlSize string, targetWeight float64) error {
	email = NormalizeEmail(email)
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:        email,
		Password:     hashed,
		Name:         name,
		BowlSize:     bowlSize,
		TargetWeight: targetWeight,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return err
	}

	goal := defaultGoal(user.ID)
	return s.db.Create(&goal).Error
}

func (s *AccountService) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "email = ?", NormalizeEmail(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AccountService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.FindUserByEmail(email)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AccountService) GetGoal(email string) (*models.DailyGoal, error) {
	user, err := s.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	var goal models.DailyGoal
	err = s.db.Where("user_id = ?", user.ID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = defaultGoal(user.ID)
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// SetGoal fully replaces the stored goal, never a partial merge. A goal with
// any non-positive component is rejected and the stored goal is untouched.
func (s *AccountService) SetGoal(email string, calories int, protein, carbs, fats float64) (*models.DailyGoal, error) {
	if calories <= 0 || protein <= 0 || carbs <= 0 || fats <= 0 {
		return nil, ErrInvalidGoal
	}

	user, err := s.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	var goal models.DailyGoal
	err = s.db.Where("user_id = ?", user.ID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{UserID: user.ID, Calories: calories, Protein: protein, Carbs: carbs, Fats: fats}
		if err := s.db.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fats = fats
	if err := s.db.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *AccountService) SetCalibration(email string, small, medium, large float64) (*models.BowlCalibration, error) {
	user, err := s.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	var calib models.BowlCalibration
	err = s.db.Where("user_id = ?", user.ID).First(&calib).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		calib = models.BowlCalibration{UserID: user.ID, Small: small, Medium: medium, Large: large}
		if err := s.db.Create(&calib).Error; err != nil {
			return nil, err
		}
		return &calib, nil
	}
	if err != nil {
		return nil, err
	}

	calib.Small = small
	calib.Medium = medium
	calib.Large = large
	if err := s.db.Save(&calib).Error; err != nil {
		return nil, err
	}
	return &calib, nil
}

// Calibration returns nil without error when the account never calibrated.
func (s *AccountService) Calibration(email string) (*models.BowlCalibration, error) {
	user, err := s.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	var calib models.BowlCalibration
	err = s.db.Where("user_id = ?", user.ID).First(&calib).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &calib, nil
}

func (s *AccountService) Profile(email string) (map[string]interface{}, error) {
	user, err := s.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"email":         user.Email,
		"name":          user.Name,
		"bowl_size":     user.BowlSize,
		"target_weight": user.TargetWeight,
		"created":       user.CreatedAt,
	}, nil
}

func (s *AccountService) UpdateProfile(email, name, bowlSize string, targetWeight float64) error {
	user, err := s.FindUserByEmail(email)
	if err != nil {
		return err
	}

	if name != "" {
		user.Name = name
	}
	if bowlSize != "" {
		user.BowlSize = bowlSize
	}
	if targetWeight > 0 {
		user.TargetWeight = targetWeight
	}

	return s.db.Save(user).Error
}
