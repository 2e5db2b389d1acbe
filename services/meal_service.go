package services

import (
	"time"

	"github.com/vidheexx/Nutrimate/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// MacroTotals is an elementwise sum over meal records.
type MacroTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// TodayDate is the current UTC calendar day. Meal dates are always stamped
// in UTC so "today" does not drift with the server's timezone.
func TodayDate() string {
	return time.Now().UTC().Format("2006-01-02")
}

func (s *MealService) LogMeal(user *models.User, name string, macros MacroEstimate, photoURL string) (*models.Meal, error) {
	if name == "" {
		name = "Meal"
	}

	now := time.Now().UTC()
	meal := models.Meal{
		MealID:   uuid.NewString(),
		UserID:   user.ID,
		Email:    user.Email,
		Name:     name,
		Calories: macros.Calories,
		Protein:  macros.Protein,
		Carbs:    macros.Carbs,
		Fats:     macros.Fats,
		Date:     now.Format("2006-01-02"),
		PhotoURL: photoURL,
		Created:  now,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) MealsForDate(userID uint, date string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("created desc").
		Find(&meals).Error
	return meals, err
}

// TodayTotals sums macros across today's records; zeros when there are none.
func (s *MealService) TodayTotals(userID uint) (MacroTotals, error) {
	meals, err := s.MealsForDate(userID, TodayDate())
	if err != nil {
		return MacroTotals{}, err
	}

	var total MacroTotals
	for _, m := range meals {
		total.Calories += m.Calories
		total.Protein += m.Protein
		total.Carbs += m.Carbs
		total.Fats += m.Fats
	}
	return total, nil
}

// History returns every meal the account ever logged, newest first.
func (s *MealService) History(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", userID).
		Order("created desc").
		Find(&meals).Error
	return meals, err
}
