package controllers

import (
	"net/http"

	"github.com/vidheexx/Nutrimate/services"
	"github.com/vidheexx/Nutrimate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MealController struct {
	Accounts *services.AccountService
	Meals    *services.MealService
	Logger   *zap.Logger
}

type AddMealInput struct {
	Name     string  `json:"name"`
	Calories int     `json:"calories" binding:"required"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

func (ctl *MealController) AddMeal(c *gin.Context) {
	email := c.MustGet("email").(string)

	var input AddMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.Accounts.FindUserByEmail(email)
	if err != nil {
		respondError(c, err)
		return
	}

	macros := services.MacroEstimate{
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fats:     input.Fats,
	}
	meal, err := ctl.Meals.LogMeal(user, input.Name, macros, "")
	if err != nil {
		respondError(c, err)
		return
	}

	totals, err := ctl.Meals.TodayTotals(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "msg": "meal logged", "meal": meal, "today": totals})
}

type AnalyzeInput struct {
	Name        string   `json:"name"`
	Calories    *int     `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fats        *float64 `json:"fats"`
	ImageBase64 string   `json:"image_base64"`
	BowlSize    string   `json:"bowl_size"`
	Portion     float64  `json:"portion"`
}

// Analyze estimates macros with a placeholder policy and logs the result
// through the same append path as AddMeal.
func (ctl *MealController) Analyze(c *gin.Context) {
	email := c.MustGet("email").(string)

	var input AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.Accounts.FindUserByEmail(email)
	if err != nil {
		respondError(c, err)
		return
	}

	calib, err := ctl.Accounts.Calibration(email)
	if err != nil {
		respondError(c, err)
		return
	}

	hints := services.MacroHints{
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fats:        input.Fats,
		ImageBase64: input.ImageBase64,
		BowlSize:    input.BowlSize,
		Portion:     input.Portion,
	}
	macros, err := services.SelectEstimator(hints).Estimate(hints, calib)
	if err != nil {
		respondError(c, err)
		return
	}

	// Photo storage is best effort; a failed upload never fails the request.
	var photoURL string
	if input.ImageBase64 != "" && utils.S3Enabled() {
		url, err := utils.UploadBase64Image(input.ImageBase64, user.Email)
		if err != nil && ctl.Logger != nil {
			ctl.Logger.Warn("photo upload failed", zap.Error(err))
		} else {
			photoURL = url
		}
	}

	meal, err := ctl.Meals.LogMeal(user, input.Name, macros, photoURL)
	if err != nil {
		respondError(c, err)
		return
	}

	totals, err := ctl.Meals.TodayTotals(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "meal": meal, "today": totals})
}

func (ctl *MealController) Today(c *gin.Context) {
	email := c.MustGet("email").(string)

	user, err := ctl.Accounts.FindUserByEmail(email)
	if err != nil {
		respondError(c, err)
		return
	}

	date := services.TodayDate()
	meals, err := ctl.Meals.MealsForDate(user.ID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	var totals services.MacroTotals
	for _, m := range meals {
		totals.Calories += m.Calories
		totals.Protein += m.Protein
		totals.Carbs += m.Carbs
		totals.Fats += m.Fats
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "date": date, "totals": totals, "meals": meals})
}

func (ctl *MealController) History(c *gin.Context) {
	email := c.MustGet("email").(string)

	user, err := ctl.Accounts.FindUserByEmail(email)
	if err != nil {
		respondError(c, err)
		return
	}

	meals, err := ctl.Meals.History(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "meals": meals})
}
