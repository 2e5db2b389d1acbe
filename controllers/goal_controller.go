// controllers/goal_controller.go
package controllers

import (
	"net/http"

	"github.com/vidheexx/Nutrimate/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Accounts *services.AccountService
	Meals    *services.MealService
}

type SetGoalInput struct {
	Calories int     `json:"calories" binding:"required"`
	Protein  float64 `json:"protein" binding:"required"`
	Carbs    float64 `json:"carbs" binding:"required"`
	Fats     float64 `json:"fats" binding:"required"`
}

func (ctl *GoalController) SetGoal(c *gin.Context) {
	email := c.MustGet("email").(string)

	var input SetGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := ctl.Accounts.SetGoal(email, input.Calories, input.Protein, input.Carbs, input.Fats)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := ctl.Accounts.FindUserByEmail(email)
	if err != nil {
		respondError(c, err)
		return
	}
	totals, err := ctl.Meals.TodayTotals(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "goal": goal, "today": totals})
}

func (ctl *GoalController) GetGoal(c *gin.Context) {
	email := c.MustGet("email").(string)

	goal, err := ctl.Accounts.GetGoal(email)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := ctl.Accounts.FindUserByEmail(email)
	if err != nil {
		respondError(c, err)
		return
	}
	totals, err := ctl.Meals.TodayTotals(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"ok": true, "goal": goal, "today": totals}
	if calib, err := ctl.Accounts.Calibration(email); err == nil && calib != nil {
		resp["calibration"] = calib
	}

	c.JSON(http.StatusOK, resp)
}

type CalibrateInput struct {
	Small  float64 `json:"small" binding:"required,gt=0"`
	Medium float64 `json:"medium" binding:"required,gt=0"`
	Large  float64 `json:"large" binding:"required,gt=0"`
}

func (ctl *GoalController) Calibrate(c *gin.Context) {
	email := c.MustGet("email").(string)

	var input CalibrateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	calib, err := ctl.Accounts.SetCalibration(email, input.Small, input.Medium, input.Large)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "calibration": calib})
}
