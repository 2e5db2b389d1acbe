package controllers

import (
	"net/http"

	"github.com/vidheexx/Nutrimate/services"
	"github.com/vidheexx/Nutrimate/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Accounts *services.AccountService
	Meals    *services.MealService
}

type RegisterInput struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required"`
	BowlSize     string  `json:"bowl_size"`
	TargetWeight float64 `json:"target_weight"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ctl.Accounts.Register(input.Name, input.Email, input.Password, input.BowlSize, input.TargetWeight)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "msg": "registered"})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.Accounts.Authenticate(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	goal, err := ctl.Accounts.GetGoal(user.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	totals, err := ctl.Meals.TodayTotals(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{
		"ok":    true,
		"token": token,
		"email": user.Email,
		"name":  user.Name,
		"goal":  goal,
		"today": totals,
	}
	if calib, err := ctl.Accounts.Calibration(user.Email); err == nil && calib != nil {
		resp["calibration"] = calib
	}

	c.JSON(http.StatusOK, resp)
}
