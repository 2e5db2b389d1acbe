package controllers

import (
	"net/http"

	"github.com/vidheexx/Nutrimate/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Accounts *services.AccountService
}

type ProfileInput struct {
	Name         string  `json:"name"`
	BowlSize     string  `json:"bowl_size"`
	TargetWeight float64 `json:"target_weight"`
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	email := c.MustGet("email").(string)

	profile, err := ctl.Accounts.Profile(email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	email := c.MustGet("email").(string)

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ctl.Accounts.UpdateProfile(email, input.Name, input.BowlSize, input.TargetWeight)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "msg": "profile updated"})
}
