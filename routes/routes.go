package routes

import (
    "net/http"

    "github.com/vidheexx/Nutrimate/controllers"
    "github.com/vidheexx/Nutrimate/middlewares"
    "github.com/vidheexx/Nutrimate/services"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"
    "gorm.io/gorm"
)

type Deps struct {
    DB     *gorm.DB
    Logger *zap.Logger
}

func SetupRouter(deps Deps) *gin.Engine {
    r := gin.New()
    r.Use(gin.Recovery())
    if deps.Logger != nil {
        r.Use(middlewares.RequestLogger(deps.Logger))
    }

    accounts := services.NewAccountService(deps.DB)
    meals := services.NewMealService(deps.DB)

    auth := &controllers.AuthController{Accounts: accounts, Meals: meals}
    goals := &controllers.GoalController{Accounts: accounts, Meals: meals}
    ledger := &controllers.MealController{Accounts: accounts, Meals: meals, Logger: deps.Logger}
    users := &controllers.UserController{Accounts: accounts}

    r.GET("/healthz", func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"status": "ok"})
    })

    // Public auth routes
    r.POST("/register", auth.Register)
    r.POST("/login", auth.Login)

    // Everything else requires a bearer token
    protected := r.Group("/")
    protected.Use(middlewares.AuthMiddleware())
    {
        protected.POST("/set-goal", goals.SetGoal)
        protected.GET("/get-goal", goals.GetGoal)
        protected.POST("/calibrate", goals.Calibrate)

        protected.POST("/analyze", ledger.Analyze)
        protected.POST("/add-meal", ledger.AddMeal)
        protected.GET("/today", ledger.Today)
        protected.GET("/history", ledger.History)

        user := protected.Group("/user")
        {
            user.GET("/profile", users.GetProfile)
            user.PUT("/profile", users.UpdateProfile)
        }
    }

    return r
}
