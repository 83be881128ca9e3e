package controllers

import (
	"net/http"

	"dbvaultapi/pkg/logger"
	"dbvaultapi/services"
	"dbvaultapi/utils"

	"github.com/gin-gonic/gin"
)

var authSrv services.AuthService

// SetAuthService initializes the auth service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetAuthService(s services.AuthService) {
	authSrv = s
}

// RegisterRequest is the request body for user registration and login.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterUser registers a new user
// @Summary Register new user
// @Description Creates a new user account with a hashed password
// @Tags Users
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User registration data"
// @Success 201 {object} MessageResponse "User registered"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already exists"
// @Router /user/register [post]
func registerUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Registering user with email %s", req.Email)
	if err := authSrv.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, gin.H{"message": utils.UserRegisteredSuccessfully})
}

// LoginUser authenticates a user and issues an access token
// @Summary Login
// @Description Authenticates email and password and returns a bearer token
// @Tags Users
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User login credentials"
// @Success 200 {object} LoginResponse "Access token issued"
// @Failure 401 {object} ErrorResponse "Incorrect email or password"
// @Router /user/login [post]
func loginUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := authSrv.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"data": result})
}

// RegisterUserRoutes registers HTTP endpoints for user registration and login.
func RegisterUserRoutes(r *gin.Engine) {
	user := r.Group("/user")
	{
		user.POST("/register", registerUser)
		user.POST("/login", loginUser)
	}
}
