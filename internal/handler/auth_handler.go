package handler

import (
	"log"
	"net/http"
	"strings"
	"time"

	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"
	"gamevault/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// region --- DTOs ---

// LoginInput defines the structure for user login.
type LoginInput struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	AccessToken  string    `json:"accessToken"`
	ExpiresAtUtc time.Time `json:"expiresAtUtc"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
}

// BootstrapAdminInput defines the structure for first-admin initialization.
type BootstrapAdminInput struct {
	SetupToken string `json:"setupToken" binding:"required"`
	Username   string `json:"username" binding:"required" example:"admin"`
	Password   string `json:"password" binding:"required" example:"password123"`
}

// BootstrapStatusResponse reports whether the bootstrap flow is open.
type BootstrapStatusResponse struct {
	HasAnyUser       bool `json:"hasAnyUser"`
	BootstrapEnabled bool `json:"bootstrapEnabled"`
}

// CreateUserInput defines the structure for admin user creation.
type CreateUserInput struct {
	Username string `json:"username" binding:"required" example:"guest"`
	Password string `json:"password" binding:"required" example:"password123"`
	Role     string `json:"role" example:"user"`
}

// CurrentUserResponse describes the authenticated caller.
type CurrentUserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// endregion

// region --- Handlers ---

// BootstrapStatus godoc
// @Summary      Check bootstrap availability
// @Description  Reports whether any user exists and whether first-admin bootstrap is currently possible.
// @Tags         auth
// @Produce      json
// @Success      200 {object} BootstrapStatusResponse
// @Router       /auth/bootstrap-status [get]
func BootstrapStatus(c *gin.Context) {
	var userCount int64
	if err := database.DB.WithContext(c.Request.Context()).
		Model(&models.AppUser{}).Count(&userCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to query users"})
		return
	}

	hasAnyUser := userCount > 0
	// Bootstrap is only open while the system has no users and the server
	// was configured with a setup token.
	c.JSON(http.StatusOK, BootstrapStatusResponse{
		HasAnyUser:       hasAnyUser,
		BootstrapEnabled: !hasAnyUser && strings.TrimSpace(config.AppConfig.BootstrapToken) != "",
	})
}

// BootstrapAdmin godoc
// @Summary      Create the first admin user
// @Description  Creates the initial admin. Requires the server-configured setup token and only works while no users exist.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body BootstrapAdminInput true "Bootstrap Info"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse "Invalid setup token"
// @Router       /auth/bootstrap-admin [post]
func BootstrapAdmin(c *gin.Context) {
	var input BootstrapAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if strings.TrimSpace(config.AppConfig.BootstrapToken) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bootstrap token is not configured on server."})
		return
	}
	if strings.TrimSpace(input.SetupToken) != config.AppConfig.BootstrapToken {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid setup token."})
		return
	}

	if msg, ok := validateCredential(input.Username, input.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	db := database.DB.WithContext(c.Request.Context())
	var userCount int64
	if err := db.Model(&models.AppUser{}).Count(&userCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to query users"})
		return
	}
	if userCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bootstrap is only available when no users exist."})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	now := time.Now().UTC()
	user := models.AppUser{
		Username:     strings.TrimSpace(input.Username),
		PasswordHash: string(hashedPassword),
		Role:         models.RoleAdmin,
		IsActive:     true,
		CreatedAtUtc: now,
		UpdatedAtUtc: now,
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bootstrap admin created successfully."})
}

// Login godoc
// @Summary      Log in a user
// @Description  Authenticates with username and password and returns a JWT access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse "Invalid credentials"
// @Router       /auth/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required."})
		return
	}

	db := database.DB.WithContext(c.Request.Context())
	var user models.AppUser
	username := strings.TrimSpace(input.Username)
	if err := db.Where("username = ?", username).First(&user).Error; err != nil || !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password."})
		return
	}

	now := time.Now().UTC()
	user.LastLoginAtUtc = &now
	user.UpdatedAtUtc = now
	// A failed stamp must not block the login itself.
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Failed to record last login for user %s: %v", user.Username, err)
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken:  token,
		ExpiresAtUtc: expiresAt,
		Username:     user.Username,
		Role:         user.Role,
	})
}

// CreateUser godoc
// @Summary      Create a user
// @Description  Creates a new login. Admin only.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreateUserInput true "User Info"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      409 {object} ErrorResponse "Username already exists"
// @Router       /auth/users [post]
func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if msg, ok := validateCredential(input.Username, input.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role must be `admin` or `user`."})
		return
	}

	db := database.DB.WithContext(c.Request.Context())
	username := strings.TrimSpace(input.Username)
	var existing int64
	if err := db.Model(&models.AppUser{}).Where("username = ?", username).Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to query users"})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Username already exists."})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	now := time.Now().UTC()
	if err := db.Create(&models.AppUser{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         role,
		IsActive:     true,
		CreatedAtUtc: now,
		UpdatedAtUtc: now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User created."})
}

// Me godoc
// @Summary      Get current user's info
// @Description  Returns the username and role of the authenticated caller.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} CurrentUserResponse
// @Failure      401 {object} ErrorResponse
// @Router       /auth/me [get]
func Me(c *gin.Context) {
	username, _ := c.Get("username")
	role, _ := c.Get("role")

	name, _ := username.(string)
	roleName, _ := role.(string)
	if roleName == "" {
		roleName = models.RoleUser
	}

	c.JSON(http.StatusOK, CurrentUserResponse{Username: name, Role: roleName})
}

// endregion

func validateCredential(username, password string) (string, bool) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return "Username is required.", false
	}
	if len(trimmed) < 3 || len(trimmed) > 64 {
		return "Username length must be between 3 and 64.", false
	}
	if len(password) < 8 {
		return "Password length must be at least 8.", false
	}
	return "", true
}
