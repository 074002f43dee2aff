package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"homeos/internal/fitness"
	"homeos/internal/models"
	"homeos/internal/repository"
	"homeos/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type UserController struct {
	repo repository.UserRepository
}

func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{repo: repo}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=4,max=25"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type profileRequest struct {
	Age          int     `json:"age"`
	Height       float64 `json:"height"`
	Weight       float64 `json:"weight"`
	Gender       string  `json:"gender"`
	TargetWeight float64 `json:"target_weight"`
}

// RegisterUser godoc
// @Summary Register a new user
// @Description Create an account with a unique username and email
// @Tags users
// @Accept json
// @Produce json
// @Param user body registerRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "User registered successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Username or email already exists"
// @Router /users/register [post]
func (uc *UserController) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := uc.repo.GetUserByUsername(req.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Username or email already exists",
			"error":   "Choose a different username",
		})
		return
	}
	if _, err := uc.repo.GetUserByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Username or email already exists",
			"error":   "Choose a different email",
		})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	user := models.User{Username: req.Username, Email: req.Email, Password: hashed}
	if err := uc.repo.CreateUser(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User registered successfully",
		"data":    user,
	})
}

// LoginUser godoc
// @Summary Log in
// @Description Exchange username and password for a JWT
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 401 {object} map[string]interface{} "Invalid username or password"
// @Router /users/login [post]
func (uc *UserController) LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.repo.GetUserByUsername(req.Username)
	if err != nil || !utils.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid username or password",
			"error":   "Authentication failed",
		})
		return
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
	})
	jwtSecret := []byte(os.Getenv("JWT_SECRET_KEY"))
	tokenString, err := jwtToken.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to sign token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"data":    gin.H{"token": tokenString, "user": user},
	})
}

// GetCurrentUser godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/me [get]
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	user, err := uc.repo.GetUserByID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    user,
	})
}

// UpdateProfile godoc
// @Summary Update the physical profile
// @Description Update age, height, weight, gender and target weight; basal metabolic rate is recalculated
// @Tags users
// @Accept json
// @Produce json
// @Param profile body profileRequest true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /users/me [put]
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.repo.GetUserByID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	user.Age = req.Age
	user.Height = req.Height
	user.Weight = req.Weight
	user.Gender = req.Gender
	user.TargetWeight = req.TargetWeight
	// BMR always follows the physical profile, never stored stale.
	user.BasalMetabolism = fitness.CalculateBMR(user.Gender, user.Age, user.Height, user.Weight)

	if err := uc.repo.UpdateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   "Database update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    user,
	})
}

// --- Admin user management ---

type adminUserRequest struct {
	Username     string  `json:"username" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password"`
	IsAdmin      bool    `json:"is_admin"`
	Age          int     `json:"age"`
	Height       float64 `json:"height"`
	Weight       float64 `json:"weight"`
	Gender       string  `json:"gender"`
	TargetWeight float64 `json:"target_weight"`
}

// ListUsers godoc
// @Summary List all users (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Users retrieved successfully"
// @Router /admin/users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve users",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Users retrieved successfully",
		"data":    users,
	})
}

// CreateUserAdmin godoc
// @Summary Create a user (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param user body adminUserRequest true "User data"
// @Success 201 {object} map[string]interface{} "User created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /admin/users [post]
func (uc *UserController) CreateUserAdmin(c *gin.Context) {
	var req adminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Password is required for new users",
			"error":   "Missing password",
		})
		return
	}
	if _, err := uc.repo.GetUserByUsername(req.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Username already exists",
			"error":   "Choose a different username",
		})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		Password:     hashed,
		IsAdmin:      req.IsAdmin,
		Age:          req.Age,
		Height:       req.Height,
		Weight:       req.Weight,
		Gender:       req.Gender,
		TargetWeight: req.TargetWeight,
	}
	user.BasalMetabolism = fitness.CalculateBMR(user.Gender, user.Age, user.Height, user.Weight)

	if err := uc.repo.CreateUser(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User created successfully",
		"data":    user,
	})
}

// UpdateUserAdmin godoc
// @Summary Update a user (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body adminUserRequest true "User data"
// @Success 200 {object} map[string]interface{} "User updated successfully"
// @Router /admin/users/{id} [put]
func (uc *UserController) UpdateUserAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req adminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.repo.GetUserByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	user.Username = req.Username
	user.Email = req.Email
	user.IsAdmin = req.IsAdmin
	user.Age = req.Age
	user.Height = req.Height
	user.Weight = req.Weight
	user.Gender = req.Gender
	user.TargetWeight = req.TargetWeight
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update user",
				"error":   err.Error(),
			})
			return
		}
		user.Password = hashed
	}
	user.BasalMetabolism = fitness.CalculateBMR(user.Gender, user.Age, user.Height, user.Weight)

	if err := uc.repo.UpdateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update user",
			"error":   "Database update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User updated successfully",
		"data":    user,
	})
}

// DeleteUserAdmin godoc
// @Summary Delete a user and everything they own (admin)
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "User deleted successfully"
// @Router /admin/users/{id} [delete]
func (uc *UserController) DeleteUserAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}
	if uint(id) == currentUserID(c) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "You cannot delete your own account here",
			"error":   "Self-deletion is not allowed",
		})
		return
	}

	if err := uc.repo.DeleteUser(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete user",
			"error":   "Database deletion failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
		"data":    nil,
	})
}

// ToggleAdminRole godoc
// @Summary Toggle the admin flag of a user (admin)
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Role updated successfully"
// @Router /admin/users/{id}/toggle-admin [post]
func (uc *UserController) ToggleAdminRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}
	if uint(id) == currentUserID(c) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "You cannot change your own admin role",
			"error":   "Self-demotion is not allowed",
		})
		return
	}

	user, err := uc.repo.GetUserByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	user.IsAdmin = !user.IsAdmin
	if err := uc.repo.UpdateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update role",
			"error":   "Database update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Role updated successfully",
		"data":    user,
	})
}
