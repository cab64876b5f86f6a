package httpHandler

import (
	"errors"
	"log"
	"net/http"

	"course-server/entities"
	"course-server/middleware"
	"course-server/repositories"
	"course-server/usecases"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	useCase *usecases.UserUseCase
}

func NewUserHandler(useCase *usecases.UserUseCase) *UserHandler {
	return &UserHandler{
		useCase: useCase,
	}
}

// CreateUser handles POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input entities.NewUser
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []string{"request body must be valid JSON"},
		})
		return
	}

	if _, err := h.useCase.CreateUser(&input); err != nil {
		var verrs entities.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
			return
		}
		log.Printf("request %s: create user failed: %v", middleware.RequestIDFrom(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.Header("Location", "/")
	c.Status(http.StatusCreated)
}

// GetCurrentUser handles GET /api/v1/users
// Returns the authenticated user's fields minus password and timestamps,
// plus the titles of the courses they own.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
		return
	}

	user, titles, err := h.useCase.GetCurrentUser(principal.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("request %s: load current user failed: %v", middleware.RequestIDFrom(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"firstName":    user.FirstName,
		"lastName":     user.LastName,
		"emailAddress": user.EmailAddress,
		"courses":      titles,
	})
}
