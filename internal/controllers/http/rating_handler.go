package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"food-delivery/internal/domain"
	"food-delivery/internal/services"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratings *services.RatingService
}

func NewRatingHandler(ratings *services.RatingService) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

func (h *RatingHandler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/ratings")
	api.POST("", h.SubmitRating)
	api.GET("/menu-item/:menuItemId", h.ListMenuItemRatings)
	r.GET("/health", Health("rating-service"))
}

func (h *RatingHandler) SubmitRating(c *gin.Context) {
	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratings.SubmitRating(c.Request.Context(), domain.Rating{
		UserID:     req.UserID,
		MenuItemID: req.MenuItemID,
		Score:      req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating),
			errors.Is(err, services.ErrCommentTooLong),
			errors.Is(err, services.ErrInvalidRater):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("submit rating for menu item %d: %v", req.MenuItemID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "rating submitted",
		"rating":  rating,
	})
}

func (h *RatingHandler) ListMenuItemRatings(c *gin.Context) {
	menuItemID, err := strconv.ParseInt(c.Param("menuItemId"), 10, 64)
	if err != nil || menuItemID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menuItemId"})
		return
	}

	ratings, avg, err := h.ratings.RatingsForMenuItem(c.Request.Context(), menuItemID)
	if err != nil {
		log.Printf("list ratings for menu item %d: %v", menuItemID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings": ratings,
		"average": avg,
	})
}
