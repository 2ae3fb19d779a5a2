package app

import (
	"errors"
	"io"
	"log"
	"net/http"

	"example/vision-api/app/models"
	"example/vision-api/auth"

	"github.com/gin-gonic/gin"
)

// Root is a public index endpoint pointing at the health check.
func (s *Server) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":         "AI Vision Service API",
		"health_endpoint": "/api/health",
	})
}

// Health is a public health check endpoint.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "AI Vision Service",
	})
}

// Analyze accepts an image upload, gates it on the user's quota, validates
// it, and returns the vision backend's description. Failures are terminal in
// order: auth, quota, file type, file size, backend.
func (s *Server) Analyze(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c.Request.Context())
	if !ok || claims.Subject == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token"})
		return
	}
	userID := claims.Subject
	tier := ResolveTier(claims.Raw)

	if err := s.ledger.TryConsume(userID, tier); err != nil {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Usage limit exceeded. Upgrade to Premium for unlimited analyses.",
		})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer f.Close()

	payload, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}

	if err := ValidateUpload(fileHeader.Filename, payload); err != nil {
		var tooLarge fileTooLargeError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	description, err := s.vision.Describe(c.Request.Context(), payload)
	if err != nil {
		log.Printf("vision call failed user=%s request_id=%s err=%v", userID, c.GetString("request_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error analyzing image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"description": description,
		"user_id":     userID,
		"tier":        tier,
		"filename":    fileHeader.Filename,
	})
}

// Usage returns current usage and tier for the authenticated user. It never
// mutates the ledger.
func (s *Server) Usage(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c.Request.Context())
	if !ok || claims.Subject == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token"})
		return
	}
	userID := claims.Subject
	tier := ResolveTier(claims.Raw)

	used := s.ledger.CurrentUsage(userID)

	var limit any = models.Unlimited
	var remaining any = models.Unlimited
	if tier != models.TierPremium {
		limit = FreeAnalysisLimit
		remaining = s.ledger.RemainingFree(userID)
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":       userID,
		"tier":          tier,
		"analyses_used": used,
		"limit":         limit,
		"remaining":     remaining,
	})
}
