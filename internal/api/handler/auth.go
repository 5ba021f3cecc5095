package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type loginRequest struct {
	Role string `json:"role" binding:"required"`
}

// Login issues a role token for the student or admin surface. There is no
// account system; identity is a generated uid carried in the claims.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role is required"})
		return
	}
	if req.Role != "student" && req.Role != "admin" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	uid := uuid.NewString()
	token, err := h.generateJWT(uid, req.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "role": req.Role, "uid": uid})
}

func (h *Handler) generateJWT(uid, role string) (string, error) {
	claims := jwt.MapClaims{
		"uid":  uid,
		"role": role,
		"exp":  time.Now().Add(time.Hour * 72).Unix(),
		"iss":  "complainthub-service",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.JWTSecret)
}

// parseClaims verifies a token string and returns its claims, erroring
// on anything malformed, unsigned-by-us, or expired.
func (h *Handler) parseClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return h.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// parseUID extracts the uid claim from a token string.
func (h *Handler) parseUID(tokenString string) (string, error) {
	claims, err := h.parseClaims(tokenString)
	if err != nil {
		return "", err
	}
	uid, _ := claims["uid"].(string)
	if uid == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return uid, nil
}

// RequireRole gates a route on a bearer token carrying the given role
// claim: 401 for a missing or invalid token, 403 for the wrong role.
func (h *Handler) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authorization required"})
			return
		}
		claims, err := h.parseClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token"})
			return
		}
		if got, _ := claims["role"].(string); got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "insufficient role"})
			return
		}
		if uid, _ := claims["uid"].(string); uid != "" {
			c.Set("uid", uid)
		}
		c.Next()
	}
}
