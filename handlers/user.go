// user.go - Handles registration, login/logout, profile and password management

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes
	"strconv"  // For the JWT subject claim
	"time"     // For token/session expiration

	"go-recipe-backend/middleware" // Claims type shared with the auth gate
	"go-recipe-backend/models"     // Database models

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"       // Session IDs
	"golang.org/x/crypto/bcrypt"   // Password hashing
)

type RegisterInput struct { // Struct for registration input
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileInput struct { // All fields optional; nil means "leave unchanged"
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// UserResponse is the profile shape sent to clients. The password hash has
// no field here, so it cannot appear in any response body.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Register - POST /register
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hash),
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		respondStoreError(c, err, "user not found", "username or email already taken")
		return
	}
	respondData(c, http.StatusCreated, toUserResponse(&user))
}

// Login - POST /login
// Verifies the credential, mints a session row and returns a signed token
// carrying the session ID as its jti claim.
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.store.UserCredentialsByEmail(c.Request.Context(), input.Email)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(h.cfg.SessionTTLHours) * time.Hour)
	sess := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}
	if err := h.store.CreateSession(c.Request.Context(), &sess); err != nil {
		respondStoreError(c, err, "session not found", "session already exists")
		return
	}

	claims := middleware.Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to sign token")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"token": tokenString,
		"user":  toUserResponse(user),
	})
}

// Logout - POST /api/logout
// Deletes the session row named by the presented token, revoking it.
func (h *Handler) Logout(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionKey)
	if err := h.store.DeleteSession(c.Request.Context(), sessionID); err != nil {
		respondStoreError(c, err, "session not found", "session conflict")
		return
	}
	respondMessage(c, http.StatusOK, "logged out")
}

// ListUsers - GET /users
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "users not found", "conflict")
		return
	}
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	respondList(c, len(out), out)
}

// GetProfile - GET /api/profile
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}
	user, err := h.store.UserByID(c.Request.Context(), userID)
	if err != nil {
		respondStoreError(c, err, "user not found", "conflict")
		return
	}
	respondData(c, http.StatusOK, toUserResponse(user))
}

// UpdateProfile - PUT /api/profile
// Builds one allow-listed change set from the fields present in the body and
// applies it as a single UPDATE.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if input.Username != nil {
		fields["username"] = *input.Username
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.FirstName != nil {
		fields["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		fields["last_name"] = *input.LastName
	}
	if len(fields) == 0 {
		respondError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	if err := h.store.UpdateUserFields(c.Request.Context(), userID, fields); err != nil {
		respondStoreError(c, err, "user not found", "username or email already taken")
		return
	}

	user, err := h.store.UserByID(c.Request.Context(), userID)
	if err != nil {
		respondStoreError(c, err, "user not found", "conflict")
		return
	}
	respondData(c, http.StatusOK, toUserResponse(user))
}

// DeleteProfile - DELETE /api/profile
func (h *Handler) DeleteProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}
	if err := h.store.DeleteUser(c.Request.Context(), userID); err != nil {
		respondStoreError(c, err, "user not found", "conflict")
		return
	}
	respondMessage(c, http.StatusOK, "account deleted")
}

// ChangePassword - PUT /api/password
// Verifies the current password before writing the new hash.
func (h *Handler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.store.UserCredentialsByID(c.Request.Context(), userID)
	if err != nil {
		respondStoreError(c, err, "user not found", "conflict")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		respondError(c, http.StatusUnauthorized, "current password is incorrect")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}
	if err := h.store.UpdateUserFields(c.Request.Context(), userID, map[string]interface{}{"password": string(hash)}); err != nil {
		respondStoreError(c, err, "user not found", "conflict")
		return
	}
	respondMessage(c, http.StatusOK, "password updated")
}
