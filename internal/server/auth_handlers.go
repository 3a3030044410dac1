package server

import (
	"glimpse/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// SignUp handles POST /api/auth/sign-up
func (s *Server) SignUp(c *fiber.Ctx) error {
	var req struct {
		Username    string  `json:"username"`
		Password    string  `json:"password"`
		DisplayName *string `json:"displayName"`
		Image       *string `json:"image"`
		Bio         *string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	// Reject before touching the store.
	if req.Username == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("username and password are required fields"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		Username:       req.Username,
		HashedPassword: string(hashedPassword),
		DisplayName:    req.DisplayName,
		Image:          req.Image,
		Bio:            req.Bio,
	}

	// A username collision surfaces as Conflict, not a crash.
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	tokenString, err := s.tokens.Issue(user.UserID, user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": tokenString,
		"user":  user,
	})
}

// SignIn handles POST /api/auth/sign-in.
// Every failure path returns the same Unauthorized response so a caller
// cannot tell a missing account from a wrong password.
func (s *Server) SignIn(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return s.invalidLogin(c)
	}

	if req.Username == "" || req.Password == "" {
		return s.invalidLogin(c)
	}

	user, err := s.userRepo.GetByUsername(c.Context(), req.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if user == nil {
		return s.invalidLogin(c)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return s.invalidLogin(c)
	}

	tokenString, err := s.tokens.Issue(user.UserID, user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
		"user": fiber.Map{
			"userId":   user.UserID,
			"username": user.Username,
		},
	})
}

func (s *Server) invalidLogin(c *fiber.Ctx) error {
	return models.RespondWithError(c, fiber.StatusUnauthorized,
		models.NewUnauthorizedError("invalid username or password"))
}
