package http

import (
	"net/http"
	"time"

	"pizzaria/internal/core/application/usecases/commands"
	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/pkg/errs"
	"pizzaria/internal/pkg/hash"
	"pizzaria/internal/pkg/tokens"

	"github.com/labstack/echo/v4"
)

// CreateAccount handles POST /auth/criar_conta - registers a new user account.
// The password is hashed with bcrypt before it crosses into the application layer.
func (s *Server) CreateAccount(ctx echo.Context) error {
	var request CreateAccountRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	if request.Senha == "" {
		return respondError(ctx, errs.NewValueIsRequiredError("senha"))
	}

	passwordHash, err := hash.HashPassword(request.Senha)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		request.Nome,
		request.Email,
		passwordHash,
		request.Admin,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	account, err := s.registerUserHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateAccountResponse{
		ID:    account.ID().String(),
		Nome:  account.Name(),
		Email: account.Email(),
		Admin: account.IsAdmin(),
	})
}

// Login handles POST /auth/login - verifies credentials and issues a bearer
// token. Unknown emails and wrong passwords get the same answer so the route
// does not reveal which accounts exist.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	account, err := s.users.GetByEmail(ctx.Request().Context(), request.Email)
	if err != nil {
		return respondError(ctx, errs.NewAuthRequiredError())
	}

	if !account.IsActive() || !hash.CheckPassword(account.PasswordHash(), request.Senha) {
		return respondError(ctx, errs.NewAuthRequiredError())
	}

	token, err := tokens.NewAccessToken(
		account.ID().String(),
		account.IsAdmin(),
		time.Now().Add(s.tokenTTL),
		s.jwtSecret,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
