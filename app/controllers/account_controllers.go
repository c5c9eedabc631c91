package controllers

import (
	"errors"
	"net/http"

	"github.com/boutiklabs/boutik/app/services"
	"github.com/boutiklabs/boutik/pkg/bind"
	"github.com/boutiklabs/boutik/pkg/logger"
	"github.com/boutiklabs/boutik/pkg/response"
)

type AccountController struct {
	directory *services.AccountDirectory
}

func NewAccountController(directory *services.AccountDirectory) *AccountController {
	return &AccountController{directory: directory}
}

type registerRequest struct {
	Username  string `json:"username"  validate:"required"`
	Firstname string `json:"firstname" validate:"required"`
	Email     string `json:"email"     validate:"required"`
	Password  string `json:"password"  validate:"required"`
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /account.
func (c *AccountController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	errs, err := bind.JSON(r, &body)
	if err != nil || len(errs) > 0 {
		response.Message(w, http.StatusBadRequest, "Tous les champs sont obligatoires")
		return
	}

	if err := c.directory.Register(body.Username, body.Firstname, body.Email, body.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			response.Message(w, http.StatusBadRequest, "Tous les champs sont obligatoires")
		case errors.Is(err, services.ErrEmailTaken):
			response.Message(w, http.StatusConflict, "Un compte existe déjà avec cet email")
		default:
			logger.WithCtx(r.Context()).Error("register", "error", err)
			response.Message(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	logger.WithCtx(r.Context()).Info("account created", "email", body.Email)
	response.Message(w, http.StatusCreated, "Compte créé avec succès")
}

// Token handles POST /token.
func (c *AccountController) Token(w http.ResponseWriter, r *http.Request) {
	var body tokenRequest
	if _, err := bind.JSON(r, &body); err != nil {
		response.Message(w, http.StatusBadRequest, "Utilisateur non trouvé")
		return
	}

	token, err := c.directory.Authenticate(body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			response.Message(w, http.StatusBadRequest, "Utilisateur non trouvé")
		case errors.Is(err, services.ErrInvalidCredentials):
			response.Message(w, http.StatusUnauthorized, "Mot de passe incorrect")
		default:
			logger.WithCtx(r.Context()).Error("token", "error", err)
			response.Message(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"token": token})
}
