package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "imagevault/internal/errors"
	"imagevault/internal/interfaces"
	"imagevault/internal/service"
)

// AccountHandler serves registration, login and key rotation.
type AccountHandler struct {
	accounts interfaces.AccountService
}

func NewAccountHandler(accounts interfaces.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// APIKeyResponse is the data of register and refresh-key responses.
type APIKeyResponse struct {
	APIKey string `json:"api_key" example:"q3x...Zt"`
}

// LoginResponse is the data of a successful login.
type LoginResponse struct {
	APIKey   string `json:"api_key"`
	Username string `json:"username" example:"alice"`
}

// HandleRegister godoc
// @Summary      Register a user
// @Description  Creates an account and returns its first API key.
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        request  body      service.RegisterRequest  true  "New account"
// @Success      201      {object}  SuccessResponse{data=APIKeyResponse}
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Failure      429      {object}  ErrorResponse
// @Router       /register [post]
func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	ctx := service.WithClientIP(r.Context(), r.RemoteAddr)
	apiKey, err := h.accounts.Register(ctx, &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusCreated, "User registered successfully", APIKeyResponse{APIKey: apiKey})
}

// HandleLogin godoc
// @Summary      Log in
// @Description  Exchanges email and password for the account's API key.
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        request  body      service.LoginRequest  true  "Credentials"
// @Success      200      {object}  SuccessResponse{data=LoginResponse}
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Router       /login [post]
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	ctx := service.WithClientIP(r.Context(), r.RemoteAddr)
	user, err := h.accounts.Login(ctx, &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, "", LoginResponse{APIKey: user.APIKey, Username: user.Username})
}

// HandleRefreshKey godoc
// @Summary      Rotate the API key
// @Description  Issues a new API key. The old key stops working immediately.
// @Tags         Accounts
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  SuccessResponse{data=APIKeyResponse}
// @Failure      401  {object}  ErrorResponse
// @Router       /refresh-key [post]
func (h *AccountHandler) HandleRefreshKey(w http.ResponseWriter, r *http.Request) {
	apiKey, err := h.accounts.RefreshKey(r.Context(), currentUser(r))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, "", APIKeyResponse{APIKey: apiKey})
}

// decodeJSON reads the request body into dst. Malformed bodies are reported
// as validation errors.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation)
	}
	return nil
}
