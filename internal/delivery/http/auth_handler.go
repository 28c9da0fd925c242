package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"todo-auth-service/internal/apperr"
	"todo-auth-service/internal/application/command"
	"todo-auth-service/internal/application/interfaces"
	"todo-auth-service/internal/infrastructure"
)

const (
	stateCookieName    = "oauth_state"
	verifierCookieName = "oauth_verifier"
	oauthCookieTTL     = 10 * time.Minute
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type AuthHandler struct {
	authService  interfaces.AuthService
	oauthService interfaces.OAuthService
	jwtService   *infrastructure.JWTService
	production   bool
}

func NewAuthHandler(
	authService interfaces.AuthService,
	oauthService interfaces.OAuthService,
	jwtService *infrastructure.JWTService,
	production bool,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		oauthService: oauthService,
		jwtService:   jwtService,
		production:   production,
	}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request body"), h.production)
	}
	if err := validateSignup(&req); err != nil {
		return respondError(c, err, h.production)
	}

	result, err := h.authService.Signup(c.Request().Context(), &command.SignupCommand{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return respondError(c, err, h.production)
	}
	return respondOK(c, http.StatusOK, result.Message, nil)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request body"), h.production)
	}
	if err := validateLogin(&req); err != nil {
		return respondError(c, err, h.production)
	}

	result, err := h.authService.Login(c.Request().Context(), &command.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err, h.production)
	}
	return respondOK(c, http.StatusOK, "Token generated successfully", tokenResponse{Token: result.Token})
}

func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return respondError(c, apperr.Validation("Invalid verification token"), h.production)
	}

	if err := h.authService.VerifyEmail(c.Request().Context(), token); err != nil {
		return respondError(c, err, h.production)
	}
	return respondOK(c, http.StatusOK, "Email verified successfully", nil)
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request body"), h.production)
	}

	result, err := h.authService.ForgotPassword(c.Request().Context(), &command.ForgotPasswordCommand{
		Email: req.Email,
	})
	if err != nil {
		return respondError(c, err, h.production)
	}
	return respondOK(c, http.StatusOK, result.Message, nil)
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request body"), h.production)
	}
	if err := validateResetPassword(&req); err != nil {
		return respondError(c, err, h.production)
	}

	result, err := h.authService.ResetPassword(c.Request().Context(), &command.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return respondError(c, err, h.production)
	}
	return respondOK(c, http.StatusOK, result.Message, nil)
}

// OAuthBegin pins the state and PKCE verifier in short-lived signed cookies
// and sends the client to the provider's consent page.
func (h *AuthHandler) OAuthBegin(c echo.Context) error {
	result, err := h.oauthService.Begin(c.Param("provider"))
	if err != nil {
		return respondError(c, err, h.production)
	}

	stateToken, err := h.jwtService.SignState(result.State, oauthCookieTTL)
	if err != nil {
		return respondError(c, err, h.production)
	}
	verifierToken, err := h.jwtService.SignState(result.Verifier, oauthCookieTTL)
	if err != nil {
		return respondError(c, err, h.production)
	}

	h.setOAuthCookie(c, stateCookieName, stateToken)
	h.setOAuthCookie(c, verifierCookieName, verifierToken)

	return c.Redirect(http.StatusFound, result.AuthURL)
}

func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return respondError(c, apperr.Auth("OAuth authentication failed"), h.production)
	}

	state, err := h.readOAuthCookie(c, stateCookieName)
	if err != nil || state == "" || state != c.QueryParam("state") {
		return respondError(c, apperr.Auth("OAuth authentication failed"), h.production)
	}
	verifier, err := h.readOAuthCookie(c, verifierCookieName)
	if err != nil || verifier == "" {
		return respondError(c, apperr.Auth("OAuth authentication failed"), h.production)
	}

	result, err := h.oauthService.Callback(c.Request().Context(), &command.OAuthCallbackCommand{
		Provider: c.Param("provider"),
		Code:     code,
		Verifier: verifier,
	})
	if err != nil {
		return respondError(c, err, h.production)
	}

	h.clearOAuthCookie(c, stateCookieName)
	h.clearOAuthCookie(c, verifierCookieName)

	return respondOK(c, http.StatusOK, "Token generated successfully", tokenResponse{Token: result.Token})
}

func (h *AuthHandler) setOAuthCookie(c echo.Context, name, value string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(oauthCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) readOAuthCookie(c echo.Context, name string) (string, error) {
	cookie, err := c.Cookie(name)
	if err != nil {
		return "", err
	}
	return h.jwtService.VerifyState(cookie.Value)
}

func (h *AuthHandler) clearOAuthCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
