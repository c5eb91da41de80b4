package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/internal/transport"
	"github.com/dheerghayush/naturals/pkg/logging"
)

type AuthHandler struct {
	Auth   *service.AuthService
	Resets *service.PasswordResetService
}

func (h *AuthHandler) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	var req transport.SignupRequest
	if err := bind(c, "auth.signup", &req); err != nil {
		return err
	}

	resp, err := h.Auth.Signup(ctx, req)
	if err != nil {
		return fail(c, "auth.signup", "signup_error", err, "Signup failed. Please try again later.")
	}
	logging.FromContext(ctx).With("handler", "auth.signup").Info("signup_success", "user_id", resp.User.ID)
	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	var req transport.LoginRequest
	if err := bind(c, "auth.login", &req); err != nil {
		return err
	}

	resp, err := h.Auth.Login(ctx, req)
	if err != nil {
		return fail(c, "auth.login", "login_error", err, "Something went wrong. Please try again later.")
	}
	logging.FromContext(ctx).With("handler", "auth.login").Info("login_success", "user_id", resp.User.ID, "type", resp.User.Type)
	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) AdminLogin(c echo.Context) error {
	ctx := c.Request().Context()
	var req transport.LoginRequest
	if err := bind(c, "auth.admin_login", &req); err != nil {
		return err
	}

	resp, err := h.Auth.AdminLogin(ctx, req)
	if err != nil {
		return fail(c, "auth.admin_login", "admin_login_error", err, "")
	}
	logging.FromContext(ctx).With("handler", "auth.admin_login").Info("admin_login_success", "admin_id", resp.User.ID)
	return c.JSON(http.StatusOK, resp)
}

// Me returns the profile of whoever the bearer token resolved to. It serves
// both /auth/me and /admin/me.
func (h *AuthHandler) Me(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p.Profile())
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req transport.ForgotPasswordRequest
	if err := bind(c, "auth.forgot_password", &req); err != nil {
		return err
	}

	msg, err := h.Resets.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		return fail(c, "auth.forgot_password", "forgot_password_error", err, "Something went wrong. Please try again later.")
	}
	return message(c, msg)
}

func (h *AuthHandler) VerifyResetToken(c echo.Context) error {
	var req transport.VerifyResetTokenRequest
	if err := bind(c, "auth.verify_reset_token", &req); err != nil {
		return err
	}

	resp, err := h.Resets.VerifyResetToken(c.Request().Context(), req.Token)
	if err != nil {
		return fail(c, "auth.verify_reset_token", "verify_reset_token_error", err, "Something went wrong. Please try again later.")
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req transport.ResetPasswordRequest
	if err := bind(c, "auth.reset_password", &req); err != nil {
		return err
	}

	msg, err := h.Resets.ResetPassword(c.Request().Context(), req.Token, req.NewPassword)
	if err != nil {
		return fail(c, "auth.reset_password", "reset_password_error", err, "Something went wrong. Please try again later.")
	}
	return message(c, msg)
}
