package http

import (
	"regexp"
	"unicode"

	"todo-auth-service/internal/apperr"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// passwordPolicyError returns the first policy violation, or "".
func passwordPolicyError(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters"
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return "Password must contain at least one uppercase letter"
	}
	if !hasLower {
		return "Password must contain at least one lowercase letter"
	}
	if !hasDigit {
		return "Password must contain at least one number"
	}
	return ""
}

func validateSignup(req *signupRequest) error {
	fields := map[string]string{}
	if !emailPattern.MatchString(req.Email) {
		fields["email"] = "Invalid email address"
	}
	if msg := passwordPolicyError(req.Password); msg != "" {
		fields["password"] = msg
	}
	if len(fields) > 0 {
		return apperr.ValidationFields("Invalid signup input", fields)
	}
	return nil
}

func validateLogin(req *loginRequest) error {
	fields := map[string]string{}
	if !emailPattern.MatchString(req.Email) {
		fields["email"] = "Invalid email address"
	}
	if req.Password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		return apperr.ValidationFields("Invalid login input", fields)
	}
	return nil
}

func validateResetPassword(req *resetPasswordRequest) error {
	fields := map[string]string{}
	if req.Token == "" {
		fields["token"] = "Token is required"
	}
	if msg := passwordPolicyError(req.NewPassword); msg != "" {
		fields["newPassword"] = msg
	}
	if len(fields) > 0 {
		return apperr.ValidationFields("Invalid reset input", fields)
	}
	return nil
}

func validateCreateTodo(req *createTodoRequest) error {
	if req.Title == "" {
		return apperr.ValidationFields("Invalid todo input", map[string]string{
			"title": "Title is required",
		})
	}
	return nil
}

func validateUpdateTodo(req *updateTodoRequest) error {
	if req.Title != nil && *req.Title == "" {
		return apperr.ValidationFields("Invalid todo input", map[string]string{
			"title": "Title is required",
		})
	}
	return nil
}
