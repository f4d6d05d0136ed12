package utils

import (
	"HelpDesk/config"
	"HelpDesk/model"
	"testing"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	prev := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = prev })

	token, err := GenerateToken(42, "support_user", model.RoleModerator)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserId != 42 {
		t.Fatalf("user id = %d", claims.UserId)
	}
	if claims.Username != "support_user" {
		t.Fatalf("username = %q", claims.Username)
	}
	if claims.Role != model.RoleModerator {
		t.Fatalf("role = %q", claims.Role)
	}
	if !claims.Role.IsModerator() {
		t.Fatal("moderator claim lost capability")
	}
	if claims.Role.IsAdmin() {
		t.Fatal("moderator claim must not be admin")
	}

	if _, err := VerifyToken(token + "x"); err == nil {
		t.Fatal("tampered token accepted")
	}
}
