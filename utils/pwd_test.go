package utils

import "testing"

func TestGetPwdAndCheckPwd(t *testing.T) {
	hash := GetPwd("secret123")
	if hash == "secret123" || hash == "" {
		t.Fatal("password not hashed")
	}
	if !CheckPwd("secret123", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPwd("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestFileHash(t *testing.T) {
	a := FileHash()
	b := FileHash()
	if a == b {
		t.Fatal("hashes collide")
	}
	if len(a) != 32 {
		t.Fatalf("hash length %d", len(a))
	}
	for _, r := range a {
		if r == '-' {
			t.Fatal("hash contains dashes")
		}
	}
}
