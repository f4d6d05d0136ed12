package main

import (
	"HelpDesk/config"
	"HelpDesk/internal/repo"
	"HelpDesk/internal/service"
	"HelpDesk/model"
	"errors"
	"log"
	"os"
)

// main bootstraps the database: roles, the initial reference rows and
// one admin account. Safe to run repeatedly.
func main() {
	config.InitConfig()
	repo.InitMysql()

	if err := service.SeedRoles(); err != nil {
		log.Fatalf("seed roles failed: %v", err)
	}

	organization := model.Organization{Name: "Head office", Description: "default organization"}
	if err := repo.Db.Where("name = ?", organization.Name).FirstOrCreate(&organization).Error; err != nil {
		log.Fatalf("seed organization failed: %v", err)
	}
	department := model.Department{Name: "IT department", Description: "technical support", OrganizationID: &organization.ID}
	if err := repo.Db.Where("name = ?", department.Name).FirstOrCreate(&department).Error; err != nil {
		log.Fatalf("seed department failed: %v", err)
	}
	position := model.Position{Name: "Administrator", Description: "system administrator", Chief: true}
	if err := repo.Db.Where("name = ?", position.Name).FirstOrCreate(&position).Error; err != nil {
		log.Fatalf("seed position failed: %v", err)
	}

	adminRole, err := service.FindRoleByName(model.RoleAdmin)
	if err != nil {
		log.Fatalf("admin role lookup failed: %v", err)
	}

	username := envOr("SEED_ADMIN_USER", "admin")
	if _, err := service.FindByUsername(username); err == nil {
		log.Printf("admin user %q already exists", username)
		return
	} else if !errors.Is(err, service.ErrNotFound) {
		log.Fatalf("admin user lookup failed: %v", err)
	}

	admin := model.User{
		UserName:     username,
		Password:     envOr("SEED_ADMIN_PASSWORD", "admin"),
		Name:         "Admin",
		RoleID:       adminRole.ID,
		DepartmentID: department.ID,
		PositionID:   position.ID,
	}
	if err := service.CreateUser(&admin); err != nil {
		log.Fatalf("create admin user failed: %v", err)
	}
	log.Printf("admin user %q created", username)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
