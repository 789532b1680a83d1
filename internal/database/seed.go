package database

import (
	"log/slog"

	"github.com/kareemadel/topup-store/internal/config"
	"github.com/kareemadel/topup-store/internal/models"
	"github.com/kareemadel/topup-store/internal/services"
)

// EnsureAdmin creates the initial admin account on an empty users table.
// There is no public registration endpoint, so this is how the first (and
// usually only) login gets provisioned.
func EnsureAdmin(cfg *config.Config) error {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		slog.Warn("users table is empty and ADMIN_EMAIL/ADMIN_PASSWORD are unset; admin panel will be unreachable")
		return nil
	}

	hash, err := services.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:    cfg.AdminEmail,
		Password: hash,
		IsAdmin:  true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}
	slog.Info("seeded admin user", "email", admin.Email)
	return nil
}
