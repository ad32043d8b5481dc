package repository

import (
	"errors"
	"time"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/role"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func (r *Repository) GetUserByEmail(email string) (*ds.User, error) {
	var user ds.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByID(id string) (*ds.User, error) {
	var user ds.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&ds.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreateUser(email, passwordHash, name string, userRole role.Role) (*ds.User, error) {
	user := ds.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Password:  passwordHash,
		Role:      string(userRole),
		CreatedAt: time.Now(),
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SeedDefaults bootstraps an empty database with an admin, a staff account
// and one restaurant so that a fresh deployment is usable immediately.
func (r *Repository) SeedDefaults(adminPasswordHash, staffPasswordHash string) error {
	admin, err := r.GetUserByEmail("admin@noboru.local")
	if errors.Is(err, ErrUserNotFound) {
		admin, err = r.CreateUser("admin@noboru.local", adminPasswordHash, "Admin User", role.Admin)
	}
	if err != nil {
		return err
	}

	if _, err := r.GetUserByEmail("staff@noboru.local"); errors.Is(err, ErrUserNotFound) {
		if _, err := r.CreateUser("staff@noboru.local", staffPasswordHash, "Staff User", role.Staff); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if _, err := r.ResolveRestaurant(""); errors.Is(err, ErrRestaurantNotFound) {
		if _, err := r.CreateRestaurant("Noboru", "Modern Japanese dining experience", admin.ID, true); err != nil {
			return err
		}
		log.Info("seeded default restaurant")
	} else if err != nil {
		return err
	}

	return nil
}
