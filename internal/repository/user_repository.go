package repository

import (
	"context"

	"gorm.io/gorm"

	"medibook/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListByRoleName(ctx context.Context, roleName string) ([]model.User, error)
	Delete(ctx context.Context, id uint) error
	ExistsWithEmailOrMobile(ctx context.Context, email string, mobile int64, excludeID uint) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Save(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("Role").Preload("Specialization").Preload("Hospital").
		First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Preload("Role").Preload("Specialization").Preload("Hospital").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListByRoleName returns users whose role matches roleName, e.g. doctors.
func (r *userRepository) ListByRoleName(ctx context.Context, roleName string) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Preload("Role").Preload("Specialization").Preload("Hospital").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", roleName).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes the user row if present; deleting an absent id is a no-op.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}

// ExistsWithEmailOrMobile reports whether another user already holds the given
// email or mobile number. excludeID skips the row being updated; pass 0 on create.
func (r *userRepository) ExistsWithEmailOrMobile(ctx context.Context, email string, mobile int64, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ? OR mobile_number = ?", email, mobile)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
