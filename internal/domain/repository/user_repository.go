package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/shopadmin-api/internal/domain/entity"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetWithRoles loads the user together with roles and their permissions
	GetWithRoles(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
