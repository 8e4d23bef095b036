package ports

//go:generate mockgen -source=user_ports.go -destination=mocks/user_ports.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error
	// UpdateBatch assigns the user to a batch; nil clears it.
	UpdateBatch(ctx context.Context, id uuid.UUID, batchID *uuid.UUID) error
}

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetRole(ctx context.Context, actor domain.Actor, id string, role string) (*domain.User, error)
	SetBatch(ctx context.Context, actor domain.Actor, id string, batchID *uuid.UUID) (*domain.User, error)
}
