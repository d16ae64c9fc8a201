package usecase

import (
	"github.com/vetcare/petclinic-pro/internal/application/dto"
	"github.com/vetcare/petclinic-pro/internal/domain"
	"github.com/vetcare/petclinic-pro/internal/domain/authz"
	"github.com/vetcare/petclinic-pro/internal/domain/entity"
	"github.com/vetcare/petclinic-pro/internal/domain/repository"
)

// UserUseCase consulta de usuarios: perfil propio y listado administrativo.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetMe devuelve el perfil del actor autenticado.
func (uc *UserUseCase) GetMe(actor authz.Actor) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List lista todos los usuarios. Solo ADMIN con user_read.
func (uc *UserUseCase) List(actor authz.Actor, page dto.PageRequest) ([]dto.UserResponse, error) {
	if err := authz.Authorize(actor, authz.Requirement{
		Role:        entity.RoleAdmin,
		Permissions: []string{entity.PermUserRead},
	}); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
