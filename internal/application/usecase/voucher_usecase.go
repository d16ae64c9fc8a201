package usecase

import (
	"github.com/vetcare/petclinic-pro/internal/domain"
	"github.com/vetcare/petclinic-pro/internal/domain/authz"
	"github.com/vetcare/petclinic-pro/internal/domain/entity"
	"github.com/vetcare/petclinic-pro/internal/domain/repository"
)

// VoucherUseCase genera el comprobante PDF de un agendamiento propio.
// Mismo gate que la lectura individual: permiso schedule_read + propiedad.
type VoucherUseCase struct {
	schedules repository.ScheduleRepository
	pets      repository.PetRepository
	users     repository.UserRepository
	resolver  *authz.OwnerResolver
	generator VoucherGenerator
}

// NewVoucherUseCase construye el caso de uso.
func NewVoucherUseCase(
	schedules repository.ScheduleRepository,
	pets repository.PetRepository,
	users repository.UserRepository,
	resolver *authz.OwnerResolver,
	generator VoucherGenerator,
) *VoucherUseCase {
	return &VoucherUseCase{schedules: schedules, pets: pets, users: users, resolver: resolver, generator: generator}
}

// Generate produce los bytes del PDF del comprobante.
func (uc *VoucherUseCase) Generate(actor authz.Actor, scheduleID string) ([]byte, error) {
	if err := authz.Authorize(actor, authz.Requirement{Permissions: []string{entity.PermScheduleRead}}); err != nil {
		return nil, err
	}
	if err := uc.resolver.AssertOwnership(authz.KindSchedule, scheduleID, actor.UserID); err != nil {
		return nil, err
	}
	schedule, err := uc.schedules.GetByID(scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, domain.ErrNotFound
	}
	pet, err := uc.pets.GetByID(schedule.PetID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, domain.ErrNotFound
	}
	owner, err := uc.users.GetByID(pet.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.generator.GenerateVoucher(schedule, pet, owner)
}
