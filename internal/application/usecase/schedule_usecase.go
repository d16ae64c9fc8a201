package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vetcare/petclinic-pro/internal/application/dto"
	"github.com/vetcare/petclinic-pro/internal/domain"
	"github.com/vetcare/petclinic-pro/internal/domain/authz"
	"github.com/vetcare/petclinic-pro/internal/domain/entity"
	"github.com/vetcare/petclinic-pro/internal/domain/repository"
)

// ScheduleUseCase casos de uso de agendamientos y orquestación de la
// transición de estado. Cada mutación sigue la secuencia fija:
// propiedad → mutación → auditoría → notificación. La auditoría es
// síncrona y su fallo aborta la operación; la notificación es best-effort
// y nunca la aborta.
type ScheduleUseCase struct {
	repo     repository.ScheduleRepository
	resolver *authz.OwnerResolver
	audit    AuditRecorder
	notifier StatusNotifier
}

// NewScheduleUseCase construye el caso de uso.
func NewScheduleUseCase(repo repository.ScheduleRepository, resolver *authz.OwnerResolver, audit AuditRecorder, notifier StatusNotifier) *ScheduleUseCase {
	return &ScheduleUseCase{repo: repo, resolver: resolver, audit: audit, notifier: notifier}
}

// Create crea un agendamiento. El pet referenciado debe existir y
// pertenecer al actor antes de crear nada: contra un pet ajeno no se crea
// schedule ni registro de auditoría.
func (uc *ScheduleUseCase) Create(actor authz.Actor, in dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := authz.Authorize(actor, authz.Requirement{Permissions: []string{entity.PermScheduleCreate}}); err != nil {
		return nil, err
	}
	ownerID, err := uc.resolver.ResolveOwner(authz.KindPet, in.PetID)
	if err != nil {
		return nil, err
	}
	if ownerID != actor.UserID {
		return nil, fmt.Errorf("%w: no puede crear agendamientos para este pet", domain.ErrForbidden)
	}
	status := in.Status
	if status == "" {
		status = entity.StatusPending
	}
	if !entity.IsValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	schedule := &entity.Schedule{
		ID:           uuid.New().String(),
		PetID:        in.PetID,
		Date:         in.Date,
		Service:      in.Service,
		Status:       status,
		Observations: in.Observations,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(schedule); err != nil {
		return nil, err
	}
	if _, err := uc.audit.Record(entity.ActionCreateSchedule, map[string]any{
		"schedule_id": schedule.ID,
		"pet_id":      schedule.PetID,
	}, actor.UserID); err != nil {
		return nil, err
	}
	return toScheduleResponse(schedule), nil
}

// List lista los agendamientos del actor, con filtros opcionales por día
// y servicio. El acotamiento por dueño ocurre en la query.
func (uc *ScheduleUseCase) List(actor authz.Actor, in dto.ListSchedulesRequest) (*dto.ScheduleListResponse, error) {
	if err := authz.Authorize(actor, authz.Requirement{Permissions: []string{entity.PermScheduleRead}}); err != nil {
		return nil, err
	}
	in.DefaultPage()
	filters := repository.ScheduleFilters{Service: in.Service}
	if in.Date != "" {
		day, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filters.Date = &day
	}
	list, err := uc.repo.ListByOwner(actor.UserID, filters, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ScheduleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toScheduleResponse(s))
	}
	return &dto.ScheduleListResponse{Items: items}, nil
}

// GetByID obtiene un agendamiento propio.
func (uc *ScheduleUseCase) GetByID(actor authz.Actor, id string) (*dto.ScheduleResponse, error) {
	if err := authz.Authorize(actor, authz.Requirement{Permissions: []string{entity.PermScheduleRead}}); err != nil {
		return nil, err
	}
	if err := uc.resolver.AssertOwnership(authz.KindSchedule, id, actor.UserID); err != nil {
		return nil, err
	}
	schedule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, domain.ErrNotFound
	}
	return toScheduleResponse(schedule), nil
}

// Update aplica una actualización parcial y orquesta los efectos:
//
//  1. Propiedad (transitiva vía pet); NotFound o Forbidden cortan aquí.
//  2. Capturar el status previo.
//  3. Aplicar solo los campos presentes y persistir.
//  4. Auditar incondicionalmente con old_status, new_status y los cambios.
//     Si la auditoría falla, la operación completa falla.
//  5. Notificar solo si el status realmente cambió, después de auditar.
//     El resultado de la notificación no afecta la respuesta.
func (uc *ScheduleUseCase) Update(actor authz.Actor, id string, in dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := authz.Authorize(actor, authz.Requirement{Permissions: []string{entity.PermScheduleUpdate}}); err != nil {
		return nil, err
	}
	if err := uc.resolver.AssertOwnership(authz.KindSchedule, id, actor.UserID); err != nil {
		return nil, err
	}
	schedule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, domain.ErrNotFound
	}
	oldStatus := schedule.Status

	changes := map[string]any{}
	if in.Date != nil {
		schedule.Date = *in.Date
		changes["date"] = in.Date.Format(time.RFC3339)
	}
	if in.Service != nil {
		schedule.Service = *in.Service
		changes["service"] = *in.Service
	}
	if in.Status != nil {
		if !entity.IsValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		schedule.Status = *in.Status
		changes["status"] = *in.Status
	}
	if in.Observations != nil {
		schedule.Observations = *in.Observations
		changes["observations"] = *in.Observations
	}
	schedule.UpdatedAt = time.Now()
	if err := uc.repo.Update(schedule); err != nil {
		return nil, err
	}

	if _, err := uc.audit.Record(entity.ActionUpdateSchedule, map[string]any{
		"schedule_id": schedule.ID,
		"old_status":  oldStatus,
		"new_status":  schedule.Status,
		"changes":     changes,
	}, actor.UserID); err != nil {
		return nil, err
	}

	if in.Status != nil && oldStatus != *in.Status {
		uc.notifier.NotifyStatusChange(StatusChangePayload{
			ScheduleID: schedule.ID,
			OldStatus:  oldStatus,
			NewStatus:  *in.Status,
		})
	}

	return toScheduleResponse(schedule), nil
}

// Delete elimina un agendamiento propio y lo audita.
func (uc *ScheduleUseCase) Delete(actor authz.Actor, id string) error {
	if err := authz.Authorize(actor, authz.Requirement{Permissions: []string{entity.PermScheduleDelete}}); err != nil {
		return err
	}
	if err := uc.resolver.AssertOwnership(authz.KindSchedule, id, actor.UserID); err != nil {
		return err
	}
	schedule, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if schedule == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if _, err := uc.audit.Record(entity.ActionDeleteSchedule, map[string]any{
		"schedule_id": id,
		"pet_id":      schedule.PetID,
	}, actor.UserID); err != nil {
		return err
	}
	return nil
}

func toScheduleResponse(s *entity.Schedule) *dto.ScheduleResponse {
	if s == nil {
		return nil
	}
	return &dto.ScheduleResponse{
		ID:           s.ID,
		PetID:        s.PetID,
		Date:         s.Date,
		Service:      s.Service,
		Status:       s.Status,
		Observations: s.Observations,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
