package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/vetcare/petclinic-pro/internal/application/dto"
	"github.com/vetcare/petclinic-pro/internal/domain/authz"
	"github.com/vetcare/petclinic-pro/internal/domain/entity"
	"github.com/vetcare/petclinic-pro/internal/domain/repository"
)

// AuditUseCase registro y consulta de auditoría. Record es síncrono con
// respecto a la mutación que lo dispara: si la escritura falla, el caller
// debe abortar (la auditabilidad es propiedad de corrección, no
// best-effort). Los registros jamás se mutan ni se borran.
type AuditUseCase struct {
	repo repository.AuditLogRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// Record escribe un registro inmutable de auditoría y lo devuelve.
func (uc *AuditUseCase) Record(action string, details map[string]any, userID string) (*entity.AuditLog, error) {
	log := &entity.AuditLog{
		ID:        uuid.New().String(),
		Action:    action,
		Details:   details,
		UserID:    userID,
		Timestamp: time.Now(),
	}
	if err := uc.repo.Create(log); err != nil {
		return nil, err
	}
	return log, nil
}

// List devuelve la auditoría más reciente primero, con filtro opcional por
// usuario. Solo ADMIN con audit_read: el rol y el permiso se exigen por
// separado, tener uno no implica el otro.
func (uc *AuditUseCase) List(actor authz.Actor, userID string, page dto.PageRequest) (*dto.AuditListResponse, error) {
	if err := authz.Authorize(actor, authz.Requirement{
		Role:        entity.RoleAdmin,
		Permissions: []string{entity.PermAuditRead},
	}); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.repo.List(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.AuditLogResponse{
			ID:        l.ID,
			Action:    l.Action,
			Details:   l.Details,
			UserID:    l.UserID,
			Timestamp: l.Timestamp,
		})
	}
	return &dto.AuditListResponse{Items: items}, nil
}
