package usecase_test

import (
	"errors"
	"sort"

	"github.com/vetcare/petclinic-pro/internal/application/usecase"
	"github.com/vetcare/petclinic-pro/internal/domain/entity"
	"github.com/vetcare/petclinic-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

type memPetRepo struct {
	pets map[string]*entity.Pet
}

func newMemPetRepo() *memPetRepo { return &memPetRepo{pets: map[string]*entity.Pet{}} }

func (m *memPetRepo) Create(p *entity.Pet) error             { cp := *p; m.pets[p.ID] = &cp; return nil }
func (m *memPetRepo) GetByID(id string) (*entity.Pet, error) {
	if p, ok := m.pets[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}
func (m *memPetRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Pet, error) {
	var out []*entity.Pet
	for _, p := range m.pets {
		if p.OwnerID == ownerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (m *memPetRepo) Update(p *entity.Pet) error { cp := *p; m.pets[p.ID] = &cp; return nil }
func (m *memPetRepo) Delete(id string) error     { delete(m.pets, id); return nil }

type memScheduleRepo struct {
	schedules map[string]*entity.Schedule
	failOn    string // "create" | "update" | "delete" fuerza un error
}

func newMemScheduleRepo() *memScheduleRepo {
	return &memScheduleRepo{schedules: map[string]*entity.Schedule{}}
}

var errStorage = errors.New("storage caído")

func (m *memScheduleRepo) Create(s *entity.Schedule) error {
	if m.failOn == "create" {
		return errStorage
	}
	cp := *s
	m.schedules[s.ID] = &cp
	return nil
}
func (m *memScheduleRepo) GetByID(id string) (*entity.Schedule, error) {
	if s, ok := m.schedules[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}
func (m *memScheduleRepo) ListByOwner(ownerID string, filters repository.ScheduleFilters, limit, offset int) ([]*entity.Schedule, error) {
	var out []*entity.Schedule
	for _, s := range m.schedules {
		if filters.Service != "" && s.Service != filters.Service {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
func (m *memScheduleRepo) Update(s *entity.Schedule) error {
	if m.failOn == "update" {
		return errStorage
	}
	cp := *s
	m.schedules[s.ID] = &cp
	return nil
}
func (m *memScheduleRepo) Delete(id string) error {
	if m.failOn == "delete" {
		return errStorage
	}
	delete(m.schedules, id)
	return nil
}

// recordingAudit implementa usecase.AuditRecorder registrando cada llamada.
type recordingAudit struct {
	records []recordedAudit
	fail    bool
}

type recordedAudit struct {
	Action  string
	Details map[string]any
	UserID  string
}

var errAudit = errors.New("auditoría caída")

func (r *recordingAudit) Record(action string, details map[string]any, userID string) (*entity.AuditLog, error) {
	if r.fail {
		return nil, errAudit
	}
	r.records = append(r.records, recordedAudit{Action: action, Details: details, UserID: userID})
	return &entity.AuditLog{Action: action, Details: details, UserID: userID}, nil
}

// recordingNotifier implementa usecase.StatusNotifier registrando cada despacho.
type recordingNotifier struct {
	payloads []usecase.StatusChangePayload
}

func (r *recordingNotifier) NotifyStatusChange(payload usecase.StatusChangePayload) {
	r.payloads = append(r.payloads, payload)
}
