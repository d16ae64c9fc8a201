package usecase

import "github.com/vetcare/petclinic-pro/internal/domain/entity"

// AuditRecorder contrato mínimo de registro de auditoría que necesita el
// orquestador de schedules. Lo implementa *AuditUseCase; la interfaz
// permite sustituirlo en tests.
type AuditRecorder interface {
	Record(action string, details map[string]any, userID string) (*entity.AuditLog, error)
}

// StatusChangePayload es el cuerpo del webhook de cambio de estado.
// Efímero: no se persiste, existe solo durante un intento de despacho.
type StatusChangePayload struct {
	ScheduleID string `json:"scheduleId"`
	OldStatus  string `json:"oldStatus"`
	NewStatus  string `json:"newStatus"`
}

// StatusNotifier puerto de notificación saliente best-effort. La
// implementación nunca devuelve error: entrega at-most-once, sin cola ni
// reintentos. Lo implementa webhook.Dispatcher.
type StatusNotifier interface {
	NotifyStatusChange(payload StatusChangePayload)
}

// VoucherGenerator genera el comprobante PDF de un agendamiento.
// Lo implementa pdf.MarotoVoucherGenerator.
type VoucherGenerator interface {
	GenerateVoucher(schedule *entity.Schedule, pet *entity.Pet, owner *entity.User) ([]byte, error)
}
