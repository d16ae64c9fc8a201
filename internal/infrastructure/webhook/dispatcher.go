// Package webhook implementa el despacho saliente de cambios de estado de
// agendamientos. Entrega best-effort, at-most-once: sin cola, sin
// reintentos, y ningún fallo se propaga al caller — el cambio de estado en
// DB es la fuente de verdad, la notificación es solo aviso.
package webhook

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/vetcare/petclinic-pro/internal/application/usecase"
	"github.com/vetcare/petclinic-pro/pkg/logger"
)

var _ usecase.StatusNotifier = (*Dispatcher)(nil)

// Dispatcher envía un POST JSON al endpoint configurado.
type Dispatcher struct {
	url    string
	client *http.Client
	log    *logger.Logger
}

// NewDispatcher construye el dispatcher. url vacía deshabilita el envío.
func NewDispatcher(url string, timeout time.Duration, log *logger.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// NotifyStatusChange envía el payload al endpoint configurado. Sin URL hace
// no-op con warning. Cualquier fallo de transporte o respuesta no-2xx se
// loguea y se traga.
func (d *Dispatcher) NotifyStatusChange(payload usecase.StatusChangePayload) {
	if d.url == "" {
		d.log.Warn().Msg("WEBHOOK_URL no configurada, omitiendo notificación")
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		d.log.Error().Err(err).Msg("serializar payload del webhook")
		return
	}

	resp, err := d.client.Post(d.url, "application/json", bytes.NewReader(body))
	if err != nil {
		d.log.Error().Err(err).Str("schedule_id", payload.ScheduleID).Msg("enviar webhook")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		d.log.Error().
			Int("status", resp.StatusCode).
			Str("schedule_id", payload.ScheduleID).
			Msg("webhook respondió con error")
		return
	}

	d.log.Info().
		Str("schedule_id", payload.ScheduleID).
		Str("old_status", payload.OldStatus).
		Str("new_status", payload.NewStatus).
		Msg("webhook enviado")
}
