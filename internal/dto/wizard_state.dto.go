package dto

import "github.com/mechhub/portal/internal/domain/booking"

// WizardStateDTO is what every wizard endpoint returns: the form so far,
// whether Next is currently enabled, and the running total.
type WizardStateDTO struct {
	SessionID  string          `json:"sessionId"`
	Step       booking.Step    `json:"step"`
	CanAdvance bool            `json:"canAdvance"`
	Total      float64         `json:"total"`
	TimeSlots  []string        `json:"timeSlots,omitempty"`
	Form       *booking.Wizard `json:"form"`
}

func WizardState(sessionID string, w *booking.Wizard) WizardStateDTO {
	state := WizardStateDTO{
		SessionID:  sessionID,
		Step:       w.Step,
		CanAdvance: w.CanAdvance(),
		Total:      w.Total(),
		Form:       w,
	}

	if w.Step == booking.StepSchedule {
		state.TimeSlots = booking.TimeSlots()
	}

	return state
}
