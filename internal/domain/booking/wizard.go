package booking

import (
	"strconv"
	"time"

	"github.com/mechhub/portal/internal/httperr"
)

// ======================================================
// WIZARD STEPS
// ======================================================

type Step int

const (
	StepSelectCar Step = iota + 1
	StepChooseService
	StepInstructions
	StepSchedule
	StepConfirm
)

// ======================================================
// WIZARD STATE
// ======================================================

type SelectedService struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Wizard is the explicit tagged state of the multi-step booking flow.
// The flow is strictly linear: no branching, no skipping.
type Wizard struct {
	MechanicID string `json:"mechanicId"`
	Step       Step   `json:"step"`

	CarID        string            `json:"carId"`
	Services     []SelectedService `json:"services"`
	Instructions string            `json:"instructions"`
	Odometer     string            `json:"odometer"`
	Date         string            `json:"date"`
	TimeLabel    string            `json:"timeLabel"`
}

func NewWizard(mechanicID string) *Wizard {
	return &Wizard{
		MechanicID: mechanicID,
		Step:       StepSelectCar,
	}
}

// ======================================================
// TRANSITIONS
// ======================================================

// CanAdvance is the transition table gating Next at the current step.
func (w *Wizard) CanAdvance() bool {
	switch w.Step {
	case StepSelectCar:
		return w.CarID != ""
	case StepChooseService:
		return len(w.Services) > 0
	case StepInstructions:
		return w.Odometer != ""
	case StepSchedule:
		return w.Date != "" && w.TimeLabel != ""
	default:
		return false
	}
}

func (w *Wizard) Next() error {
	if w.Step >= StepConfirm {
		return httperr.ErrBusiness("invalid_step")
	}
	if !w.CanAdvance() {
		return httperr.ErrBusiness("step_incomplete")
	}
	w.Step++
	return nil
}

// Back is unguarded; at the first step it is a no-op.
func (w *Wizard) Back() {
	if w.Step > StepSelectCar {
		w.Step--
	}
}

// ======================================================
// FORM MUTATIONS
// ======================================================

func (w *Wizard) SelectCar(id string) {
	w.CarID = id
}

// ToggleService adds the service to the selection, or removes it when it is
// already selected. The running total follows from the selection set.
func (w *Wizard) ToggleService(svc SelectedService) {
	for i, s := range w.Services {
		if s.ID == svc.ID {
			w.Services = append(w.Services[:i], w.Services[i+1:]...)
			return
		}
	}
	w.Services = append(w.Services, svc)
}

func (w *Wizard) Total() float64 {
	var total float64
	for _, s := range w.Services {
		total += s.Price
	}
	return total
}

func (w *Wizard) SetDetails(instructions, odometer string) {
	w.Instructions = instructions
	w.Odometer = odometer
}

// SetSchedule records the chosen date and time slot. The label must come
// from the fixed slot grid.
func (w *Wizard) SetSchedule(date, label string) error {
	if !IsSlotLabel(label) {
		return httperr.ErrBusiness("invalid_time_slot")
	}
	w.Date = date
	w.TimeLabel = label
	return nil
}

// ======================================================
// SUBMISSION
// ======================================================

type Payload struct {
	MechanicID      string            `json:"mechanicId"`
	CarID           string            `json:"carId"`
	Services        []SelectedService `json:"services"`
	Instructions    string            `json:"instructions"`
	OdometerReading int               `json:"odometerReading"`
	DateTime        time.Time         `json:"dateTime"`
	TotalPrice      float64           `json:"totalPrice"`
}

// BuildPayload assembles the booking-creation request from the wizard state.
// Only valid at the confirm step.
func (w *Wizard) BuildPayload(now time.Time, loc *time.Location) (*Payload, error) {
	if w.Step != StepConfirm {
		return nil, httperr.ErrBusiness("invalid_step")
	}

	odometer, _ := strconv.Atoi(w.Odometer)

	return &Payload{
		MechanicID:      w.MechanicID,
		CarID:           w.CarID,
		Services:        w.Services,
		Instructions:    w.Instructions,
		OdometerReading: odometer,
		DateTime:        NormalizeDateTime(w.Date, w.TimeLabel, now, loc),
		TotalPrice:      w.Total(),
	}, nil
}
