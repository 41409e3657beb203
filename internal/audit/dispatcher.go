package audit

import "github.com/sirupsen/logrus"

// Event records one admin action against a record (status change, reassign,
// delete). The portal owns no database; the trail goes to the structured log.
type Event struct {
	Actor    string
	Action   string
	Entity   string
	EntityID string
	Metadata map[string]any
}

type Dispatcher struct {
	log   *logrus.Entry
	queue chan Event
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		log:   logrus.WithField("component", "audit"),
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		fields := logrus.Fields{
			"actor":  ev.Actor,
			"action": ev.Action,
			"entity": ev.Entity,
		}
		if ev.EntityID != "" {
			fields["entity_id"] = ev.EntityID
		}
		for k, v := range ev.Metadata {
			fields[k] = v
		}
		d.log.WithFields(fields).Info("audit")
	}
}

// Dispatch never blocks the request path; on a full queue the event is
// dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event")
	}
}
