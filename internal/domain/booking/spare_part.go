package booking

// ===============================
// Spare Part Request Status
// ===============================

type PartStatus string

const (
	PartPending    PartStatus = "pending"
	PartApproved   PartStatus = "approved"
	PartDispatched PartStatus = "dispatched"
	PartDelivered  PartStatus = "delivered"
	PartRejected   PartStatus = "rejected"
)

// PartActions returns the forward-only next statuses offered for a request.
// No reverse transitions exist in the client; delivered and rejected offer
// nothing.
func PartActions(s PartStatus) []PartStatus {
	switch s {
	case PartPending:
		return []PartStatus{PartApproved, PartRejected}
	case PartApproved:
		return []PartStatus{PartDispatched}
	case PartDispatched:
		return []PartStatus{PartDelivered}
	default:
		return nil
	}
}
