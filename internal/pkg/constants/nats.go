package constants

// NATS subjects for ride lifecycle events
const (
	SubjectRideCreated     = "ride.created"
	SubjectRideAssigned    = "ride.assigned"
	SubjectRideTransferred = "ride.transferred"
	SubjectRideCompleted   = "ride.completed"
	SubjectRideCancelled   = "ride.cancelled"
)
