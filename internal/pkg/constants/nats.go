package constants

// NATS subjects for ride lifecycle events. Consumers (notification
// fan-out, payment read models) live outside this service.
const (
	SubjectRideCreated   = "ride.created"
	SubjectRideAccepted  = "ride.accepted"
	SubjectRideArrived   = "ride.arrived"
	SubjectRideStarted   = "ride.started"
	SubjectRideCompleted = "ride.completed"
	SubjectRideCancelled = "ride.cancelled"
	SubjectRideRated     = "ride.rated"
)
