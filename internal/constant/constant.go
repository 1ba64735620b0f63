package constant

const (
	// LeaderboardCapacity is the number of entries a per-line leaderboard retains.
	// Entries below the cutoff are advisory-dropped, never tracked.
	LeaderboardCapacity = 50

	// PatchScoreMin and PatchScoreMax bound the P.A.T.C.H. value of a submission.
	PatchScoreMin = 0.0
	PatchScoreMax = 100.0

	ContextKeyRequestID = "requestID"

	RequestIDHeaderKey = "X-Platina-Request-ID"
)

const (
	// RedsyncKeyRebuild guards the full aggregate rebuild across instances.
	RedsyncKeyRebuild = "mutex:aggregates:rebuild"

	// RedsyncKeyProgressWorker guards the periodic progress recorder across instances.
	RedsyncKeyProgressWorker = "mutex:workers:progress"
)

const (
	// NatsSubjectResultAccepted carries committed accepted-result events.
	NatsSubjectResultAccepted = "PLATINA.RESULT.ACCEPTED"
)
