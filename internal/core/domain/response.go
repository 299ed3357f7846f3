package domain

// Response is the outcome of handling one input line.
type Response struct {
	// Text is the message shown to the user.
	Text string
	// Continue is false once the user asked to leave.
	Continue bool
	// Mutated reports that the task list changed and should be persisted.
	Mutated bool
	// Failed reports that the line was rejected without touching the task list.
	Failed bool
}
