package holdem

// Result describes how a hand was settled
type Result[P Player[P]] struct {
	Winners []P
	Pot     int
	// Payouts maps player ids to the chips they won
	Payouts map[string]int
}

// Observer is notified of hand lifecycle events
// Notifications are delivered synchronously, after the instance has been updated.
type Observer[P Player[P]] interface {
	HandStarted(i *Instance[P])
	HandEnded(i *Instance[P], result Result[P])
}

// NopObserver ignores every notification
type NopObserver[P Player[P]] struct{}

// HandStarted does nothing
func (NopObserver[P]) HandStarted(*Instance[P]) {}

// HandEnded does nothing
func (NopObserver[P]) HandEnded(*Instance[P], Result[P]) {}

type observers[P Player[P]] []Observer[P]

// Observers notifies every observer in order
func Observers[P Player[P]](obs ...Observer[P]) Observer[P] {
	return observers[P](obs)
}

func (o observers[P]) HandStarted(i *Instance[P]) {
	for _, ob := range o {
		ob.HandStarted(i)
	}
}

func (o observers[P]) HandEnded(i *Instance[P], result Result[P]) {
	for _, ob := range o {
		ob.HandEnded(i, result)
	}
}
