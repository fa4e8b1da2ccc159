/*
Package resilience provides a circuit breaker for operations that are retried
in a loop, such as re-dialing the compositor's event socket.

A breaker starts closed and lets every attempt through. After ReadyToTrip
reports too many failures it opens and refuses attempts with ErrCircuitOpen
until Timeout has elapsed. It then lets MaxRequests trial attempts through
(half-open): enough successes close it again, one failure reopens it.

	breaker := resilience.New("reconnect", resilience.Settings{
		Timeout:     30 * time.Second,
		ReadyToTrip: resilience.TripAfter(5),
	})

	err := breaker.Do(func() error {
		return dial(ctx)
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		// give up
	}
*/
package resilience
