package txmonitor

import "errors"

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrTransientFetch wraps any failure to retrieve transactions from the
	// indexer. The affected address is treated as having no activity for the
	// current pass and is retried on the next one.
	ErrTransientFetch = errors.New("transient fetch failure")

	// ErrPersistence wraps failures reading or writing the signature ledger or
	// the subscriber store.
	ErrPersistence = errors.New("persistence failure")

	// ErrDispatch wraps failures delivering a notification. Dispatch errors are
	// logged and never retried.
	ErrDispatch = errors.New("dispatch failure")

	// ErrPassLease wraps failures checking the cross-instance pass lease.
	ErrPassLease = errors.New("pass lease unavailable")

	// ErrSubscriberNotFound is returned by SubscriberStorage when no user
	// watches the given address.
	ErrSubscriberNotFound = errors.New("subscriber not found")
)
