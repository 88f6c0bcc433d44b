// Package impl contains the storefront usecase implementations.
package impl

// optimistic runs a local-first mutation. apply performs the local state
// change and returns the closure that restores the pre-mutation snapshot;
// call performs the backend mutation. When the backend refuses, the
// snapshot is restored and the error returned. When it succeeds, the
// optimistic state stands as the new source of truth; there is no
// re-fetch-and-reconcile step.
func optimistic(apply func() (rollback func()), call func() error) error {
	rollback := apply()
	if err := call(); err != nil {
		rollback()

		return err
	}

	return nil
}
