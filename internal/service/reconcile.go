package service

import "github.com/iliyamo/hotel-housekeeping/internal/model"

// Reconcile returns the pair that is actually persisted. A room whose
// availability allows cleaning is always recorded as not yet checked out;
// any other pair passes through unchanged. It runs on every write path.
func Reconcile(status model.CleaningStatus, availability model.CleaningAvailability) (model.CleaningStatus, model.CleaningAvailability) {
	if availability.AllowsCleaning() {
		return model.StatusNotYetCheckedOut, availability
	}
	return status, availability
}

func reconcileCleaning(c model.Cleaning) model.Cleaning {
	c.CleaningStatus, c.CleaningAvailability = Reconcile(c.CleaningStatus, c.CleaningAvailability)
	return c
}
