package store

import "github.com/sazid-zero/SUST-Research-Hub-sub001/internal/models"

// Registration requests move pending -> approved or pending -> rejected
// and nothing else; both end states are terminal.
var registrationTransitions = map[string][]string{
	"approve": {models.RequestPending},
	"reject":  {models.RequestPending},
}

// Content moves draft -> pending -> published|rejected.
var contentTransitions = map[string][]string{
	"submit":  {models.ContentDraft},
	"publish": {models.ContentPending},
	"reject":  {models.ContentPending},
}

func ValidRegistrationTransition(action, fromStatus string) bool {
	return validTransition(registrationTransitions, action, fromStatus)
}

func ValidContentTransition(action, fromStatus string) bool {
	return validTransition(contentTransitions, action, fromStatus)
}

func validTransition(table map[string][]string, action, fromStatus string) bool {
	allowed, ok := table[action]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == fromStatus {
			return true
		}
	}
	return false
}
