package fixtures

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a match id is absent from every configured
// competition's fixture list. It is the only terminal failure the detail
// lookup produces; source failures degrade to empty contributions instead.
type NotFoundError struct {
	MatchID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("match %s not found in any competition", e.MatchID)
}

// AsNotFound attempts to unwrap an error into a NotFoundError.
func AsNotFound(err error) (*NotFoundError, bool) {
	var nfErr *NotFoundError
	if errors.As(err, &nfErr) {
		return nfErr, true
	}
	return nil, false
}
