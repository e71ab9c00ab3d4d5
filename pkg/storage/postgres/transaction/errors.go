package transaction

import (
	"fmt"
)

// HandleError tags a failure raised inside a transaction with the step that produced it.
// Sentinel errors stay reachable through errors.Is.
func HandleError(operation, step string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %s: %w", operation, step, err)
}
