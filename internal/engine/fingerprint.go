package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// Fingerprint derives the stable dedup identity for a (rule, resource,
// metric) triple. Same triple always yields the same key, no side effects.
func Fingerprint(ruleID uuid.UUID, resource, metric string) string {
	return fmt.Sprintf("%s:%s:%s", ruleID, resource, metric)
}
