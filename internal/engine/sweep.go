package engine

import (
	"log"
	"time"

	"alertmon/internal/models"
)

func (e *Engine) sweepLoop() {
	defer close(e.done)
	ticker := time.NewTicker(e.opts.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.sweep(time.Now().UTC())
		case <-e.stop:
			return
		}
	}
}

// sweep is the periodic housekeeping pass: expire stuck pending alerts,
// reopen suppressions whose deadline elapsed, and evict resolved
// stragglers older than the retention window.
func (e *Engine) sweep(now time.Time) {
	var expired, reopened int

	for _, ent := range e.index.Snapshot() {
		ent.mu.Lock()
		if ent.evicted {
			ent.mu.Unlock()
			continue
		}
		a := ent.alert

		switch a.Status {
		case models.StatusPending:
			if now.Sub(a.StartsAt) > e.opts.PendingCeiling {
				a.Status = models.StatusExpired
				a.LastUpdated = now
				e.scheduler.Cancel(a.ID)
				e.index.Remove(ent)
				e.correlator.RemoveAlert(a.ID)
				snap := a.Clone()
				ent.mu.Unlock()

				expired++
				e.persist(snap)
				e.publish(snap, models.EventExpired)
				continue
			}

		case models.StatusSuppressed:
			if !a.Suppressed(now) {
				a.Status = models.StatusPending
				a.SuppressedUntil = nil
				a.SuppressReason = ""
				a.LastUpdated = now
				if rule, ok := e.rules.Get(a.RuleID); ok {
					e.scheduler.Schedule(a.ID, rule.ForDuration, func() { e.firePending(ent) })
				}
				snap := a.Clone()
				ent.mu.Unlock()

				reopened++
				log.Printf("Suppression expired for alert %s, reopening", snap.ID)
				e.persist(snap)
				e.publish(snap, models.EventCreated)
				continue
			}

		case models.StatusResolved:
			// Resolved alerts are evicted at transition time; anything
			// still here past retention is a leak worth clearing.
			if a.ResolvedAt != nil && now.Sub(*a.ResolvedAt) > e.opts.ResolvedRetention {
				e.index.Remove(ent)
				e.correlator.RemoveAlert(a.ID)
				ent.mu.Unlock()
				continue
			}
		}
		ent.mu.Unlock()
	}

	// Catch pending alerts that outlived a restart without a timer.
	strays, err := e.repo.FindExpiredPending(now.Add(-e.opts.PendingCeiling))
	if err != nil {
		log.Printf("Sweep: expired pending query failed: %v", err)
	} else {
		for _, a := range strays {
			if _, live := e.index.LookupID(a.ID); live {
				continue
			}
			a.Status = models.StatusExpired
			a.LastUpdated = now
			e.persist(a)
			expired++
		}
	}

	if expired > 0 || reopened > 0 {
		log.Printf("Sweep complete: %d expired, %d reopened", expired, reopened)
	}
	e.updateGauges()
}
