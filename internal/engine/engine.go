package engine

import (
	"fmt"
	"log"
	"sort"
	"time"

	"alertmon/internal/metrics"
	"alertmon/internal/models"
	"alertmon/internal/repository"
	"alertmon/internal/rules"

	"github.com/google/uuid"
)

// Notifier hands a lifecycle event to the notification dispatcher.
// Fire-and-forget: a failure never rolls back the state change that
// produced the event.
type Notifier interface {
	Notify(event models.AlertEvent) error
}

// Publisher pushes a lifecycle event onto the event bus for downstream
// consumers. Same fire-and-forget contract as Notifier.
type Publisher interface {
	Publish(event models.AlertEvent) error
}

// Options are the engine tuning knobs. Zero values fall back to the
// defaults the platform ships with.
type Options struct {
	SimilarityThreshold float64
	SweepInterval       time.Duration
	ResolvedRetention   time.Duration
	PendingCeiling      time.Duration
}

func (o Options) withDefaults() Options {
	if o.SimilarityThreshold == 0 {
		o.SimilarityThreshold = 0.7
	}
	if o.SweepInterval == 0 {
		o.SweepInterval = 5 * time.Minute
	}
	if o.ResolvedRetention == 0 {
		o.ResolvedRetention = 24 * time.Hour
	}
	if o.PendingCeiling == 0 {
		o.PendingCeiling = time.Hour
	}
	return o
}

// Engine is the processing orchestrator: one pipeline per incoming
// evaluation result, plus the lifecycle operations external callers use.
type Engine struct {
	opts       Options
	repo       repository.AlertRepository
	rules      *rules.Store
	notifier   Notifier
	publisher  Publisher
	metrics    *metrics.Metrics
	index      *ActiveIndex
	correlator *Correlator
	scheduler  *Scheduler
	stats      Stats

	started bool
	stopped bool
	stop    chan struct{}
	done    chan struct{}
}

func New(opts Options, repo repository.AlertRepository, ruleStore *rules.Store,
	notifier Notifier, publisher Publisher, m *metrics.Metrics) *Engine {

	opts = opts.withDefaults()
	return &Engine{
		opts:       opts,
		repo:       repo,
		rules:      ruleStore,
		notifier:   notifier,
		publisher:  publisher,
		metrics:    m,
		index:      NewActiveIndex(),
		correlator: NewCorrelator(opts.SimilarityThreshold),
		scheduler:  NewScheduler(),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start launches the periodic sweep. Stop shuts it down and cancels all
// outstanding per-alert timers.
func (e *Engine) Start() {
	if e.started {
		return
	}
	e.started = true
	go e.sweepLoop()
}

// Stop is idempotent and safe to call without a prior Start.
func (e *Engine) Stop() {
	if e.started && !e.stopped {
		e.stopped = true
		close(e.stop)
		<-e.done
	}
	e.scheduler.CancelAll()
}

// Restore rebuilds the active index from persistence after a restart.
// Two non-terminal alerts sharing a fingerprint is a fatal invariant
// violation for that fingerprint and aborts the restore.
func (e *Engine) Restore() error {
	active, err := e.repo.FindActiveAlertsInWindow(time.Time{}, []models.Status{
		models.StatusPending,
		models.StatusFiring,
		models.StatusAcknowledged,
		models.StatusEscalated,
		models.StatusSuppressed,
	})
	if err != nil {
		return fmt.Errorf("loading active alerts: %w", err)
	}

	now := time.Now().UTC()
	seen := make(map[string]uuid.UUID)
	for _, a := range active {
		if prev, dup := seen[a.Fingerprint]; dup {
			return &InvariantViolationError{
				Fingerprint: a.Fingerprint,
				AlertIDs:    []uuid.UUID{prev, a.ID},
			}
		}
		seen[a.Fingerprint] = a.ID

		alert := a.Clone()
		ent, inserted := e.index.InsertIfAbsent(alert)
		if !inserted {
			continue
		}
		// Correlation groups live in memory only; stale group ids from a
		// previous process are meaningless after a restart.
		if alert.CorrelationID != "" {
			alert.CorrelationID = ""
			e.persist(alert.Clone())
		}
		if alert.Status == models.StatusPending {
			if rule, ok := e.rules.Get(alert.RuleID); ok {
				remaining := alert.StartsAt.Add(rule.ForDuration).Sub(now)
				if remaining < 0 {
					remaining = 0
				}
				e.scheduler.Schedule(alert.ID, remaining, func() { e.firePending(ent) })
			} else {
				log.Printf("Restore: alert %s references unknown rule %s, firing timer not re-armed", alert.ID, alert.RuleID)
			}
		}
	}
	e.updateGauges()
	log.Printf("Restored %d active alerts from persistence", len(active))
	return nil
}

// Process runs one evaluation result through the pipeline.
func (e *Engine) Process(result *models.EvaluationResult) {
	start := time.Now()
	defer func() {
		if e.metrics != nil {
			e.metrics.SetAlertProcessingTime(time.Since(start).Seconds())
		}
	}()

	rule := result.Rule
	now := time.Now().UTC()
	e.rules.MarkEvaluated(rule, now)

	if !result.Triggered {
		e.handleNotTriggered(result, now)
		return
	}

	if e.rules.InSuppressionWindow(rule, now) {
		log.Printf("Rule %s in suppression window, dropping trigger for %s/%s",
			rule.Name, result.Resource, result.Metric)
		if e.metrics != nil {
			e.metrics.IncSuppressionDrops()
		}
		return
	}

	fp := Fingerprint(rule.ID, result.Resource, result.Metric)
	for {
		if ent, ok := e.index.Lookup(fp); ok {
			ent.mu.Lock()
			if ent.evicted {
				ent.mu.Unlock()
				continue // raced with a terminal transition, re-check the index
			}
			snap := e.updateDuplicateLocked(ent, result, now)
			ent.mu.Unlock()

			e.persist(snap)
			e.stats.duplicates.Add(1)
			if e.metrics != nil {
				e.metrics.IncDuplicates()
			}
			e.rules.MarkTriggered(rule, now)
			return
		}

		alert := e.newAlert(result, fp, now)
		ent, inserted := e.index.InsertIfAbsent(alert)
		if !inserted {
			continue // another worker created it first, treat ours as a duplicate
		}

		e.processNew(ent, rule)
		e.rules.MarkTriggered(rule, now)
		return
	}
}

// updateDuplicateLocked collapses a repeat trigger into the existing
// alert. Status and escalation level are deliberately untouched.
func (e *Engine) updateDuplicateLocked(ent *entry, result *models.EvaluationResult, now time.Time) *models.Alert {
	a := ent.alert
	a.LastUpdated = now
	a.DuplicateCount++
	a.AddAnnotation("last_evaluation", now.Format(time.RFC3339))
	a.AddAnnotation("current_value", fmt.Sprintf("%.2f", result.ActualValue))
	return a.Clone()
}

func (e *Engine) newAlert(result *models.EvaluationResult, fingerprint string, now time.Time) *models.Alert {
	rule := result.Rule
	alert := &models.Alert{
		ID:          uuid.New(),
		Fingerprint: fingerprint,
		RuleID:      rule.ID,
		RuleName:    rule.Name,
		Resource:    result.Resource,
		Metric:      result.Metric,
		Severity:    rule.Severity,
		Status:      models.StatusPending,
		Summary:     fmt.Sprintf("%s on %s", rule.Name, result.Resource),
		Description: fmt.Sprintf("Alert rule '%s' triggered for resource '%s'. Metric '%s' value %.2f exceeds threshold %.2f",
			rule.Name, result.Resource, result.Metric, result.ActualValue, result.ThresholdValue),
		Labels:      make(map[string]string, len(rule.Labels)+4),
		Annotations: make(map[string]string, len(rule.Annotations)+3),
		StartsAt:    now,
		LastUpdated: now,
	}

	for k, v := range rule.Labels {
		alert.Labels[k] = v
	}
	for k, v := range rule.Annotations {
		alert.Annotations[k] = v
	}
	alert.AddLabel("resource", result.Resource)
	alert.AddLabel("metric_name", result.Metric)
	alert.AddLabel("rule_id", rule.ID.String())
	if rule.Category != "" {
		alert.AddLabel("category", rule.Category)
	}
	alert.AddAnnotation("threshold_value", fmt.Sprintf("%.2f", result.ThresholdValue))
	alert.AddAnnotation("actual_value", fmt.Sprintf("%.2f", result.ActualValue))
	alert.AddAnnotation("evaluation_time", now.Format(time.RFC3339))

	return alert
}

// processNew runs a freshly indexed alert through correlation,
// scheduling, and the created event.
func (e *Engine) processNew(ent *entry, rule *models.AlertRule) {
	e.stats.processed.Add(1)

	ent.mu.Lock()
	snap := ent.alert.Clone()
	ent.mu.Unlock()

	log.Printf("Processing new alert: %s (ID: %s)", snap.Summary, snap.ID)
	if e.metrics != nil {
		e.metrics.IncAlertsCreated(string(snap.Severity), snap.RuleName)
	}
	e.persist(snap)

	if rule.CorrelationEnabled {
		e.correlate(ent, rule)
	}

	e.scheduler.Schedule(snap.ID, rule.ForDuration, func() { e.firePending(ent) })

	ent.mu.Lock()
	snap = ent.alert.Clone()
	ent.mu.Unlock()
	e.emit(snap, models.EventCreated)
	e.updateGauges()
}

// correlate gathers active alerts inside the rule's correlation window
// and lets the correlator cluster them. Candidate snapshots are taken
// under each entry's own lock; never while holding another entry's.
func (e *Engine) correlate(ent *entry, rule *models.AlertRule) {
	ent.mu.Lock()
	self := ent.alert.Clone()
	ent.mu.Unlock()

	windowStart := time.Now().UTC().Add(-rule.CorrelationWindow)
	var candidates []*models.Alert
	for _, cand := range e.index.Snapshot() {
		if cand == ent {
			continue
		}
		cand.mu.Lock()
		if !cand.evicted && cand.alert.Status.Active() && !cand.alert.StartsAt.Before(windowStart) {
			candidates = append(candidates, cand.alert.Clone())
		}
		cand.mu.Unlock()
	}

	groupID, joined, ok := e.correlator.Attempt(self, candidates)
	if !ok {
		return
	}

	e.stats.correlated.Add(1)
	if e.metrics != nil {
		e.metrics.IncCorrelated()
	}

	e.setCorrelationID(ent, groupID)
	for _, member := range joined {
		if ment, found := e.index.LookupID(member.ID); found {
			e.setCorrelationID(ment, groupID)
		} else {
			// Member resolved while we were grouping; drop the ghost.
			e.correlator.RemoveAlert(member.ID)
		}
	}

	log.Printf("Alert %s correlated with %d other alerts in group %s", self.ID, len(joined), groupID)
	e.updateGauges()
}

func (e *Engine) setCorrelationID(ent *entry, groupID string) {
	ent.mu.Lock()
	if ent.evicted {
		id := ent.alert.ID
		ent.mu.Unlock()
		e.correlator.RemoveAlert(id)
		return
	}
	ent.alert.CorrelationID = groupID
	snap := ent.alert.Clone()
	ent.mu.Unlock()
	e.persist(snap)
}

// firePending is the scheduled pending->firing transition. If the alert
// moved on before the timer fired, this is a no-op.
func (e *Engine) firePending(ent *entry) {
	ent.mu.Lock()
	if ent.evicted || ent.alert.Status != models.StatusPending {
		ent.mu.Unlock()
		return
	}
	now := time.Now().UTC()
	ent.alert.Status = models.StatusFiring
	ent.alert.LastUpdated = now
	snap := ent.alert.Clone()
	ent.mu.Unlock()

	log.Printf("Alert %s transitioned to FIRING", snap.ID)
	e.persist(snap)
	e.emit(snap, models.EventFiring)
}

// handleNotTriggered is the non-triggered path: auto-resolve the active
// alert once the condition has been absent long enough, otherwise leave
// it alone.
func (e *Engine) handleNotTriggered(result *models.EvaluationResult, now time.Time) {
	rule := result.Rule
	if !rule.AutoResolveEnabled {
		return
	}

	fp := Fingerprint(rule.ID, result.Resource, result.Metric)
	ent, ok := e.index.Lookup(fp)
	if !ok {
		return
	}

	ent.mu.Lock()
	if ent.evicted || ent.alert.Status.Terminal() {
		ent.mu.Unlock()
		return
	}
	if now.Sub(ent.alert.LastUpdated) < rule.AutoResolveDuration {
		ent.mu.Unlock()
		return
	}
	snap := e.resolveLocked(ent, "system", "Auto-resolved: condition no longer met", true)
	ent.mu.Unlock()

	e.stats.autoResolved.Add(1)
	if e.metrics != nil {
		e.metrics.IncAutoResolved()
	}
	e.persist(snap)
	e.emit(snap, models.EventResolved)
	e.updateGauges()
}

// resolveLocked applies the terminal resolve transition. Caller holds
// ent.mu; persistence and events happen after the lock is released.
func (e *Engine) resolveLocked(ent *entry, actor, note string, autoResolved bool) *models.Alert {
	now := time.Now().UTC()
	a := ent.alert
	a.Status = models.StatusResolved
	a.ResolvedAt = &now
	a.ResolvedBy = actor
	a.ResolutionNote = note
	a.AutoResolved = autoResolved
	a.LastUpdated = now

	e.scheduler.Cancel(a.ID)
	e.index.Remove(ent)
	e.correlator.RemoveAlert(a.ID)
	return a.Clone()
}

// Acknowledge marks the alert as being handled and cancels its pending
// escalation timers.
func (e *Engine) Acknowledge(id uuid.UUID, actor, note string) (*models.Alert, error) {
	ent, ok := e.index.LookupID(id)
	if !ok {
		return nil, e.missing(id, "acknowledge")
	}

	ent.mu.Lock()
	if ent.evicted {
		ent.mu.Unlock()
		return nil, e.missing(id, "acknowledge")
	}
	a := ent.alert
	if !a.Status.CanAcknowledge() {
		status := a.Status
		ent.mu.Unlock()
		return nil, &StateConflictError{AlertID: id, Status: status, Op: "acknowledge"}
	}
	now := time.Now().UTC()
	a.Status = models.StatusAcknowledged
	a.AcknowledgedAt = &now
	a.AcknowledgedBy = actor
	a.AckNote = note
	a.LastUpdated = now
	e.scheduler.Cancel(id)
	snap := a.Clone()
	ent.mu.Unlock()

	e.persist(snap)
	e.emit(snap, models.EventAcknowledged)
	return snap, nil
}

// Resolve closes out the alert and optionally cascades to every other
// active alert in its correlation group.
func (e *Engine) Resolve(id uuid.UUID, actor, note string, resolveCorrelated bool) (*models.Alert, error) {
	ent, ok := e.index.LookupID(id)
	if !ok {
		return nil, e.missing(id, "resolve")
	}

	ent.mu.Lock()
	if ent.evicted {
		ent.mu.Unlock()
		return nil, e.missing(id, "resolve")
	}
	if !ent.alert.Status.CanResolve() {
		status := ent.alert.Status
		ent.mu.Unlock()
		return nil, &StateConflictError{AlertID: id, Status: status, Op: "resolve"}
	}
	groupID := ent.alert.CorrelationID
	snap := e.resolveLocked(ent, actor, note, false)
	ent.mu.Unlock()

	e.persist(snap)
	e.emit(snap, models.EventResolved)
	e.updateGauges()

	if resolveCorrelated && groupID != "" {
		e.resolveGroup(groupID, actor, note)
	}
	return snap, nil
}

func (e *Engine) resolveGroup(groupID, actor, note string) {
	for _, memberID := range e.correlator.Members(groupID) {
		ment, ok := e.index.LookupID(memberID)
		if !ok {
			continue
		}
		ment.mu.Lock()
		if ment.evicted || !ment.alert.Status.CanResolve() {
			ment.mu.Unlock()
			continue
		}
		snap := e.resolveLocked(ment, actor, "Resolved with correlated alert: "+note, false)
		ment.mu.Unlock()

		e.persist(snap)
		e.emit(snap, models.EventResolved)
	}
	e.updateGauges()
}

// Escalate bumps the escalation level, optionally the severity, and
// re-arms the next escalation using the severity's timeout.
func (e *Engine) Escalate(id uuid.UUID, actor string, bumpSeverity bool) (*models.Alert, error) {
	ent, ok := e.index.LookupID(id)
	if !ok {
		return nil, e.missing(id, "escalate")
	}

	ent.mu.Lock()
	if ent.evicted {
		ent.mu.Unlock()
		return nil, e.missing(id, "escalate")
	}
	a := ent.alert
	if !a.Status.CanEscalate() {
		status := a.Status
		ent.mu.Unlock()
		return nil, &StateConflictError{AlertID: id, Status: status, Op: "escalate"}
	}
	now := time.Now().UTC()
	a.EscalationLevel++
	a.EscalationCount++
	if bumpSeverity {
		a.Severity = a.Severity.Escalate()
	}
	a.Status = models.StatusEscalated
	a.LastUpdated = now
	timeout := a.Severity.EscalationTimeout()
	e.scheduler.Schedule(id, timeout, func() { e.autoEscalate(ent) })
	snap := a.Clone()
	ent.mu.Unlock()

	log.Printf("Alert %s escalated by %s (level %d)", id, actor, snap.EscalationLevel)
	e.persist(snap)
	e.emit(snap, models.EventEscalated)
	return snap, nil
}

// autoEscalate is the timer-driven escalation cycle: as long as the
// alert still requires attention, keep raising the level.
func (e *Engine) autoEscalate(ent *entry) {
	ent.mu.Lock()
	if ent.evicted || !ent.alert.Status.RequiresAttention() {
		ent.mu.Unlock()
		return
	}
	a := ent.alert
	a.EscalationLevel++
	a.EscalationCount++
	a.LastUpdated = time.Now().UTC()
	e.scheduler.Schedule(a.ID, a.Severity.EscalationTimeout(), func() { e.autoEscalate(ent) })
	snap := a.Clone()
	ent.mu.Unlock()

	e.persist(snap)
	e.emit(snap, models.EventEscalated)
}

// Suppress mutes the alert. No notification goes out; the bus still
// sees the event so downstream audit stays complete.
func (e *Engine) Suppress(id uuid.UUID, actor, reason string, durationMinutes int) (*models.Alert, error) {
	ent, ok := e.index.LookupID(id)
	if !ok {
		return nil, e.missing(id, "suppress")
	}

	ent.mu.Lock()
	if ent.evicted {
		ent.mu.Unlock()
		return nil, e.missing(id, "suppress")
	}
	a := ent.alert
	if !a.Status.CanSuppress() {
		status := a.Status
		ent.mu.Unlock()
		return nil, &StateConflictError{AlertID: id, Status: status, Op: "suppress"}
	}
	now := time.Now().UTC()
	a.Status = models.StatusSuppressed
	if durationMinutes > 0 {
		until := now.Add(time.Duration(durationMinutes) * time.Minute)
		a.SuppressedUntil = &until
	} else {
		a.SuppressedUntil = nil // indefinite
	}
	a.SuppressReason = reason
	a.LastUpdated = now
	e.scheduler.Cancel(id)
	snap := a.Clone()
	ent.mu.Unlock()

	log.Printf("Alert %s suppressed by %s until %v", id, actor, snap.SuppressedUntil)
	e.persist(snap)
	e.publish(snap, models.EventSuppressed)
	return snap, nil
}

// Close finishes off a resolved or suppressed alert. Resolved alerts
// have already left the index, so this falls back to persistence.
func (e *Engine) Close(id uuid.UUID, actor string) (*models.Alert, error) {
	if ent, ok := e.index.LookupID(id); ok {
		ent.mu.Lock()
		if !ent.evicted {
			a := ent.alert
			if !a.Status.CanClose() {
				status := a.Status
				ent.mu.Unlock()
				return nil, &StateConflictError{AlertID: id, Status: status, Op: "close"}
			}
			a.Status = models.StatusClosed
			a.LastUpdated = time.Now().UTC()
			e.scheduler.Cancel(id)
			e.index.Remove(ent)
			e.correlator.RemoveAlert(id)
			snap := a.Clone()
			ent.mu.Unlock()

			e.persist(snap)
			e.updateGauges()
			return snap, nil
		}
		ent.mu.Unlock()
	}

	stored, err := e.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("looking up alert %s: %w", id, err)
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if !stored.Status.CanClose() {
		return nil, &StateConflictError{AlertID: id, Status: stored.Status, Op: "close"}
	}
	stored.Status = models.StatusClosed
	stored.LastUpdated = time.Now().UTC()
	e.persist(stored)
	return stored, nil
}

// GetAlert returns the live alert if active, otherwise the persisted
// record.
func (e *Engine) GetAlert(id uuid.UUID) (*models.Alert, error) {
	if ent, ok := e.index.LookupID(id); ok {
		ent.mu.Lock()
		if !ent.evicted {
			snap := ent.alert.Clone()
			ent.mu.Unlock()
			return snap, nil
		}
		ent.mu.Unlock()
	}

	stored, err := e.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("looking up alert %s: %w", id, err)
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return stored, nil
}

// ActiveAlerts snapshots the index, newest first.
func (e *Engine) ActiveAlerts() []*models.Alert {
	entries := e.index.Snapshot()
	alerts := make([]*models.Alert, 0, len(entries))
	for _, ent := range entries {
		ent.mu.Lock()
		if !ent.evicted {
			alerts = append(alerts, ent.alert.Clone())
		}
		ent.mu.Unlock()
	}
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].StartsAt.After(alerts[j].StartsAt)
	})
	return alerts
}

func (e *Engine) Groups() []GroupSnapshot {
	return e.correlator.Snapshot()
}

func (e *Engine) Statistics() StatsSnapshot {
	return StatsSnapshot{
		TotalAlertsProcessed:    e.stats.processed.Load(),
		CorrelatedAlerts:        e.stats.correlated.Load(),
		DuplicateAlerts:         e.stats.duplicates.Load(),
		AutoResolvedAlerts:      e.stats.autoResolved.Load(),
		ActiveAlerts:            e.index.Len(),
		ActiveCorrelationGroups: e.correlator.GroupCount(),
		CorrelationRate:         e.stats.correlationRate(),
		Timestamp:               time.Now().UTC(),
	}
}

// missing distinguishes "no such alert" from "alert exists but is
// terminal" so callers can render a precise message.
func (e *Engine) missing(id uuid.UUID, op string) error {
	stored, err := e.repo.FindByID(id)
	if err != nil {
		return fmt.Errorf("looking up alert %s: %w", id, err)
	}
	if stored == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &StateConflictError{AlertID: id, Status: stored.Status, Op: op}
}

// persist writes through to the repository. A failed save never undoes
// the in-memory transition; it is logged and counted for reconciliation.
func (e *Engine) persist(alert *models.Alert) {
	if err := e.repo.Save(alert); err != nil {
		log.Printf("Failed to persist alert %s (in-memory state kept): %v", alert.ID, err)
		if e.metrics != nil {
			e.metrics.IncPersistenceErrors()
		}
	}
}

// emit fans the event out to the notifier and the bus. Collaborator
// failures are logged and swallowed.
func (e *Engine) emit(alert *models.Alert, eventType models.EventType) {
	event := models.AlertEvent{Alert: alert, EventType: eventType, Timestamp: time.Now().UTC()}
	if e.notifier != nil {
		if err := e.notifier.Notify(event); err != nil {
			log.Printf("Notification failed for alert %s (%s): %v", alert.ID, eventType, err)
			if e.metrics != nil {
				e.metrics.IncNotifications("failure")
			}
		} else if e.metrics != nil {
			e.metrics.IncNotifications("success")
		}
	}
	e.publishEvent(event)
}

// publish skips the notifier, for muted transitions.
func (e *Engine) publish(alert *models.Alert, eventType models.EventType) {
	e.publishEvent(models.AlertEvent{Alert: alert, EventType: eventType, Timestamp: time.Now().UTC()})
}

func (e *Engine) publishEvent(event models.AlertEvent) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(event); err != nil {
		log.Printf("Event publish failed for alert %s (%s): %v", event.Alert.ID, event.EventType, err)
		if e.metrics != nil {
			e.metrics.IncEventsPublished("failure")
		}
	} else if e.metrics != nil {
		e.metrics.IncEventsPublished("success")
	}
}

func (e *Engine) updateGauges() {
	if e.metrics == nil {
		return
	}
	e.metrics.SetActiveAlerts(float64(e.index.Len()))
	e.metrics.SetCorrelationGroups(float64(e.correlator.GroupCount()))
}
