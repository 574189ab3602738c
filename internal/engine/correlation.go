package engine

import (
	"fmt"
	"sync"
	"time"

	"alertmon/internal/models"

	"github.com/google/uuid"
)

// memberInfo is the slice of an alert the correlator keeps for root
// cause attribution after the alert itself has moved on.
type memberInfo struct {
	resource string
	category string
}

type CorrelationGroup struct {
	ID          string
	CreatedAt   time.Time
	LastUpdated time.Time
	Severity    models.Severity
	RootCause   string

	members map[uuid.UUID]memberInfo
}

// GroupSnapshot is the read-only view handed out to callers.
type GroupSnapshot struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	LastUpdated time.Time       `json:"last_updated"`
	Severity    models.Severity `json:"severity"`
	RootCause   string          `json:"root_cause"`
	MemberIDs   []uuid.UUID     `json:"member_ids"`
}

// Correlator clusters temporally close, similar alerts into groups. The
// group table is its own lock domain; alert field updates stay with the
// engine's per-alert locking.
type Correlator struct {
	mu        sync.Mutex
	threshold float64
	groups    map[string]*CorrelationGroup
	byAlert   map[uuid.UUID]string
}

func NewCorrelator(threshold float64) *Correlator {
	return &Correlator{
		threshold: threshold,
		groups:    make(map[string]*CorrelationGroup),
		byAlert:   make(map[uuid.UUID]string),
	}
}

// similarity scores how related two alerts are, in [0,1]. Shared
// resource dominates, then category, severity, and temporal closeness.
func (c *Correlator) similarity(a, b *models.Alert) float64 {
	score := 0.0

	if a.Resource != "" && a.Resource == b.Resource {
		score += 0.4
	}
	if ca, cb := a.Labels["category"], b.Labels["category"]; ca != "" && ca == cb {
		score += 0.3
	}
	if a.Severity == b.Severity {
		score += 0.2
	}
	diff := a.StartsAt.Sub(b.StartsAt)
	if diff < 0 {
		diff = -diff
	}
	if diff <= time.Minute {
		score += 0.1
	}
	return score
}

// Attempt correlates a newly created alert against candidate active
// alerts. Candidates scoring below the threshold are ignored. If a
// qualifying candidate already belongs to a group, the alert joins that
// group; otherwise a new group is formed from the alert plus all
// qualifying candidates. Returns the group id, the candidates that were
// newly pulled into the group, and whether any correlation happened.
func (c *Correlator) Attempt(alert *models.Alert, candidates []*models.Alert) (string, []*models.Alert, bool) {
	var matched []*models.Alert
	for _, cand := range candidates {
		if cand.ID == alert.ID {
			continue
		}
		if c.similarity(alert, cand) >= c.threshold {
			matched = append(matched, cand)
		}
	}
	if len(matched) == 0 {
		return "", nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var group *CorrelationGroup
	for _, cand := range matched {
		if gid, ok := c.byAlert[cand.ID]; ok {
			group = c.groups[gid]
			break
		}
	}

	now := time.Now().UTC()
	if group == nil {
		group = &CorrelationGroup{
			ID:        uuid.New().String(),
			CreatedAt: now,
			Severity:  alert.Severity,
			members:   make(map[uuid.UUID]memberInfo),
		}
		c.groups[group.ID] = group
	}

	var joined []*models.Alert
	for _, cand := range matched {
		if _, ok := c.byAlert[cand.ID]; ok {
			continue
		}
		c.addLocked(group, cand)
		joined = append(joined, cand)
	}
	c.addLocked(group, alert)

	group.LastUpdated = now
	group.RootCause = analyzeRootCause(group)

	return group.ID, joined, true
}

// addLocked registers an alert as a group member. Group severity is the
// max over members and never goes down.
func (c *Correlator) addLocked(g *CorrelationGroup, a *models.Alert) {
	g.members[a.ID] = memberInfo{
		resource: a.Resource,
		category: a.Labels["category"],
	}
	g.Severity = models.MaxSeverity(g.Severity, a.Severity)
	c.byAlert[a.ID] = g.ID
}

// RemoveAlert drops the alert from its group. A group with zero members
// is garbage and is destroyed on the spot.
func (c *Correlator) RemoveAlert(alertID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	gid, ok := c.byAlert[alertID]
	if !ok {
		return
	}
	delete(c.byAlert, alertID)

	group, ok := c.groups[gid]
	if !ok {
		return
	}
	delete(group.members, alertID)
	group.LastUpdated = time.Now().UTC()
	if len(group.members) == 0 {
		delete(c.groups, gid)
	}
}

// Members returns the alert ids currently in the group.
func (c *Correlator) Members(groupID string) []uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()

	group, ok := c.groups[groupID]
	if !ok {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(group.members))
	for id := range group.members {
		ids = append(ids, id)
	}
	return ids
}

func (c *Correlator) GroupCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.groups)
}

func (c *Correlator) Snapshot() []GroupSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snaps := make([]GroupSnapshot, 0, len(c.groups))
	for _, g := range c.groups {
		snap := GroupSnapshot{
			ID:          g.ID,
			CreatedAt:   g.CreatedAt,
			LastUpdated: g.LastUpdated,
			Severity:    g.Severity,
			RootCause:   g.RootCause,
			MemberIDs:   make([]uuid.UUID, 0, len(g.members)),
		}
		for id := range g.members {
			snap.MemberIDs = append(snap.MemberIDs, id)
		}
		snaps = append(snaps, snap)
	}
	return snaps
}

// analyzeRootCause infers a best-effort attribution from the group's
// members: the most common category, scoped to one resource when every
// member points at the same one.
func analyzeRootCause(g *CorrelationGroup) string {
	categoryCounts := make(map[string]int)
	resources := make(map[string]struct{})

	for _, m := range g.members {
		category := m.category
		if category == "" {
			category = "unknown"
		}
		categoryCounts[category]++
		resources[m.resource] = struct{}{}
	}

	mostCommon := "unknown"
	best := 0
	for category, n := range categoryCounts {
		if n > best {
			mostCommon = category
			best = n
		}
	}

	if len(resources) == 1 {
		for resource := range resources {
			return fmt.Sprintf("Resource %s experiencing %s issues", resource, mostCommon)
		}
	}
	return fmt.Sprintf("Multi-resource %s issues affecting %d resources", mostCommon, len(resources))
}
