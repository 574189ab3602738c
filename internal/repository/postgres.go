package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"alertmon/internal/models"

	"github.com/google/uuid"
)

type PostgresAlertRepository struct {
	db *sql.DB
}

func NewPostgresAlertRepository(db *sql.DB) *PostgresAlertRepository {
	return &PostgresAlertRepository{db: db}
}

const alertColumns = `id, fingerprint, correlation_id, rule_id, rule_name, resource, metric,
	severity, status, summary, description, labels, annotations,
	starts_at, last_updated,
	acknowledged_at, acknowledged_by, ack_note,
	resolved_at, resolved_by, resolution_note,
	suppressed_until, suppress_reason,
	escalation_level, escalation_count, duplicate_count, auto_resolved`

// Save upserts the full alert row. The engine owns alert state; the
// database is a write-through copy keyed by the alert ID.
func (r *PostgresAlertRepository) Save(alert *models.Alert) error {
	labelsJSON, err := json.Marshal(alert.Labels)
	if err != nil {
		return fmt.Errorf("failed to marshal labels: %w", err)
	}
	annotationsJSON, err := json.Marshal(alert.Annotations)
	if err != nil {
		return fmt.Errorf("failed to marshal annotations: %w", err)
	}

	query := `INSERT INTO alerts (` + alertColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
	        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
	ON CONFLICT (id) DO UPDATE SET
		correlation_id = EXCLUDED.correlation_id,
		severity = EXCLUDED.severity,
		status = EXCLUDED.status,
		labels = EXCLUDED.labels,
		annotations = EXCLUDED.annotations,
		last_updated = EXCLUDED.last_updated,
		acknowledged_at = EXCLUDED.acknowledged_at,
		acknowledged_by = EXCLUDED.acknowledged_by,
		ack_note = EXCLUDED.ack_note,
		resolved_at = EXCLUDED.resolved_at,
		resolved_by = EXCLUDED.resolved_by,
		resolution_note = EXCLUDED.resolution_note,
		suppressed_until = EXCLUDED.suppressed_until,
		suppress_reason = EXCLUDED.suppress_reason,
		escalation_level = EXCLUDED.escalation_level,
		escalation_count = EXCLUDED.escalation_count,
		duplicate_count = EXCLUDED.duplicate_count,
		auto_resolved = EXCLUDED.auto_resolved`

	_, err = r.db.Exec(query,
		alert.ID,
		alert.Fingerprint,
		alert.CorrelationID,
		alert.RuleID,
		alert.RuleName,
		alert.Resource,
		alert.Metric,
		alert.Severity,
		alert.Status,
		alert.Summary,
		alert.Description,
		labelsJSON,
		annotationsJSON,
		alert.StartsAt,
		alert.LastUpdated,
		alert.AcknowledgedAt,
		alert.AcknowledgedBy,
		alert.AckNote,
		alert.ResolvedAt,
		alert.ResolvedBy,
		alert.ResolutionNote,
		alert.SuppressedUntil,
		alert.SuppressReason,
		alert.EscalationLevel,
		alert.EscalationCount,
		alert.DuplicateCount,
		alert.AutoResolved,
	)
	if err != nil {
		return fmt.Errorf("failed to save alert: %w", err)
	}
	return nil
}

func (r *PostgresAlertRepository) FindByID(id uuid.UUID) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id=$1`

	row := r.db.QueryRow(query, id)
	alert, err := scanAlert(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return alert, nil
}

func (r *PostgresAlertRepository) FindActiveAlertsInWindow(since time.Time, statuses []models.Status) ([]*models.Alert, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}

	query := `SELECT ` + alertColumns + ` FROM alerts
	WHERE status = ANY($1) AND starts_at >= $2
	ORDER BY starts_at DESC`

	rows, err := r.db.Query(query, names, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

func (r *PostgresAlertRepository) FindExpiredPending(before time.Time) ([]*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts
	WHERE status = 'pending' AND starts_at < $1`

	rows, err := r.db.Query(query, before)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired pending alerts: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

// Helper functions to reduce duplication
func scanAlert(row interface {
	Scan(dest ...interface{}) error
}) (*models.Alert, error) {
	var alert models.Alert
	var labelsJSON, annotationsJSON []byte

	err := row.Scan(
		&alert.ID,
		&alert.Fingerprint,
		&alert.CorrelationID,
		&alert.RuleID,
		&alert.RuleName,
		&alert.Resource,
		&alert.Metric,
		&alert.Severity,
		&alert.Status,
		&alert.Summary,
		&alert.Description,
		&labelsJSON,
		&annotationsJSON,
		&alert.StartsAt,
		&alert.LastUpdated,
		&alert.AcknowledgedAt,
		&alert.AcknowledgedBy,
		&alert.AckNote,
		&alert.ResolvedAt,
		&alert.ResolvedBy,
		&alert.ResolutionNote,
		&alert.SuppressedUntil,
		&alert.SuppressReason,
		&alert.EscalationLevel,
		&alert.EscalationCount,
		&alert.DuplicateCount,
		&alert.AutoResolved,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan alert: %w", err)
	}

	if err := json.Unmarshal(labelsJSON, &alert.Labels); err != nil {
		alert.Labels = make(map[string]string)
	}
	if err := json.Unmarshal(annotationsJSON, &alert.Annotations); err != nil {
		alert.Annotations = make(map[string]string)
	}
	return &alert, nil
}

func scanAlerts(rows *sql.Rows) ([]*models.Alert, error) {
	var alerts []*models.Alert

	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}
	return alerts, nil
}

// PostgresHealthChecker implements health checking
type PostgresHealthChecker struct {
	db *sql.DB
}

func NewPostgresHealthChecker(db *sql.DB) *PostgresHealthChecker {
	return &PostgresHealthChecker{db: db}
}

func (h *PostgresHealthChecker) CheckHealth() error {
	return h.db.Ping()
}
