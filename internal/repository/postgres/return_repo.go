package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"gstbook/internal/domain"
	"gstbook/internal/port"
)

type returnRepo struct {
	db *sqlx.DB
}

// NewReturnRepo creates a new PostgreSQL-backed ReturnRepository.
// Each row holds the whole document as a JSONB snapshot; the indexed
// columns exist for listing and uniqueness, never as a second source of
// truth.
func NewReturnRepo(db *sqlx.DB) port.ReturnRepository {
	return &returnRepo{db: db}
}

type returnRow struct {
	GSTIN       string          `db:"gstin"`
	PeriodMonth int             `db:"period_month"`
	PeriodYear  int             `db:"period_year"`
	Status      string          `db:"status"`
	ARN         sql.NullString  `db:"arn"`
	Document    json.RawMessage `db:"document"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *returnRepo) SaveDraft(ctx context.Context, doc *domain.ReturnDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("returnRepo.SaveDraft marshal: %w", err)
	}

	query := `INSERT INTO gst_returns (gstin, period_month, period_year, status, document, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (gstin, period_month, period_year) DO UPDATE
		SET status = EXCLUDED.status, document = EXCLUDED.document, updated_at = EXCLUDED.updated_at
		WHERE gst_returns.status <> 'submitted'`

	result, err := r.db.ExecContext(ctx, query,
		doc.BasicInfo.GSTIN, doc.Period.Month, doc.Period.Year, string(doc.Status), payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("returnRepo.SaveDraft: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("returnRepo.SaveDraft rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrReturnSubmitted
	}
	return nil
}

func (r *returnRepo) GetDraft(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error) {
	return r.getByStatus(ctx, gstin, period, "status <> 'submitted'", domain.ErrDraftNotFound, "GetDraft")
}

func (r *returnRepo) GetSubmitted(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error) {
	return r.getByStatus(ctx, gstin, period, "status = 'submitted'", domain.ErrReturnNotFound, "GetSubmitted")
}

func (r *returnRepo) getByStatus(ctx context.Context, gstin string, period domain.ReturnPeriod, statusCond string, notFound error, op string) (*domain.ReturnDocument, error) {
	var row returnRow
	query := `SELECT gstin, period_month, period_year, status, arn, document, updated_at
		FROM gst_returns
		WHERE gstin = $1 AND period_month = $2 AND period_year = $3 AND ` + statusCond
	err := r.db.GetContext(ctx, &row, query, gstin, period.Month, period.Year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound
		}
		return nil, fmt.Errorf("returnRepo.%s: %w", op, err)
	}

	var doc domain.ReturnDocument
	if err := json.Unmarshal(row.Document, &doc); err != nil {
		return nil, fmt.Errorf("returnRepo.%s unmarshal: %w", op, err)
	}
	return &doc, nil
}

func (r *returnRepo) MarkSubmitted(ctx context.Context, doc *domain.ReturnDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("returnRepo.MarkSubmitted marshal: %w", err)
	}

	query := `INSERT INTO gst_returns (gstin, period_month, period_year, status, arn, document, updated_at)
		VALUES ($1, $2, $3, 'submitted', $4, $5, $6)
		ON CONFLICT (gstin, period_month, period_year) DO UPDATE
		SET status = 'submitted', arn = EXCLUDED.arn, document = EXCLUDED.document, updated_at = EXCLUDED.updated_at
		WHERE gst_returns.status <> 'submitted'`

	result, err := r.db.ExecContext(ctx, query,
		doc.BasicInfo.GSTIN, doc.Period.Month, doc.Period.Year, doc.BasicInfo.ARN, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("returnRepo.MarkSubmitted: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("returnRepo.MarkSubmitted rows: %w", err)
	}
	if rows == 0 {
		// An already-submitted row is frozen; nothing may overwrite it.
		return domain.ErrReturnSubmitted
	}
	return nil
}

func (r *returnRepo) List(ctx context.Context, gstin string) ([]domain.ReturnSummary, error) {
	var rows []returnRow
	query := `SELECT gstin, period_month, period_year, status, arn, document, updated_at
		FROM gst_returns
		WHERE gstin = $1
		ORDER BY period_year DESC, period_month DESC`
	if err := r.db.SelectContext(ctx, &rows, query, gstin); err != nil {
		return nil, fmt.Errorf("returnRepo.List: %w", err)
	}

	summaries := make([]domain.ReturnSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.ReturnSummary{
			Period:    domain.ReturnPeriod{Month: row.PeriodMonth, Year: row.PeriodYear},
			Status:    domain.ReturnStatus(row.Status),
			ARN:       row.ARN.String,
			UpdatedAt: row.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return summaries, nil
}

func (r *returnRepo) ARNExists(ctx context.Context, arn string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM gst_returns WHERE arn = $1)", arn)
	if err != nil {
		return false, fmt.Errorf("returnRepo.ARNExists: %w", err)
	}
	return exists, nil
}
