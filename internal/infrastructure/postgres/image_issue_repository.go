package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
)

var _ repository.ImageIssueRepository = (*ImageIssueRepo)(nil)

// ImageIssueRepo reportes de imagen sobre PostgreSQL.
type ImageIssueRepo struct {
	q Querier
}

// NewImageIssueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewImageIssueRepository(q Querier) *ImageIssueRepo {
	return &ImageIssueRepo{q: q}
}

const imageIssueColumns = `id, order_number, line_key, product_code, product_name, image_url, note, status,
	reported_by_user_id, reported_by_name, reviewed_by_user_id, review_note, reviewed_at, created_at, updated_at`

// FindOpen reporte OPEN de (pedido, línea) o nil, nil.
func (r *ImageIssueRepo) FindOpen(ctx context.Context, orderNumber, lineKey string) (*entity.ImageIssueReport, error) {
	query := `SELECT ` + imageIssueColumns + ` FROM image_issue_reports
		WHERE order_number = $1 AND line_key = $2 AND status = $3`
	rep, err := scanImageIssue(r.q.QueryRow(ctx, query, orderNumber, lineKey, entity.ImageIssueStatusOpen))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find open image issue: %w", err)
	}
	return rep, nil
}

// Create inserta; el índice único parcial sobre OPEN se traduce a domain.ErrDuplicate.
func (r *ImageIssueRepo) Create(ctx context.Context, rep *entity.ImageIssueReport) error {
	if rep.ID == "" {
		rep.ID = uuid.New().String()
	}
	query := `INSERT INTO image_issue_reports (` + imageIssueColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		rep.ID, rep.OrderNumber, rep.LineKey, rep.ProductCode, rep.ProductName, nullString(rep.ImageURL),
		nullString(rep.Note), rep.Status, rep.ReportedByUserID, nullString(rep.ReportedByName),
		nullString(rep.ReviewedByUserID), nullString(rep.ReviewNote), rep.ReviewedAt, rep.CreatedAt, rep.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create image issue: %w", err)
	}
	return nil
}

// GetByID reporte o nil, nil.
func (r *ImageIssueRepo) GetByID(ctx context.Context, id string) (*entity.ImageIssueReport, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	query := `SELECT ` + imageIssueColumns + ` FROM image_issue_reports WHERE id = $1`
	rep, err := scanImageIssue(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get image issue: %w", err)
	}
	return rep, nil
}

// Update persiste estado y revisión. Reabrir con otro OPEN vigente devuelve domain.ErrDuplicate.
func (r *ImageIssueRepo) Update(ctx context.Context, rep *entity.ImageIssueReport) error {
	query := `
		UPDATE image_issue_reports SET
			status = $2, note = $3, reviewed_by_user_id = $4, review_note = $5, reviewed_at = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		rep.ID, rep.Status, nullString(rep.Note), nullString(rep.ReviewedByUserID),
		nullString(rep.ReviewNote), rep.ReviewedAt, rep.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update image issue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List filtra por pedido, producto y estado; más recientes primero.
func (r *ImageIssueRepo) List(ctx context.Context, f repository.ImageIssueFilter) ([]*entity.ImageIssueReport, error) {
	query := `SELECT ` + imageIssueColumns + ` FROM image_issue_reports WHERE 1=1`
	var args []any
	pos := 1
	if f.OrderNumber != "" {
		query += fmt.Sprintf(" AND order_number = $%d", pos)
		args = append(args, f.OrderNumber)
		pos++
	}
	if f.ProductCode != "" {
		query += fmt.Sprintf(" AND product_code = $%d", pos)
		args = append(args, f.ProductCode)
		pos++
	}
	if f.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, f.Status)
		pos++
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list image issues: %w", err)
	}
	defer rows.Close()
	var list []*entity.ImageIssueReport
	for rows.Next() {
		rep, err := scanImageIssue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan image issue: %w", err)
		}
		list = append(list, rep)
	}
	return list, rows.Err()
}

func scanImageIssue(row pgx.Row) (*entity.ImageIssueReport, error) {
	var rep entity.ImageIssueReport
	var imageURL, note, reporterName, reviewer, reviewNote *string
	err := row.Scan(&rep.ID, &rep.OrderNumber, &rep.LineKey, &rep.ProductCode, &rep.ProductName, &imageURL,
		&note, &rep.Status, &rep.ReportedByUserID, &reporterName, &reviewer, &reviewNote, &rep.ReviewedAt,
		&rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rep.ImageURL = derefString(imageURL)
	rep.Note = derefString(note)
	rep.ReportedByName = derefString(reporterName)
	rep.ReviewedByUserID = derefString(reviewer)
	rep.ReviewNote = derefString(reviewNote)
	return &rep, nil
}
