package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brandsite-backend/internal/domains/contact"
	"brandsite-backend/internal/shared/query"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) contact.Repository {
	return &postgresRepository{pool: pool}
}

const contactColumns = `id, name, email, phone, subject, message, service, status,
	priority, ip_address, user_agent, replied_at, replied_by, notes,
	created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, c *contact.Contact) error {
	sql := `
		INSERT INTO contacts (
			id, name, email, phone, subject, message, service, status,
			priority, ip_address, user_agent, replied_at, replied_by, notes,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14,
			$15, $16
		)
	`

	_, err := r.pool.Exec(ctx, sql,
		c.ID, c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Service, c.Status,
		c.Priority, c.IPAddress, c.UserAgent, c.RepliedAt, c.RepliedBy, c.Notes,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, c *contact.Contact) error {
	sql := `
		UPDATE contacts
		SET status = $1, priority = $2, notes = $3, replied_at = $4,
		    replied_by = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := r.pool.Exec(ctx, sql,
		c.Status, c.Priority, c.Notes, c.RepliedAt,
		c.RepliedBy, c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return contact.ErrContactNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return contact.ErrContactNotFound
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	sql := fmt.Sprintf(`SELECT %s FROM contacts WHERE id = $1`, contactColumns)

	var c contact.Contact
	err := r.pool.QueryRow(ctx, sql, id).Scan(scanTargets(&c)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, contact.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return &c, nil
}

func (r *postgresRepository) List(ctx context.Context, params query.Params) ([]contact.Contact, int, error) {
	where, args, argIndex := params.BuildWhere(1)

	var total int
	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM contacts WHERE %s`, where)
	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	listSQL := fmt.Sprintf(`SELECT %s FROM contacts WHERE %s %s LIMIT $%d OFFSET $%d`,
		contactColumns, where, params.OrderBy(), argIndex, argIndex+1)
	args = append(args, params.Limit, params.Offset())

	rows, err := r.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts query failed: %w", err)
	}
	defer rows.Close()

	items, err := scanContacts(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *postgresRepository) ListForExport(ctx context.Context, filters []query.Filter) ([]contact.Contact, error) {
	params := query.Params{Filters: filters}
	where, args, _ := params.BuildWhere(1)

	sql := fmt.Sprintf(`
		SELECT %s FROM contacts
		WHERE %s
		ORDER BY created_at DESC, id ASC
	`, contactColumns, where)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("export contacts query failed: %w", err)
	}
	defer rows.Close()

	return scanContacts(rows)
}

func scanContacts(rows pgx.Rows) ([]contact.Contact, error) {
	items := []contact.Contact{}
	for rows.Next() {
		var c contact.Contact
		if err := rows.Scan(scanTargets(&c)...); err != nil {
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func scanTargets(c *contact.Contact) []interface{} {
	return []interface{}{
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.Service, &c.Status,
		&c.Priority, &c.IPAddress, &c.UserAgent, &c.RepliedAt, &c.RepliedBy, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	}
}
