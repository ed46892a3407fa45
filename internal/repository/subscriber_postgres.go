package repository

import (
	"context"
	"fmt"

	"github.com/YDahdah/Nectar/pkg/storage/postgres"
)

var _ SubscriberStore = (*PostgresSubscriberStore)(nil)

type PostgresSubscriberStore struct {
	db   *postgres.Postgres
	exec postgres.QueryExecuter
}

func NewPostgresSubscriberStore(db *postgres.Postgres) *PostgresSubscriberStore {
	return &PostgresSubscriberStore{
		db:   db,
		exec: db.Pool,
	}
}

func (s *PostgresSubscriberStore) Add(ctx context.Context, email string) (bool, error) {
	const op = "repository.subscriber.Add"

	query := s.db.Builder.Insert("newsletter_subscribers").
		Columns("email").
		Values(email).
		Suffix("ON CONFLICT (email) DO NOTHING")

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: building query: %w", op, err)
	}

	tag, err := s.exec.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("%s: exec: %w", op, err)
	}

	return tag.RowsAffected() > 0, nil
}

func (s *PostgresSubscriberStore) Count(ctx context.Context) (int, error) {
	const op = "repository.subscriber.Count"

	query := s.db.Builder.Select("COUNT(*)").From("newsletter_subscribers")

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: building query: %w", op, err)
	}

	var count int
	if err := s.exec.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: query row: %w", op, err)
	}

	return count, nil
}
