package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
)

const salesTable = "products_sales"

type SalesRepository interface {
	LoadHistory(ctx context.Context) ([]domain.HistoryPoint, error)
	BulkInsert(ctx context.Context, rows []domain.SalesRow) (int, error)
}

type salesRepository struct {
	conn postgres.Conn
}

func NewSalesRepository(conn postgres.Conn) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

// LoadHistory lê a série histórica completa em ordem de data.
// Linhas com data nula são descartadas; quantidade nula vira 0 para
// preservar o sinal de venda zero.
func (r *salesRepository) LoadHistory(ctx context.Context) ([]domain.HistoryPoint, error) {
	query, args, err := squirrel.
		Select("Date AS ds", "Qty AS y").
		From(salesTable).
		OrderBy("Date").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	history := make([]domain.HistoryPoint, 0)
	for rows.Next() {
		var ds sql.NullTime
		var y sql.NullFloat64

		if err := rows.Scan(&ds, &y); err != nil {
			return nil, fmt.Errorf("erro ao escanear série histórica: %w", err)
		}

		if !ds.Valid {
			continue
		}

		var value float64
		if y.Valid {
			value = y.Float64
		}

		history = append(history, domain.HistoryPoint{TS: ds.Time, Value: value})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return history, nil
}

// BulkInsert acrescenta as linhas sobreviventes do ingest em uma única
// transação. Não há deduplicação: reenviar o mesmo arquivo duplica as linhas.
func (r *salesRepository) BulkInsert(ctx context.Context, salesRows []domain.SalesRow) (int, error) {
	if len(salesRows) == 0 {
		return 0, nil
	}

	builder := squirrel.
		Insert(salesTable).
		Columns("Date", "Qty", "Price", "MRP", "Size").
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range salesRows {
		builder = builder.Values(
			row.Date.Format(time.DateOnly),
			row.Qty,
			row.Price,
			row.MRP,
			row.Size,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao executar a query: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(salesRows), nil
}
