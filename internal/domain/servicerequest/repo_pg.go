package servicerequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ehr/fhir2/internal/platform/db"
	"github.com/ehr/fhir2/internal/platform/fhir"
)

type repoPG struct {
	q db.Querier
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{q: pool}
}

const orderColumns = `uuid, order_number, order_action, urgency, concept_code, concept_display,
	patient_uuid, orderer_uuid, date_activated, date_stopped, auto_expire_date, voided`

func (r *repoPG) GetByUUID(ctx context.Context, uuid string) (*TestOrder, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM test_order WHERE uuid = $1`, uuid))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get test order %s: %w", uuid, err)
	}
	return o, nil
}

func (r *repoPG) List(ctx context.Context) ([]*TestOrder, error) {
	q := fhir.NewSearchQuery("test_order", orderColumns)
	q.OrderBy("date_activated DESC NULLS LAST, uuid")

	rows, err := r.q.Query(ctx, q.SQL(), q.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list test orders: %w", err)
	}
	defer rows.Close()

	var orders []*TestOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan test order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func scanOrder(row pgx.Row) (*TestOrder, error) {
	var o TestOrder
	err := row.Scan(
		&o.UUID, &o.OrderNumber, &o.Action, &o.Urgency, &o.ConceptCode, &o.ConceptDisplay,
		&o.PatientUUID, &o.OrdererUUID, &o.DateActivated, &o.DateStopped, &o.AutoExpireDate, &o.Voided,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
