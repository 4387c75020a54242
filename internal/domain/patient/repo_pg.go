package patient

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

const patientColumns = `p.uuid, p.gender, p.birthdate, p.birthdate_estimated, p.dead, p.death_date, p.voided, p.date_created`

var searchParams = map[string]fhir.SearchParamConfig{
	"name": {
		Type:     fhir.SearchParamString,
		Columns:  []string{"n.given_name", "n.middle_name", "n.family_name"},
		Subquery: "EXISTS (SELECT 1 FROM patient_name n WHERE n.patient_uuid = p.uuid AND NOT n.voided AND %s)",
	},
	"gender": {
		Type:      fhir.SearchParamToken,
		Columns:   []string{"p.gender"},
		Normalize: GenderCode,
	},
}

func (r *repoPG) GetByUUID(ctx context.Context, uuid string) (*Patient, error) {
	p, err := scanPatient(r.q.QueryRow(ctx, `SELECT `+patientColumns+` FROM patient p WHERE p.uuid = $1`, uuid))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get patient %s: %w", uuid, err)
	}
	if err := r.loadChildren(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) Search(ctx context.Context, params map[string]string) ([]*Patient, error) {
	q := fhir.NewSearchQuery("patient p", patientColumns)
	q.ApplyParams(params, searchParams)
	q.OrderBy("p.date_created, p.uuid")

	rows, err := r.q.Query(ctx, q.SQL(), q.Args()...)
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}

	for _, p := range patients {
		if err := r.loadChildren(ctx, p); err != nil {
			return nil, err
		}
	}
	return patients, nil
}

func (r *repoPG) loadChildren(ctx context.Context, p *Patient) error {
	var err error
	if p.Names, err = r.names(ctx, p.UUID); err != nil {
		return fmt.Errorf("load names for %s: %w", p.UUID, err)
	}
	if p.Identifiers, err = r.identifiers(ctx, p.UUID); err != nil {
		return fmt.Errorf("load identifiers for %s: %w", p.UUID, err)
	}
	if p.Addresses, err = r.addresses(ctx, p.UUID); err != nil {
		return fmt.Errorf("load addresses for %s: %w", p.UUID, err)
	}
	return nil
}

func (r *repoPG) names(ctx context.Context, patientUUID string) ([]Name, error) {
	rows, err := r.q.Query(ctx, `
		SELECT uuid, prefix, given_name, middle_name, family_name, suffix, preferred
		FROM patient_name WHERE patient_uuid = $1 AND NOT voided
		ORDER BY preferred DESC, id`, patientUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []Name
	for rows.Next() {
		var n Name
		if err := rows.Scan(&n.UUID, &n.Prefix, &n.GivenName, &n.MiddleName, &n.FamilyName, &n.Suffix, &n.Preferred); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

func (r *repoPG) identifiers(ctx context.Context, patientUUID string) ([]Identifier, error) {
	rows, err := r.q.Query(ctx, `
		SELECT uuid, identifier, type_uuid, type_name, preferred
		FROM patient_identifier WHERE patient_uuid = $1 AND NOT voided
		ORDER BY preferred DESC, id`, patientUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []Identifier
	for rows.Next() {
		var i Identifier
		if err := rows.Scan(&i.UUID, &i.Identifier, &i.TypeUUID, &i.TypeName, &i.Preferred); err != nil {
			return nil, err
		}
		ids = append(ids, i)
	}
	return ids, rows.Err()
}

func (r *repoPG) addresses(ctx context.Context, patientUUID string) ([]Address, error) {
	rows, err := r.q.Query(ctx, `
		SELECT uuid, preferred, address1, address2, city_village, county_district, state_province, country, postal_code
		FROM patient_address WHERE patient_uuid = $1 AND NOT voided
		ORDER BY preferred DESC, id`, patientUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addrs []Address
	for rows.Next() {
		var a Address
		if err := rows.Scan(&a.UUID, &a.Preferred, &a.Address1, &a.Address2, &a.CityVillage,
			&a.CountyDistrict, &a.StateProvince, &a.Country, &a.PostalCode); err != nil {
			return nil, err
		}
		addrs = append(addrs, a)
	}
	return addrs, rows.Err()
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.UUID, &p.Gender, &p.BirthDate, &p.BirthDateEstimated, &p.Dead, &p.DeathDate, &p.Voided, &p.DateCreated)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
