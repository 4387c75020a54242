package location

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

const locColumns = `uuid, name, description, latitude, longitude, retired, date_created,
	address1, address2, city_village, county_district, state_province, country, postal_code`

var searchParams = map[string]fhir.SearchParamConfig{
	"name": {Type: fhir.SearchParamString, Columns: []string{"name"}},
}

func (r *repoPG) GetByUUID(ctx context.Context, uuid string) (*Location, error) {
	loc, err := scanLoc(r.q.QueryRow(ctx, `SELECT `+locColumns+` FROM location WHERE uuid = $1`, uuid))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get location %s: %w", uuid, err)
	}
	return loc, nil
}

func (r *repoPG) Search(ctx context.Context, params map[string]string) ([]*Location, error) {
	q := fhir.NewSearchQuery("location", locColumns)
	q.ApplyParams(params, searchParams)
	q.OrderBy("name, uuid")

	rows, err := r.q.Query(ctx, q.SQL(), q.Args()...)
	if err != nil {
		return nil, fmt.Errorf("search locations: %w", err)
	}
	defer rows.Close()

	var locs []*Location
	for rows.Next() {
		loc, err := scanLoc(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locs = append(locs, loc)
	}
	return locs, rows.Err()
}

func scanLoc(row pgx.Row) (*Location, error) {
	var l Location
	err := row.Scan(
		&l.UUID, &l.Name, &l.Description, &l.Latitude, &l.Longitude, &l.Retired, &l.DateCreated,
		&l.Address1, &l.Address2, &l.CityVillage, &l.CountyDistrict, &l.StateProvince, &l.Country, &l.PostalCode,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
