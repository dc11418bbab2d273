// Package repo provides postgres access for interpretation texts
package repo

import (
	"context"

	"natalchart/internal/modkit/repokit"
)

// Repo is the minimal persistence surface for interpretations
type Repo interface {
	ShapeText(ctx context.Context, key string) (string, bool, error)
	DistributionTexts(ctx context.Context, keys []string) (map[string]string, error)
	PlanetSignTexts(ctx context.Context, planets, signs []string) (map[[2]string]string, error)
	PlanetHouseTexts(ctx context.Context, planets []string, houses []int) (map[string]map[int]string, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) ShapeText(ctx context.Context, key string) (string, bool, error) {
	const sql = `
select interpretation_text
from chart_shape_interpretations
where shape_key = $1
`
	rows, err := r.q.Query(ctx, sql, key)
	if err != nil {
		return "", false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return "", false, rows.Err()
	}
	var text string
	if err := rows.Scan(&text); err != nil {
		return "", false, err
	}
	return text, true, rows.Err()
}

func (r *queries) DistributionTexts(ctx context.Context, keys []string) (map[string]string, error) {
	out := map[string]string{}
	if len(keys) == 0 {
		return out, nil
	}
	const sql = `
select distribution_key, interpretation_text
from chart_distribution_interpretations
where distribution_key = any($1)
`
	rows, err := r.q.Query(ctx, sql, keys)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var k, text string
		if err := rows.Scan(&k, &text); err != nil {
			return nil, err
		}
		out[k] = text
	}
	return out, rows.Err()
}

// PlanetSignTexts resolves texts for parallel planet and sign name slices
// pairs with no seeded text are simply absent from the result
func (r *queries) PlanetSignTexts(ctx context.Context, planets, signs []string) (map[[2]string]string, error) {
	out := map[[2]string]string{}
	if len(planets) == 0 {
		return out, nil
	}
	const sql = `
select p.name, s.name, i.interpretation_text
from unnest($1::text[], $2::text[]) as want(planet, sign)
join planets p on p.name = want.planet
join signs s on s.name = want.sign
join planet_sign_interpretations i on i.planet_id = p.id and i.sign_id = s.id
`
	rows, err := r.q.Query(ctx, sql, planets, signs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var planet, sign, text string
		if err := rows.Scan(&planet, &sign, &text); err != nil {
			return nil, err
		}
		out[[2]string{planet, sign}] = text
	}
	return out, rows.Err()
}

func (r *queries) PlanetHouseTexts(ctx context.Context, planets []string, houses []int) (map[string]map[int]string, error) {
	out := map[string]map[int]string{}
	if len(planets) == 0 {
		return out, nil
	}
	const sql = `
select p.name, h.number, i.interpretation_text
from unnest($1::text[], $2::int[]) as want(planet, house)
join planets p on p.name = want.planet
join houses h on h.number = want.house
join planet_house_interpretations i on i.planet_id = p.id and i.house_id = h.id
`
	rows, err := r.q.Query(ctx, sql, planets, houses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var planet string
		var num int
		var text string
		if err := rows.Scan(&planet, &num, &text); err != nil {
			return nil, err
		}
		if out[planet] == nil {
			out[planet] = map[int]string{}
		}
		out[planet][num] = text
	}
	return out, rows.Err()
}
