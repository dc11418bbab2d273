//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"natalchart/internal/platform/store"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

const schema = `
create table planets (
	id serial primary key,
	name varchar(50) unique not null,
	symbol varchar(10)
);
create table signs (
	id serial primary key,
	name varchar(50) unique not null,
	element varchar(20),
	modality varchar(20)
);
create table houses (
	id serial primary key,
	number int unique not null,
	type varchar(20)
);
create table planet_sign_interpretations (
	id serial primary key,
	planet_id int not null references planets(id),
	sign_id int not null references signs(id),
	interpretation_text text not null
);
create table planet_house_interpretations (
	id serial primary key,
	planet_id int not null references planets(id),
	house_id int not null references houses(id),
	interpretation_text text not null
);
create table chart_shape_interpretations (
	id serial primary key,
	shape_key varchar(50) unique not null,
	interpretation_text text not null
);
create table chart_distribution_interpretations (
	id serial primary key,
	distribution_key varchar(50) unique not null,
	interpretation_text text not null
);
`

const seed = `
insert into planets (name) values ('Sun'), ('Moon');
insert into signs (name) values ('Gemini'), ('Pisces');
insert into houses (number) values (4), (10);
insert into planet_sign_interpretations (planet_id, sign_id, interpretation_text)
	select p.id, s.id, 'sun gemini text' from planets p, signs s where p.name = 'Sun' and s.name = 'Gemini';
insert into planet_house_interpretations (planet_id, house_id, interpretation_text)
	select p.id, h.id, 'moon fourth text' from planets p, houses h where p.name = 'Moon' and h.number = 4;
insert into chart_shape_interpretations (shape_key, interpretation_text) values
	('bowl', 'bowl text'), ('splash', 'splash text');
insert into chart_distribution_interpretations (distribution_key, interpretation_text) values
	('hemisphere_southern', 'southern text'), ('quadrant_1', 'first quadrant text');
`

func TestRepoLookups_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "natalchart-pg-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	if _, err := st.PG.Exec(ctx, schema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	if _, err := st.PG.Exec(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	r := NewPG().Bind(st.PG)

	t.Run("shape text present and absent", func(t *testing.T) {
		text, ok, err := r.ShapeText(ctx, "bowl")
		if err != nil || !ok || text != "bowl text" {
			t.Fatalf("ShapeText(bowl) = %q ok=%v err=%v", text, ok, err)
		}
		_, ok, err = r.ShapeText(ctx, "bucket")
		if err != nil || ok {
			t.Fatalf("ShapeText(bucket) = ok=%v err=%v, want absent", ok, err)
		}
	})

	t.Run("distribution texts partial match", func(t *testing.T) {
		out, err := r.DistributionTexts(ctx, []string{"hemisphere_southern", "hemisphere_northern"})
		if err != nil {
			t.Fatalf("DistributionTexts: %v", err)
		}
		if len(out) != 1 || out["hemisphere_southern"] != "southern text" {
			t.Fatalf("out = %v", out)
		}
	})

	t.Run("planet sign pairs", func(t *testing.T) {
		out, err := r.PlanetSignTexts(ctx, []string{"Sun", "Moon"}, []string{"Gemini", "Pisces"})
		if err != nil {
			t.Fatalf("PlanetSignTexts: %v", err)
		}
		if len(out) != 1 || out[[2]string{"Sun", "Gemini"}] != "sun gemini text" {
			t.Fatalf("out = %v", out)
		}
	})

	t.Run("planet house pairs", func(t *testing.T) {
		out, err := r.PlanetHouseTexts(ctx, []string{"Moon", "Sun"}, []int{4, 10})
		if err != nil {
			t.Fatalf("PlanetHouseTexts: %v", err)
		}
		if out["Moon"][4] != "moon fourth text" {
			t.Fatalf("out = %v", out)
		}
		if _, ok := out["Sun"]; ok {
			t.Fatalf("Sun in 10 not seeded, out = %v", out)
		}
	})
}
