package service

import (
	"context"
	"testing"

	"natalchart/internal/modkit/repokit"
	"natalchart/internal/platform/testkit"
	"natalchart/internal/services/api/interpretations/domain"
	"natalchart/internal/services/api/interpretations/repo"
)

type fakeRepo struct {
	shapes      map[string]string
	dists       map[string]string
	planetSign  map[[2]string]string
	planetHouse map[string]map[int]string

	gotPlanets []string
	gotSigns   []string
	gotHouses  []int
}

func (f *fakeRepo) ShapeText(_ context.Context, key string) (string, bool, error) {
	t, ok := f.shapes[key]
	return t, ok, nil
}

func (f *fakeRepo) DistributionTexts(_ context.Context, keys []string) (map[string]string, error) {
	out := map[string]string{}
	for _, k := range keys {
		if t, ok := f.dists[k]; ok {
			out[k] = t
		}
	}
	return out, nil
}

func (f *fakeRepo) PlanetSignTexts(_ context.Context, planets, signs []string) (map[[2]string]string, error) {
	f.gotPlanets, f.gotSigns = planets, signs
	out := map[[2]string]string{}
	for i := range planets {
		if t, ok := f.planetSign[[2]string{planets[i], signs[i]}]; ok {
			out[[2]string{planets[i], signs[i]}] = t
		}
	}
	return out, nil
}

func (f *fakeRepo) PlanetHouseTexts(_ context.Context, planets []string, houses []int) (map[string]map[int]string, error) {
	f.gotPlanets, f.gotHouses = planets, houses
	out := map[string]map[int]string{}
	for i, p := range planets {
		if by, ok := f.planetHouse[p]; ok {
			if t, ok := by[houses[i]]; ok {
				if out[p] == nil {
					out[p] = map[int]string{}
				}
				out[p][houses[i]] = t
			}
		}
	}
	return out, nil
}

type fakeTx struct{ repokit.TxRunner }

func newSvc(f *fakeRepo) *Svc {
	return New(fakeTx{}, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f }))
}

func TestNewPanicsOnNilDeps(t *testing.T) {
	testkit.MustPanic(t, func() {
		New(nil, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return &fakeRepo{} }))
	})
	testkit.MustPanic(t, func() { New(fakeTx{}, nil) })
}

func TestShapeTextEmptyKeyIsAbsent(t *testing.T) {
	s := newSvc(&fakeRepo{shapes: map[string]string{"bowl": "half the wheel"}})
	_, ok, err := s.ShapeText(context.Background(), "")
	if err != nil || ok {
		t.Fatalf("ShapeText(\"\") = ok=%v err=%v, want absent", ok, err)
	}
	text, ok, err := s.ShapeText(context.Background(), "bowl")
	if err != nil || !ok || text != "half the wheel" {
		t.Fatalf("ShapeText(bowl) = %q ok=%v err=%v", text, ok, err)
	}
}

func TestPlanetSignTextsBuildsReadableKeys(t *testing.T) {
	f := &fakeRepo{planetSign: map[[2]string]string{
		{"Sun", "Gemini"}: "curious and quick",
	}}
	s := newSvc(f)

	out, err := s.PlanetSignTexts(context.Background(), []domain.PlanetSign{
		{Planet: "Sun", Sign: "Gemini"},
		{Planet: "Moon", Sign: "Pisces"},
		{Planet: "", Sign: "Leo"},
	})
	if err != nil {
		t.Fatalf("PlanetSignTexts: %v", err)
	}
	if got := out["Sun in Gemini"]; got != "curious and quick" {
		t.Errorf("Sun in Gemini = %q", got)
	}
	if _, ok := out["Moon in Pisces"]; ok {
		t.Errorf("unseeded pair should be absent")
	}
	// blank planet never reaches the repo
	if len(f.gotPlanets) != 2 {
		t.Errorf("repo got planets %v", f.gotPlanets)
	}
}

func TestPlanetHouseTextsFiltersInvalidHouses(t *testing.T) {
	f := &fakeRepo{planetHouse: map[string]map[int]string{
		"Moon": {4: "home matters"},
	}}
	s := newSvc(f)

	out, err := s.PlanetHouseTexts(context.Background(), []domain.PlanetHouse{
		{Planet: "Moon", House: 4},
		{Planet: "Mars", House: 0},
		{Planet: "Venus", House: 13},
	})
	if err != nil {
		t.Fatalf("PlanetHouseTexts: %v", err)
	}
	if got := out["Moon in House 4"]; got != "home matters" {
		t.Errorf("Moon in House 4 = %q", got)
	}
	if len(f.gotHouses) != 1 {
		t.Errorf("repo got houses %v", f.gotHouses)
	}
}

func TestDistributionTextsMissingKeysAbsent(t *testing.T) {
	s := newSvc(&fakeRepo{dists: map[string]string{"hemisphere_northern": "public life emphasis"}})
	out, err := s.DistributionTexts(context.Background(), []string{"hemisphere_northern", "quadrant_1"})
	if err != nil {
		t.Fatalf("DistributionTexts: %v", err)
	}
	if len(out) != 1 || out["hemisphere_northern"] == "" {
		t.Errorf("out = %v", out)
	}
}
