package seeder

import (
	"context"
	"fmt"

	"github.com/aravhawk/vetpath/internal/database"
	"github.com/aravhawk/vetpath/internal/domain/occupation"
)

type crosswalkSeed struct {
	MOSCode       string
	Branch        string
	MilitaryTitle string
	// Civilian occupation codes in descending order of fit; the first
	// listed code receives the highest match strength.
	CivilianCodes []string
}

// CrosswalkSeeder replaces the MOS-to-occupation crosswalk.
type CrosswalkSeeder struct{}

func (CrosswalkSeeder) Name() string { return "military_crosswalk" }

func (CrosswalkSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "military_crosswalk",
		"mos_code", "branch", "military_title", "civilian_occupation_code", "match_strength"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM military_crosswalk`); err != nil {
		return err
	}

	for _, entry := range crosswalkCatalog {
		for i, civCode := range entry.CivilianCodes {
			strength := occupation.ClampImportance(5 - i)
			_, err := tx.Exec(
				ctx,
				`INSERT INTO military_crosswalk
				 (mos_code, branch, military_title, civilian_occupation_code, match_strength)
				 VALUES ($1, $2, $3, $4, $5)
				 ON CONFLICT (mos_code, civilian_occupation_code) DO NOTHING`,
				entry.MOSCode, entry.Branch, entry.MilitaryTitle, civCode, strength,
			)
			if err != nil {
				return fmt.Errorf("insert crosswalk %s->%s: %w", entry.MOSCode, civCode, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// InsertCrosswalkEntries upserts externally fetched crosswalk rows on
// top of the seed catalog. Rows referencing unknown occupations are
// skipped rather than failing the whole batch.
func InsertCrosswalkEntries(ctx context.Context, db database.DB, entries []occupation.CrosswalkEntry) (int, error) {
	inserted := 0
	for _, e := range entries {
		_, err := db.Exec(
			ctx,
			`INSERT INTO military_crosswalk
			 (mos_code, branch, military_title, civilian_occupation_code, match_strength)
			 SELECT $1, $2, $3, $4, $5
			 WHERE EXISTS (SELECT 1 FROM occupations WHERE occupation_code = $4)
			 ON CONFLICT (mos_code, civilian_occupation_code)
			 DO UPDATE SET match_strength = EXCLUDED.match_strength`,
			e.MOSCode, e.Branch, e.MilitaryTitle, e.OccupationCode, occupation.ClampImportance(e.MatchStrength),
		)
		if err != nil {
			return inserted, fmt.Errorf("upsert crosswalk %s->%s: %w", e.MOSCode, e.OccupationCode, err)
		}
		inserted++
	}
	return inserted, nil
}

var crosswalkCatalog = []crosswalkSeed{
	// Army.
	{MOSCode: "11B", Branch: "Army", MilitaryTitle: "Infantryman",
		CivilianCodes: []string{"33-3051.00", "33-1012.00", "11-3051.00", "47-1011.00"}},
	{MOSCode: "92A", Branch: "Army", MilitaryTitle: "Automated Logistical Specialist",
		CivilianCodes: []string{"13-1081.00", "43-5071.00", "11-3071.00"}},
	{MOSCode: "92Y", Branch: "Army", MilitaryTitle: "Unit Supply Specialist",
		CivilianCodes: []string{"43-5071.00", "13-1081.00", "11-3071.00"}},
	{MOSCode: "15T", Branch: "Army", MilitaryTitle: "UH-60 Helicopter Repairer",
		CivilianCodes: []string{"49-9021.00", "17-2141.00", "51-4041.00"}},
	{MOSCode: "25B", Branch: "Army", MilitaryTitle: "Information Technology Specialist",
		CivilianCodes: []string{"15-1232.00", "15-1212.00", "15-1211.00", "15-1251.00"}},
	{MOSCode: "25S", Branch: "Army", MilitaryTitle: "Satellite Communication Systems Operator",
		CivilianCodes: []string{"15-1232.00", "15-1212.00", "15-1211.00"}},
	{MOSCode: "68W", Branch: "Army", MilitaryTitle: "Combat Medic Specialist",
		CivilianCodes: []string{"29-2042.00", "11-9111.00"}},
	{MOSCode: "91B", Branch: "Army", MilitaryTitle: "Wheeled Vehicle Mechanic",
		CivilianCodes: []string{"49-9021.00", "51-4041.00", "47-2111.00"}},

	// Navy.
	{MOSCode: "IT", Branch: "Navy", MilitaryTitle: "Information Systems Technician",
		CivilianCodes: []string{"15-1232.00", "15-1212.00", "15-1211.00", "15-1251.00"}},
	{MOSCode: "MM", Branch: "Navy", MilitaryTitle: "Machinist's Mate",
		CivilianCodes: []string{"51-4041.00", "17-2141.00", "51-8013.00"}},
	{MOSCode: "HM", Branch: "Navy", MilitaryTitle: "Hospital Corpsman",
		CivilianCodes: []string{"29-2042.00", "11-9111.00"}},
	{MOSCode: "LS", Branch: "Navy", MilitaryTitle: "Logistics Specialist",
		CivilianCodes: []string{"13-1081.00", "43-5071.00", "11-3071.00"}},

	// Air Force.
	{MOSCode: "3D0X2", Branch: "Air Force", MilitaryTitle: "Cyber Systems Operations",
		CivilianCodes: []string{"15-1212.00", "15-1232.00", "15-1211.00"}},
	{MOSCode: "2A6X1", Branch: "Air Force", MilitaryTitle: "Aerospace Propulsion",
		CivilianCodes: []string{"17-2141.00", "49-9021.00", "51-4041.00"}},
	{MOSCode: "2T2X1", Branch: "Air Force", MilitaryTitle: "Air Transportation",
		CivilianCodes: []string{"13-1081.00", "11-3071.00", "43-5071.00"}},

	// Marine Corps.
	{MOSCode: "0311", Branch: "Marine Corps", MilitaryTitle: "Rifleman",
		CivilianCodes: []string{"33-3051.00", "33-1012.00", "11-3051.00"}},
	{MOSCode: "0621", Branch: "Marine Corps", MilitaryTitle: "Field Radio Operator",
		CivilianCodes: []string{"15-1232.00", "15-1212.00"}},
	{MOSCode: "0481", Branch: "Marine Corps", MilitaryTitle: "Landing Support Specialist",
		CivilianCodes: []string{"13-1081.00", "11-3071.00", "43-5071.00"}},
	{MOSCode: "3521", Branch: "Marine Corps", MilitaryTitle: "Automotive Maintenance Technician",
		CivilianCodes: []string{"49-9021.00", "51-4041.00"}},
}
