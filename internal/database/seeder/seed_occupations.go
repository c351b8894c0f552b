package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/aravhawk/vetpath/internal/database"
	"github.com/aravhawk/vetpath/internal/domain/occupation"
)

type occupationSeed struct {
	Code      string
	Title     string
	Desc      string
	Wage      int
	Outlook   string
	Growth    float64
	Industry  string
	Education string
	Skills    []string
}

// OccupationsSeeder replaces the occupation catalog and its skill
// requirements. Skills listed first carry the highest importance.
type OccupationsSeeder struct{}

func (OccupationsSeeder) Name() string { return "occupations" }

func (OccupationsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "occupations",
		"occupation_code", "occupation_title", "description", "median_wage",
		"job_outlook", "growth_rate", "industry", "education_required"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "occupation_skills",
		"occupation_code", "skill_name", "importance_level"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM occupation_skills`); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM occupations`); err != nil {
		return err
	}

	for _, occ := range occupationCatalog {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO occupations
			 (occupation_code, occupation_title, description, median_wage,
			  job_outlook, growth_rate, industry, education_required)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			occ.Code, occ.Title, occ.Desc, occ.Wage,
			occ.Outlook, occ.Growth, occ.Industry, occ.Education,
		)
		if err != nil {
			return fmt.Errorf("insert occupation %s: %w", occ.Code, err)
		}

		for i, skill := range occ.Skills {
			importance := occupation.ClampImportance(5 - i)
			_, err := tx.Exec(
				ctx,
				`INSERT INTO occupation_skills (occupation_code, skill_name, importance_level)
				 VALUES ($1, $2, $3)
				 ON CONFLICT (occupation_code, skill_name) DO NOTHING`,
				occ.Code, strings.ToLower(skill), importance,
			)
			if err != nil {
				return fmt.Errorf("insert skill %s/%s: %w", occ.Code, skill, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

var occupationCatalog = []occupationSeed{
	// Manufacturing & production.
	{
		Code: "17-2112.00", Title: "Industrial Engineer",
		Desc:    "Design, develop, test, and evaluate integrated systems for managing industrial production processes.",
		Wage:    95300, Outlook: "Faster than average", Growth: 10.0,
		Industry: "manufacturing", Education: "Bachelor's degree",
		Skills: []string{"process improvement", "quality control", "project management", "data analysis",
			"team leadership", "problem solving", "operations management", "lean manufacturing"},
	},
	{
		Code: "51-1011.00", Title: "Production Supervisor",
		Desc:    "Directly supervise and coordinate the activities of production and operating workers.",
		Wage:    62010, Outlook: "Average", Growth: 5.0,
		Industry: "manufacturing", Education: "High school diploma or equivalent",
		Skills: []string{"team leadership", "scheduling", "quality control", "safety management",
			"inventory management", "training", "communication", "problem solving"},
	},
	{
		Code: "51-4041.00", Title: "CNC Machine Tool Operator",
		Desc:    "Set up and operate computer-controlled machines to fabricate metal or plastic parts.",
		Wage:    45750, Outlook: "Average", Growth: 3.0,
		Industry: "manufacturing", Education: "High school diploma or equivalent",
		Skills: []string{"equipment operation", "precision measurement", "blueprint reading",
			"quality inspection", "maintenance", "safety procedures", "mathematics"},
	},
	{
		Code: "17-2141.00", Title: "Mechanical Engineer",
		Desc:    "Perform engineering duties in planning and designing tools, engines, machines, and other mechanically functioning equipment.",
		Wage:    96310, Outlook: "Average", Growth: 2.0,
		Industry: "manufacturing", Education: "Bachelor's degree",
		Skills: []string{"mechanical design", "cad software", "problem solving", "project management",
			"technical documentation", "quality assurance", "teamwork", "mathematics"},
	},

	// Technology & IT.
	{
		Code: "15-1212.00", Title: "Information Security Analyst",
		Desc:    "Plan, implement, upgrade, or monitor security measures for the protection of computer networks and information.",
		Wage:    112000, Outlook: "Much faster than average", Growth: 32.0,
		Industry: "technology", Education: "Bachelor's degree",
		Skills: []string{"cybersecurity", "network security", "risk assessment", "security clearance",
			"incident response", "security protocols", "threat analysis", "problem solving"},
	},
	{
		Code: "15-1232.00", Title: "Network Administrator",
		Desc:    "Install, configure, and maintain local area networks, wide area networks, and internet systems.",
		Wage:    90520, Outlook: "Average", Growth: 3.0,
		Industry: "technology", Education: "Bachelor's degree",
		Skills: []string{"network administration", "troubleshooting", "system configuration",
			"security management", "documentation", "communication", "problem solving"},
	},
	{
		Code: "15-1211.00", Title: "Computer Systems Analyst",
		Desc:    "Analyze science, engineering, business, and other data processing problems to develop and implement solutions.",
		Wage:    102240, Outlook: "Average", Growth: 9.0,
		Industry: "technology", Education: "Bachelor's degree",
		Skills: []string{"systems analysis", "problem solving", "project management", "communication",
			"data analysis", "technical documentation", "teamwork", "requirements gathering"},
	},
	{
		Code: "15-1251.00", Title: "Software Developer",
		Desc:    "Research, design, and develop computer and network software or specialized utility programs.",
		Wage:    127260, Outlook: "Much faster than average", Growth: 25.0,
		Industry: "technology", Education: "Bachelor's degree",
		Skills: []string{"programming", "software development", "problem solving", "debugging",
			"system design", "teamwork", "communication", "project management"},
	},

	// Logistics & transportation.
	{
		Code: "13-1081.00", Title: "Logistics Analyst",
		Desc:    "Analyze and coordinate the logistical functions of a firm or organization.",
		Wage:    77520, Outlook: "Faster than average", Growth: 18.0,
		Industry: "logistics", Education: "Bachelor's degree",
		Skills: []string{"logistics management", "supply chain", "data analysis", "inventory management",
			"process improvement", "communication", "problem solving", "project management"},
	},
	{
		Code: "11-3071.00", Title: "Transportation Manager",
		Desc:    "Plan, direct, or coordinate the transportation operations within an organization.",
		Wage:    98560, Outlook: "Average", Growth: 6.0,
		Industry: "logistics", Education: "Bachelor's degree",
		Skills: []string{"team leadership", "logistics management", "fleet management", "budgeting",
			"scheduling", "compliance", "communication", "problem solving"},
	},
	{
		Code: "43-5071.00", Title: "Shipping and Receiving Supervisor",
		Desc:    "Coordinate activities of workers engaged in verifying and keeping records of incoming and outgoing shipments.",
		Wage:    55230, Outlook: "Average", Growth: 4.0,
		Industry: "logistics", Education: "High school diploma or equivalent",
		Skills: []string{"inventory management", "team leadership", "documentation", "scheduling",
			"quality control", "safety procedures", "communication", "organization"},
	},

	// Construction & skilled trades.
	{
		Code: "47-1011.00", Title: "Construction Supervisor",
		Desc:    "Directly supervise and coordinate activities of construction workers.",
		Wage:    72290, Outlook: "Average", Growth: 5.0,
		Industry: "construction", Education: "High school diploma or equivalent",
		Skills: []string{"team leadership", "project management", "blueprint reading", "safety management",
			"scheduling", "quality control", "budgeting", "communication"},
	},
	{
		Code: "49-9021.00", Title: "HVAC Technician",
		Desc:    "Install, maintain, and repair heating, ventilation, and air conditioning systems.",
		Wage:    51390, Outlook: "Much faster than average", Growth: 15.0,
		Industry: "construction", Education: "Postsecondary nondegree award",
		Skills: []string{"equipment maintenance", "troubleshooting", "electrical systems",
			"refrigeration", "safety procedures", "customer service", "blueprint reading"},
	},
	{
		Code: "47-2111.00", Title: "Electrician",
		Desc:    "Install, maintain, and repair electrical wiring, equipment, and fixtures.",
		Wage:    60240, Outlook: "Faster than average", Growth: 9.0,
		Industry: "construction", Education: "High school diploma or equivalent",
		Skills: []string{"electrical systems", "troubleshooting", "blueprint reading", "safety procedures",
			"equipment installation", "maintenance", "problem solving", "mathematics"},
	},

	// Energy & utilities.
	{
		Code: "51-8013.00", Title: "Power Plant Operator",
		Desc:    "Control, operate, or maintain machinery to generate electric power.",
		Wage:    94790, Outlook: "Declining", Growth: -15.0,
		Industry: "energy", Education: "High school diploma or equivalent",
		Skills: []string{"equipment operation", "monitoring systems", "safety procedures",
			"troubleshooting", "maintenance", "documentation", "teamwork"},
	},
	{
		Code: "47-5013.00", Title: "Wind Turbine Technician",
		Desc:    "Inspect, diagnose, adjust, or repair wind turbines. Perform maintenance on wind turbine equipment.",
		Wage:    56260, Outlook: "Much faster than average", Growth: 44.0,
		Industry: "energy", Education: "Postsecondary nondegree award",
		Skills: []string{"equipment maintenance", "troubleshooting", "safety procedures",
			"climbing", "electrical systems", "mechanical systems", "documentation"},
	},

	// Healthcare support.
	{
		Code: "29-2042.00", Title: "Emergency Medical Technician",
		Desc:    "Assess injuries, administer emergency medical care, and transport injured or sick persons to medical facilities.",
		Wage:    36930, Outlook: "Faster than average", Growth: 7.0,
		Industry: "healthcare", Education: "Postsecondary nondegree award",
		Skills: []string{"emergency response", "medical procedures", "patient care", "communication",
			"stress management", "teamwork", "problem solving", "documentation"},
	},
	{
		Code: "11-9111.00", Title: "Medical and Health Services Manager",
		Desc:    "Plan, direct, or coordinate medical and health services in hospitals, clinics, or similar organizations.",
		Wage:    104830, Outlook: "Much faster than average", Growth: 28.0,
		Industry: "healthcare", Education: "Bachelor's degree",
		Skills: []string{"team leadership", "healthcare administration", "budgeting", "compliance",
			"communication", "problem solving", "project management", "operations management"},
	},

	// Management & operations.
	{
		Code: "11-1021.00", Title: "General Manager",
		Desc:    "Plan, direct, or coordinate operations of companies or organizations.",
		Wage:    102450, Outlook: "Average", Growth: 6.0,
		Industry: "management", Education: "Bachelor's degree",
		Skills: []string{"team leadership", "strategic planning", "budgeting", "operations management",
			"communication", "problem solving", "decision making", "project management"},
	},
	{
		Code: "11-3051.00", Title: "Operations Manager",
		Desc:    "Direct administrative and operational activities of business operations.",
		Wage:    97970, Outlook: "Average", Growth: 6.0,
		Industry: "management", Education: "Bachelor's degree",
		Skills: []string{"team leadership", "operations management", "process improvement", "budgeting",
			"scheduling", "quality control", "communication", "problem solving"},
	},
	{
		Code: "13-1111.00", Title: "Management Analyst",
		Desc:    "Conduct organizational studies and evaluations, design systems and procedures.",
		Wage:    95290, Outlook: "Faster than average", Growth: 11.0,
		Industry: "management", Education: "Bachelor's degree",
		Skills: []string{"data analysis", "problem solving", "process improvement", "communication",
			"project management", "strategic planning", "documentation", "teamwork"},
	},

	// Training & education.
	{
		Code: "13-1151.00", Title: "Training and Development Specialist",
		Desc:    "Design and conduct training and development programs to improve individual and organizational performance.",
		Wage:    63080, Outlook: "Average", Growth: 6.0,
		Industry: "education", Education: "Bachelor's degree",
		Skills: []string{"training development", "instruction", "curriculum design", "communication",
			"presentation skills", "assessment", "documentation", "teamwork"},
	},

	// Emergency services.
	{
		Code: "33-1012.00", Title: "Fire Chief",
		Desc:    "Plan, direct, and coordinate activities of a fire department.",
		Wage:    78020, Outlook: "Average", Growth: 4.0,
		Industry: "emergency_services", Education: "Postsecondary nondegree award",
		Skills: []string{"team leadership", "emergency response", "strategic planning", "budgeting",
			"communication", "decision making", "safety management", "training"},
	},
	{
		Code: "33-3051.00", Title: "Police Officer",
		Desc:    "Maintain order and protect life and property by enforcing laws and ordinances.",
		Wage:    65790, Outlook: "Average", Growth: 3.0,
		Industry: "emergency_services", Education: "High school diploma or equivalent",
		Skills: []string{"law enforcement", "communication", "problem solving", "physical fitness",
			"firearms proficiency", "report writing", "teamwork", "decision making"},
	},

	// Project management.
	{
		Code: "11-9199.00", Title: "Project Manager",
		Desc:    "Plan, direct, and coordinate activities to ensure project goals are accomplished within prescribed time frames and budgets.",
		Wage:    94500, Outlook: "Faster than average", Growth: 7.0,
		Industry: "management", Education: "Bachelor's degree",
		Skills: []string{"project management", "team leadership", "budgeting", "scheduling",
			"risk management", "communication", "problem solving", "stakeholder management"},
	},
}
