package gap

// DefaultTraining is the built-in recommendation table for common skill
// gaps. It covers gaps the training-resource catalog misses; NewAnalyzer
// receives it (or a test fixture) explicitly rather than reading a global.
func DefaultTraining() map[string]Recommendation {
	return map[string]Recommendation{
		"project management": {
			Certification: "PMP or CAPM Certification",
			EstimatedTime: "3-6 months",
			Cost:          "Often covered by VA benefits",
			Provider:      "Project Management Institute",
			VAEligible:    true,
		},
		"data analysis": {
			Certification: "Google Data Analytics Certificate",
			EstimatedTime: "6 months",
			Cost:          "Free on Coursera",
			Provider:      "Google/Coursera",
			VAEligible:    true,
		},
		"programming": {
			Certification: "Google IT Automation with Python",
			EstimatedTime: "6 months",
			Cost:          "Free on Coursera",
			Provider:      "Google/Coursera",
			VAEligible:    true,
		},
		"software development": {
			Certification: "AWS Certified Developer or freeCodeCamp",
			EstimatedTime: "6-12 months",
			Cost:          "Free to $150",
			Provider:      "AWS/freeCodeCamp",
			VAEligible:    true,
		},
		"cybersecurity": {
			Certification: "CompTIA Security+",
			EstimatedTime: "3-4 months",
			Cost:          "$392 exam fee, often VA covered",
			Provider:      "CompTIA",
			VAEligible:    true,
		},
		"network administration": {
			Certification: "CompTIA Network+",
			EstimatedTime: "2-3 months",
			Cost:          "$358 exam fee, often VA covered",
			Provider:      "CompTIA",
			VAEligible:    true,
		},
		"lean manufacturing": {
			Certification: "Six Sigma Green Belt",
			EstimatedTime: "2-3 months",
			Cost:          "$438 exam fee, often employer paid",
			Provider:      "ASQ or IASSC",
			VAEligible:    true,
		},
		"quality control": {
			Certification: "ASQ Certified Quality Inspector",
			EstimatedTime: "2-3 months",
			Cost:          "$394 exam fee",
			Provider:      "American Society for Quality",
			VAEligible:    true,
		},
		"cad software": {
			Certification: "Autodesk Certified User",
			EstimatedTime: "2-3 months",
			Cost:          "$125 exam fee",
			Provider:      "Autodesk",
			VAEligible:    true,
		},
		"supply chain": {
			Certification: "APICS CSCP",
			EstimatedTime: "6-9 months",
			Cost:          "$595 exam fee, often employer paid",
			Provider:      "ASCM",
			VAEligible:    true,
		},
		"healthcare administration": {
			Certification: "Certified Medical Manager",
			EstimatedTime: "6 months",
			Cost:          "$325 exam fee",
			Provider:      "PAHCOM",
			VAEligible:    true,
		},
		"electrical systems": {
			Certification: "Journeyman Electrician License",
			EstimatedTime: "Apprenticeship program",
			Cost:          "Paid apprenticeship",
			Provider:      "State Licensing Board",
			VAEligible:    true,
		},
		"mechanical design": {
			Certification: "SOLIDWORKS Certification",
			EstimatedTime: "3-6 months",
			Cost:          "$99-199 exam fee",
			Provider:      "Dassault Systemes",
			VAEligible:    true,
		},
		"budgeting": {
			Certification: "Financial Management Certificate",
			EstimatedTime: "3-4 months",
			Cost:          "Varies by program",
			Provider:      "Various universities",
			VAEligible:    true,
		},
		"process improvement": {
			Certification: "Lean Six Sigma Yellow Belt",
			EstimatedTime: "1-2 months",
			Cost:          "$100-300",
			Provider:      "Multiple providers",
			VAEligible:    true,
		},
	}
}
