// Package bank holds the curated, source-backed Canada advantage fact bank
// and the deterministic daily selection logic over it.
//
// The bank mixes two origins: stable policy/institution facts backed by
// official legislation or government sources, and cross-country indicator
// comparisons resolved against the World Bank API with static fallbacks.
package bank

// Categories are the rotation axis for the daily focus.
var Categories = []string{
	"Legal & institutional protections",
	"Currency, capital, and financial system",
	"Labour mobility & credential leverage",
	"Information access & skill compounding",
	"Infrastructure & time efficiency",
	"Optionality under failure (second chances)",
	"State capacity & predictability",
	"Language and geographic optionality (e.g. English + ability to move)",
	"Language: English/French as global languages (portability of skills, no language trap)",
	"Educational opportunities (public K-12, affordable higher ed, credentials that transfer globally)",
	"Healthcare access (universal coverage, no medical bankruptcy as in the US)",
	"Political stability and peaceful transfers of power",
	"Banking and financial inclusion (everyone can hold an account, no cash-only trap)",
	"Research, libraries, and public knowledge (open access, no censorship of curricula)",
	"Labour standards (minimum wage, overtime, safety, recourse for wage theft)",
	"Property rights and contract enforcement (predictable courts, no arbitrary expropriation)",
	"Immigration and naturalization pathways (ability to naturalize, sponsor family)",
	"Press freedom and open information (no state media monopoly, access to global news)",
	"Internal mobility (freedom to move between provinces without permits or residency locks)",
	"Pension and social insurance (CPP, EI, predictable retirement floor)",
	"Clean water, sanitation, and reliable basic infrastructure",
	"Consumer and product safety regulation (food, drugs, standards)",
	"Environmental quality and public goods (air, water, parks as baseline)",
}

// ComparisonProfile biases the pack toward one contrast emphasis per day.
type ComparisonProfile struct {
	Label string
	Tags  []string
}

// ComparisonProfiles rotate by day of year alongside the categories.
var ComparisonProfiles = []ComparisonProfile{
	{
		Label: "low-trust economies with weak rule-of-law and corruption risk",
		Tags:  []string{"low_trust", "rule_of_law", "corruption", "zimbabwe"},
	},
	{
		Label: "language/mobility traps where domestic constraints reduce exit options",
		Tags:  []string{"language_trap", "mobility", "hukou"},
	},
	{
		Label: "wealthy but rigid systems with weaker second-chance mechanisms",
		Tags:  []string{"second_chance", "debt", "income_shock"},
	},
	{
		Label: "systems with temporary-status work but narrow paths to citizenship",
		Tags:  []string{"citizenship", "family", "temporary_status"},
	},
	{
		Label: "high-cost risk environments where one shock can impair recovery",
		Tags:  []string{"us_risk", "medical_debt", "income_shock"},
	},
	{
		Label: "high-inflation settings where cash and wages erode quickly",
		Tags:  []string{"inflation", "currency", "macrostability"},
	},
	{
		Label: "states with constrained press and weaker civic protections",
		Tags:  []string{"press_freedom", "civil_liberties", "information_access"},
	},
}

// CountryName maps ISO-2 codes used in metric blueprints to display names.
var CountryName = map[string]string{
	"CA": "Canada",
	"US": "United States",
	"ZW": "Zimbabwe",
	"AR": "Argentina",
	"JP": "Japan",
}
