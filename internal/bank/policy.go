package bank

import "github.com/stateanchor/stateanchor/internal/model"

// PolicyFacts are stable policy/institution claims. Every claim and contrast
// is tied to the cited source; edits here must keep text and URLs in sync.
var PolicyFacts = []model.PolicyFact{
	{
		ID:       "F001",
		Category: "Internal mobility (freedom to move between provinces without permits or residency locks)",
		Tags:     []string{"mobility", "legal", "hukou", "language_trap"},
		Claim: "Section 6(2) of the Charter gives citizens and permanent residents the right " +
			"to move to any province and pursue a livelihood there.",
		Contrast: "China's hukou system ties many social benefits to local registration, which " +
			"can limit migrant access in destination cities.",
		SourceName: "Constitution Act, 1982 (Charter, s.6) + World Bank hukou analysis",
		SourceURLs: []string{
			"https://laws.justice.gc.ca/eng/Const/page-12.html",
			"https://blogs.worldbank.org/en/peoplemove/chinas-hukou-reform-remains-major-challenge-domestic-migrants-cities",
		},
		AsOf: "Current law / World Bank 2024",
	},
	{
		ID:       "F002",
		Category: "Healthcare access (universal coverage, no medical bankruptcy as in the US)",
		Tags:     []string{"healthcare", "us_risk", "medical_debt"},
		Claim: "Under the Canada Health Act framework, provincial public plans must cover " +
			"medically necessary hospital and physician services.",
		Contrast: "Commonwealth Fund reported that 32% of working-age adults in the U.S. had " +
			"medical debt in 2023.",
		SourceName: "Canada Health Act guidance + Commonwealth Fund affordability survey",
		SourceURLs: []string{
			"https://www.canada.ca/en/health-canada/services/health-care-system/canada-health-care-system-medicare/canada-health-act/myth-busters.html",
			"https://www.commonwealthfund.org/sites/default/files/2023-10/Collins_2023_AffordabilitySurveyTopline_PR_10-26-2023_v2.pdf",
		},
		AsOf: "Current framework / 2023 survey",
	},
	{
		ID:       "F003",
		Category: "Currency, capital, and financial system",
		Tags:     []string{"currency", "banking", "low_trust", "macrostability"},
		Claim: "CDIC insures eligible deposits up to CAD 100,000 per depositor, per insured " +
			"category, at member institutions.",
		Contrast: "In weakly supervised banking systems, household losses from bank failures can " +
			"fall directly on depositors.",
		SourceName: "Canada Deposit Insurance Corporation (CDIC)",
		SourceURLs: []string{"https://www.cdic.ca/depositors/whats-covered/"},
		AsOf:       "Current",
	},
	{
		ID:       "F004",
		Category: "Currency, capital, and financial system",
		Tags:     []string{"currency", "inflation", "state_capacity", "macrostability"},
		Claim: "The Bank of Canada targets 2% inflation within a 1-3% control range under a " +
			"jointly renewed monetary policy framework.",
		Contrast: "High-inflation systems can rapidly erode purchasing power, planning horizons, " +
			"and savings.",
		SourceName: "Bank of Canada inflation-control framework",
		SourceURLs: []string{
			"https://www.bankofcanada.ca/rates/indicators/key-variables/inflation-control-target/",
		},
		AsOf: "Renewed through end-2026",
	},
	{
		ID:       "F005",
		Category: "Immigration and naturalization pathways (ability to naturalize, sponsor family)",
		Tags:     []string{"citizenship", "mobility", "temporary_status"},
		Claim: "Permanent residents can apply for citizenship after 1,095 days of physical " +
			"presence in the preceding 5 years, if other criteria are met.",
		Contrast: "Some high-income jurisdictions have narrow, nomination-based naturalization " +
			"paths for foreigners rather than broad residence-based pathways.",
		SourceName: "IRCC citizenship eligibility + UAE nationality rules",
		SourceURLs: []string{
			"https://www.canada.ca/en/immigration-refugees-citizenship/services/canadian-citizenship/become-canadian-citizen/eligibility.html",
			"https://u.ae/en/information-and-services/passports-and-traveling/emirati-nationality/provisions-allowing-foreigners-to-acquire-the-emirati-nationality",
		},
		AsOf: "Current",
	},
	{
		ID:       "F006",
		Category: "Immigration and naturalization pathways (ability to naturalize, sponsor family)",
		Tags:     []string{"family", "citizenship", "temporary_status"},
		Claim: "Canadian citizens and permanent residents can sponsor eligible spouses/partners, " +
			"children, parents, and grandparents for permanent residence.",
		Contrast: "In many migration systems, workers can reside temporarily but cannot secure " +
			"durable status for close family.",
		SourceName: "IRCC family sponsorship program",
		SourceURLs: []string{
			"https://www.canada.ca/en/immigration-refugees-citizenship/services/immigrate-canada/family-sponsorship.html",
		},
		AsOf: "Current",
	},
	{
		ID:       "F007",
		Category: "Language: English/French as global languages (portability of skills, no language trap)",
		Tags:     []string{"language", "language_trap", "mobility"},
		Claim: "The Official Languages Act gives English and French equal status in federal " +
			"institutions and guarantees access to federal services in either language where required.",
		Contrast: "Stronger bilingual institutional support reduces language lock-in and improves " +
			"domestic and international mobility of skills.",
		SourceName: "Official Languages Act",
		SourceURLs: []string{
			"https://laws-lois.justice.gc.ca/eng/acts/o-3.01/page-1.html",
			"https://www.canada.ca/en/treasury-board-secretariat/services/values-ethics/official-languages/public-services/bilingual-offices-facilities.html",
		},
		AsOf: "Current",
	},
	{
		ID:       "F008",
		Category: "Optionality under failure (second chances)",
		Tags:     []string{"second_chance", "income_shock", "state_capacity"},
		Claim: "Employment Insurance provides temporary income support for eligible workers " +
			"who lose employment while they search for work or upgrade skills.",
		Contrast: "Where unemployment insurance is weak or absent, job loss can force immediate " +
			"asset depletion and shorter planning horizons.",
		SourceName: "Government of Canada EI program overview",
		SourceURLs: []string{"https://www.canada.ca/en/employment-social-development/programs/ei.html"},
		AsOf:       "Current",
	},
	{
		ID:       "F009",
		Category: "Pension and social insurance (CPP, EI, predictable retirement floor)",
		Tags:     []string{"pension", "state_capacity", "income_shock"},
		Claim: "The Canada Pension Plan is a mandatory, contributory, earnings-related social " +
			"insurance program for most workers earning above CAD 3,500 (outside Quebec's QPP).",
		Contrast: "Mandatory pooled pension contributions create a more predictable retirement " +
			"floor than systems relying mainly on voluntary or informal saving.",
		SourceName: "Canada Pension Plan contributions and program pages",
		SourceURLs: []string{
			"https://www.canada.ca/en/services/benefits/publicpensions/cpp/contributions.html",
			"https://www.canada.ca/en/employment-social-development/programs/pension-plan.html",
		},
		AsOf: "Current",
	},
	{
		ID:       "F010",
		Category: "Optionality under failure (second chances)",
		Tags:     []string{"second_chance", "debt", "legal"},
		Claim: "For a first bankruptcy, automatic discharge can occur after 9 months when " +
			"conditions are met (or 21 months with surplus income obligations).",
		Contrast: "A structured discharge framework provides legal second chances that are weaker " +
			"or slower in many jurisdictions.",
		SourceName: "Office of the Superintendent of Bankruptcy (Canada)",
		SourceURLs: []string{
			"https://ised-isde.canada.ca/site/office-superintendent-bankruptcy/en/you-owe-money/you-owe-money-bankruptcy-discharge-and-its-consequences-bankrupt",
		},
		AsOf: "Current",
	},
	{
		ID:         "F011",
		Category:   "Press freedom and open information (no state media monopoly, access to global news)",
		Tags:       []string{"civil_liberties", "press_freedom", "zimbabwe", "low_trust"},
		Claim:      "Freedom House (2025) scores Canada at 97/100 (Free).",
		Contrast:   "Freedom House (2025) scores Zimbabwe at 26/100 (Not Free).",
		SourceName: "Freedom House, Freedom in the World 2025 country reports",
		SourceURLs: []string{
			"https://freedomhouse.org/country/canada/freedom-world/2025",
			"https://freedomhouse.org/country/zimbabwe/freedom-world/2025",
		},
		AsOf: "2025",
	},
	{
		ID:       "F012",
		Category: "Property rights and contract enforcement (predictable courts, no arbitrary expropriation)",
		Tags:     []string{"rule_of_law", "legal", "low_trust"},
		Claim:    "World Justice Project Rule of Law Index 2024 ranks Canada 12th of 142 countries.",
		Contrast: "Higher rule-of-law performance generally means stronger contract enforcement " +
			"and lower arbitrary policy risk.",
		SourceName: "World Justice Project Rule of Law Index 2024",
		SourceURLs: []string{
			"https://worldjusticeproject.org/rule-of-law-index/global/2024",
			"https://worldjusticeproject.org/sites/default/files/documents/Canada_2.pdf",
		},
		AsOf: "2024",
	},
	{
		ID:       "F013",
		Category: "Press freedom and open information (no state media monopoly, access to global news)",
		Tags:     []string{"press_freedom", "information_access"},
		Claim:    "Reporters Without Borders' 2024 World Press Freedom Index ranks Canada 14th of 180.",
		Contrast: "Compared with censored environments, stronger press freedom increases access " +
			"to independent information and scrutiny.",
		SourceName: "RSF World Press Freedom Index 2024",
		SourceURLs: []string{"https://rsf.org/en/classement/2024/americas"},
		AsOf:       "2024",
	},
	{
		ID:       "F014",
		Category: "Legal & institutional protections",
		Tags:     []string{"corruption", "low_trust", "rule_of_law"},
		Claim:    "Transparency International CPI 2024 gives Canada a score of 75/100 (rank 15/180).",
		Contrast: "Lower perceived corruption reduces everyday bribery risk and improves policy " +
			"predictability for households and firms.",
		SourceName: "Transparency International country profile (Canada)",
		SourceURLs: []string{"https://www.transparency.org/en/countries/canada"},
		AsOf:       "2024",
	},
	{
		ID:       "F015",
		Category: "Political stability and peaceful transfers of power",
		Tags:     []string{"stability", "state_capacity"},
		Claim:    "Global Peace Index 2024 ranks Canada 11th of 163.",
		Contrast: "Higher peacefulness reduces disruption risk to work, schooling, logistics, and " +
			"long-term planning.",
		SourceName: "Institute for Economics & Peace, Global Peace Index 2024",
		SourceURLs: []string{
			"https://www.economicsandpeace.org/report/global-peace-index-2024/",
		},
		AsOf: "2024",
	},
}
