package bank

import "github.com/stateanchor/stateanchor/internal/model"

// MetricFacts are indicator-comparison blueprints. Each resolves through the
// World Bank client; the fallback pair keeps resolution total when the API is
// unreachable or incomplete.
var MetricFacts = []model.MetricFact{
	{
		ID:             "F101",
		Category:       "Healthcare access (universal coverage, no medical bankruptcy as in the US)",
		Tags:           []string{"healthcare", "us_risk"},
		Indicator:      "SP.DYN.LE00.IN",
		IndicatorName:  "Life expectancy at birth, total (years)",
		CompareCountry: "US",
		HigherIsBetter: true,
		Decimals:       1,
		SourceName:     "World Bank WDI",
		Fallback: map[string]model.Observation{
			"CA": {Year: "2023", Value: 81.6},
			"US": {Year: "2023", Value: 78.4},
		},
	},
	{
		ID:             "F102",
		Category:       "Political stability and peaceful transfers of power",
		Tags:           []string{"stability", "us_risk", "public_safety"},
		Indicator:      "VC.IHR.PSRC.P5",
		IndicatorName:  "Intentional homicides (per 100,000 people)",
		CompareCountry: "US",
		HigherIsBetter: false,
		Decimals:       1,
		SourceName:     "World Bank WDI",
		Fallback: map[string]model.Observation{
			"CA": {Year: "2023", Value: 2.0},
			"US": {Year: "2023", Value: 5.8},
		},
	},
	{
		ID:             "F103",
		Category:       "Clean water, sanitation, and reliable basic infrastructure",
		Tags:           []string{"infrastructure", "water", "zimbabwe", "low_trust"},
		Indicator:      "SH.H2O.SMDW.ZS",
		IndicatorName:  "People using safely managed drinking water services (% of population)",
		CompareCountry: "ZW",
		HigherIsBetter: true,
		Decimals:       1,
		SourceName:     "World Bank WDI (WHO/UNICEF JMP)",
		Fallback: map[string]model.Observation{
			"CA": {Year: "2024", Value: 96.9},
			"ZW": {Year: "2024", Value: 25.5},
		},
	},
	{
		ID:             "F104",
		Category:       "Clean water, sanitation, and reliable basic infrastructure",
		Tags:           []string{"infrastructure", "sanitation", "zimbabwe", "low_trust"},
		Indicator:      "SH.STA.SMSS.ZS",
		IndicatorName:  "People using safely managed sanitation services (% of population)",
		CompareCountry: "ZW",
		HigherIsBetter: true,
		Decimals:       1,
		SourceName:     "World Bank WDI (WHO/UNICEF JMP)",
		Fallback: map[string]model.Observation{
			"CA": {Year: "2024", Value: 81.3},
			"ZW": {Year: "2024", Value: 23.6},
		},
	},
	{
		ID:             "F105",
		Category:       "Infrastructure & time efficiency",
		Tags:           []string{"infrastructure", "electricity", "zimbabwe", "state_capacity"},
		Indicator:      "EG.ELC.ACCS.ZS",
		IndicatorName:  "Access to electricity (% of population)",
		CompareCountry: "ZW",
		HigherIsBetter: true,
		Decimals:       1,
		SourceName:     "World Bank WDI",
		Fallback: map[string]model.Observation{
			"CA": {Year: "2023", Value: 100.0},
			"ZW": {Year: "2023", Value: 62.0},
		},
	},
	{
		ID:             "F106",
		Category:       "Information access & skill compounding",
		Tags:           []string{"information_access", "infrastructure", "zimbabwe"},
		Indicator:      "IT.NET.USER.ZS",
		IndicatorName:  "Individuals using the Internet (% of population)",
		CompareCountry: "ZW",
		HigherIsBetter: true,
		Decimals:       1,
		SourceName:     "World Bank WDI",
		Fallback: map[string]model.Observation{
			"CA": {Year: "2023", Value: 94.0},
			"ZW": {Year: "2023", Value: 38.4},
		},
	},
	{
		ID:             "F107",
		Category:       "Banking and financial inclusion (everyone can hold an account, no cash-only trap)",
		Tags:           []string{"banking", "financial_inclusion", "zimbabwe", "low_trust"},
		Indicator:      "FX.OWN.TOTL.ZS",
		IndicatorName:  "Account ownership at a financial institution or with a mobile-money-service provider (% age 15+)",
		CompareCountry: "ZW",
		HigherIsBetter: true,
		Decimals:       1,
		SourceName:     "World Bank Global Findex via WDI",
		Fallback: map[string]model.Observation{
			"CA": {Year: "2024", Value: 98.4},
			"ZW": {Year: "2024", Value: 49.5},
		},
	},
	{
		ID:             "F108",
		Category:       "Currency, capital, and financial system",
		Tags:           []string{"inflation", "currency", "macrostability"},
		Indicator:      "FP.CPI.TOTL.ZG",
		IndicatorName:  "Inflation, consumer prices (annual %)",
		CompareCountry: "AR",
		HigherIsBetter: false,
		Decimals:       1,
		SourceName:     "World Bank WDI",
		Fallback: map[string]model.Observation{
			"CA": {Year: "2024", Value: 2.4},
			"AR": {Year: "2024", Value: 219.9},
		},
	},
	{
		ID:             "F109",
		Category:       "State capacity & predictability",
		Tags:           []string{"state_capacity", "us_risk", "inequality"},
		Indicator:      "SI.POV.GINI",
		IndicatorName:  "Gini index",
		CompareCountry: "US",
		HigherIsBetter: false,
		Decimals:       1,
		SourceName:     "World Bank WDI",
		Fallback: map[string]model.Observation{
			"CA": {Year: "2021", Value: 31.1},
			"US": {Year: "2023", Value: 41.8},
		},
	},
}
