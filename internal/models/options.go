package models

import "time"

// SkinType is one of the four questionnaire skin types
type SkinType string

const (
	SkinTypeOily        SkinType = "oily"
	SkinTypeDry         SkinType = "dry"
	SkinTypeCombination SkinType = "combination"
	SkinTypeSensitive   SkinType = "sensitive"
)

// SkinTypes lists the accepted skin types
var SkinTypes = []SkinType{SkinTypeOily, SkinTypeDry, SkinTypeCombination, SkinTypeSensitive}

// Valid reports whether t is a known skin type
func (t SkinType) Valid() bool {
	for _, s := range SkinTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Season selects the seasonal adjustment rule
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Seasons lists the accepted seasons
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// Valid reports whether s is a known season
func (s Season) Valid() bool {
	for _, v := range Seasons {
		if v == s {
			return true
		}
	}
	return false
}

// CurrentSeason maps a date to its (northern hemisphere) season
func CurrentSeason(now time.Time) Season {
	switch m := now.Month(); {
	case m >= time.March && m <= time.May:
		return SeasonSpring
	case m >= time.June && m <= time.August:
		return SeasonSummer
	case m >= time.September && m <= time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// PreferenceType is the user's inclination towards home remedies or products
type PreferenceType string

const (
	PreferenceHomeRemedies PreferenceType = "home-remedies"
	PreferenceProducts     PreferenceType = "products"
	PreferenceMixed        PreferenceType = "mixed"
)

// Valid reports whether p is a known preference type
func (p PreferenceType) Valid() bool {
	switch p {
	case PreferenceHomeRemedies, PreferenceProducts, PreferenceMixed:
		return true
	}
	return false
}

// TimeAvailable is how long the user is willing to spend on a routine
type TimeAvailable string

const (
	TimeQuick     TimeAvailable = "quick"
	TimeModerate  TimeAvailable = "moderate"
	TimeExtensive TimeAvailable = "extensive"
)

// Valid reports whether t is a known time preference
func (t TimeAvailable) Valid() bool {
	switch t {
	case TimeQuick, TimeModerate, TimeExtensive:
		return true
	}
	return false
}

// Option is a value/label pair offered by the questionnaire
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// QuestionnaireOptions groups every option list the questionnaire offers
type QuestionnaireOptions struct {
	SkinTypes []Option `json:"skinTypes"`
	Concerns  []Option `json:"concerns"`
	AgeRanges []Option `json:"ageRanges"`
	Budgets   []Option `json:"budgets"`
	Times     []Option `json:"timePreferences"`
	Seasons   []Option `json:"seasons"`
}

// DefaultOptions returns the questionnaire option lists
func DefaultOptions() QuestionnaireOptions {
	return QuestionnaireOptions{
		SkinTypes: []Option{
			{Value: string(SkinTypeOily), Label: "Oily", Description: "Shiny T-zone, enlarged pores, prone to breakouts"},
			{Value: string(SkinTypeDry), Label: "Dry", Description: "Tight feeling, flaky patches, minimal oil production"},
			{Value: string(SkinTypeCombination), Label: "Combination", Description: "Oily T-zone with dry cheeks and temples"},
			{Value: string(SkinTypeSensitive), Label: "Sensitive", Description: "Reactive to products, redness, irritation-prone"},
		},
		Concerns: []Option{
			{Value: "acne", Label: "Acne & Breakouts"},
			{Value: "aging", Label: "Fine Lines & Aging"},
			{Value: "dark-spots", Label: "Dark Spots & Pigmentation"},
			{Value: "pores", Label: "Large Pores"},
			{Value: "dullness", Label: "Dull Complexion"},
			{Value: "redness", Label: "Redness & Irritation"},
			{Value: "dryness", Label: "Dryness & Dehydration"},
			{Value: "oiliness", Label: "Excess Oil Production"},
		},
		AgeRanges: []Option{
			{Value: "18-25", Label: "18-25"},
			{Value: "26-35", Label: "26-35"},
			{Value: "36-45", Label: "36-45"},
			{Value: "46-55", Label: "46-55"},
			{Value: "55+", Label: "55+"},
		},
		Budgets: []Option{
			{Value: "budget", Label: "Budget-Friendly ($0-50/month)"},
			{Value: "mid-range", Label: "Mid-Range ($50-150/month)"},
			{Value: "premium", Label: "Premium ($150+/month)"},
			{Value: "home-remedies", Label: "I prefer home remedies"},
		},
		Times: []Option{
			{Value: string(TimeQuick), Label: "Quick (5-10 min)", Description: "Minimal steps for busy lifestyles"},
			{Value: string(TimeModerate), Label: "Moderate (10-20 min)", Description: "Balanced routine with key steps"},
			{Value: string(TimeExtensive), Label: "Extensive (20+ min)", Description: "Complete routine with all steps"},
		},
		Seasons: []Option{
			{Value: string(SeasonSpring), Label: "Spring", Description: "Light cleansing, gentle exfoliation"},
			{Value: string(SeasonSummer), Label: "Summer", Description: "Extra SPF, oil control, hydration"},
			{Value: string(SeasonFall), Label: "Fall", Description: "Repair damage, prepare for dryness"},
			{Value: string(SeasonWinter), Label: "Winter", Description: "Deep hydration, barrier repair"},
		},
	}
}
