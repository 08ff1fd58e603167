package service

import (
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/types"
)

// DefaultSeason is used when a generate request names no season
const DefaultSeason = models.SeasonWinter

// seasonalRules holds one adjustment per season, keyed to the moisturizer step
var seasonalRules = map[models.Season][]types.Adjustment{
	models.SeasonWinter: {{
		Step:   "Moisturizer",
		Change: "Use extra hydrating formula",
		Reason: "Winter air is drier and can dehydrate skin",
	}},
	models.SeasonSummer: {{
		Step:   "Moisturizer",
		Change: "Switch to a lightweight, oil-free formula and reapply SPF every two hours",
		Reason: "Heat and humidity increase oil production and UV exposure peaks in summer",
	}},
	models.SeasonFall: {{
		Step:   "Moisturizer",
		Change: "Choose a barrier-repair formula with ceramides",
		Reason: "Cooler, drier air after summer sun leaves the skin barrier weakened",
	}},
	models.SeasonSpring: {{
		Step:   "Moisturizer",
		Change: "Pair with gentle exfoliation once or twice a week",
		Reason: "Spring is a good time to clear dull winter buildup as humidity returns",
	}},
}

// SeasonalAdjustments returns a fresh copy of the adjustments for season
func SeasonalAdjustments(season models.Season) types.SeasonalAdjustment {
	rules := seasonalRules[season]
	adjustments := make([]types.Adjustment, len(rules))
	copy(adjustments, rules)
	return types.SeasonalAdjustment{Season: season, Adjustments: adjustments}
}
