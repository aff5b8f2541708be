package models

// NominateDrink is the drink outcome that hands the drink to a nominated player
const NominateDrink = "Nominate"

// DefaultPlayers returns the player list used when nothing is persisted
func DefaultPlayers() []string {
	return []string{"Alice", "Bob", "Charlie", "Daisy"}
}

// DefaultDrinks returns the drink list used when nothing is persisted
func DefaultDrinks() []string {
	return []string{"1 sip", "2 sips", "3 sips", "Half drink", "Full drink", NominateDrink}
}

// BuiltinFeatures returns the catalog used when nothing is persisted
func BuiltinFeatures() []*Feature {
	return []*Feature{
		{
			ID:         SetRuleFeatureID,
			Name:       "Set a Rule",
			DurationMS: 10000,
			TargetType: TargetRandom,
		},
		{
			ID:         "everyone-drinks",
			Name:       "Everyone Drinks",
			Message:    "🍻 Everyone takes a sip!",
			DurationMS: 5000,
			TargetType: TargetAll,
		},
		{
			ID:         "waterfall",
			Name:       "Waterfall",
			Message:    "🌊 Waterfall! Start drinking!",
			DurationMS: 8000,
			TargetType: TargetAll,
		},
	}
}
