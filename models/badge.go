package models

// BadgeType names an achievement a player can earn once
type BadgeType string

const (
	BadgeFirstWin        BadgeType = "First Win!"
	BadgeHighRoller      BadgeType = "High Roller"
	BadgeSmartInvestor   BadgeType = "Smart Investor"
	BadgeMasterDetective BadgeType = "Master Detective"
	BadgeBridgeMaster    BadgeType = "Bridge Master"
	BadgeGoldenBoot      BadgeType = "Golden Boot"
)

// BadgeDefinition holds display details for a badge
type BadgeDefinition struct {
	Icon        string
	Description string
}

// BadgeDefinitions maps every badge to its display details
var BadgeDefinitions = map[BadgeType]BadgeDefinition{
	BadgeFirstWin:        {Icon: "🏆", Description: "Opened your first lucky box."},
	BadgeHighRoller:      {Icon: "💰", Description: "Went above the high roller threshold after a box."},
	BadgeSmartInvestor:   {Icon: "📈", Description: "Bought the box with the highest expected value."},
	BadgeMasterDetective: {Icon: "🔍", Description: "Caught the thief."},
	BadgeBridgeMaster:    {Icon: "🌉", Description: "Sent every adventurer across at once and survived."},
	BadgeGoldenBoot:      {Icon: "👟", Description: "Scored in a top corner."},
}
