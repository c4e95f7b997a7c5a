package models

// Game identifies one of the mini-games
type Game string

const (
	GameLuckyBox       Game = "Lucky Box Shop"
	GameFindTheThief   Game = "Find the Thief"
	GameSurvivalBridge Game = "Survival Bridge"
	GameGoalOrMiss     Game = "Goal or Miss"
)

// GameCardInfo describes a game and the concept it teaches
type GameCardInfo struct {
	ID          Game
	Title       string
	Description string
	Icon        string
	Concept     string
}

// GameCards lists the games in menu order
var GameCards = []GameCardInfo{
	{
		ID:          GameLuckyBox,
		Title:       "Lucky Box Shop",
		Description: "Spend points on mystery boxes with different prize odds.",
		Icon:        "🎁",
		Concept:     "Expected Value",
	},
	{
		ID:          GameFindTheThief,
		Title:       "Find the Thief",
		Description: "Reveal clues one at a time and watch the suspects' odds change.",
		Icon:        "🕵️",
		Concept:     "Conditional Probability",
	},
	{
		ID:          GameSurvivalBridge,
		Title:       "Survival Bridge",
		Description: "Send adventurers across a shaky bridge. More at once pays more, if they make it.",
		Icon:        "🌉",
		Concept:     "Risk vs. Reward",
	},
	{
		ID:          GameGoalOrMiss,
		Title:       "Goal or Miss",
		Description: "Pick a spot in the goal. Corners pay the most but are hardest to hit.",
		Icon:        "⚽",
		Concept:     "Probability & Payoff",
	},
}
