package models

// PlayerStats represents aggregated round statistics for a player
type PlayerStats struct {
	TotalRounds  int
	TotalWins    int
	TotalLosses  int
	TotalSpent   int64 // box purchases only
	TotalWon     int64
	TotalLost    int64
	BiggestWin   int64
	BiggestLoss  int64
	RoundsByGame map[Game]int
}
