package model

type LeaderboardSort string

const (
	LeaderboardSortPoints     LeaderboardSort = "points"
	LeaderboardSortDeliveries LeaderboardSort = "deliveries"
	LeaderboardSortRating     LeaderboardSort = "rating"
)

type LeaderboardEntry struct {
	UserID          string  `json:"user_id"`
	Name            string  `json:"name"`
	Points          int64   `json:"points"`
	TotalDeliveries int     `json:"total_deliveries"`
	AverageRating   float64 `json:"average_rating"`
	Rank            int     `json:"rank"`
}
