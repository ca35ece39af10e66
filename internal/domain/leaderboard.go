// internal/domain/leaderboard.go
package domain

import "sort"

// LeaderboardEntry is one row of a user's friend leaderboard.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        int64  `json:"userId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Score         int    `json:"score"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}

// BuildLeaderboard merges self into friends and ranks everyone by score, highest first.
// Equal scores share a rank and keep their relative input order, with self ahead of
// friends on the same score. A friend row carrying self's id is dropped.
func BuildLeaderboard(self User, friends []User) []LeaderboardEntry {
	merged := make([]User, 0, len(friends)+1)
	merged = append(merged, self)
	for _, f := range friends {
		if f.ID == self.ID {
			continue
		}
		merged = append(merged, f)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	entries := make([]LeaderboardEntry, len(merged))
	for i, u := range merged {
		rank := i + 1
		if i > 0 && u.Score == merged[i-1].Score {
			rank = entries[i-1].Rank
		}
		entries[i] = LeaderboardEntry{
			Rank:          rank,
			UserID:        u.ID,
			FirstName:     u.FirstName,
			LastName:      u.LastName,
			Score:         u.Score,
			IsCurrentUser: u.ID == self.ID,
		}
	}
	return entries
}
