package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/TiGG-TV/Realtime/internal/models"
	"github.com/TiGG-TV/Realtime/internal/repositories"
)

const (
	uncategorized       = "Uncategorized"
	recentChatsLimit    = 10
	defaultLeaderboard  = 10
	defaultStrengthNote = "Practice more conversations to discover your strengths"
	defaultWeaknessNote = "Complete more conversations to identify areas for improvement"
)

type ScorePoint struct {
	Category models.Category
	Score    int
	ScoredAt time.Time
}

type DailyAverage struct {
	Date         string  `json:"date"`
	AverageScore float64 `json:"average_score"`
}

type CategoryAverage struct {
	Category     string  `json:"category"`
	AverageScore float64 `json:"average_score"`
}

type Progress struct {
	DailyAverages    []DailyAverage    `json:"daily_averages"`
	CategoryAverages []CategoryAverage `json:"category_averages"`
	Strengths        []string          `json:"strengths"`
	Weaknesses       []string          `json:"weaknesses"`
	RecentChats      []models.Chat     `json:"recent_chats"`
}

type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	UserID       string  `json:"user_id"`
	Username     string  `json:"username"`
	HighScore    int     `json:"high_score"`
	AverageScore float64 `json:"average_score"`
	ChatCount    int     `json:"chat_count"`
}

type LeaderboardPage struct {
	Entries     []LeaderboardEntry `json:"entries"`
	CurrentPage int                `json:"current_page"`
	TotalPages  int                `json:"total_pages"`
	CurrentUser *LeaderboardEntry  `json:"current_user,omitempty"`
}

// ScorePoints keeps only chats that carry a score.
func ScorePoints(chats []models.Chat) []ScorePoint {
	return lo.FilterMap(chats, func(c models.Chat, _ int) (ScorePoint, bool) {
		if c.Score == nil {
			return ScorePoint{}, false
		}
		p := ScorePoint{Category: c.Category, Score: *c.Score, ScoredAt: c.CreatedAt}
		if c.ScoredAt != nil {
			p.ScoredAt = *c.ScoredAt
		}
		return p, true
	})
}

// DailyAverages groups by UTC calendar date, oldest first.
func DailyAverages(points []ScorePoint) []DailyAverage {
	byDate := lo.GroupBy(points, func(p ScorePoint) string {
		return p.ScoredAt.UTC().Format("2006-01-02")
	})

	out := lo.MapToSlice(byDate, func(date string, ps []ScorePoint) DailyAverage {
		return DailyAverage{Date: date, AverageScore: averageScore(ps)}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// CategoryAverages is ordered by category name.
func CategoryAverages(points []ScorePoint) []CategoryAverage {
	byCategory := lo.GroupBy(points, func(p ScorePoint) string {
		if p.Category == "" {
			return uncategorized
		}
		return string(p.Category)
	})

	out := lo.MapToSlice(byCategory, func(cat string, ps []ScorePoint) CategoryAverage {
		return CategoryAverage{Category: cat, AverageScore: averageScore(ps)}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// StrengthsAndWeaknesses labels the three best categories and the three
// worst, worst first, as "Category (NN%)".
func StrengthsAndWeaknesses(averages []CategoryAverage) (strengths, weaknesses []string) {
	if len(averages) == 0 {
		return []string{defaultStrengthNote}, []string{defaultWeaknessNote}
	}

	sorted := append([]CategoryAverage(nil), averages...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AverageScore > sorted[j].AverageScore
	})

	label := func(a CategoryAverage, _ int) string {
		return fmt.Sprintf("%s (%d%%)", a.Category, int(math.Round(a.AverageScore)))
	}

	strengths = lo.Map(lo.Subset(sorted, 0, 3), label)
	worst := lo.Subset(sorted, -3, 3)
	for i := len(worst) - 1; i >= 0; i-- {
		weaknesses = append(weaknesses, label(worst[i], i))
	}
	return strengths, weaknesses
}

// Leaderboard ranks users by best score, then average, then chat count.
// Pages start at 1.
func Leaderboard(chats []models.Chat, page, pageSize int, currentUserID string) LeaderboardPage {
	if pageSize <= 0 {
		pageSize = defaultLeaderboard
	}
	if page < 1 {
		page = 1
	}

	byUser := lo.GroupBy(lo.Filter(chats, func(c models.Chat, _ int) bool {
		return c.UserID != "" && c.Score != nil
	}), func(c models.Chat) string { return c.UserID })

	entries := lo.MapToSlice(byUser, func(userID string, cs []models.Chat) LeaderboardEntry {
		scores := lo.Map(cs, func(c models.Chat, _ int) int { return *c.Score })
		username, _ := lo.Find(lo.Map(cs, func(c models.Chat, _ int) string { return c.Username }), func(u string) bool { return u != "" })
		return LeaderboardEntry{
			UserID:       userID,
			Username:     lo.CoalesceOrEmpty(username, "Anonymous"),
			HighScore:    lo.Max(scores),
			AverageScore: float64(lo.Sum(scores)) / float64(len(scores)),
			ChatCount:    len(cs),
		}
	})

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.HighScore != b.HighScore {
			return a.HighScore > b.HighScore
		}
		if a.AverageScore != b.AverageScore {
			return a.AverageScore > b.AverageScore
		}
		if a.ChatCount != b.ChatCount {
			return a.ChatCount > b.ChatCount
		}
		return a.UserID < b.UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	result := LeaderboardPage{
		Entries:     lo.Subset(entries, (page-1)*pageSize, uint(pageSize)),
		CurrentPage: page,
		TotalPages:  (len(entries) + pageSize - 1) / pageSize,
	}
	if me, ok := lo.Find(entries, func(e LeaderboardEntry) bool { return e.UserID == currentUserID }); ok {
		result.CurrentUser = &me
	}
	return result
}

func averageScore(points []ScorePoint) float64 {
	if len(points) == 0 {
		return 0
	}
	return float64(lo.SumBy(points, func(p ScorePoint) int { return p.Score })) / float64(len(points))
}

type ProgressService interface {
	GetProgress(userID string) (*Progress, error)
	GetLeaderboard(filter repositories.ChatFilter, page, pageSize int, currentUserID string) (*LeaderboardPage, error)
	LatestScores(userID string) ([]models.LatestScore, error)
}

type progressService struct {
	chatRepo  repositories.ChatRepository
	scoreRepo repositories.ScoreRepository
}

func NewProgressService(chatRepo repositories.ChatRepository, scoreRepo repositories.ScoreRepository) ProgressService {
	return &progressService{chatRepo: chatRepo, scoreRepo: scoreRepo}
}

func (s *progressService) GetProgress(userID string) (*Progress, error) {
	scored, err := s.chatRepo.FindScored(repositories.ChatFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	recent, err := s.chatRepo.FindRecentByUser(userID, recentChatsLimit)
	if err != nil {
		return nil, err
	}

	points := ScorePoints(scored)
	categories := CategoryAverages(points)
	strengths, weaknesses := StrengthsAndWeaknesses(categories)

	return &Progress{
		DailyAverages:    DailyAverages(points),
		CategoryAverages: categories,
		Strengths:        strengths,
		Weaknesses:       weaknesses,
		RecentChats:      recent,
	}, nil
}

func (s *progressService) GetLeaderboard(filter repositories.ChatFilter, page, pageSize int, currentUserID string) (*LeaderboardPage, error) {
	chats, err := s.chatRepo.FindScored(filter)
	if err != nil {
		return nil, err
	}
	board := Leaderboard(chats, page, pageSize, currentUserID)
	return &board, nil
}

func (s *progressService) LatestScores(userID string) ([]models.LatestScore, error) {
	return s.scoreRepo.FindByUser(userID)
}
