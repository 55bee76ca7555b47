package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/lang-portal/internal/domain"
	"github.com/phrazzld/lang-portal/internal/pagination"
	"github.com/phrazzld/lang-portal/internal/store"
)

// WordWithStats pairs a word with its review outcome counts.
type WordWithStats struct {
	Word  *domain.Word
	Stats store.WordStats
}

// WordDetail is the full word view: texts, stats, and group membership.
type WordDetail struct {
	Word   *domain.Word
	Stats  store.WordStats
	Groups []*domain.Group
}

// GroupWithCount pairs a group with its word count.
type GroupWithCount struct {
	Group     *domain.Group
	WordCount int
}

// CatalogService exposes the read side of the vocabulary catalog: words,
// groups, and study activities, with statistics composed from the live
// review and relationship rows.
type CatalogService interface {
	// ListWords returns one page of the catalog with per-word stats.
	ListWords(ctx context.Context, page int) ([]WordWithStats, pagination.Page, error)

	// GetWord returns the detail view for one word.
	// Returns store.ErrWordNotFound if the word does not exist.
	GetWord(ctx context.Context, wordID int64) (*WordDetail, error)

	// ListGroups returns one page of groups with their word counts.
	ListGroups(ctx context.Context, page int) ([]GroupWithCount, pagination.Page, error)

	// GetGroup returns one group with its word count.
	// Returns store.ErrGroupNotFound if the group does not exist.
	GetGroup(ctx context.Context, groupID int64) (*GroupWithCount, error)

	// ListGroupWords returns one page of the group's words with stats.
	// Returns store.ErrGroupNotFound if the group does not exist.
	ListGroupWords(ctx context.Context, groupID int64, page int) ([]WordWithStats, pagination.Page, error)

	// ListActivities returns the whole activity catalog, unpaged.
	ListActivities(ctx context.Context) ([]*domain.StudyActivity, error)

	// GetActivity returns one study activity.
	// Returns store.ErrActivityNotFound if the activity does not exist.
	GetActivity(ctx context.Context, activityID int64) (*domain.StudyActivity, error)
}

// catalogService is the production CatalogService implementation.
type catalogService struct {
	words      store.WordStore
	groups     store.GroupStore
	activities store.StudyActivityStore
	stats      store.StatsStore
	logger     *slog.Logger
}

// NewCatalogService creates a CatalogService over the given stores.
// If logger is nil, a default logger will be used.
func NewCatalogService(
	words store.WordStore,
	groups store.GroupStore,
	activities store.StudyActivityStore,
	stats store.StatsStore,
	logger *slog.Logger,
) CatalogService {
	if logger == nil {
		logger = slog.Default()
	}

	return &catalogService{
		words:      words,
		groups:     groups,
		activities: activities,
		stats:      stats,
		logger:     logger.With(slog.String("component", "catalog_service")),
	}
}

// ListWords implements CatalogService.ListWords
func (s *catalogService) ListWords(ctx context.Context, page int) ([]WordWithStats, pagination.Page, error) {
	if page < 1 {
		return nil, pagination.Page{}, domain.ErrInvalidPage
	}

	total, err := s.words.Count(ctx)
	if err != nil {
		return nil, pagination.Page{}, newError("list_words", "failed to count words", err)
	}

	perPage := pagination.WordsPageSize
	words, err := s.words.List(ctx, perPage, pagination.Offset(page, perPage))
	if err != nil {
		return nil, pagination.Page{}, newError("list_words", "failed to list words", err)
	}

	items, err := attachWordStats(ctx, s.stats, words)
	if err != nil {
		return nil, pagination.Page{}, newError("list_words", "failed to compose word stats", err)
	}

	return items, pagination.New(page, total, perPage), nil
}

// GetWord implements CatalogService.GetWord
func (s *catalogService) GetWord(ctx context.Context, wordID int64) (*WordDetail, error) {
	word, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return nil, err
	}

	stats, err := s.stats.WordStats(ctx, wordID)
	if err != nil {
		return nil, newError("get_word", "failed to compute word stats", err)
	}

	groups, err := s.words.GroupsForWord(ctx, wordID)
	if err != nil {
		return nil, newError("get_word", "failed to list word groups", err)
	}

	return &WordDetail{Word: word, Stats: stats, Groups: groups}, nil
}

// ListGroups implements CatalogService.ListGroups
func (s *catalogService) ListGroups(ctx context.Context, page int) ([]GroupWithCount, pagination.Page, error) {
	if page < 1 {
		return nil, pagination.Page{}, domain.ErrInvalidPage
	}

	total, err := s.groups.Count(ctx)
	if err != nil {
		return nil, pagination.Page{}, newError("list_groups", "failed to count groups", err)
	}

	perPage := pagination.GroupsPageSize
	groups, err := s.groups.List(ctx, perPage, pagination.Offset(page, perPage))
	if err != nil {
		return nil, pagination.Page{}, newError("list_groups", "failed to list groups", err)
	}

	items := make([]GroupWithCount, 0, len(groups))
	for _, group := range groups {
		count, err := s.words.CountByGroup(ctx, group.ID)
		if err != nil {
			return nil, pagination.Page{}, newError("list_groups", "failed to count group words", err)
		}
		items = append(items, GroupWithCount{Group: group, WordCount: count})
	}

	return items, pagination.New(page, total, perPage), nil
}

// GetGroup implements CatalogService.GetGroup
func (s *catalogService) GetGroup(ctx context.Context, groupID int64) (*GroupWithCount, error) {
	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	count, err := s.words.CountByGroup(ctx, groupID)
	if err != nil {
		return nil, newError("get_group", "failed to count group words", err)
	}

	return &GroupWithCount{Group: group, WordCount: count}, nil
}

// ListGroupWords implements CatalogService.ListGroupWords
func (s *catalogService) ListGroupWords(ctx context.Context, groupID int64, page int) ([]WordWithStats, pagination.Page, error) {
	if page < 1 {
		return nil, pagination.Page{}, domain.ErrInvalidPage
	}

	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return nil, pagination.Page{}, err
	}

	total, err := s.words.CountByGroup(ctx, groupID)
	if err != nil {
		return nil, pagination.Page{}, newError("list_group_words", "failed to count words", err)
	}

	perPage := pagination.WordsPageSize
	words, err := s.words.ListByGroup(ctx, groupID, perPage, pagination.Offset(page, perPage))
	if err != nil {
		return nil, pagination.Page{}, newError("list_group_words", "failed to list words", err)
	}

	items, err := attachWordStats(ctx, s.stats, words)
	if err != nil {
		return nil, pagination.Page{}, newError("list_group_words", "failed to compose word stats", err)
	}

	return items, pagination.New(page, total, perPage), nil
}

// ListActivities implements CatalogService.ListActivities
func (s *catalogService) ListActivities(ctx context.Context) ([]*domain.StudyActivity, error) {
	activities, err := s.activities.List(ctx)
	if err != nil {
		return nil, newError("list_activities", "failed to list study activities", err)
	}
	return activities, nil
}

// GetActivity implements CatalogService.GetActivity
func (s *catalogService) GetActivity(ctx context.Context, activityID int64) (*domain.StudyActivity, error) {
	return s.activities.GetByID(ctx, activityID)
}

// attachWordStats pairs each word with its review counts. Words with no
// reviews come back with zero counts.
func attachWordStats(ctx context.Context, stats store.StatsStore, words []*domain.Word) ([]WordWithStats, error) {
	items := make([]WordWithStats, 0, len(words))
	for _, word := range words {
		ws, err := stats.WordStats(ctx, word.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, WordWithStats{Word: word, Stats: ws})
	}
	return items, nil
}
