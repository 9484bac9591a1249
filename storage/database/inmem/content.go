package inmemdb

import (
	"sort"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/content"
)

type contentRepository struct {
	db *contentTable
}

var _ content.Repository = (*contentRepository)(nil) // interface compliance check

func NewContentRepository(db *DB) content.Repository {
	return &contentRepository{db: db.content}
}

// query returns a snapshot of the pool ordered by id.
func (repo *contentRepository) query() []content.ARContent {
	items := make([]content.ARContent, 0, len(repo.db.table))
	for _, item := range repo.db.table {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (repo *contentRepository) CreateContent(item content.ARContent) (content.ARContent, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.seq++
	item.ID = repo.db.seq
	repo.db.table[item.ID] = &item
	return item, nil
}

func (repo *contentRepository) GetContentByID(id int) (content.ARContent, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if item, ok := repo.db.table[id]; ok {
		return *item, nil
	}
	return content.ARContent{}, content.ErrNotFound
}

func (repo *contentRepository) FilterContent(filter content.QueryFilter) ([]content.ARContent, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	items := repo.query()

	if filter.Subject != "" {
		var filtered []content.ARContent
		for _, item := range items {
			if item.Subject == filter.Subject {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	if filter.GradeLevel != "" {
		var filtered []content.ARContent
		for _, item := range items {
			if item.GradeLevel == filter.GradeLevel {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	if filter.Type != "" {
		var filtered []content.ARContent
		for _, item := range items {
			if item.Type == filter.Type {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	if filter.Status != "" {
		var filtered []content.ARContent
		for _, item := range items {
			if item.Status == filter.Status {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	if filter.Search != "" {
		var filtered []content.ARContent
		for _, item := range items {
			if core.MatchesSearch(filter.Search, item.Title, item.Description) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	return items, nil
}

func (repo *contentRepository) UpdateContent(item content.ARContent) (content.ARContent, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[item.ID]; !ok {
		return content.ARContent{}, content.ErrNotFound
	}
	repo.db.table[item.ID] = &item
	return item, nil
}

func (repo *contentRepository) DeleteContentByID(id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return content.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

func (repo *contentRepository) CountContent() (total, active int, err error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, item := range repo.db.table {
		total++
		if item.Status == core.StatusActive {
			active++
		}
	}
	return total, active, nil
}
