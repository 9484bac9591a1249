package inmemdb

import (
	"sort"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/user"
)

type userRepository struct {
	db *userTable
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db.user}
}

// query returns a snapshot of the pool ordered by id.
func (repo *userRepository) query() []user.User {
	users := make([]user.User, 0, len(repo.db.table))
	for _, usr := range repo.db.table {
		users = append(users, *usr)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (repo *userRepository) CheckEmailUniqueness(email string, excludedIDs ...int) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, usr := range repo.db.table {
		if usr.Email == email && !isExcluded(usr.ID, excludedIDs) {
			return user.ErrEmailExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.seq++
	usr.ID = repo.db.seq
	repo.db.table[usr.ID] = &usr
	return usr, nil
}

func (repo *userRepository) GetUserByID(id int) (user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if usr, ok := repo.db.table[id]; ok {
		return *usr, nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByEmail(email string) (user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, usr := range repo.db.table {
		if usr.Email == email {
			return *usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) FilterUsers(filter user.QueryFilter) ([]user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	users := repo.query()

	if filter.Role != "" {
		var filtered []user.User
		for _, usr := range users {
			if usr.Role == filter.Role {
				filtered = append(filtered, usr)
			}
		}
		users = filtered
	}
	if filter.GradeLevel != "" {
		var filtered []user.User
		for _, usr := range users {
			if usr.GradeLevel == filter.GradeLevel {
				filtered = append(filtered, usr)
			}
		}
		users = filtered
	}
	if filter.Status != "" {
		var filtered []user.User
		for _, usr := range users {
			if usr.Status == filter.Status {
				filtered = append(filtered, usr)
			}
		}
		users = filtered
	}
	if filter.Search != "" {
		var filtered []user.User
		for _, usr := range users {
			if core.MatchesSearch(filter.Search, usr.Name, usr.Email) {
				filtered = append(filtered, usr)
			}
		}
		users = filtered
	}
	return users, nil
}

func (repo *userRepository) UpdateUser(usr user.User) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[usr.ID]; !ok {
		return user.User{}, user.ErrNotFound
	}
	repo.db.table[usr.ID] = &usr
	return usr, nil
}

func (repo *userRepository) DeleteUserByID(id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return user.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

func (repo *userRepository) CountUsers() (user.Counts, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var counts user.Counts
	for _, usr := range repo.db.table {
		counts.Total++
		switch usr.Role {
		case user.RoleStudent:
			counts.Students++
		case user.RoleTeacher:
			counts.Teachers++
		case user.RoleAdmin:
			counts.Admins++
		}
		if usr.IsActive() {
			counts.Active++
		}
	}
	return counts, nil
}

func isExcluded(id int, excludedIDs []int) bool {
	for _, exclID := range excludedIDs {
		if id == exclID {
			return true
		}
	}
	return false
}
