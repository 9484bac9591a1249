package user_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/user"
	inmemdb "github.com/eskwela/admin/storage/database/inmem"
)

func setup(t *testing.T) (*user.Service, user.Repository) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := inmemdb.NewUserRepository(db)
	svc := user.NewService(repo, nil, core.Latency{})
	return svc, repo
}

func createUser(t *testing.T, svc *user.Service, name, email, role string) user.User {
	usr, err := svc.Create(user.NewUser{
		Name:     name,
		Email:    email,
		Role:     role,
		Password: "s3cr3t-pwd",
	})
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

func TestGenerate_deterministic(t *testing.T) {
	a := user.Generate(rand.New(rand.NewSource(42)), 20)
	b := user.Generate(rand.New(rand.NewSource(42)), 20)

	assert.Len(t, a, 20)
	assert.Equal(t, a, b, "the same seed yields an identical pool, timestamps included")
	for i := range a {
		assert.Equal(t, i+1, a[i].ID, "ids are 1-based and sequential")
		if a[i].Role == user.RoleStudent {
			assert.NotEmpty(t, a[i].GradeLevel, "students carry a grade level")
		} else {
			assert.Empty(t, a[i].GradeLevel)
		}
	}
}

func TestService_Create(t *testing.T) {
	svc, _ := setup(t)

	usr := createUser(t, svc, "Maria Santos", "Maria@Eskwela.edu.ph", user.RoleTeacher)
	assert.Equal(t, 1, usr.ID)
	assert.Equal(t, "maria@eskwela.edu.ph", usr.Email, "emails are normalized to lowercase")
	assert.Equal(t, core.StatusActive, usr.Status)
	assert.NoError(t, usr.CheckPassword("s3cr3t-pwd"))

	// duplicate email is rejected
	_, err := svc.Create(user.NewUser{
		Name:     "Other",
		Email:    "maria@eskwela.edu.ph",
		Role:     user.RoleAdmin,
		Password: "pwd",
	})
	assert.Error(t, err)
	assert.True(t, core.IsConflict(err))
	assert.EqualError(t, err, "Email already exists")
}

func TestService_Create_invalid(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Create(user.NewUser{Email: "not-an-email", Role: "boss", Password: "pwd"})
	assert.Error(t, err)
}

func TestService_GetByID(t *testing.T) {
	svc, _ := setup(t)
	usr := createUser(t, svc, "Juan Dela Cruz", "juan@eskwela.edu.ph", user.RoleStudent)

	got, err := svc.GetByID(usr.ID)
	assert.NoError(t, err)
	assert.Equal(t, usr.Email, got.Email)

	_, err = svc.GetByID(999)
	assert.True(t, core.IsNotFound(err))
	assert.EqualError(t, err, "User not found")
}

func TestService_Update(t *testing.T) {
	svc, _ := setup(t)
	usr := createUser(t, svc, "Ana Garcia", "ana@eskwela.edu.ph", user.RoleTeacher)
	other := createUser(t, svc, "Pedro Rodriguez", "pedro@eskwela.edu.ph", user.RoleTeacher)

	// zero-valued fields are left unchanged
	got, err := svc.Update(usr.ID, user.UpdateUser{Name: "Ana G. Updated"})
	assert.NoError(t, err)
	assert.Equal(t, "Ana G. Updated", got.Name)
	assert.Equal(t, usr.Email, got.Email)
	assert.Equal(t, user.RoleTeacher, got.Role)

	// re-submitting one's own email is not a conflict
	_, err = svc.Update(usr.ID, user.UpdateUser{Email: usr.Email})
	assert.NoError(t, err)

	// taking another user's email is
	_, err = svc.Update(usr.ID, user.UpdateUser{Email: other.Email})
	assert.True(t, core.IsConflict(err))

	_, err = svc.Update(999, user.UpdateUser{Name: "ghost"})
	assert.True(t, core.IsNotFound(err))
}

func TestService_Delete(t *testing.T) {
	svc, _ := setup(t)
	usr := createUser(t, svc, "Sofia Martinez", "sofia@eskwela.edu.ph", user.RoleStudent)

	assert.NoError(t, svc.Delete(usr.ID))

	err := svc.Delete(usr.ID)
	assert.True(t, core.IsNotFound(err), "second delete reports User not found")
}

func TestService_Query_sortAndFilter(t *testing.T) {
	svc, _ := setup(t)
	createUser(t, svc, "Carlos Lopez", "carlos@eskwela.edu.ph", user.RoleTeacher)
	createUser(t, svc, "Ana Garcia", "ana@eskwela.edu.ph", user.RoleTeacher)
	createUser(t, svc, "Beatriz Cruz", "beatriz@eskwela.edu.ph", user.RoleTeacher)
	createUser(t, svc, "Diego Morales", "diego@eskwela.edu.ph", user.RoleStudent)

	users, pg, err := svc.Query(user.QueryFilter{Role: user.RoleTeacher, SortBy: "name"})
	assert.NoError(t, err)
	assert.Equal(t, 3, pg.Total)
	assert.Equal(t, 1, pg.CurrentPage)

	names := make([]string, 0, len(users))
	for _, usr := range users {
		names = append(names, usr.Name)
	}
	assert.Equal(t, []string{"Ana Garcia", "Beatriz Cruz", "Carlos Lopez"}, names)

	// descending reverses the order
	users, _, err = svc.Query(user.QueryFilter{Role: user.RoleTeacher, SortBy: "name", SortOrder: core.SortDesc})
	assert.NoError(t, err)
	assert.Equal(t, "Carlos Lopez", users[0].Name)
	assert.Equal(t, "Ana Garcia", users[2].Name)
}

func TestService_Query_searchAndPaginate(t *testing.T) {
	svc, _ := setup(t)
	for i := 0; i < 15; i++ {
		createUser(t, svc, "Student Maria", "maria"+string(rune('a'+i))+"@eskwela.edu.ph", user.RoleStudent)
	}

	users, pg, err := svc.Query(user.QueryFilter{Search: "maria", Page: 2})
	assert.NoError(t, err)
	assert.Len(t, users, 5, "default page size is 10, second page holds the rest")
	assert.Equal(t, 15, pg.Total)
	assert.Equal(t, 2, pg.CurrentPage)
	assert.Equal(t, 10, pg.PerPage)

	users, pg, err = svc.Query(user.QueryFilter{Search: "no-such-user"})
	assert.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, 0, pg.Total)
}
