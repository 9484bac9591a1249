package user

import (
	"fmt"
	"net/mail"
	"sort"
	"time"

	"github.com/eskwela/admin/core"
)

var (
	// errors
	ErrNotFound    = core.NewNotFoundError("User not found")
	ErrEmailExists = core.NewConflictError("Email already exists")
)

// Simulated latencies, matching the real backend's typical response times.
const (
	lookupDelay = 300 * time.Millisecond
	listDelay   = 500 * time.Millisecond
	createDelay = 800 * time.Millisecond
	updateDelay = 600 * time.Millisecond
	deleteDelay = 400 * time.Millisecond
)

type (
	Repository interface {
		// CheckEmailUniqueness returns ErrEmailExists when another user
		// (excluding excludedIDs) already has this email.
		CheckEmailUniqueness(email string, excludedIDs ...int) error
		CreateUser(usr User) (User, error)
		GetUserByID(id int) (User, error)
		GetUserByEmail(email string) (User, error)
		// FilterUsers applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on User.Name or User.Email.
		FilterUsers(filter QueryFilter) ([]User, error)
		UpdateUser(usr User) (User, error)
		DeleteUserByID(id int) error
		CountUsers() (Counts, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		lat     core.Latency
	}
)

func NewService(repo Repository, mailSvc core.EmailService, lat core.Latency) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, lat: lat}
}

// Create validates nu, stores the new user and sends them a welcome email.
func (svc *Service) Create(nu NewUser) (User, error) {
	svc.lat.Sleep(createDelay)

	if err := nu.Validate(); err != nil {
		return User{}, err
	}
	if err := svc.repo.CheckEmailUniqueness(nu.Email); err != nil {
		return User{}, err
	}

	now := time.Now().UTC()
	usr := User{
		Name:       nu.Name,
		Email:      nu.Email,
		Role:       nu.Role,
		GradeLevel: nu.GradeLevel,
		LastActive: now,
		CreatedAt:  now,
		Status:     core.StatusActive,
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}
	usr, err := svc.repo.CreateUser(usr)
	if err != nil {
		return User{}, err
	}
	svc.sendWelcomeEmail(usr)
	return usr, nil
}

func (svc *Service) GetByID(id int) (User, error) {
	svc.lat.Sleep(lookupDelay)
	return svc.repo.GetUserByID(id)
}

func (svc *Service) GetByEmail(email string) (User, error) {
	return svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */))
}

// Query runs the filter -> sort -> paginate pipeline over the user pool.
func (svc *Service) Query(filter QueryFilter) ([]User, core.Pagination, error) {
	svc.lat.Sleep(listDelay)

	filter.Clean()
	users, err := svc.repo.FilterUsers(filter)
	if err != nil {
		return nil, core.Pagination{}, err
	}
	sortUsers(users, filter.SortBy, filter.SortOrder)

	perPage := filter.PerPage
	if perPage < 1 {
		perPage = core.DefaultPageSize
	}
	page, pg := core.Paginate(users, filter.Page, perPage)
	return page, pg, nil
}

// Update merges the set fields of uu into the stored user.
func (svc *Service) Update(id int, uu UpdateUser) (User, error) {
	svc.lat.Sleep(updateDelay)

	if err := uu.Validate(); err != nil {
		return User{}, err
	}
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return User{}, err
	}
	if uu.Email != "" && uu.Email != usr.Email {
		if err = svc.repo.CheckEmailUniqueness(uu.Email, id); err != nil {
			return User{}, err
		}
		usr.Email = uu.Email
	}
	if uu.Name != "" {
		usr.Name = uu.Name
	}
	if uu.Role != "" {
		usr.Role = uu.Role
	}
	if uu.GradeLevel != "" {
		usr.GradeLevel = uu.GradeLevel
	}
	if uu.Status != "" {
		usr.Status = uu.Status
	}
	if uu.Password != "" {
		if err = usr.SetPassword(uu.Password); err != nil {
			return User{}, err
		}
	}
	return svc.repo.UpdateUser(usr)
}

// Delete removes the user; a second call for the same id returns ErrNotFound.
func (svc *Service) Delete(id int) error {
	svc.lat.Sleep(deleteDelay)
	return svc.repo.DeleteUserByID(id)
}

// SetLastActive stamps the user's activity time (e.g. on login).
func (svc *Service) SetLastActive(usr User) (User, error) {
	usr.LastActive = time.Now().UTC()
	return svc.repo.UpdateUser(usr)
}

func (svc *Service) sendWelcomeEmail(usr User) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject: fmt.Sprintf("Welcome to %s", core.Conf.AppName),
		BodyStr: fmt.Sprintf(
			"Hi %s,\n\nAn administrator created an account for you on %s.\n"+
				"Sign in at %s with this email address.\n",
			usr.Name, core.Conf.AppName, core.Conf.FrontendBaseURL,
		),
	})
}

func sortUsers(users []User, sortBy, sortOrder string) {
	var less func(a, b User) bool
	switch sortBy {
	case "name":
		less = func(a, b User) bool { return core.LessStrings(a.Name, b.Name) }
	case "email":
		less = func(a, b User) bool { return core.LessStrings(a.Email, b.Email) }
	case "role":
		less = func(a, b User) bool { return core.LessStrings(a.Role, b.Role) }
	case "createdAt":
		less = func(a, b User) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}
	sort.SliceStable(users, func(i, j int) bool {
		if sortOrder == core.SortDesc {
			return less(users[j], users[i])
		}
		return less(users[i], users[j])
	})
}
