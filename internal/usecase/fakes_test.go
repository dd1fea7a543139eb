package usecase

import (
	"context"
	"fmt"
	"sync"

	"user-admin/internal/data/entity"
	"user-admin/internal/dto/request"
)

// fakeAPI implements remote.UserAPI against an in-memory list and
// records every call in order.
type fakeAPI struct {
	mu    sync.Mutex
	users []*entity.User
	calls []string

	failList   bool
	failDelete bool
	failStatus bool
	failCreate bool
	failUpdate bool
	failSearch bool
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) List(ctx context.Context) ([]*entity.User, error) {
	f.record("LIST")
	if f.failList {
		return nil, fmt.Errorf("remote down")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.User(nil), f.users...), nil
}

func (f *fakeAPI) Get(ctx context.Context, id string) (*entity.User, error) {
	f.record("GET " + id)
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("HTTP error! status: 404")
}

func (f *fakeAPI) Create(ctx context.Context, req *request.UserRequest) (*entity.User, error) {
	f.record("CREATE " + req.Email)
	if f.failCreate {
		return nil, fmt.Errorf("remote down")
	}
	user := &entity.User{
		ID:        fmt.Sprintf("u%d", len(f.users)+1),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Active:    true,
	}
	f.mu.Lock()
	f.users = append(f.users, user)
	f.mu.Unlock()
	return user, nil
}

func (f *fakeAPI) Update(ctx context.Context, id string, req *request.UserRequest) (*entity.User, error) {
	f.record("UPDATE " + id)
	if f.failUpdate {
		return nil, fmt.Errorf("remote down")
	}
	return &entity.User{ID: id, Email: req.Email, FirstName: req.FirstName, LastName: req.LastName}, nil
}

func (f *fakeAPI) Delete(ctx context.Context, id string) error {
	f.record("DELETE " + id)
	if f.failDelete {
		return fmt.Errorf("remote down")
	}
	return nil
}

func (f *fakeAPI) SetStatus(ctx context.Context, id string, active bool) (*entity.User, error) {
	f.record(fmt.Sprintf("SETSTATUS %s %t", id, active))
	if f.failStatus {
		return nil, fmt.Errorf("remote down")
	}
	return &entity.User{ID: id, Active: active}, nil
}

func (f *fakeAPI) FindByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	f.record("EMAIL " + email)
	if f.failSearch {
		return nil, fmt.Errorf("HTTP error! status: 404")
	}
	var out []*entity.User
	for _, u := range f.users {
		if u.Email == email {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeAPI) SearchFirstName(ctx context.Context, firstName string) ([]*entity.User, error) {
	f.record("FIRSTNAME " + firstName)
	if f.failSearch {
		return nil, fmt.Errorf("HTTP error! status: 404")
	}
	var out []*entity.User
	for _, u := range f.users {
		if u.FirstName == firstName {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeAPI) SearchLastName(ctx context.Context, lastName string) ([]*entity.User, error) {
	f.record("LASTNAME " + lastName)
	var out []*entity.User
	for _, u := range f.users {
		if u.LastName == lastName {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeAPI) ByRole(ctx context.Context, role string) ([]*entity.User, error) {
	f.record("ROLE " + role)
	var out []*entity.User
	for _, u := range f.users {
		if string(u.Role) == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeAPI) Active(ctx context.Context) ([]*entity.User, error) {
	f.record("ACTIVE")
	var out []*entity.User
	for _, u := range f.users {
		if u.Active {
			out = append(out, u)
		}
	}
	return out, nil
}

// confirmYes and confirmNo stub the interactive gate.
var (
	confirmYes = ConfirmFunc(func(string) bool { return true })
	confirmNo  = ConfirmFunc(func(string) bool { return false })
)

func str(s string) *string { return &s }

func seedFive() []*entity.User {
	return []*entity.User{
		{ID: "1", Email: "ana@example.com", FirstName: "Ana", LastName: "Lee", Role: entity.RoleAdmin, Active: true},
		{ID: "2", Email: "bob@example.com", FirstName: "Bob", LastName: "Ray", Active: true},
		{ID: "3", Email: "cat@example.com", FirstName: "Cat", LastName: "Fox", Active: false},
		{ID: "4", Email: "dan@example.com", FirstName: "Dan", LastName: "Kim", Active: true, PhoneNumber: str("5551234567")},
		{ID: "5", Email: "eve@example.com", FirstName: "Eve", LastName: "Orr", Active: false, Address: str("12 Harbor Road")},
	}
}
