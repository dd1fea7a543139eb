package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"user-admin/internal/data/entity"
	"user-admin/internal/dto/request"

	"go.uber.org/zap"
)

// UserAPI is the console's window onto the remote user store. It maps
// one to one onto the REST contract of the user-management service.
type UserAPI interface {
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, req *request.UserRequest) (*entity.User, error)
	Update(ctx context.Context, id string, req *request.UserRequest) (*entity.User, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, active bool) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) ([]*entity.User, error)
	SearchFirstName(ctx context.Context, firstName string) ([]*entity.User, error)
	SearchLastName(ctx context.Context, lastName string) ([]*entity.User, error)
	ByRole(ctx context.Context, role string) ([]*entity.User, error)
	Active(ctx context.Context) ([]*entity.User, error)
}

type userAPI struct {
	client *Client
	log    *zap.Logger
}

func NewUserAPI(client *Client, log *zap.Logger) UserAPI {
	return &userAPI{
		client: client,
		log:    log,
	}
}

func (ua *userAPI) List(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	if err := ua.client.Call(ctx, http.MethodGet, "", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (ua *userAPI) Get(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := ua.client.Call(ctx, http.MethodGet, "/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &user, nil
}

func (ua *userAPI) Create(ctx context.Context, req *request.UserRequest) (*entity.User, error) {
	var created entity.User
	if err := ua.client.Call(ctx, http.MethodPost, "", req, &created); err != nil {
		return nil, fmt.Errorf("create user %s: %w", req.Email, err)
	}

	ua.log.Info("User created", zap.String("id", created.ID), zap.String("email", created.Email))
	return &created, nil
}

func (ua *userAPI) Update(ctx context.Context, id string, req *request.UserRequest) (*entity.User, error) {
	var updated entity.User
	if err := ua.client.Call(ctx, http.MethodPut, "/"+url.PathEscape(id), req, &updated); err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}

	ua.log.Info("User updated", zap.String("id", id))
	return &updated, nil
}

func (ua *userAPI) Delete(ctx context.Context, id string) error {
	if err := ua.client.Call(ctx, http.MethodDelete, "/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}

	ua.log.Info("User deleted", zap.String("id", id))
	return nil
}

func (ua *userAPI) SetStatus(ctx context.Context, id string, active bool) (*entity.User, error) {
	endpoint := fmt.Sprintf("/%s/status?active=%t", url.PathEscape(id), active)

	var updated entity.User
	if err := ua.client.Call(ctx, http.MethodPatch, endpoint, nil, &updated); err != nil {
		return nil, fmt.Errorf("set user %s status: %w", id, err)
	}

	ua.log.Info("User status changed", zap.String("id", id), zap.Bool("active", active))
	return &updated, nil
}

func (ua *userAPI) FindByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	users, err := ua.callUsers(ctx, "/email/"+url.PathEscape(email))
	if err != nil {
		return nil, fmt.Errorf("find by email %s: %w", email, err)
	}
	return users, nil
}

func (ua *userAPI) SearchFirstName(ctx context.Context, firstName string) ([]*entity.User, error) {
	users, err := ua.callUsers(ctx, "/search/firstname/"+url.PathEscape(firstName))
	if err != nil {
		return nil, fmt.Errorf("search by first name %s: %w", firstName, err)
	}
	return users, nil
}

func (ua *userAPI) SearchLastName(ctx context.Context, lastName string) ([]*entity.User, error) {
	users, err := ua.callUsers(ctx, "/search/lastname/"+url.PathEscape(lastName))
	if err != nil {
		return nil, fmt.Errorf("search by last name %s: %w", lastName, err)
	}
	return users, nil
}

func (ua *userAPI) ByRole(ctx context.Context, role string) ([]*entity.User, error) {
	users, err := ua.callUsers(ctx, "/role/"+url.PathEscape(role))
	if err != nil {
		return nil, fmt.Errorf("find by role %s: %w", role, err)
	}
	return users, nil
}

func (ua *userAPI) Active(ctx context.Context) ([]*entity.User, error) {
	users, err := ua.callUsers(ctx, "/active")
	if err != nil {
		return nil, fmt.Errorf("find active users: %w", err)
	}
	return users, nil
}

// callUsers normalizes endpoints that return either a single record or
// a list of records into a list.
func (ua *userAPI) callUsers(ctx context.Context, endpoint string) ([]*entity.User, error) {
	var raw json.RawMessage
	if err := ua.client.Call(ctx, http.MethodGet, endpoint, nil, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var users []*entity.User
		if err := json.Unmarshal(trimmed, &users); err != nil {
			return nil, fmt.Errorf("decode user list: %w", err)
		}
		return users, nil
	}

	var user entity.User
	if err := json.Unmarshal(trimmed, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return []*entity.User{&user}, nil
}
