package backend

import (
	"context"
	"net/http"

	"github.com/shopfront/storefront/catalog"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned without the standard envelope: the login endpoint
// answers with the tokens and user at the top level.
type LoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         catalog.User `json:"user"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Address  string `json:"address,omitempty"`
}

// usersListing is the users/all response shape; it carries its collection
// under "users" rather than the envelope's "data".
type usersListing struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	Users      []catalog.User `json:"users"`
	Pagination *Pagination    `json:"pagination"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/users/login", "", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/users/register", "", input, nil)
}

// RegisterUser creates a user on behalf of an admin. Same endpoint as
// Register but authorized, so the backend permits non-customer roles.
func (c *Client) RegisterUser(ctx context.Context, token string, input RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/users/register", token, input, nil)
}

func (c *Client) ListUsers(ctx context.Context, token string, page int) ([]catalog.User, *Pagination, error) {
	var out usersListing
	if err := c.do(ctx, http.MethodGet, pagePath("/users/all", page), token, nil, &out); err != nil {
		return nil, nil, err
	}
	if !out.Success {
		return nil, nil, &APIError{Status: http.StatusOK, Message: out.Message}
	}
	return out.Users, out.Pagination, nil
}

type UserUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *Client) UpdateUser(ctx context.Context, token, userID string, update UserUpdate) error {
	_, err := c.doEnvelope(ctx, http.MethodPut, "/users/"+userID, token, update, nil)
	return err
}

func (c *Client) DeleteUser(ctx context.Context, token, userID string) error {
	_, err := c.doEnvelope(ctx, http.MethodDelete, "/users/"+userID, token, nil, nil)
	return err
}
