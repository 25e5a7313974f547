// internal/infrastructure/commerce/auth.go
package commerce

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CurrentUser is the account the backend reports after login
type CurrentUser struct {
	UID   string   `json:"uid"`
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
}

// LoginResult carries the tokens issued on login
type LoginResult struct {
	CSRFToken   string      `json:"csrf_token"`
	LogoutToken string      `json:"logout_token"`
	CurrentUser CurrentUser `json:"current_user"`
}

// RegisteredUser is the account created by Register
type RegisteredUser struct {
	UID  string
	Name string
	Mail string
}

type fieldValue struct {
	Value any `json:"value"`
}

type registerRequest struct {
	Name fieldValue `json:"name"`
	Mail fieldValue `json:"mail"`
	Pass fieldValue `json:"pass"`
}

var jsonFormat = url.Values{"_format": {"json"}}

// Login exchanges credentials for a session token
func (c *Client) Login(ctx context.Context, name, pass string) (LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/user/login",
		query:  jsonFormat,
		body: map[string]string{
			"name": name,
			"pass": pass,
		},
	}, &result)
	if err != nil {
		return LoginResult{}, fmt.Errorf("client.Login: %w", err)
	}
	return result, nil
}

// Logout invalidates the session identified by logoutToken on the backend
func (c *Client) Logout(ctx context.Context, logoutToken string) error {
	query := url.Values{
		"_format": {"json"},
		"token":   {logoutToken},
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/user/logout", query: query}, nil); err != nil {
		return fmt.Errorf("client.Logout: %w", err)
	}
	return nil
}

// Register creates a new customer account
func (c *Client) Register(ctx context.Context, name, mail, pass string) (RegisteredUser, error) {
	var raw map[string][]fieldValue
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/user/register",
		query:  jsonFormat,
		body: registerRequest{
			Name: fieldValue{Value: name},
			Mail: fieldValue{Value: mail},
			Pass: fieldValue{Value: pass},
		},
	}, &raw)
	if err != nil {
		return RegisteredUser{}, fmt.Errorf("client.Register: %w", err)
	}

	return RegisteredUser{
		UID:  firstValue(raw["uid"]),
		Name: firstValue(raw["name"]),
		Mail: firstValue(raw["mail"]),
	}, nil
}

func firstValue(values []fieldValue) string {
	if len(values) == 0 || values[0].Value == nil {
		return ""
	}
	if s, ok := values[0].Value.(string); ok {
		return s
	}
	return fmt.Sprint(values[0].Value)
}
