package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"messmate-admin/internal/models"
)

var ErrInvalidAmount = errors.New("recharge amount must be a positive number")

// Login authenticates against the backend. It never attaches a bearer
// token: a stale persisted session must not interfere with a fresh
// login. Persisting the returned token and user is the caller's job.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp, requestOptions{
		skipAuth: true,
		fallback: "Login failed. Please check your credentials.",
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	err := c.do(ctx, http.MethodGet, "/api/admin/dashboard", nil, &stats, requestOptions{
		fallback: "Failed to fetch dashboard stats",
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) AddMenuItem(ctx context.Context, input models.MenuItemInput) (*models.MenuItem, error) {
	var resp models.AddMenuItemResponse
	err := c.do(ctx, http.MethodPost, "/api/admin/menu-items", input, &resp, requestOptions{
		fallback: "Failed to add menu item",
	})
	if err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

func (c *Client) GetAllMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var resp models.MenuItemList
	err := c.do(ctx, http.MethodGet, "/api/admin/menu-items", nil, &resp, requestOptions{
		fallback: "Failed to fetch menu items",
	})
	if err != nil {
		return nil, err
	}
	return resp.MenuItems, nil
}

// UpdateMenuItem sends the full update payload for the given item id.
func (c *Client) UpdateMenuItem(ctx context.Context, id int, input models.MenuItemInput) (*models.MenuItem, error) {
	var item models.MenuItem
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/menu-items/%d", id), input, &item, requestOptions{
		fallback: "Failed to update menu item",
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id int) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/menu-items/%d", id), nil, &resp, requestOptions{
		fallback: "Failed to delete menu item",
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SetWeeklyMenu(ctx context.Context, req models.WeeklyMenuRequest) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	err := c.do(ctx, http.MethodPost, "/api/admin/weekly-menu", req, &resp, requestOptions{
		fallback: "Failed to set weekly menu",
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RechargeGuest credits a guest wallet. The amount is validated here:
// the backend is never called with a non-positive amount.
func (c *Client) RechargeGuest(ctx context.Context, req models.RechargeRequest) (*models.RechargeResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	var resp models.RechargeResponse
	err := c.do(ctx, http.MethodPost, "/api/admin/guest/recharge", req, &resp, requestOptions{
		fallback: "Recharge failed",
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/admin/users/%d", id), nil, &user, requestOptions{
		fallback: "User not found",
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetAllUsers(ctx context.Context) (*models.UserGroups, error) {
	var groups models.UserGroups
	err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, &groups, requestOptions{
		fallback: "Failed to fetch users",
	})
	if err != nil {
		return nil, err
	}
	return &groups, nil
}

func (c *Client) DeleteUserByID(ctx context.Context, id int) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), nil, &resp, requestOptions{
		fallback: "Delete failed",
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
