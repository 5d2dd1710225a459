package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuardDecide(t *testing.T) {
	paths := DefaultGuardPaths()

	tests := []struct {
		name          string
		authenticated bool
		dest          string
		wantOK        bool
		wantRedirect  string
	}{
		{
			name:          "anonymous visiting login is allowed",
			authenticated: false,
			dest:          "/login",
			wantOK:        true,
		},
		{
			name:          "anonymous visiting register is allowed",
			authenticated: false,
			dest:          "/register",
			wantOK:        true,
		},
		{
			name:          "anonymous visiting dashboard is sent to login",
			authenticated: false,
			dest:          "/",
			wantOK:        false,
			wantRedirect:  "/login",
		},
		{
			name:          "anonymous visiting accounts is sent to login",
			authenticated: false,
			dest:          "/accounts",
			wantOK:        false,
			wantRedirect:  "/login",
		},
		{
			name:          "authenticated visiting login is sent home",
			authenticated: true,
			dest:          "/login",
			wantOK:        false,
			wantRedirect:  "/",
		},
		{
			name:          "authenticated visiting register is sent home",
			authenticated: true,
			dest:          "/register",
			wantOK:        false,
			wantRedirect:  "/",
		},
		{
			name:          "authenticated visiting dashboard is allowed",
			authenticated: true,
			dest:          "/",
			wantOK:        true,
		},
		{
			name:          "authenticated visiting settings is allowed",
			authenticated: true,
			dest:          "/settings",
			wantOK:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redirect, ok := paths.Decide(tt.authenticated, tt.dest)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRedirect, redirect)
		})
	}
}

func TestGuardDecideCustomPaths(t *testing.T) {
	paths := GuardPaths{Login: "/signin", Register: "/signup", Home: "/dashboard"}

	redirect, ok := paths.Decide(false, "/dashboard")
	assert.False(t, ok)
	assert.Equal(t, "/signin", redirect)

	redirect, ok = paths.Decide(true, "/signup")
	assert.False(t, ok)
	assert.Equal(t, "/dashboard", redirect)

	_, ok = paths.Decide(false, "/signup")
	assert.True(t, ok)
}
