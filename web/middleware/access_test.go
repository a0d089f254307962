package middleware

import (
	"testing"

	"github.com/filmstash/filmstash/database/model"

	"github.com/stretchr/testify/assert"
)

func TestIsModerator(t *testing.T) {
	tests := []struct {
		name     string
		user     *model.User
		expected bool
	}{
		{
			name:     "anonymous session",
			user:     nil,
			expected: false,
		},
		{
			name:     "normal user",
			user:     &model.User{Id: 2, Role: model.RoleNormal},
			expected: false,
		},
		{
			name:     "moderator",
			user:     &model.User{Id: 3, Role: model.RoleModerator},
			expected: true,
		},
		{
			name:     "admin",
			user:     &model.User{Id: 1, Role: model.RoleAdmin},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsModerator(tt.user))
		})
	}
}

func TestCanAdminister(t *testing.T) {
	tests := []struct {
		name     string
		user     *model.User
		expected bool
	}{
		{
			name:     "anonymous session",
			user:     nil,
			expected: false,
		},
		{
			name:     "normal user",
			user:     &model.User{Id: 2, Role: model.RoleNormal},
			expected: false,
		},
		{
			name:     "moderator",
			user:     &model.User{Id: 3, Role: model.RoleModerator},
			expected: true,
		},
		{
			name:     "admin",
			user:     &model.User{Id: 1, Role: model.RoleAdmin},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanAdminister(tt.user))
		})
	}
}
