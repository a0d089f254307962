// Package model defines the database entities for the filmstash library.
package model

import "strings"

// User roles. The account created during first-run setup is the primary
// admin and occupies id 1.
const (
	RoleNormal    = 0
	RoleModerator = 1
	RoleAdmin     = 2
)

// PrimaryAdminID is the protected first-run admin seat. It can never be
// deleted, promoted or demoted.
const PrimaryAdminID = 1

// Movie lifecycle stages.
const (
	StatusPending   = 1 // discovered on disk, awaiting metadata enrichment
	StatusPublished = 2 // enriched, visible in the catalog
)

type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     int    `json:"role" gorm:"not null;default:0"`
}

type Movie struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Genres      string `json:"genres"`
	Ratings     int    `json:"ratings"`
	Poster      string `json:"poster"`
	Url         string `json:"url"`
	Status      int    `json:"status" gorm:"not null;default:1;index"`
}

// GenreList splits the denormalized genre column into trimmed tags.
func (m *Movie) GenreList() []string {
	return SplitGenres(m.Genres)
}

// SplitGenres splits a ", "-joined genre string into individual tags.
// Empty input yields an empty slice.
func SplitGenres(genres string) []string {
	if genres == "" {
		return []string{}
	}
	parts := strings.Split(genres, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinGenres flattens genre tags into the storage form, joined by ", "
// with no trailing separator.
func JoinGenres(genres []string) string {
	return strings.Join(genres, ", ")
}
