// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	DomainStatusDisabled = 0
	DomainStatusEnabled  = 1
)

const (
	ProjectStatusDraft     = "draft"
	ProjectStatusPublished = "published"
)

// User is the tenant: every owned row carries its id as user_id.
type User struct {
	ID            string    `db:"id" json:"id"`
	Email         string    `db:"email" json:"email"`
	Name          *string   `db:"name" json:"name"`
	FullName      *string   `db:"full_name" json:"full_name"`
	AvatarURL     *string   `db:"avatar_url" json:"avatar_url"`
	EmailVerified bool      `db:"email_verified" json:"email_verified"`
	IsAdmin       bool      `db:"is_admin" json:"is_admin"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type Domain struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	Name       string    `db:"name" json:"name"`
	Status     int       `db:"status" json:"status"`
	StorageURL *string   `db:"storage_url" json:"-"`
	StorageKey *string   `db:"storage_key" json:"-"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

func (d *Domain) Enabled() bool {
	return d != nil && d.Status == DomainStatusEnabled
}

// StorageConfig points at the object store serving a domain's images.
type StorageConfig struct {
	URL    string `json:"storage_url"`
	Key    string `json:"storage_key"`
	Bucket string `json:"-"`
	Custom bool   `json:"is_custom"`
}

type Project struct {
	ID           string           `db:"id" json:"id"`
	UserID       string           `db:"user_id" json:"user_id"`
	Title        string           `db:"title" json:"title"`
	Description  *string          `db:"description" json:"description"`
	Category     *string          `db:"category" json:"category"`
	Overview     *string          `db:"overview" json:"overview"`
	Technologies JSONList[string] `db:"technologies" json:"technologies"`
	Features     JSONList[string] `db:"features" json:"features"`
	LiveURL      *string          `db:"live_url" json:"live_url"`
	GithubURL    *string          `db:"github_url" json:"github_url"`
	Status       string           `db:"status" json:"status"`
	IsPrompt     bool             `db:"is_prompt" json:"is_prompt"`
	Views        int              `db:"views" json:"views"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at" json:"updated_at"`
	Images       []*ProjectImage  `json:"project_images"`
}

type ProjectImage struct {
	ID           string    `db:"id" json:"id"`
	ProjectID    string    `db:"project_id" json:"project_id"`
	UserID       string    `db:"user_id" json:"user_id"`
	URL          string    `db:"url" json:"url"`
	Path         *string   `db:"path" json:"path"`
	Name         *string   `db:"name" json:"name"`
	OriginalName *string   `db:"original_name" json:"original_name"`
	Size         *int64    `db:"size" json:"size"`
	Type         *string   `db:"type" json:"type"`
	Bucket       *string   `db:"bucket" json:"bucket"`
	OrderIndex   int       `db:"order_index" json:"order_index"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Category struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	Color       *string   `db:"color" json:"color"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type Niche struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Title       string    `db:"title" json:"title"`
	Overview    *string   `db:"overview" json:"overview"`
	Tools       *string   `db:"tools" json:"tools"`
	KeyFeatures *string   `db:"key_features" json:"key_features"`
	Image       *string   `db:"image" json:"image"`
	SortOrder   int       `db:"sort_order" json:"sort_order"`
	AIDriven    bool      `db:"ai_driven" json:"ai_driven"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type Technology struct {
	ID        string          `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"user_id"`
	Title     string          `db:"title" json:"title"`
	Type      string          `db:"type" json:"type"`
	Icon      *string         `db:"icon" json:"icon"`
	Skills    JSONList[Skill] `db:"skills" json:"tech_skills"`
	SortOrder int             `db:"sort_order" json:"sort_order"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

type Menu struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	MenuType     string    `db:"menu_type" json:"menu_type"`
	SectionID    *string   `db:"section_id" json:"section_id"`
	Label        string    `db:"label" json:"label"`
	Icon         *string   `db:"icon" json:"icon"`
	LinkURL      *string   `db:"link_url" json:"link_url"`
	SortOrder    int       `db:"sort_order" json:"sort_order"`
	IsVisible    bool      `db:"is_visible" json:"is_visible"`
	ShowInHeader bool      `db:"show_in_header" json:"show_in_header"`
	ShowInFooter bool      `db:"show_in_footer" json:"show_in_footer"`
	ShowInMobile bool      `db:"show_in_mobile" json:"show_in_mobile"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type AccordionItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type DynamicSection struct {
	ID              string                  `db:"id" json:"id"`
	UserID          string                  `db:"user_id" json:"user_id"`
	SectionType     string                  `db:"section_type" json:"section_type"`
	Title           *string                 `db:"title" json:"title"`
	Subtitle        *string                 `db:"subtitle" json:"subtitle"`
	Content         *string                 `db:"content" json:"content"`
	ImageURL        *string                 `db:"image_url" json:"image_url"`
	VideoURL        *string                 `db:"video_url" json:"video_url"`
	Alignment       string                  `db:"alignment" json:"alignment"`
	PositionAfter   *string                 `db:"position_after" json:"position_after"`
	IsVisible       bool                    `db:"is_visible" json:"is_visible"`
	SortOrder       int                     `db:"sort_order" json:"sort_order"`
	SectionID       *string                 `db:"section_id" json:"section_id"`
	BackgroundColor *string                 `db:"background_color" json:"background_color"`
	CTAButtonText   *string                 `db:"cta_button_text" json:"cta_button_text"`
	CTAButtonLink   *string                 `db:"cta_button_link" json:"cta_button_link"`
	EmbedType       *string                 `db:"embed_type" json:"embed_type"`
	EmbedURL        *string                 `db:"embed_url" json:"embed_url"`
	AccordionItems  JSONList[AccordionItem] `db:"accordion_items" json:"accordion_items"`
	CreatedAt       time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time               `db:"updated_at" json:"updated_at"`
}

type ContactQuery struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	FormType  string    `db:"form_type" json:"form_type"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     *string   `db:"phone" json:"phone"`
	Company   *string   `db:"company" json:"company"`
	Subject   *string   `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message"`
	Status    string    `db:"status" json:"status"`
	Priority  string    `db:"priority" json:"priority"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Setting is one key of a tenant's settings; Value holds JSON text.
type Setting struct {
	Key   string `db:"setting_key" json:"key"`
	Value string `db:"setting_value" json:"value"`
}

type GalleryImage struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}
