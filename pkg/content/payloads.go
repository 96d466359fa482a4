// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"github.com/canonical/portfolio-service/internal/types"
)

type ProjectPayload struct {
	Title        string   `json:"title" validate:"required,max=255"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category" validate:"omitempty,max=100"`
	Overview     *string  `json:"overview"`
	Technologies []string `json:"technologies" validate:"omitempty,dive,required"`
	Features     []string `json:"features"`
	LiveURL      *string  `json:"live_url" validate:"omitempty,url"`
	GithubURL    *string  `json:"github_url" validate:"omitempty,url"`
	Status       string   `json:"status" validate:"omitempty,oneof=draft published"`
	IsPrompt     bool     `json:"is_prompt"`
}

func (p *ProjectPayload) Values() map[string]interface{} {
	return map[string]interface{}{
		"title":        p.Title,
		"description":  p.Description,
		"category":     p.Category,
		"overview":     p.Overview,
		"technologies": types.JSONList[string](p.Technologies),
		"features":     types.JSONList[string](p.Features),
		"live_url":     p.LiveURL,
		"github_url":   p.GithubURL,
		"status":       orDefault(p.Status, types.ProjectStatusDraft),
		"is_prompt":    p.IsPrompt,
	}
}

type ProjectImagePayload struct {
	URL          string  `json:"url" validate:"required"`
	Path         string  `json:"path" validate:"required"`
	Name         string  `json:"name" validate:"required,max=255"`
	OriginalName string  `json:"original_name" validate:"omitempty,max=255"`
	Size         *int64  `json:"size" validate:"omitempty,gte=0"`
	Type         *string `json:"type"`
	Bucket       string  `json:"bucket"`
	OrderIndex   int     `json:"order_index" validate:"gte=0"`
}

// Values gives an image without an order_index the index 1.
func (p *ProjectImagePayload) Values() map[string]interface{} {
	order := p.OrderIndex
	if order == 0 {
		order = 1
	}

	return map[string]interface{}{
		"url":           p.URL,
		"path":          p.Path,
		"name":          p.Name,
		"original_name": orDefault(p.OriginalName, p.Name),
		"size":          p.Size,
		"type":          p.Type,
		"bucket":        orDefault(p.Bucket, "images"),
		"order_index":   order,
	}
}

type CategoryPayload struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
}

func (p *CategoryPayload) Values() map[string]interface{} {
	return map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"color":       p.Color,
	}
}

type NichePayload struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Overview    *string `json:"overview"`
	Tools       *string `json:"tools"`
	KeyFeatures *string `json:"key_features"`
	Image       string  `json:"image"`
	SortOrder   int     `json:"sort_order" validate:"gte=0"`
	AIDriven    bool    `json:"ai_driven"`
}

func (p *NichePayload) Values() map[string]interface{} {
	return map[string]interface{}{
		"title":        p.Title,
		"overview":     p.Overview,
		"tools":        p.Tools,
		"key_features": p.KeyFeatures,
		"image":        orDefault(p.Image, "default.jpeg"),
		"sort_order":   p.SortOrder,
		"ai_driven":    p.AIDriven,
	}
}

type TechnologyPayload struct {
	Title     string        `json:"title" validate:"required,max=255"`
	Type      string        `json:"type" validate:"required,max=50"`
	Icon      *string       `json:"icon"`
	Skills    []types.Skill `json:"tech_skills" validate:"omitempty,dive"`
	SortOrder int           `json:"sort_order" validate:"gte=0"`
}

func (p *TechnologyPayload) Values() map[string]interface{} {
	return map[string]interface{}{
		"title":      p.Title,
		"type":       p.Type,
		"icon":       p.Icon,
		"skills":     types.JSONList[types.Skill](p.Skills),
		"sort_order": p.SortOrder,
	}
}

type MenuPayload struct {
	MenuType     string  `json:"menu_type" validate:"required,oneof=section contact start_project call social_facebook social_linkedin social_github social_instagram"`
	SectionID    *string `json:"section_id" validate:"required_if=MenuType section"`
	Label        string  `json:"label" validate:"required,max=100"`
	Icon         *string `json:"icon"`
	LinkURL      *string `json:"link_url"`
	SortOrder    int     `json:"sort_order" validate:"gte=0"`
	IsVisible    *bool   `json:"is_visible"`
	ShowInHeader *bool   `json:"show_in_header"`
	ShowInFooter *bool   `json:"show_in_footer"`
	ShowInMobile *bool   `json:"show_in_mobile"`
}

func (p *MenuPayload) Values() map[string]interface{} {
	return map[string]interface{}{
		"menu_type":      p.MenuType,
		"section_id":     p.SectionID,
		"label":          p.Label,
		"icon":           p.Icon,
		"link_url":       p.LinkURL,
		"sort_order":     p.SortOrder,
		"is_visible":     boolOr(p.IsVisible, true),
		"show_in_header": boolOr(p.ShowInHeader, true),
		"show_in_footer": boolOr(p.ShowInFooter, false),
		"show_in_mobile": boolOr(p.ShowInMobile, true),
	}
}

type DynamicSectionPayload struct {
	SectionType     string                `json:"section_type" validate:"required,oneof=title subtitle image_text text_image image_only video_only text_only accordion social_embed map_embed form code_snippet custom_html"`
	Title           *string               `json:"title"`
	Subtitle        *string               `json:"subtitle"`
	Content         *string               `json:"content"`
	ImageURL        *string               `json:"image_url"`
	VideoURL        *string               `json:"video_url"`
	Alignment       string                `json:"alignment" validate:"omitempty,oneof=left right center"`
	PositionAfter   *string               `json:"position_after"`
	IsVisible       *bool                 `json:"is_visible"`
	SortOrder       int                   `json:"sort_order" validate:"gte=0"`
	SectionID       *string               `json:"section_id"`
	BackgroundColor *string               `json:"background_color"`
	CTAButtonText   *string               `json:"cta_button_text"`
	CTAButtonLink   *string               `json:"cta_button_link"`
	EmbedType       *string               `json:"embed_type" validate:"omitempty,oneof=facebook_post facebook_video instagram_post instagram_reel twitter tiktok linkedin pinterest youtube vimeo spotify soundcloud calendly google_maps custom"`
	EmbedURL        *string               `json:"embed_url" validate:"omitempty,url"`
	AccordionItems  []types.AccordionItem `json:"accordion_items"`
}

func (p *DynamicSectionPayload) Values() map[string]interface{} {
	return map[string]interface{}{
		"section_type":     p.SectionType,
		"title":            p.Title,
		"subtitle":         p.Subtitle,
		"content":          p.Content,
		"image_url":        p.ImageURL,
		"video_url":        p.VideoURL,
		"alignment":        orDefault(p.Alignment, "left"),
		"position_after":   p.PositionAfter,
		"is_visible":       boolOr(p.IsVisible, true),
		"sort_order":       p.SortOrder,
		"section_id":       p.SectionID,
		"background_color": p.BackgroundColor,
		"cta_button_text":  p.CTAButtonText,
		"cta_button_link":  p.CTAButtonLink,
		"embed_type":       p.EmbedType,
		"embed_url":        p.EmbedURL,
		"accordion_items":  types.JSONList[types.AccordionItem](p.AccordionItems),
	}
}

type ContactQueryPayload struct {
	FormType string  `json:"form_type" validate:"omitempty,max=50"`
	Name     string  `json:"name" validate:"required,max=255"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone"`
	Company  *string `json:"company"`
	Subject  string  `json:"subject" validate:"required,max=255"`
	Message  string  `json:"message" validate:"required"`
	Status   string  `json:"status" validate:"omitempty,oneof=new in_progress completed cancelled"`
	Priority string  `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

func (p *ContactQueryPayload) Values() map[string]interface{} {
	return map[string]interface{}{
		"form_type": orDefault(p.FormType, "contact"),
		"name":      p.Name,
		"email":     p.Email,
		"phone":     p.Phone,
		"company":   p.Company,
		"subject":   p.Subject,
		"message":   p.Message,
		"status":    orDefault(p.Status, "new"),
		"priority":  orDefault(p.Priority, "medium"),
	}
}

func orDefault(s, d string) string {
	if s == "" {
		return d
	}
	return s
}

func boolOr(b *bool, d bool) bool {
	if b == nil {
		return d
	}
	return *b
}
