// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/canonical/portfolio-service/internal/types"
)

// Demo content is rebuilt on every call so callers may modify what they get.

func ptr[T any](v T) *T {
	return &v
}

func demoTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func DemoProjects() []*types.Project {
	project := func(n int, title, description, category, overview string, techs, features []string, live, github string, views int, created string) *types.Project {
		id := fmt.Sprintf("demo-project-%d", n)
		at := demoTime(created)

		return &types.Project{
			ID:           id,
			Title:        title,
			Description:  ptr(description),
			Category:     ptr(category),
			Overview:     ptr(overview),
			Technologies: techs,
			Features:     features,
			LiveURL:      ptr(live),
			GithubURL:    ptr(github),
			Status:       types.ProjectStatusPublished,
			Views:        views,
			CreatedAt:    at,
			UpdatedAt:    at,
			Images: []*types.ProjectImage{{
				ID:        fmt.Sprintf("demo-image-%d", n),
				ProjectID: id,
				URL:       "/images/hero-bg.png",
				Name:      ptr(title + " preview"),
				CreatedAt: at,
			}},
		}
	}

	return []*types.Project{
		project(1, "E-Commerce Platform", "A full-stack e-commerce solution with a modern storefront", "Web Development",
			"Storefront and back office with authentication, payments and an admin dashboard.",
			[]string{"React", "Node.js", "MongoDB", "Stripe"},
			[]string{"User authentication", "Product catalog with search", "Shopping cart and checkout", "Stripe payments", "Inventory dashboard"},
			"https://example.com/shop", "https://github.com/example/ecommerce-platform", 1250, "2024-01-15T10:00:00Z"),
		project(2, "AI-Powered Chatbot", "Customer support chatbot built on language models", "AI/ML",
			"Support automation with context aware conversations and CRM integration.",
			[]string{"Python", "TensorFlow", "NLP", "FastAPI"},
			[]string{"Natural language understanding", "Multi-language support", "CRM integration", "Analytics dashboard"},
			"https://example.com/chatbot", "https://github.com/example/ai-chatbot", 890, "2024-02-20T14:30:00Z"),
		project(3, "Mobile Banking App", "Secure mobile banking application", "Mobile Development",
			"Banking app with biometric login, real-time transactions and portfolio tracking.",
			[]string{"React Native", "Firebase", "Redux"},
			[]string{"Biometric authentication", "Real-time transactions", "Bill payments", "Push notifications"},
			"https://example.com/banking", "https://github.com/example/mobile-banking", 2100, "2024-03-10T09:15:00Z"),
	}
}

func DemoCategories() []*types.Category {
	category := func(n int, name, description, color string) *types.Category {
		return &types.Category{ID: fmt.Sprintf("demo-category-%d", n), Name: name, Description: ptr(description), Color: ptr(color)}
	}

	return []*types.Category{
		category(1, "Web Development", "Full-stack web applications", "#8B4513"),
		category(2, "AI/ML", "Artificial intelligence and machine learning", "#FF6B35"),
		category(3, "Mobile Development", "Mobile applications for iOS and Android", "#4ECDC4"),
		category(4, "Cloud Computing", "Cloud infrastructure and services", "#45B7D1"),
		category(5, "Blockchain", "Blockchain and distributed ledger projects", "#96CEB4"),
		category(6, "Cybersecurity", "Security and privacy solutions", "#FFEAA7"),
	}
}

func DemoNiches() []*types.Niche {
	niche := func(n int, title, overview, tools, features, image string, ai bool) *types.Niche {
		return &types.Niche{
			ID:          fmt.Sprintf("demo-niche-%d", n),
			Title:       title,
			Overview:    ptr(overview),
			Tools:       ptr(tools),
			KeyFeatures: ptr(features),
			Image:       ptr(image),
			SortOrder:   n,
			AIDriven:    ai,
		}
	}

	return []*types.Niche{
		niche(1, "E-Commerce Solutions", "E-commerce platforms with secure payment processing", "React, Node.js, Stripe, MongoDB",
			"User authentication\nShopping cart\nPayment processing\nAdmin dashboard", "e-commerce.jpeg", false),
		niche(2, "AI-Powered Analytics", "Analytics platforms using machine learning for business insights", "Python, TensorFlow, FastAPI, PostgreSQL",
			"Data visualization\nPredictive analytics\nReal-time monitoring\nAutomated reporting", "ai-analytics.jpeg", true),
		niche(3, "Mobile Banking Apps", "Mobile banking applications with biometric authentication", "React Native, Firebase, Redux",
			"Biometric authentication\nReal-time transactions\nBill payments\nPush notifications", "mobile-banking.jpeg", false),
		niche(4, "Cloud Infrastructure", "Scalable cloud infrastructure for modern applications", "AWS, Docker, Kubernetes, Terraform",
			"Auto-scaling\nLoad balancing\nMonitoring\nCost optimization", "cloud-infrastructure.jpeg", false),
	}
}

func DemoTechnologies() []*types.Technology {
	tech := func(n int, title, icon string, skills ...types.Skill) *types.Technology {
		return &types.Technology{
			ID:        fmt.Sprintf("demo-technology-%d", n),
			Title:     title,
			Type:      "domain",
			Icon:      ptr(icon),
			Skills:    skills,
			SortOrder: n,
		}
	}

	return []*types.Technology{
		tech(1, "Web Development", "Code",
			types.Skill{Name: "React", Level: 90}, types.Skill{Name: "Node.js", Level: 85}, types.Skill{Name: "TypeScript", Level: 80},
			types.Skill{Name: "PostgreSQL", Level: 70}),
		tech(2, "Mobile Development", "Smartphone",
			types.Skill{Name: "React Native", Level: 85}, types.Skill{Name: "Flutter", Level: 75}, types.Skill{Name: "iOS Development", Level: 70}),
		tech(3, "AI/ML", "Cpu",
			types.Skill{Name: "Python", Level: 90}, types.Skill{Name: "TensorFlow", Level: 80}, types.Skill{Name: "PyTorch", Level: 75}),
		tech(4, "Cloud Computing", "Cloud",
			types.Skill{Name: "AWS", Level: 85}, types.Skill{Name: "Docker", Level: 80}, types.Skill{Name: "Kubernetes", Level: 75}),
	}
}

var demoSettings = []struct {
	key   string
	value interface{}
}{
	{"banner_name", "Alex Morgan"},
	{"banner_title", "Full Stack Developer"},
	{"banner_tagline", "Building modern web applications with passion and precision"},
	{"theme_name", "sand"},
	{"avatar_image", "/images/profile/avatar.jpeg"},
	{"hero_image", "/images/hero-bg.png"},
	{"section_hero_visible", true},
	{"section_portfolio_visible", true},
	{"section_technologies_visible", true},
	{"section_domains_visible", true},
	{"section_project_cycle_visible", true},
	{"section_prompts_visible", false},
	{"show_resume_download", true},
	{"show_view_work_button", true},
	{"custom_button_title", ""},
	{"custom_button_link", ""},
	{"custom_button_target", "_self"},
	{"logo_type", "initials"},
}

func DemoSettings() []*types.Setting {
	settings := make([]*types.Setting, 0, len(demoSettings))

	for _, s := range demoSettings {
		raw, _ := json.Marshal(s.value)
		settings = append(settings, &types.Setting{Key: s.key, Value: string(raw)})
	}

	return settings
}
