package main

import (
	"slices"

	"github.com/Zachkp/portfolio/internal/i18n"
)

// Project is one card in the projects section. Title and description come
// from the i18n dictionary under Key.
type Project struct {
	Key        string
	Image      string
	Tags       []string
	GithubLink string
	LiveLink   string
	Featured   bool
}

type TechItem struct {
	Name     string
	Icon     string
	Color    string
	Category string
}

type TechCategory struct {
	ID    string
	Color string
}

type Link struct {
	Label string
	URL   string
}

const devicon = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"

var Projects = []Project{
	{
		Key:      "filmFinder",
		Image:    "https://images.unsplash.com/photo-1585951237318-9ea5e175b891?auto=format&fit=crop&q=80",
		Tags:     []string{"React", "Node.js", "Express", "PostgreSQL", "AI", "Responsive Design"},
		LiveLink: "https://www.filmfinder.se/",
		Featured: true,
	},
	{
		Key:        "aiDetection",
		Image:      "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?auto=format&fit=crop&q=80",
		Tags:       []string{"Python", "TensorFlow", "OpenCV", "Computer Vision", "AI"},
		GithubLink: "https://github.com/PontusPilatus/real-time-ai-detection",
		Featured:   true,
	},
	{
		Key:        "weatherDashboard",
		Image:      "https://images.unsplash.com/photo-1504608524841-42fe6f032b4b?auto=format&fit=crop&q=80",
		Tags:       []string{"Next.js", "ASP.NET Core", "C#", "TypeScript", "Mapbox", "Chart.js"},
		GithubLink: "https://github.com/PontusPilatus/weather-dashboard",
		Featured:   true,
	},
	{
		Key:        "portfolio",
		Image:      "https://images.unsplash.com/photo-1498050108023-c5249f4df085?auto=format&fit=crop&q=80",
		Tags:       []string{"Go", "Gin", "SQLite", "Responsive Design", "Canvas"},
		GithubLink: "https://github.com/PontusPilatus/my-portfolio",
		LiveLink:   "/",
		Featured:   true,
	},
}

var TechCategories = []TechCategory{
	{ID: "frontend", Color: "#8B5CF6"},
	{ID: "backend", Color: "#10B981"},
	{ID: "devops", Color: "#F59E0B"},
	{ID: "specialized", Color: "#EC4899"},
}

var TechStack = []TechItem{
	{"React", devicon + "react/react-original.svg", "#61DAFB", "frontend"},
	{"Next.js", devicon + "nextjs/nextjs-original.svg", "#000000", "frontend"},
	{"JavaScript", devicon + "javascript/javascript-original.svg", "#F7DF1E", "frontend"},
	{"TypeScript", devicon + "typescript/typescript-original.svg", "#3178C6", "frontend"},
	{"HTML5", devicon + "html5/html5-original.svg", "#E34F26", "frontend"},
	{"CSS3", devicon + "css3/css3-original.svg", "#1572B6", "frontend"},
	{"Node.js", devicon + "nodejs/nodejs-original.svg", "#339933", "backend"},
	{".NET", devicon + "dot-net/dot-net-original.svg", "#512BD4", "backend"},
	{"Express", devicon + "express/express-original.svg", "#000000", "backend"},
	{"Python", devicon + "python/python-original.svg", "#3776AB", "backend"},
	{"PostgreSQL", devicon + "postgresql/postgresql-original.svg", "#336791", "backend"},
	{"MongoDB", devicon + "mongodb/mongodb-original.svg", "#47A248", "backend"},
	{"MySQL", devicon + "mysql/mysql-original.svg", "#4479A1", "backend"},
	{"Git", devicon + "git/git-original.svg", "#F05032", "devops"},
	{"GitHub", devicon + "github/github-original.svg", "#181717", "devops"},
	{"Azure", devicon + "azure/azure-original.svg", "#0078D4", "devops"},
	{"TensorFlow", devicon + "tensorflow/tensorflow-original.svg", "#FF6F00", "specialized"},
	{"PyTorch", devicon + "pytorch/pytorch-original.svg", "#EE4C2C", "specialized"},
	{"GraphQL", devicon + "graphql/graphql-plain.svg", "#E10098", "specialized"},
}

var ContactEmail = Link{Label: "paulsson.pontus@gmail.com", URL: "mailto:paulsson.pontus@gmail.com"}

var ContactPhone = Link{Label: "+46 76 347 13 37", URL: "tel:+46763471337"}

var SocialLinks = []Link{
	{Label: "GitHub", URL: "https://github.com/PontusPilatus"},
	{Label: "Email", URL: ContactEmail.URL},
	{Label: "LinkedIn", URL: "https://www.linkedin.com/in/paulssonpontus/"},
	{Label: "Instagram", URL: "https://www.instagram.com/pontuspilatus/"},
}

// ProjectTags returns every tag used by projects, sorted and without
// duplicates.
func ProjectTags(projects []Project) []string {
	var tags []string
	for _, p := range projects {
		tags = append(tags, p.Tags...)
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}

// FilterProjects returns the projects carrying tag and the filter actually
// applied. An empty or unknown tag shows every project.
func FilterProjects(projects []Project, tag string) ([]Project, string) {
	if tag == "" || !slices.Contains(ProjectTags(projects), tag) {
		return projects, ""
	}
	var out []Project
	for _, p := range projects {
		if slices.Contains(p.Tags, tag) {
			out = append(out, p)
		}
	}
	return out, tag
}

// TechByCategory groups the stack in TechCategories order.
func TechByCategory(items []TechItem) map[string][]TechItem {
	out := make(map[string][]TechItem, len(TechCategories))
	for _, it := range items {
		out[it.Category] = append(out[it.Category], it)
	}
	return out
}

// projectCard is a Project with its copy resolved for one language.
type projectCard struct {
	Project
	i18n.ProjectText
}

func projectCards(projects []Project, t *i18n.Text) []projectCard {
	cards := make([]projectCard, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, projectCard{Project: p, ProjectText: t.Projects.Items[p.Key]})
	}
	return cards
}
