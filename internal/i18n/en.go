package i18n

var en = Text{
	Lang:  English,
	Title: "Pontus Paulsson - Full Stack Developer",
	Nav: Nav{
		Home:     "Home",
		About:    "About Me",
		Skills:   "Skills",
		Projects: "Projects",
		Contact:  "Contact",
	},
	Hero: Hero{
		TitleStart: "Crafting Digital",
		Highlight:  "Experiences",
		TitleEnd:   "with Precision",
		Subtitle:   "I design and develop applications that make an impact. With a focus on user experience and clean code, I bring ideas to life through technology.",
		ViewWork:   "View My Work",
		ContactMe:  "Contact Me",
		ScrollDown: "Scroll Down",
	},
	About: About{
		TitleStart:     "Turning ",
		TitleHighlight: "ideas",
		TitleEnd:       " into reality",
		Content: "I'm Pontus Paulsson, a Full Stack Developer who loves solving complex problems and creating solutions that are both smart and user-friendly. I mainly work with React, TypeScript, Node.js, and .NET, but I enjoy exploring new technologies and tech stacks to find the best solutions for each project.\n\n" +
			"I'm also fascinated by AI and new technology, which constantly pushes me to think outside the box and experiment with new ideas. For me, development isn't just about code, it's about creating something that people can use and appreciate every day.",
		BioTitle: "Get to know me",
		BioContent: "I'm a proud dad to an energetic 1.5-year-old who keeps me on my toes and fills every day with laughter. Parenthood has been the wildest and most rewarding adventure, and I'm lucky to share it with my amazing partner, who's not just my rock but also an incredible mom.\n\n" +
			"When we're not chasing our little explorer around, we love traveling as a family, discovering new places, and soaking in different cultures. I love skiing, a passion of mine since childhood, even though I don't get to do it as much as I'd like these days.\n\n" +
			"I'm also a bit of a craft beer enthusiast and always on the lookout for the next interesting brew to try. And after a busy day of adventures, nothing beats unwinding on the couch for some quality Netflix time.",
	},
	Skills: Skills{
		Title:       "Skills & Technologies",
		Description: "Technologies and tools I use to bring products to life.",
		Categories: map[string]string{
			"frontend":    "Frontend Development",
			"backend":     "Backend Development",
			"devops":      "Development Tools",
			"specialized": "AI & Specialized",
		},
	},
	Projects: Projects{
		Title:           "Projects",
		Description:     "Check out some of my recent work. Each project represents my passion for creating beautiful, functional applications.",
		AllTechnologies: "All Technologies",
		NoProjects:      "No projects match your current filter. Try selecting a different technology.",
		SourceCode:      "Source Code",
		LiveProject:     "Live Project",
		MoreProjects:    "More projects coming soon...",
		Items: map[string]ProjectText{
			"filmFinder": {
				Title:       "Film Finder",
				Description: "A personal companion for finding and tracking movies with smart search, user ratings, watchlists, and AI-powered recommendations. Explore films across different genres with a sleek, modern interface.",
			},
			"aiDetection": {
				Title:       "Real-Time AI Detection",
				Description: "A computer vision application that detects faces and predicts age, gender, and emotions in real-time using deep learning models with smooth predictions and color-coded displays.",
			},
			"weatherDashboard": {
				Title:       "Weather Dashboard",
				Description: "A modern weather dashboard with interactive maps, real-time alerts, and data visualization. Features include current conditions, forecasts, smart clothing suggestions, and customizable settings.",
			},
			"portfolio": {
				Title:       "Portfolio Website",
				Description: "Modern developer portfolio with interactive UI elements and dynamic content filtering. Features include tech stack overview, dynamic project filtering, responsive design, and an animated hero background.",
			},
		},
	},
	Contact: Contact{
		Title:         "Get in touch",
		ReachMe:       "I'm always interested in hearing about new opportunities and exciting projects.",
		Availability:  "Currently available for freelance work and full-time positions.",
		Description:   "Have a project in mind or just want to say hello? Feel free to reach out. I'm always open to discussing new projects and opportunities.",
		Email:         "Email",
		Phone:         "Phone",
		Location:      "Location",
		LocationValue: "Helsingborg, Sweden",
		Form: ContactForm{
			Name:                 "Name",
			NamePlaceholder:      "Your name",
			Email:                "Email",
			EmailPlaceholder:     "your.email@example.com",
			Subject:              "Subject",
			SubjectPlaceholder:   "Project Inquiry",
			Message:              "Message",
			MessagePlaceholder:   "Your message...",
			Send:                 "Send Message",
			Sending:              "Sending...",
			Success:              "Message sent successfully! I'll get back to you soon.",
			Error:                "Oops! Something went wrong. Please try again.",
			Invalid:              "Please fill in every field with a valid email address.",
			RateLimit:            "Rate limit reached",
			RateLimitExplanation: "You've reached the maximum number of messages you can send today. Please try again tomorrow.",
			Remaining:            "{count} messages remaining today",
		},
	},
	Footer: Footer{
		Rights:   "All rights reserved.",
		Designed: "Designed and built with passion and precision.",
	},
}
