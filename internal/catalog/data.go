package catalog

import "github.com/Zachkp/showcase/internal/models"

// Categories is the declared category enumeration, in display order.
var Categories = []string{
	"Social Media Posts",
	"Digital Ads/Banners",
	"Video Production",
	"Brand Identity",
	"Print Design",
	"Campaign Strategy",
}

var Projects = []models.Project{
	{
		ID:          1,
		Title:       "Nike Summer Campaign",
		Category:    "Social Media Posts",
		Client:      "Nike",
		Description: "A ten-week run of Instagram and TikTok posts built around long summer evenings and neighbourhood courts.",
		Images: []string{
			"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=1200",
			"https://images.unsplash.com/photo-1460353581641-37baddab0fa2?w=1200",
			"https://images.unsplash.com/photo-1491553895911-0055eca6402d?w=1200",
		},
		Type:     models.MediaImage,
		Featured: true,
		Year:     2024,
		Tools:    []string{"Photoshop", "Illustrator", "Figma"},
		Layout:   models.LayoutStandard,
	},
	{
		ID:          2,
		Title:       "Spotify Wrapped Story Pack",
		Category:    "Social Media Posts",
		Client:      "Spotify",
		Description: "Animated story templates that let listeners share their year in audio with a single tap.",
		Images: []string{
			"https://images.unsplash.com/photo-1614680376593-902f74cf0d41?w=1200",
			"https://images.unsplash.com/photo-1611339555312-e607c8352fd7?w=1200",
		},
		Type:   models.MediaImage,
		Year:   2023,
		Tools:  []string{"After Effects", "Figma"},
		Layout: models.LayoutStandard,
	},
	{
		ID:          3,
		Title:       "Coca-Cola Holiday Spot",
		Category:    "Video Production",
		Client:      "Coca-Cola",
		Description: "A thirty-second broadcast spot and its social cut-downs, shot over two nights in a snowed-in town square.",
		Images: []string{
			"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
		},
		Type:     models.MediaVideo,
		Featured: true,
		Year:     2023,
		Tools:    []string{"Premiere Pro", "DaVinci Resolve"},
		Layout:   models.LayoutVideoShowcase,
	},
	{
		ID:          4,
		Title:       "Adidas Digital Banner",
		Category:    "Digital Ads/Banners",
		Client:      "Adidas",
		Description: "An HTML5 banner suite in twelve IAB sizes for the Ultraboost relaunch.",
		Images: []string{
			"https://images.unsplash.com/photo-1518002171953-a080ee817e1f?w=1200",
			"https://images.unsplash.com/photo-1556906781-9a412961c28c?w=1200",
		},
		Type:   models.MediaImage,
		Year:   2024,
		Tools:  []string{"Google Web Designer", "Photoshop"},
		Layout: models.LayoutStandard,
	},
	{
		ID:          5,
		Title:       "Disney+ Brand Consistency Audit",
		Category:    "Brand Identity",
		Client:      "Disney",
		Description: "A review of how the Disney+ identity holds up across app stores, partner placements and paid social.",
		Images: []string{
			"https://images.unsplash.com/photo-1605980776566-0486c3ac7617?w=1200",
			"https://images.unsplash.com/photo-1608889825103-eb5ed706fc64?w=1200",
		},
		Type:     models.MediaImage,
		Featured: true,
		Year:     2024,
		Tools:    []string{"Figma", "Airtable"},
		Layout:   models.LayoutDisneyAudit,
		Audit: &models.AuditDetails{
			Scope: "140 live placements across six markets.",
			Findings: []string{
				"Logo lockups drifted from the master artwork in a third of partner placements.",
				"Secondary palette colours were substituted with near matches on paid social.",
				"Title treatments were cropped below the minimum clear space on mobile banners.",
			},
			Outcome: "A one-page placement checklist and a shared asset library now used by every regional partner team.",
		},
	},
	{
		ID:          6,
		Title:       "Adobe Creative Jam Entry",
		Category:    "Campaign Strategy",
		Client:      "Adobe",
		Description: "A 48-hour campaign concept for a fictional sustainable sneaker brand.",
		Images: []string{
			"https://images.unsplash.com/photo-1558655146-9f40138edfeb?w=1200",
		},
		Type:   models.MediaImage,
		Year:   2022,
		Tools:  []string{"Photoshop", "Illustrator", "Adobe Express"},
		Layout: models.LayoutAdobeCompetition,
		Competition: &models.CompetitionDetails{
			Brief:     "Launch a sneaker made from recycled ocean plastic to first-time buyers under 25.",
			Placement: "Finalist, top 10 of 350 teams",
			Award:     "Judges' pick for visual identity",
		},
	},
	{
		ID:          7,
		Title:       "Starbucks Seasonal Menu Boards",
		Category:    "Print Design",
		Client:      "Starbucks",
		Description: "In-store menu boards and counter cards for the autumn range.",
		Images: []string{
			"https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=1200",
		},
		Type:   models.MediaImage,
		Year:   2023,
		Tools:  []string{"InDesign", "Illustrator"},
		Layout: models.LayoutStandard,
	},
	{
		ID:          8,
		Title:       "Nike Run Club Launch Film",
		Category:    "Video Production",
		Client:      "Nike",
		Description: "A ninety-second launch film following three runners through one city at dawn.",
		Images: []string{
			"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
		},
		Type:   models.MediaVideo,
		Year:   2024,
		Tools:  []string{"Premiere Pro", "After Effects"},
		Layout: models.LayoutVideoShowcase,
	},
	{
		ID:          9,
		Title:       "Local Roasters Rebrand",
		Category:    "Brand Identity",
		Client:      "Grindhouse Coffee",
		Description: "A new wordmark, packaging system and signage for a three-store coffee roaster.",
		Images: []string{
			"https://images.unsplash.com/photo-1447933601403-0c6688de566e?w=1200",
			"https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=1200",
		},
		Type:   models.MediaImage,
		Year:   2022,
		Tools:  []string{"Illustrator", "Dimension"},
		Layout: models.LayoutStandard,
	},
	{
		ID:          10,
		Title:       "Samsung Galaxy Retargeting Set",
		Category:    "Digital Ads/Banners",
		Client:      "Samsung",
		Description: "Dynamic retargeting creative that swaps device colourways to match the product a shopper viewed.",
		Images: []string{
			"https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=1200",
		},
		Type:   models.MediaImage,
		Year:   2023,
		Tools:  []string{"Figma", "Celtra"},
		Layout: models.LayoutStandard,
	},
}

// Owner is the profile shown on the about page.
var Owner = models.Profile{
	Name:     "Zach Kordas-Potter",
	Headline: "Designer and content creator for brands that want to be noticed",
	Bio: `I love building campaigns that are both **useful** and fun, and I'm always curious about
what makes people stop scrolling.

Most of my projects start with a simple idea and turn into a chance to learn something new,
whether it's a different medium, a new tool, or a tricky brief.

When I'm not designing you'll usually find me training Muay Thai, shooting pool with friends,
or chasing down a new challenge away from the screen.`,
	Email:    "hello@zach.dev",
	Location: "Minneapolis, MN",
	Skills: []models.SkillGroup{
		{Name: "Design", Skills: []string{"Art direction", "Brand identity", "Layout", "Typography"}},
		{Name: "Motion & Video", Skills: []string{"Editing", "Motion graphics", "Colour grading"}},
		{Name: "Tools", Skills: []string{"Photoshop", "Illustrator", "InDesign", "After Effects", "Premiere Pro", "Figma"}},
		{Name: "Strategy", Skills: []string{"Campaign planning", "Social content calendars", "Brand audits"}},
	},
	Work: []models.Position{
		{
			Title:        "Presentation Expert",
			Organization: "Target",
			StartDate:    "Aug 2023",
			EndDate:      "Present",
			LogoPath:     "/static/images/target-logo.svg",
			Highlights: []string{
				"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
				"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally",
			},
		},
		{
			Title:        "Freelance Designer",
			Organization: "Self-employed",
			StartDate:    "Jan 2020",
			EndDate:      "Present",
			Highlights: []string{
				"Delivered social, banner and video work for national and local brands",
				"Ran brand consistency audits and turned the findings into reusable asset libraries",
			},
		},
	},
	Schools: []models.Position{
		{
			Title:        "Bachelor of Science, Marketing",
			Organization: "Western Governors University",
			StartDate:    "Sept 2019",
			EndDate:      "May 2023",
			LogoPath:     "/static/images/wgu-logo.svg",
			Highlights: []string{
				"Graduated Magna Cum Laude",
				"Coursework: Brand Management, Digital Marketing, Visual Communication",
			},
		},
	},
	Links: []models.Link{
		{Label: "Instagram", URL: "https://instagram.com/zach.designs"},
		{Label: "LinkedIn", URL: "https://www.linkedin.com/in/zachkp"},
		{Label: "GitHub", URL: "https://github.com/Zachkp"},
	},
}
