package content

var (
	ArtistName = "Alex Morgan"
	Initials   = "AM"
	Tagline    = "Media Artist & Producer"
	Location   = "Los Angeles, CA"
	Email      = "alex@alexmorgan.art"
	Telegram   = "@alexmorgan"

	HeroLede = `Creating immersive digital experiences through multimedia installations,
	video art, and contemporary technological interventions.`

	ProjectsIntro = `A collection of multimedia installations, digital sculptures, and interactive experiences
	exploring the boundaries between technology and human perception.`

	AboutParagraphs = []string{
		`I'm a media artist and producer based in Los Angeles, specializing in creating
	immersive digital experiences that challenge the boundaries between technology
	and human perception.`,
		`My work explores themes of digital consciousness, data visualization, and the
	intersection of virtual and physical realities. Through multimedia installations,
	interactive sculptures, and projection mapping, I create spaces for contemplation
	and wonder in our increasingly digital world.`,
		`Educated at CalArts (MFA Digital Arts) and MIT Media Lab (Visiting Researcher),
	I collaborate with institutions like LACMA, Venice Biennale, and Ars Electronica
	to bring cutting-edge digital art to diverse audiences.`,
	}

	Achievements = []string{
		"Featured at Venice Biennale 2023",
		"Exhibited in 15+ countries",
		"5+ years in digital art",
	}

	Philosophy = `Technology is not just a tool, it's a medium for emotional and spiritual
	expression. My work seeks to humanize digital experiences and create
	meaningful connections in an increasingly virtual world.`

	ProcessIntro = `From initial concept to final experience, each project follows a meticulous
	process that balances artistic vision with technical innovation.`

	ClientsIntro = `Partnerships with leading cultural institutions, technology companies,
	and art festivals worldwide.`

	ContactIntro = `Interested in collaboration, commissioning a piece, or just want to chat about
	digital art? I'd love to hear from you.`

	Copyright = "© 2025 Alex Morgan. All rights reserved."
)
