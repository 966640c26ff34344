package domain

// HomePageSlug is the CMS page that carries the home page custom fields.
const HomePageSlug = "home"

// MainMenuID is the menu rendered in the site navigation.
const MainMenuID = "main-menu"

// DefaultPosts is the blog fallback: no posts.
func DefaultPosts() []Post {
	return []Post{}
}

// DefaultMenuItems is the navigation used when the CMS menu is unavailable.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{ID: 1, Title: "COMPLIANCE", URL: "/compliance", Order: 1, Parent: 0},
		{ID: 2, Title: "LEARNING", URL: "/learning", Order: 2, Parent: 0},
		{ID: 3, Title: "RESOURCES", URL: "/resources", Order: 3, Parent: 0},
		{ID: 4, Title: "ABOUT US", URL: "/about-us", Order: 4, Parent: 0},
	}
}

// DefaultCertifications lists the four certification pathways.
func DefaultCertifications() []Certification {
	return []Certification{
		{
			ID:          1,
			Title:       "Certificate in Bidding & Staffing Associate",
			ShortName:   "CSBA",
			Description: "This foundational certification equips you with the basic understanding of bidding and recruitment processes. It's perfect for individuals new to the industry who are looking to build a strong foundation.",
			ForWho:      "Anyone can join",
		},
		{
			ID:          2,
			Title:       "Certificate in Bid & Man-power Professional",
			ShortName:   "CBMP",
			Description: "Aimed at individuals who want to use bidding and staffing strategies to advance their careers. Builds on the CSBA, offering deeper knowledge and practical skills while opening doors to new opportunities.",
			ForWho:      "Proposal writers",
		},
		{
			ID:          3,
			Title:       "Certified Staffing Management Professional",
			ShortName:   "CSMP",
			Description: "Designed for resource managers, this certification enhances your skills in managing staffing operations using efficient management of all customer processes and terms.",
			ForWho:      "Resource manager",
		},
		{
			ID:          4,
			Title:       "Certified Staffing And Bidding Leader",
			ShortName:   "CSBL",
			Description: "This advanced certification is tailored for professionals in leadership roles. Master the strategic aspects of staffing and bidding operations. Learn to create and manage teams while driving growth.",
			ForWho:      "Operational Manager (OM), General Manager (GM), Director Consulting (DC), Account Executive (AE), Business Development Manager (BD), Director (D)",
		},
	}
}

// DefaultHomePageData is the home page content used without CMS custom fields.
func DefaultHomePageData() HomePageData {
	return HomePageData{
		Hero: Hero{
			Title:      "EMPOWERING PROFESSIONALS IN BIDDING & RECRUITMENT",
			Subtitle:   "Join SNB Alliance to become a qualified expert in bidding & recruitment with recognized industry certifications.",
			ButtonText: "JOIN NOW",
		},
		About: About{
			Title: "What is SNB ALLIANCE?",
			Content: "<p>We are a team dedicated to train the educated people and provide them with a detailed structure to cover the bidding & recruitment industry.</p>" +
				"<p>The intellectual property and products behind this idea are the founding body of this alliance who identified the gap between the bidding and recruiting management and brokers.</p>" +
				"<p><strong>We aspire that the recruiters & proposal writers be considered as the qualified ones.</strong></p>" +
				"<p>The key idea is to bring the two ends of roles so that they can work peacefully.</p>",
		},
		WhyUs: WhyUs{
			Title: "Why Us?",
			Items: DefaultWhyUsItems(),
		},
	}
}

// DefaultWhyUsItems is the fallback list for the WhyUs block.
func DefaultWhyUsItems() []WhyUsItem {
	return []WhyUsItem{
		{ID: 1, Text: "Increase the industrial awareness and expand the tactics of bidding, recruitment, and proposals."},
		{ID: 2, Text: "Exams are methodized to assess the skill sets before awarding the certificates."},
		{ID: 3, Text: "New members are always welcomed and they are enlightened by the senior members & mentors."},
		{ID: 4, Text: "Your career soars with each session and ultimately you evolve into a global leader."},
		{ID: 5, Text: "SNB Alliance is an advanced platform where professional achievers help other professionals to reach their goals."},
	}
}
