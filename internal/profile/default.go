// Package profile holds the resume content and the read-only store handing it out.
package profile

import "github.com/ChrisEOlsen/resume-site/internal/types"

// Default returns the compiled-in profile. Each call builds a fresh value.
func Default() types.Profile {
	return types.Profile{
		Name: "Christopher Olsen",
		Contact: types.Contact{
			Location:    "New York, NY",
			Email:       "chrisolsenweb@gmail.com",
			ProfileLink: "https://github.com/ChrisEOlsen",
		},
		Narrative: []string{
			"I moved to NY from a small city in southern Norway at 17. As I was eager to jump into the workforce, I found personal training to be an exciting venture where I could assist in making a noticeable impact on people’s health and well-being. Over time I was able to build a successful career and nearly a decade later, I've had the privilege of fostering relationships with fascinating individuals, including a CEO of Coursera, the president of ISACA NY, an AI researcher at a quantitative trading firm, and a tech lead at Meta. My job has afforded me the chance to pick the brains of people who are at the highest levels of their respective fields over the course of many years, all while teaching them how to squat and deadlift safely in return.",
			"My true dedication to learning about computers came about during the pandemic when personal training came to a temporary, yet sudden halt. I had returned to Norway for a year, where I spent my time exercising, winter camping, and learning about the world of networks and software as I tinkered with my Linux home server. The past 8 years of working within the fitness industry have been deeply rewarding. However, my life has recently changed, as I have now started my own family. I now find myself in a place in life where I am highly motivated and ready to broaden my horizons. I aim to put myself in an environment where I can learn, and embark on a new journey of building a long lasting, scalable career, where I can apply the invaluable life lessons I have learned from my current profession, and to start leveraging my developed work ethic elsewhere.",
		},
		Skills: []types.SkillCategory{
			{Category: "Languages", Items: []string{"Python", "C++", "JavaScript", "SQL"}},
			{Category: "Frameworks & Databases", Items: []string{"FastAPI", "Next.js", "React", "PostgreSQL"}},
			{Category: "Cloud & DevOps", Items: []string{"Docker", "Linux", "Google Cloud Platform (GCP)", "Cloudflare"}},
			{Category: "Cybersecurity", Items: []string{"Penetration Testing Methodologies", "Network Security", "Vulnerability Assessment"}},
		},
		SoftSkills: []string{
			"Excellent communication and management of interpersonal relationships",
			"Time management",
			"Patient and calm in fast-paced environments",
			"Diligent and determined when faced with a challenge",
			"Fluent in English and Norwegian",
			"Handyman",
		},
		Experience: []types.Experience{
			{
				Role:         "Personal Trainer",
				Organization: "New York, NY",
				Duration:     "2019 – Present",
				Bullets: []string{
					"Managed a diverse portfolio of 20+ clients, developing customized, long-term fitness plans.",
					"Cultivated strong, trust-based relationships, leading to exceptional client retention and a referral-based business.",
					"Fostered a unique network of mentors and advisors from the tech and finance industries through my client work, gaining invaluable insight into real-world challenges.",
				},
			},
			{
				Role:         "Lead Parkour Instructor",
				Organization: "New York, NY",
				Duration:     "2017 – 2019",
				Bullets: []string{
					"Led and mentored groups of up to 15 children, developing a curriculum focused on safety, skill progression, and building confidence through disciplined practice.",
				},
			},
		},
		Education: []types.Education{
			{
				Credential:  "ACE Certified Personal Trainer",
				Institution: "American Council on Exercise",
			},
			{
				Credential:  "Bachelor of Science in Software Engineering (In Progress)",
				Institution: "Western Governors University",
				Duration:    "Expected Completion: Summer 2026",
			},
			{
				Credential:  "Google Cybersecurity Professional Certificate",
				Institution: "Coursera",
				Duration:    "Completed 2024",
			},
			{
				Credential:  "Pentesting Career Path",
				Institution: "Hack The Box",
				Duration:    "In Progress",
			},
		},
	}
}
