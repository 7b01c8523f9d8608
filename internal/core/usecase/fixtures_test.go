package usecase

import "github.com/mayankdk/portfolio-assistant/internal/core/domain"

func testFacts() *domain.Facts {
	return &domain.Facts{
		Profile: domain.Profile{
			Name:         "Mayank D. Kulkarni",
			Title:        "AI & Full-Stack Developer",
			Location:     "Pune, India",
			Email:        "mayank@example.com",
			Bio:          "AI developer focused on applied machine learning and full-stack systems.",
			Availability: "Open to AI/ML internships and freelance projects",
			Focus:        []string{"Applied AI", "Computer Vision", "Full-Stack Development"},
			Languages: []string{
				"English: Fluent",
				"Hindi: Native",
				"Marathi: Native",
				"German: Intermediate (A2 certified)",
			},
			Interests: []string{"Robotics", "Reading", "Trekking"},
		},
		Education: []domain.EducationEntry{
			{Degree: "[EDUCATION] Diploma in Computer Engineering", Institution: "Government Polytechnic Pune", Years: "2020 – 2023"},
			{Degree: "[EDUCATION] BTech in Computer Engineering", Institution: "VIT Pune", Years: "2023 – 2026"},
			{Degree: "[EDUCATION] Exchange Semester", Institution: "Online Academy", Years: "ongoing"},
		},
		Experience: []domain.ExperienceEntry{
			{
				Role:         "[EXPERIENCE] Web Development Secretary",
				Company:      "CSI VIT Pune",
				Period:       "August 2024 – December 2025",
				Description:  "Built several web applications for student chapters.",
				Achievements: []string{"Shipped the chapter event portal"},
				Technologies: []string{"Next.js", "TypeScript"},
			},
			{
				Role:         "[EXPERIENCE] AI Intern",
				Company:      "TE Connectivity",
				Period:       "January 2026 – Present",
				Description:  "Computer vision tooling for part identification.",
				Achievements: []string{"Deployed a ViT-based recognition pipeline"},
				Technologies: []string{"PyTorch", "Vision Transformers", "FastAPI"},
			},
		},
		Projects: []domain.ProjectEntry{
			{
				Name:         "[PROJECT] PhishGuard AI - Phishing URL Detector",
				Description:  "An ML + LLM based phishing URL detector.",
				Features:     []string{"Lightweight ML model for rapid URL screening", "Final verdict with confidence score"},
				Technologies: []string{"FastAPI", "Huggingface Spaces", "LLM"},
				Role:         "Lead AI Developer and UX Designer",
				Timeline:     "5 months",
			},
			{
				Name:         "[PROJECT] Part Number Recognition System",
				Description:  "A machine vision system to identify industrial part numbers.",
				Features:     []string{"Automates part number identification using image inputs."},
				Technologies: []string{"Next.js", "PostgreSQL", "Vision Transformers"},
				Role:         "Frontend Developer, Model Trainer, Database Creator",
				Timeline:     "6 months",
			},
			{
				Name:         "[PROJECT] YogAR - Augmented Reality Yoga App",
				Description:  "An AR mobile app that corrects yoga poses in real time.",
				Features:     []string{"Real-time pose feedback"},
				Technologies: []string{"Unity", "ARCore", "TensorFlow Lite"},
				Role:         "AR Developer",
				Timeline:     "4 months",
			},
		},
		Skills: domain.SkillSet{
			AIML:            []string{"PyTorch", "Vision Transformers", "RAG Systems"},
			Development:     []string{"Next.js", "TypeScript", "Tailwind CSS"},
			BackendDatabase: []string{"FastAPI", "PostgreSQL"},
			SoftSkills:      []string{"Communication", "Team Leadership"},
		},
		Awards: []domain.AwardEntry{
			{Title: "Winner, Smart India Hackathon", Description: "First place for an applied AI solution."},
		},
		Certifications: []string{
			"Goethe-Zertifikat A2: German Language",
			"TensorFlow Developer Certificate",
		},
	}
}
