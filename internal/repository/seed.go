package repository

import (
	"time"

	"github.com/spec-kit/recruit-ops/internal/domain"
)

// SeedDataset returns the sample workspace used when no snapshot exists.
func SeedDataset(now time.Time) *Dataset {
	hoursAgo := func(h int) time.Time { return now.Add(-time.Duration(h) * time.Hour) }
	completed := hoursAgo(3).Add(30 * time.Minute)

	return &Dataset{
		Candidates: []domain.Candidate{
			{
				ID: 1, Name: "Pranay Singhal", Title: "Salesforce Developer", Experience: "5 years",
				Skills: []string{"Salesforce Developer"}, Status: domain.CandidateStatusAvailable, Rating: 4.7,
				Email: "pranay.singhal@example.com", Phone: "+91-9876543210", Location: "Bangalore, India",
				Resume: "Profile on Request", AppliedDate: hoursAgo(72),
			},
			{
				ID: 2, Name: "Bhavesh Mistry", Title: "Full Stack Designer", Experience: "4 years",
				Skills: []string{"Design", "Bootstrap", "Tailwind CSS", "Material UI", "Figma", "React.js", "Angular"},
				Status: domain.CandidateStatusAvailable, Rating: 4.5,
				Email: "bhavesh.mistry@example.com", Phone: "+91-9876543211", Location: "Mumbai, India",
				Resume: "Profile on Request", AppliedDate: hoursAgo(96),
			},
			{
				ID: 3, Name: "Sagar Shinde", Title: "Senior Java Developer", Experience: "3 years",
				Skills: []string{"Core Java", "Spring Boot", "REST API", "Hibernate", "MySQL", "Kafka", "Redis", "AWS"},
				Status: domain.CandidateStatusInterviewScheduled, Rating: 4.2,
				Email: "sagar.shinde@example.com", Phone: "+91-9876543212", Location: "Pune, India",
				Resume: "Profile on Request", AppliedDate: hoursAgo(120),
			},
			{
				ID: 4, Name: "John Doe", PositionApplied: "Software Engineer", Experience: "Not specified",
				Skills: []string{}, Status: domain.CandidateStatusApplied, Email: "john.doe@example.com",
				Resume: "Not provided", AppliedDate: hoursAgo(1),
			},
			{
				ID: 5, Name: "Jane Smith", PositionApplied: "Marketing Manager", Experience: "Not specified",
				Skills: []string{}, Status: domain.CandidateStatusUnderReview, Email: "jane.smith@example.com",
				Resume: "Not provided", AppliedDate: hoursAgo(2),
			},
			{
				ID: 6, Name: "Robert Johnson", PositionApplied: "Sales Associate", Experience: "Not specified",
				Skills: []string{}, Status: domain.CandidateStatusApplied, Email: "robert.johnson@example.com",
				Resume: "Not provided", AppliedDate: hoursAgo(3),
			},
			{
				ID: 7, Name: "Emily Wilson", PositionApplied: "HR Director", Experience: "Not specified",
				Skills: []string{}, Status: domain.CandidateStatusHired, Email: "emily.wilson@example.com",
				Resume: "Not provided", AppliedDate: hoursAgo(4),
			},
		},
		Positions: []domain.Position{
			{ID: 1, Title: "Software Engineer", Department: "Technology", Status: domain.PositionStatusOpen, UpdatedAt: now},
			{ID: 2, Title: "Marketing Manager", Department: "Marketing", Status: domain.PositionStatusInReview, UpdatedAt: hoursAgo(1)},
			{ID: 3, Title: "Sales Associate", Department: "Sales", Status: domain.PositionStatusFilled, UpdatedAt: hoursAgo(2)},
			{ID: 4, Title: "HR Director", Department: "Human Resources", Status: domain.PositionStatusOnHold, UpdatedAt: hoursAgo(3)},
			{ID: 5, Title: "Product Designer", Department: "Technology", Status: domain.PositionStatusOpen, UpdatedAt: now},
			{ID: 6, Title: "Content Writer", Department: "Marketing", Status: domain.PositionStatusOpen, UpdatedAt: now},
			{ID: 7, Title: "DevOps Engineer", Department: "Technology", Status: domain.PositionStatusOpen, UpdatedAt: now},
			{ID: 8, Title: "Account Executive", Department: "Sales", Status: domain.PositionStatusInReview, UpdatedAt: hoursAgo(1)},
		},
		Recruiters: []domain.Recruiter{
			{ID: 1, Name: "Alice Johnson", Department: "Technology", Position: "Senior Recruiter", Status: domain.RecruiterStatusActive, Email: "alice.johnson@example.com", Phone: "+1234567890", HireDate: "2022-01-15", Performance: 92, Schedule: "9:00 AM - 5:00 PM"},
			{ID: 2, Name: "Bob Smith", Department: "Marketing", Position: "Recruiter", Status: domain.RecruiterStatusActive, Email: "bob.smith@example.com", Phone: "+1234567891", HireDate: "2022-03-22", Performance: 87, Schedule: "9:00 AM - 5:00 PM"},
			{ID: 3, Name: "Carol Davis", Department: "Sales", Position: "Recruiter", Status: domain.RecruiterStatusOffline, Email: "carol.davis@example.com", Phone: "+1234567892", HireDate: "2021-11-05", Performance: 95, Schedule: "9:00 AM - 5:00 PM"},
			{ID: 4, Name: "David Wilson", Department: "Human Resources", Position: "Recruitment Manager", Status: domain.RecruiterStatusActive, Email: "david.wilson@example.com", Phone: "+1234567893", HireDate: "2020-07-18", Performance: 88, Schedule: "8:00 AM - 4:00 PM"},
			{ID: 5, Name: "Eva Brown", Department: "Technology", Position: "Recruiter", Status: domain.RecruiterStatusBreak, Email: "eva.brown@example.com", Phone: "+1234567894", HireDate: "2023-02-10", Performance: 91, Schedule: "8:00 AM - 4:00 PM"},
		},
		Applications: []domain.Application{
			{ID: 1, CandidateID: 4, CandidateName: "John Doe", PositionID: 1, Title: "Software Engineer Application", Department: "Technology", Priority: domain.PriorityMedium, Status: domain.ApplicationStatusPending, CreatedAt: hoursAgo(1)},
			{ID: 2, CandidateID: 5, CandidateName: "Jane Smith", PositionID: 2, Title: "Marketing Manager Application", Department: "Marketing", Priority: domain.PriorityHigh, Status: domain.ApplicationStatusInProgress, CreatedAt: hoursAgo(2)},
			{ID: 3, CandidateID: 6, CandidateName: "Robert Johnson", PositionID: 3, Title: "Sales Associate Application", Department: "Sales", Priority: domain.PriorityUrgent, Status: domain.ApplicationStatusPending, CreatedAt: hoursAgo(3)},
			{ID: 4, CandidateID: 7, CandidateName: "Emily Wilson", PositionID: 4, Title: "HR Director Application", Department: "Human Resources", Priority: domain.PriorityLow, Status: domain.ApplicationStatusCompleted, CreatedAt: hoursAgo(4), CompletedAt: &completed},
		},
		Departments: []domain.Department{
			{ID: 1, Name: "Technology", Head: "Alice Johnson", RecruiterCount: 2, Performance: 92},
			{ID: 2, Name: "Marketing", Head: "Bob Smith", RecruiterCount: 1, Performance: 87},
			{ID: 3, Name: "Sales", Head: "Carol Davis", RecruiterCount: 1, Performance: 95},
			{ID: 4, Name: "Human Resources", Head: "David Wilson", RecruiterCount: 1, Performance: 88},
		},
		Onboarding: []domain.Onboarding{},
		Rooms: []domain.Room{
			{ID: 1, Number: "101", Floor: 1, Type: "Standard", Status: domain.RoomStatusClean, UpdatedAt: now},
			{ID: 2, Number: "102", Floor: 1, Type: "Standard", Status: domain.RoomStatusDirty, UpdatedAt: hoursAgo(1)},
			{ID: 3, Number: "103", Floor: 1, Type: "Deluxe", Status: domain.RoomStatusInspected, UpdatedAt: hoursAgo(2)},
			{ID: 4, Number: "104", Floor: 1, Type: "Suite", Status: domain.RoomStatusOutOfOrder, UpdatedAt: hoursAgo(3)},
			{ID: 5, Number: "201", Floor: 2, Type: "Standard", Status: domain.RoomStatusClean, UpdatedAt: now},
			{ID: 6, Number: "202", Floor: 2, Type: "Standard", Status: domain.RoomStatusDirty, UpdatedAt: hoursAgo(1)},
			{ID: 7, Number: "203", Floor: 2, Type: "Deluxe", Status: domain.RoomStatusClean, UpdatedAt: now},
			{ID: 8, Number: "204", Floor: 2, Type: "Suite", Status: domain.RoomStatusDirty, UpdatedAt: hoursAgo(1)},
			{ID: 9, Number: "301", Floor: 3, Type: "Standard", Status: domain.RoomStatusClean, UpdatedAt: now},
			{ID: 10, Number: "302", Floor: 3, Type: "Standard", Status: domain.RoomStatusDirty, UpdatedAt: hoursAgo(1)},
			{ID: 11, Number: "303", Floor: 3, Type: "Deluxe", Status: domain.RoomStatusInspected, UpdatedAt: hoursAgo(2)},
			{ID: 12, Number: "304", Floor: 3, Type: "Suite", Status: domain.RoomStatusClean, UpdatedAt: now},
		},
		Requests: []domain.GuestRequest{
			{ID: 1, GuestName: "John Doe", RoomNumber: "205", Title: "Extra towels", Department: "Housekeeping", Priority: domain.PriorityMedium, Status: domain.GuestRequestStatusPending, CreatedAt: hoursAgo(1)},
			{ID: 2, GuestName: "Jane Smith", RoomNumber: "108", Title: "Breakfast order", Department: "Food & Beverage", Priority: domain.PriorityHigh, Status: domain.GuestRequestStatusInProgress, CreatedAt: hoursAgo(2)},
			{ID: 3, GuestName: "Robert Johnson", RoomNumber: "210", Title: "Leaky faucet", Department: "Maintenance", Priority: domain.PriorityUrgent, Status: domain.GuestRequestStatusPending, CreatedAt: hoursAgo(3)},
			{ID: 4, GuestName: "Emily Wilson", RoomNumber: "302", Title: "Late checkout", Department: "Front Desk", Priority: domain.PriorityLow, Status: domain.GuestRequestStatusCompleted, CreatedAt: hoursAgo(4)},
		},
		Inventory: []domain.InventoryItem{
			{ID: 1, Name: "Luxury Towels", Category: "Linens", Quantity: 150, MinStock: 100, Supplier: "Premium Linens Co.", Price: 12.99, LastOrdered: "2023-08-15"},
			{ID: 2, Name: "Hotel Shampoo", Category: "Toiletries", Quantity: 85, MinStock: 50, Supplier: "Spa Essentials", Price: 3.50, LastOrdered: "2023-08-20"},
			{ID: 3, Name: "Coffee Beans", Category: "Food & Beverage", Quantity: 18, MinStock: 20, Supplier: "Gourmet Coffee Supply", Price: 18.75, LastOrdered: "2023-09-01"},
			{ID: 4, Name: "Cleaning Supplies", Category: "Housekeeping", Quantity: 40, MinStock: 30, Supplier: "CleanCo", Price: 8.99, LastOrdered: "2023-08-25"},
			{ID: 5, Name: "Wine Glasses", Category: "Dining", Quantity: 75, MinStock: 50, Supplier: "Fine Glassware", Price: 9.25, LastOrdered: "2023-07-30"},
		},
		Activity: []domain.Activity{
			{ID: 1, Type: domain.ActivityApplication, Title: "New application received", Description: "John Doe - Software Engineer", Timestamp: now, Status: string(domain.ApplicationStatusPending)},
			{ID: 2, Type: domain.ActivityPosition, Title: "Position status updated", Description: "Marketing Manager marked as IN_REVIEW", Timestamp: hoursAgo(1), Status: string(domain.PositionStatusInReview)},
			{ID: 3, Type: domain.ActivityApplication, Title: "Application completed", Description: "Emily Wilson - HR Director Application", Timestamp: hoursAgo(2), Status: string(domain.ApplicationStatusCompleted)},
		},
	}
}

// SeedJobPostings returns the sample postings served before any are created.
func SeedJobPostings() []domain.JobPosting {
	salary := func(v float64) *float64 { return &v }
	day := func(s string) time.Time {
		t, _ := time.Parse(time.DateOnly, s)
		return t
	}
	return []domain.JobPosting{
		{
			ID: "1", Title: "Senior Software Engineer", Department: "Technology",
			Description:      "We are looking for a Senior Software Engineer to join our dynamic technology team. You will be responsible for developing high-quality software solutions.",
			Requirements:     "5+ years of experience in software development, Expertise in JavaScript, React, and Node.js, Experience with cloud technologies (AWS, Azure, or GCP)",
			Responsibilities: "Design and implement scalable software solutions, Collaborate with cross-functional teams, Write clean, maintainable code, Participate in code reviews",
			Experience:       "Senior Level (5+ years)", Location: "San Francisco, CA", EmploymentType: "Full-time",
			SalaryMin: salary(120000), SalaryMax: salary(160000),
			Benefits:  "Health insurance, 401(k) matching, Unlimited PTO, Remote work options",
			StartDate: "2025-11-01", ApplicationDeadline: "2025-11-20",
			Status: domain.JobPostingStatusPublished, CreatedAt: day("2025-10-20"), UpdatedAt: day("2025-10-20"),
		},
		{
			ID: "2", Title: "Marketing Manager", Department: "Marketing",
			Description:      "We are looking for a Marketing Manager to lead our marketing efforts and drive growth through innovative campaigns.",
			Requirements:     "3-5 years of marketing experience, Bachelor's degree in Marketing or related field, Experience with digital marketing tools, Strong analytical skills",
			Responsibilities: "Develop and execute marketing strategies, Manage marketing campaigns, Analyze marketing data and performance, Collaborate with sales team",
			Experience:       "Mid Level (2-5 years)", Location: "New York, NY", EmploymentType: "Full-time",
			SalaryMin: salary(85000), SalaryMax: salary(110000),
			Benefits:  "Health insurance, Performance bonuses, Flexible schedule",
			StartDate: "2025-11-15", ApplicationDeadline: "2025-11-18",
			Status: domain.JobPostingStatusPublished, CreatedAt: day("2025-10-18"), UpdatedAt: day("2025-10-18"),
		},
		{
			ID: "3", Title: "UX/UI Designer", Department: "Design",
			Description:      "We are looking for a UX/UI Designer to create user-centered designs that enhance user experience and engagement.",
			Requirements:     "2-4 years of UX/UI design experience, Portfolio showcasing design projects, Proficiency in design tools (Figma, Sketch, etc.), Understanding of user research methods",
			Responsibilities: "Design user interfaces and experiences, Create wireframes and prototypes, Conduct user research and testing, Collaborate with developers and product managers",
			Experience:       "Mid Level (2-4 years)", Location: "Remote", EmploymentType: "Full-time",
			SalaryMin: salary(75000), SalaryMax: salary(95000),
			Benefits:  "Health insurance, Performance bonuses, Flexible schedule, Professional development allowance",
			StartDate: "2025-11-10", ApplicationDeadline: "2025-11-15",
			Status: domain.JobPostingStatusPublished, CreatedAt: day("2025-10-15"), UpdatedAt: day("2025-10-15"),
		},
		{
			ID: "4", Title: "Sales Associate", Department: "Sales",
			Description:      "We are looking for motivated Sales Associates to engage with customers and drive sales in our retail locations.",
			Requirements:     "0-2 years of sales experience, Strong communication skills, Customer service experience, Ability to work in a fast-paced environment",
			Responsibilities: "Assist customers with product selection, Process sales transactions, Maintain store appearance, Meet sales targets",
			Experience:       "Entry Level (0-2 years)", Location: "Chicago, IL", EmploymentType: "Part-time",
			SalaryMin: salary(15), SalaryMax: salary(20),
			Benefits:  "Commission opportunities, Employee discounts, Flexible scheduling",
			StartDate: "2025-11-05", ApplicationDeadline: "2025-11-10",
			Status: domain.JobPostingStatusPublished, CreatedAt: day("2025-10-10"), UpdatedAt: day("2025-10-10"),
		},
	}
}
