// Package seed holds the demo data a fresh console starts with when demo
// mode is on.
package seed

import (
	"github.com/dmitrijs2005/placementdesk/internal/console/models"
	"github.com/dmitrijs2005/placementdesk/internal/console/pipeline"
)

// Demo returns a new copy of the demo state on every call.
func Demo() pipeline.State {
	return pipeline.State{
		Applicants:    applicants(),
		Selected:      selected(),
		Rejected:      rejected(),
		Recruited:     recruited(),
		Openings:      openings(),
		Notifications: notifications(),
		Activity:      activity(),
		Chats:         chats(),
	}
}

// Empty is the state of a console with demo mode off.
func Empty() pipeline.State {
	return pipeline.State{}.Clone()
}

func applicants() []models.Person {
	return []models.Person{
		{
			ID:              "1",
			Name:            "Aditi Verma",
			Email:           "aditi@example.com",
			Phone:           "9876543210",
			Roll:            "CS101",
			Skills:          []string{"React", "JavaScript", "CSS", "Tailwind"},
			Progress:        85,
			Status:          "new",
			Position:        "Frontend Developer Intern",
			AppliedDate:     "2 days ago",
			Department:      "Engineering",
			Education:       "B.Tech Computer Science",
			College:         "IIT Delhi",
			GraduationYear:  "2024",
			Location:        "Delhi, India",
			ExpectedSalary:  "₹8-10 LPA",
			NoticePeriod:    "Immediate",
			ExperienceYears: "1 year",
			LinkedIn:        "https://linkedin.com/in/aditiverma",
			GitHub:          "https://github.com/aditiverma",
			Rating:          4.8,
			Experience: []models.Experience{{
				Title:       "Frontend Intern",
				Company:     "StartupXYZ",
				Duration:    "Jun 2023 - Aug 2023",
				Description: "Built responsive web applications using React and Tailwind CSS",
			}},
			Documents: []models.Document{
				{Name: "Resume.pdf", Size: "245 KB"},
				{Name: "Cover_Letter.pdf", Size: "128 KB"},
			},
		},
		{
			ID:             "2",
			Name:           "Rahul Singh",
			Email:          "rahul@example.com",
			Phone:          "9876543211",
			Skills:         []string{"Node.js", "Express", "MongoDB"},
			Status:         "reviewed",
			Position:       "Backend Developer Intern",
			AppliedDate:    "3 days ago",
			Department:     "Engineering",
			College:        "NIT Trichy",
			Location:       "Chennai, India",
			ExpectedSalary: "₹7-9 LPA",
			Rating:         4.5,
			Documents:      []models.Document{{Name: "Resume.pdf", Size: "312 KB"}},
		},
		{
			ID:          "3",
			Name:        "Sneha Patel",
			Email:       "sneha@example.com",
			Phone:       "9876543212",
			Skills:      []string{"Figma", "Adobe XD", "Prototyping"},
			Status:      "shortlisted",
			Position:    "UI/UX Designer Intern",
			AppliedDate: "1 week ago",
			Department:  "Design",
			College:     "NID Ahmedabad",
			Location:    "Ahmedabad, India",
			Rating:      4.6,
		},
	}
}

func selected() []models.Person {
	return []models.Person{{
		ID:             "s1",
		Name:           "Vikram Mehta",
		Email:          "vikram@example.com",
		Phone:          "9876543220",
		Skills:         []string{"React", "TypeScript", "GraphQL"},
		Position:       "Frontend Developer Intern",
		Department:     "Engineering",
		Education:      "B.Tech Computer Science",
		College:        "VIT Vellore",
		SelectedDate:   "Jan 15, 2024",
		Location:       "Mumbai, India",
		ExpectedSalary: "₹10-12 LPA",
		Rating:         4.7,
	}}
}

func rejected() []models.Person {
	return []models.Person{{
		ID:              "r1",
		Name:            "Rohan Roy",
		Email:           "rohan@example.com",
		Phone:           "9876543230",
		Skills:          []string{"Java", "Spring Boot"},
		Position:        "Java Developer Intern",
		Department:      "Engineering",
		College:         "SRM University",
		RejectedDate:    "Jan 10, 2024",
		RejectionReason: "Insufficient experience",
		Location:        "Chennai, India",
		Rating:          3.5,
	}}
}

func recruited() []models.Person {
	return []models.Person{{
		ID:            "rec1",
		Name:          "Kavya Nair",
		Email:         "kavya@example.com",
		Phone:         "9876543240",
		Skills:        []string{"React", "Node.js", "MongoDB", "AWS"},
		Position:      "Full Stack Developer",
		Department:    "Engineering",
		College:       "IIT Madras",
		RecruitedDate: "Dec 15, 2023",
		StartDate:     "Feb 1, 2024",
		Salary:        "₹12 LPA",
		Location:      "Bangalore, India",
		Rating:        4.9,
	}}
}

func openings() []models.Opening {
	return []models.Opening{
		{
			ID:          "job1",
			Title:       "Frontend Developer Intern",
			Description: "Looking for a passionate frontend developer with React experience.",
			Skills:      []string{"React", "JavaScript", "CSS", "Tailwind"},
			Stipend:     "₹15,000/month",
			Salary:      "₹15,000/month",
			Duration:    "3 months",
			Mode:        "Remote",
			Type:        "Internship",
			Location:    "Bangalore",
			Department:  "Engineering",
			Applicants:  24,
			Views:       156,
			Status:      models.OpeningActive,
			PostedDate:  "2 days ago",
			CreatedAt:   "2024-01-20T09:00:00Z",
		},
		{
			ID:          "job2",
			Title:       "Backend Developer Intern",
			Description: "Build APIs and services for our placement platform.",
			Skills:      []string{"Node.js", "PostgreSQL", "Docker"},
			Stipend:     "₹18,000/month",
			Salary:      "₹18,000/month",
			Duration:    "6 months",
			Mode:        "Hybrid",
			Type:        "Internship",
			Location:    "Pune",
			Department:  "Engineering",
			Applicants:  18,
			Views:       98,
			Status:      models.OpeningPaused,
			PostedDate:  "1 week ago",
			CreatedAt:   "2024-01-14T09:00:00Z",
		},
	}
}

func notifications() []models.Notification {
	return []models.Notification{
		{
			ID:          "n1",
			Type:        models.NotificationApplication,
			Title:       "New Application",
			Message:     "Aditi Verma applied for Frontend Developer Intern",
			Time:        "2 minutes ago",
			ReferenceID: "1",
		},
		{
			ID:          "n2",
			Type:        models.NotificationInterview,
			Title:       "Interview Scheduled",
			Message:     "Rahul Singh confirmed for 3 PM today",
			Time:        "1 hour ago",
			ReferenceID: "2",
		},
		{
			ID:          "n4",
			Type:        models.NotificationSelected,
			Title:       "Student Selected",
			Message:     "Vikram Mehta has been selected for Frontend Developer role",
			Time:        "Yesterday",
			Read:        true,
			ReferenceID: "s1",
		},
	}
}

func activity() []models.Activity {
	return []models.Activity{
		{Type: "application", Description: "Aditi Verma applied for Frontend Developer", Time: "2 min ago"},
		{Type: "selected", Description: "Vikram Mehta was selected for the role", Time: "1 hour ago"},
		{Type: "rejected", Description: "Rohan Roy's application was rejected", Time: "Yesterday"},
	}
}

func chats() map[string][]models.Message {
	return map[string][]models.Message{
		"1": {
			{ID: "1", From: models.SenderStudent, Text: "Hello sir, I have applied for the Frontend Developer internship.", Time: "10:30 AM", Read: true},
			{ID: "2", From: models.SenderCompany, Text: "Hello Aditi! Yes, we received your application.", Time: "10:45 AM", Read: true},
		},
		"3": {
			{ID: "1", From: models.SenderStudent, Text: "Hi! I'm excited about the UI/UX Designer role.", Time: "2:00 PM", Read: true},
			{ID: "2", From: models.SenderCompany, Text: "Hi Sneha! Would you be available for a design challenge?", Time: "2:15 PM", Read: true},
			{ID: "3", From: models.SenderStudent, Text: "Absolutely! I'd love to participate.", Time: "2:18 PM"},
		},
	}
}
