package seed

import (
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/interview"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume"
)

const seeder = "Admin"

func Resumes() []resume.Resume {
	return []resume.Resume{
		{ID: 118820, Name: "Sivasankaran S", Email: "sivasankaran773@gmail.com", Mobile: "+91 6370892921",
			Status: resume.StatusHired, Location: "Chennai", Experience: "5-7 years", Gender: "Male", Age: 29,
			CurrentCompany: "Tech Solutions", Designation: "Senior Developer", ExpectedCTC: "12 LPA",
			Score: 85, MatchSkills: []string{"Azure", "Logic Apps", "JavaScript"},
			ResumeDetails: "Senior Developer with Azure expertise", UploadedBy: seeder},
		{ID: 118819, Name: "Saguntaj Manj", Email: "manju2041599@gmail.com", Mobile: "+91 7739635241",
			Status: resume.StatusHired, Location: "Mumbai", Experience: "3-5 years",
			Score: 78, MatchSkills: []string{"React", "Node.js", "MongoDB"},
			ResumeDetails: "Full Stack Developer", UploadedBy: seeder},
		{ID: 118818, Name: "GOWTHAMI A", Email: "gowthami456@gmail.com", Mobile: "+91 9025856241",
			Status: resume.StatusHired, Location: "Bangalore", Experience: "2-4 years",
			Score: 92, MatchSkills: []string{"Python", "Django", "PostgreSQL"},
			ResumeDetails: "Backend Developer with Python expertise", UploadedBy: seeder},
		{ID: 118817, Name: "Dhivakaran P", Email: "dhivakarannmut@gmail.com", Mobile: "+91 9944442461",
			Status: resume.StatusOffered, Location: "Chennai", Experience: "4-6 years", UploadedBy: seeder},
		{ID: 118816, Name: "Kishore R", Email: "kishore@example.com", Mobile: "+91 9043393051",
			Status: resume.StatusInterviewStage, Location: "Hyderabad", Experience: "6-8 years", UploadedBy: seeder},
	}
}

type posting struct {
	id           kernel.RecordID
	source       string
	title        string
	department   string
	location     string
	experience   string
	min, max     int64
	applicants   int
	posted       string
	description  string
	requirements []string
	benefits     []string
	positions    int
}

var postings = []posting{
	{4567, job.SourceArcolab, "Azure - Senior Associate", "IT & Information Security", "Bengaluru", "2-5 years", 500000, 750000, 245, "2024-01-15",
		"Design and develop integration workflows using Azure Logic Apps, Azure Functions, Service Bus, and Event Grid.",
		[]string{"Azure certification", "5+ years experience", "Strong problem-solving skills"},
		[]string{"Health insurance", "Flexible hours", "Remote work options"}, 3},
	{2847, job.SourceStellis, "Senior Executive - Formulation Development", "Pharmaceutical & Life Sciences", "Mumbai", "3-7 years", 600000, 900000, 189, "2024-01-10",
		"Lead formulation development projects for pharmaceutical products and ensure compliance with regulatory standards.",
		[]string{"Pharmaceutical background", "Experience in R&D", "Regulatory knowledge"},
		[]string{"Medical coverage", "Annual bonus", "Career advancement"}, 2},
	{9102, job.SourceStrides, "Assistant Manager - Operations", "Operations", "Chennai", "2-4 years", 400000, 650000, 132, "2024-01-12",
		"Manage day-to-day operations and coordinate with various departments to ensure smooth workflow.",
		[]string{"Operations experience", "Leadership skills", "Process improvement knowledge"},
		[]string{"Performance bonus", "Training programs", "Work-life balance"}, 1},
	{5634, job.SourceManual, "Software Engineer - Frontend", "Technology", "Pune", "1-3 years", 350000, 600000, 89, "2024-01-08",
		"Develop responsive web applications using React, TypeScript, and modern frontend technologies.",
		[]string{"React expertise", "TypeScript knowledge", "UI/UX understanding"},
		[]string{"Learning opportunities", "Modern workspace", "Team outings"}, 5},
	{7832, job.SourceArcolab, "Data Scientist - ML Engineering", "IT & Information Security", "Hyderabad", "3-6 years", 800000, 1200000, 156, "2024-01-20",
		"Build and deploy machine learning models for predictive analytics and automation.",
		[]string{"Python/R expertise", "ML frameworks", "Statistical analysis"},
		[]string{"Stock options", "Research budget", "Conference allowance"}, 2},
	{4591, job.SourceStellis, "Quality Assurance Manager", "Quality Assurance", "Goa", "5-8 years", 700000, 1000000, 203, "2024-01-18",
		"Lead quality assurance initiatives and ensure compliance with pharmaceutical standards.",
		[]string{"QA certification", "Pharma experience", "Regulatory knowledge"},
		[]string{"Health insurance", "Performance bonus", "Training programs"}, 1},
	{6734, job.SourceStrides, "Business Analyst - Finance", "Finance", "Delhi", "2-4 years", 550000, 800000, 178, "2024-01-16",
		"Analyze financial data and provide insights for strategic business decisions.",
		[]string{"Finance background", "Excel/SQL skills", "Analytical thinking"},
		[]string{"Flexible hours", "Professional development", "Team events"}, 3},
	{8945, job.SourceManual, "UI/UX Designer", "Design", "Bangalore", "2-5 years", 450000, 750000, 267, "2024-01-14",
		"Create intuitive user interfaces and engaging user experiences for web and mobile applications.",
		[]string{"Design tools proficiency", "User research", "Prototyping skills"},
		[]string{"Creative workspace", "Design tools budget", "Flexible schedule"}, 2},
	{3421, job.SourceArcolab, "DevOps Engineer - Cloud Infrastructure", "IT & Information Security", "Chennai", "3-7 years", 900000, 1400000, 134, "2024-01-19",
		"Design and maintain cloud infrastructure using Azure, AWS, and container technologies.",
		[]string{"Cloud certifications", "Container orchestration", "CI/CD pipelines"},
		[]string{"Remote work", "Certification reimbursement", "Tech allowance"}, 4},
	{1267, job.SourceStellis, "Clinical Research Associate", "Research & Development", "Mumbai", "1-3 years", 400000, 650000, 198, "2024-01-17",
		"Conduct clinical trials and ensure compliance with regulatory requirements and protocols.",
		[]string{"Life sciences degree", "Clinical research knowledge", "Attention to detail"},
		[]string{"Medical coverage", "Research opportunities", "Career growth"}, 3},
	{5478, job.SourceStrides, "Product Manager - Digital Health", "Product Management", "Pune", "4-8 years", 1200000, 1800000, 89, "2024-01-21",
		"Lead product strategy and development for digital health platforms and solutions.",
		[]string{"Product management experience", "Healthcare domain", "Agile methodologies"},
		[]string{"Stock options", "Health benefits", "Learning budget"}, 1},
	{7823, job.SourceManual, "Sales Manager - Enterprise", "Sales", "Gurgaon", "5-10 years", 800000, 1300000, 145, "2024-01-13",
		"Drive enterprise sales and build relationships with key clients in the healthcare sector.",
		[]string{"Sales experience", "Healthcare industry", "Client relationship management"},
		[]string{"Commission structure", "Travel allowance", "Performance rewards"}, 2},
	{9156, job.SourceArcolab, "Cybersecurity Analyst", "IT & Information Security", "Noida", "2-5 years", 600000, 900000, 167, "2024-01-22",
		"Monitor and protect organizational systems from cybersecurity threats and vulnerabilities.",
		[]string{"Security certifications", "Threat analysis", "Incident response"},
		[]string{"Security training", "Certification support", "On-call allowance"}, 3},
	{2983, job.SourceStellis, "Regulatory Affairs Specialist", "Regulatory Affairs", "Ahmedabad", "3-6 years", 650000, 950000, 112, "2024-01-11",
		"Ensure regulatory compliance for pharmaceutical products and submissions to health authorities.",
		[]string{"Regulatory experience", "Pharma knowledge", "Documentation skills"},
		[]string{"Regulatory training", "Professional development", "Health coverage"}, 2},
}

// skills of the postings that candidates are scored against
var skills = map[kernel.RecordID][]string{
	4567: {"Azure", "Logic Apps", "Azure Functions", "Service Bus", "Event Grid", "JavaScript"},
	5634: {"React", "TypeScript", "JavaScript"},
	7832: {"Python", "Machine Learning", "Statistics"},
	3421: {"Azure", "AWS", "Kubernetes", "CI/CD"},
}

// Jobs are the postings of the job board
func Jobs() []job.Job {
	out := make([]job.Job, 0, len(postings))
	for _, p := range postings {
		j := job.Job{
			ID:             p.id,
			Title:          p.title,
			Description:    p.description,
			Department:     p.department,
			Location:       p.location,
			EmploymentType: job.EmploymentTypes[0],
			Experience:     p.experience,
			Salary:         job.Salary{Min: p.min, Max: p.max, Currency: job.DefaultCurrency},
			Status:         job.StatusActive,
			Applicants:     p.applicants,
			DatePosted:     p.posted,
			Requirements:   p.requirements,
			Benefits:       p.benefits,
			Skills:         skills[p.id],
			JobSource:      p.source,
			OpenPositions:  p.positions,
			Channels:       []string{"Naukri", "LinkedIn"},
			Phases:         []job.Phase{},
			Audit:          kernel.Audit{CreatedBy: seeder, CreatedOn: p.posted, UpdatedBy: seeder, UpdatedOn: p.posted},
		}
		if p.id == 4567 || p.id == 3421 {
			j.Phases = job.DefaultPhases()
		}
		out = append(out, j)
	}
	return out
}

func Candidates() []candidate.Candidate {
	applied := func(id kernel.RecordID, name, email, contact string, fitment, done int, st candidate.Status, last, date string) candidate.Candidate {
		return candidate.Candidate{
			ID: id, JobID: 4567, Name: name, Email: email, Contact: contact, Fitment: fitment,
			RoundsCompleted: done, RoundsTotal: 4, Status: st, LastRound: last, AppliedDate: date,
			Comments: []candidate.Comment{},
			Audit:    kernel.Audit{CreatedBy: seeder, CreatedOn: date, UpdatedBy: seeder, UpdatedOn: date},
		}
	}
	out := []candidate.Candidate{
		applied(1, "John Doe", "john.doe@email.com", "+1 9876543210", 85, 1, candidate.StatusInProgress, "HR Interview", "2024-01-15"),
		applied(2, "Jane Smith", "jane.smith@email.com", "+1 9876543211", 92, 4, candidate.StatusSelected, "Completed", "2024-01-14"),
		applied(3, "Mike Johnson", "mike.j@email.com", "+1 9876543212", 78, 2, candidate.StatusOnHold, "Technical Interview", "2024-01-16"),
		applied(4, "Sarah Wilson", "sarah@email.com", "+1 9876543213", 65, 1, candidate.StatusRejected, "Technical Screening", "2024-01-13"),
		applied(5, "David Brown", "david.brown@email.com", "+1 9876543214", 0, 0, candidate.StatusNoResponse, candidate.LastRoundApplied, "2024-01-12"),
		applied(6, "Emily Davis", "emily.d@email.com", "+1 9876543215", 88, 1, candidate.StatusInProgress, "System Design", "2024-01-17"),
		applied(7, "Sivasankaran S", "sivasankaran773@gmail.com", "+91 6370892917", 85, 3, candidate.StatusInProgress, "Technical Round 2", "2024-01-10"),
		applied(8, "Sivasankaran S", "sivasankaran773@gmail.com", "+91 6370892917", 60, 1, candidate.StatusRejected, "HR Round", "2024-01-25"),
	}
	out[6].ResumeID = 118820
	out[7].ResumeID = 118820
	out[7].JobID = 3421
	return out
}

func Interviews() []interview.Round {
	score := func(n int) *int { return &n }
	round := func(id, jobID, candidateID kernel.RecordID, title, name, interviewer, date, remarks string, s int) interview.Round {
		return interview.Round{
			ID: id, JobID: jobID, JobTitle: title, CandidateID: candidateID, CandidateName: "Sivasankaran S",
			Round: name, Interviewer: interviewer, Date: date, Status: interview.StatusCompleted,
			Remarks: remarks, Score: score(s), Duration: "45 min",
			Audit: kernel.Audit{CreatedBy: seeder, CreatedOn: date, UpdatedBy: seeder, UpdatedOn: date},
		}
	}
	const azure, devops = "Azure - Senior Associate", "DevOps Engineer - Cloud Infrastructure"
	return []interview.Round{
		round(1, 4567, 7, azure, "HR Round", "Savita Sharma", "2024-01-15",
			"Excellent communication skills and good cultural fit. Shows enthusiasm for the role.", 88),
		round(2, 4567, 7, azure, "Technical Round 1", "Rajesh Kumar", "2024-01-18",
			"Strong technical knowledge in React and Node.js. Good problem-solving approach.", 82),
		round(3, 4567, 7, azure, "Technical Round 2", "Priya Patel", "2024-01-20",
			"Excellent system design skills. Demonstrated scalability concepts well.", 90),
		round(4, 3421, 8, devops, "HR Round", "Amit Singh", "2024-02-05",
			"Good attitude but lacks experience in cloud technologies for this role.", 55),
	}
}
