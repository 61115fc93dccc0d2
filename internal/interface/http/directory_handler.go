package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/student-support-api/pkg/response"
)

// DirectoryHandler serves the static informational listings: tutoring,
// academic resources, scholarships, campus jobs, and volunteer
// opportunities. All routes are public.
type DirectoryHandler struct{}

func NewDirectoryHandler() *DirectoryHandler { return &DirectoryHandler{} }

type TutoringService struct {
	ID           int    `json:"id"`
	Subject      string `json:"subject"`
	Tutor        string `json:"tutor"`
	Availability string `json:"availability"`
	Location     string `json:"location"`
}

type AcademicResource struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type Scholarship struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Amount       string `json:"amount"`
	Deadline     string `json:"deadline"`
	Requirements string `json:"requirements"`
}

type JobOpening struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Hours      string `json:"hours"`
	Pay        string `json:"pay"`
}

type VolunteerOpportunity struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Date         string `json:"date"`
	Description  string `json:"description"`
}

var tutoringServices = []TutoringService{
	{ID: 1, Subject: "Mathematics", Tutor: "Dr. Sarah Johnson", Availability: "Mon-Wed 2-4 PM", Location: "Library Room 101"},
	{ID: 2, Subject: "Computer Science", Tutor: "Prof. Mike Chen", Availability: "Tue-Thu 10-12 PM", Location: "CS Building Room 205"},
	{ID: 3, Subject: "English Writing", Tutor: "Ms. Emily Davis", Availability: "Mon-Fri 1-3 PM", Location: "Writing Center"},
}

var academicResources = []AcademicResource{
	{ID: 1, Title: "Study Guides Library", Description: "Comprehensive study materials for all subjects", Link: "/study-guides"},
	{ID: 2, Title: "Past Exam Papers", Description: "Previous years' examination papers with solutions", Link: "/exam-papers"},
	{ID: 3, Title: "Academic Planning Tools", Description: "Course planners and academic tracking tools", Link: "/planning-tools"},
}

var scholarships = []Scholarship{
	{ID: 1, Title: "Merit-Based Scholarship", Amount: "$5,000", Deadline: "March 15, 2025", Requirements: "GPA 3.5+, Full-time student"},
	{ID: 2, Title: "Need-Based Grant", Amount: "$3,000", Deadline: "April 30, 2025", Requirements: "Financial need demonstration"},
	{ID: 3, Title: "Research Assistant Grant", Amount: "$2,500", Deadline: "May 1, 2025", Requirements: "Undergraduate research participation"},
}

var jobOpenings = []JobOpening{
	{ID: 1, Title: "Campus Library Assistant", Department: "Library Services", Hours: "15-20 hours/week", Pay: "$12/hour"},
	{ID: 2, Title: "Lab Teaching Assistant", Department: "Computer Science", Hours: "10-15 hours/week", Pay: "$15/hour"},
	{ID: 3, Title: "Student Center Coordinator", Department: "Student Affairs", Hours: "20 hours/week", Pay: "$14/hour"},
}

var volunteerOpportunities = []VolunteerOpportunity{
	{ID: 1, Title: "Community Food Drive", Organization: "Local Food Bank", Date: "Every Saturday", Description: "Help distribute food to families in need"},
	{ID: 2, Title: "Youth Mentoring Program", Organization: "City Youth Center", Date: "Weekdays 3-5 PM", Description: "Mentor high school students with academics"},
	{ID: 3, Title: "Environmental Cleanup", Organization: "Green Campus Initiative", Date: "First Sunday of each month", Description: "Campus and community environmental projects"},
}

// Tutoring GET /api/academic/tutoring
func (h *DirectoryHandler) Tutoring(c *gin.Context) {
	response.Success(c, http.StatusOK, tutoringServices, "tutoring services", nil)
}

// AcademicResources GET /api/academic/resources
func (h *DirectoryHandler) AcademicResources(c *gin.Context) {
	response.Success(c, http.StatusOK, academicResources, "academic resources", nil)
}

// Scholarships GET /api/financial/scholarships
func (h *DirectoryHandler) Scholarships(c *gin.Context) {
	response.Success(c, http.StatusOK, scholarships, "scholarships", nil)
}

// Jobs GET /api/financial/jobs
func (h *DirectoryHandler) Jobs(c *gin.Context) {
	response.Success(c, http.StatusOK, jobOpenings, "job opportunities", nil)
}

// Volunteer GET /api/community/volunteer
func (h *DirectoryHandler) Volunteer(c *gin.Context) {
	response.Success(c, http.StatusOK, volunteerOpportunities, "volunteer opportunities", nil)
}
