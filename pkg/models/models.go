package models

import "time"

// Domain models matching the JSON records persisted in the record store
// collections (users, jobs, applications, notifications).

// User roles known to the directory. Other role strings are stored as-is;
// only jobseekers receive job-posted notifications.
const (
	RoleJobseeker = "jobseeker"
	RoleEmployer  = "employer"
)

// Notification types emitted by the fan-out engine.
const (
	NotificationTypeJobPosted           = "job_posted"
	NotificationTypeInterviewInvitation = "interview_invitation"
)

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Salary       string    `json:"salary"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	PostedDate   time.Time `json:"postedDate"`
}

type Application struct {
	ID                  string     `json:"id"`
	JobID               string     `json:"jobId"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	Location            string     `json:"location"`
	Qualification       string     `json:"qualification"`
	ResumeFileName      string     `json:"resumeFileName"`
	InterviewPreference string     `json:"interviewPreference"`
	Message             string     `json:"message"`
	InviteSent          bool       `json:"inviteSent"`
	InviteSentDate      *time.Time `json:"inviteSentDate,omitempty"`
	AppliedDate         time.Time  `json:"appliedDate"`
}

// Notification carries denormalized job fields (JobTitle, Company, Location,
// JobType) copied at creation time; they are never re-derived from the job.
type Notification struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	JobID         string    `json:"jobId"`
	ApplicationID string    `json:"applicationId,omitempty"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	JobTitle      string    `json:"jobTitle"`
	Company       string    `json:"company"`
	Location      string    `json:"location"`
	JobType       string    `json:"jobType"`
	Type          string    `json:"type"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"createdAt"`
}
