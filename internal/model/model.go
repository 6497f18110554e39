package model

// Role is the access level attached to a user account. The dashboard shell
// picks its variant from this value; anything it does not recognize is
// treated as Client, the least privileged view.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleManager      Role = "MANAGER"
	RoleCollaborator Role = "COLLABORATOR"
	RoleClient       Role = "CLIENT"
)

// ParseRole maps a raw role string onto a known Role, defaulting to Client.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleAdmin, RoleManager, RoleCollaborator:
		return Role(raw)
	default:
		return RoleClient
	}
}

// CanAssign reports whether the role may pick task assignees.
func (r Role) CanAssign() bool {
	return r == RoleAdmin || r == RoleManager
}

type User struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	FullName       string `json:"full_name"`
	Role           Role   `json:"role"`
	Phone          string `json:"phone,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	IsActive       bool   `json:"is_active,omitempty"`
	IsOnline       bool   `json:"is_online,omitempty"`
	ProjectCount   int    `json:"project_count,omitempty"`
}

// AuthTokens is the credential pair minted by the backend on login.
type AuthTokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusInReview   TaskStatus = "IN_REVIEW"
	StatusDone       TaskStatus = "DONE"
)

// ProjectRef is the shallow project embedded in tasks and notifications.
type ProjectRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
}

type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     string       `json:"due_date"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	CreatedBy   *User        `json:"created_by"`
	AssignedTo  []User       `json:"assigned_to"`
	Project     *ProjectRef  `json:"project"`
	IsOverdue   bool         `json:"is_overdue,omitempty"`
}

// AssigneeNames renders the assignee list for display, substituting
// "Unassigned" when nobody is attached.
func (t Task) AssigneeNames() string {
	if len(t.AssignedTo) == 0 {
		return "Unassigned"
	}
	names := ""
	for i, u := range t.AssignedTo {
		if i > 0 {
			names += ", "
		}
		names += u.FullName
	}
	return names
}

// ProjectName is the display name of the owning project, "No Project" when
// the task is orphaned.
func (t Task) ProjectName() string {
	if t.Project == nil || t.Project.Name == "" {
		return "No Project"
	}
	return t.Project.Name
}

// TaskStats is the per-project task breakdown computed server-side.
type TaskStats struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	InReview   int `json:"in_review"`
	Done       int `json:"done"`
}

type Project struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Status             string     `json:"status"`
	Priority           string     `json:"priority"`
	StartDate          string     `json:"start_date"`
	EndDate            string     `json:"end_date"`
	CreatedAt          string     `json:"created_at"`
	CreatedBy          *User      `json:"created_by"`
	Client             *User      `json:"client"`
	AssignedUsers      []User     `json:"assigned_users"`
	ProgressPercentage float64    `json:"progress_percentage"`
	TaskStats          *TaskStats `json:"task_stats"`
}

// TotalTasks tolerates an absent task_stats payload.
func (p Project) TotalTasks() int {
	if p.TaskStats == nil {
		return 0
	}
	return p.TaskStats.Total
}

type NotificationType string

const (
	NotifyTaskAssigned    NotificationType = "TASK_ASSIGNED"
	NotifyProjectAssigned NotificationType = "PROJECT_ASSIGNED"
	NotifyCommentAdded    NotificationType = "COMMENT_ADDED"
	NotifySystem          NotificationType = "SYSTEM"
)

type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"notification_type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	CreatedAt string           `json:"created_at"`
	Project   *ProjectRef      `json:"project,omitempty"`
}

// Stats is the role-scoped counter set returned by dashboard/stats/. The keys
// differ per role (total_users for admins, my_tasks for collaborators, and so
// on), so it stays a map and the view labels known keys.
type Stats map[string]int

// NewTask is the task-creation payload; assignees are sent as bare IDs.
type NewTask struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    TaskPriority `json:"priority"`
	DueDate     string       `json:"due_date"`
	Project     int64        `json:"project"`
	AssignedTo  []int64      `json:"assigned_to"`
}

// Validate enforces the client-side required fields before any network call.
func (t NewTask) Validate() string {
	switch {
	case t.Title == "":
		return "Task title is required"
	case t.Project == 0:
		return "Select a project"
	case t.DueDate == "":
		return "Due date is required"
	}
	return ""
}
