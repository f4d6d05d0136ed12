package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type OrderForm struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type GroupOrderForm struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	PerformerID uint64 `json:"performer_id" binding:"required"`
}

type ResultForm struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Positive    bool   `json:"positive"`
}

type GroupOrderServicesForm struct {
	ServiceIDs []uint64 `json:"service_ids"`
}

type ConsultationForm struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Organization string `json:"organization" binding:"required"`
	RegNumber    string `json:"reg_number"`
	Person       string `json:"person"`
}

type NoteForm struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type CreateUserRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	Name          string `json:"name" binding:"required"`
	SecondName    string `json:"second_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	InternalPhone string `json:"internal_phone"`
	RoleID        uint64 `json:"role_id" binding:"required"`
	DepartmentID  uint64 `json:"department_id" binding:"required"`
	PositionID    uint64 `json:"position_id" binding:"required"`
}

type UpdateUserRequest struct {
	RoleID       uint64 `json:"role_id"`
	DepartmentID uint64 `json:"department_id"`
	PositionID   uint64 `json:"position_id"`
}

type DepartmentForm struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	OrganizationID *uint64 `json:"organization_id"`
}

type OrganizationForm struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type PositionForm struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Chief       bool   `json:"chief"`
}

type ServiceForm struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type ThemeForm struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type VersionForm struct {
	Version          string `json:"version" binding:"required"`
	UserDescription  string `json:"user_description" binding:"required"`
	AdminDescription string `json:"admin_description" binding:"required"`
}
